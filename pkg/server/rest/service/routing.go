package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lintang-b-s/supplyroute/pkg/concurrent"
	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/supplyroute/pkg/geo"
	"github.com/lintang-b-s/supplyroute/pkg/graph"
	"github.com/lintang-b-s/supplyroute/pkg/kv"
	"github.com/lintang-b-s/supplyroute/pkg/network"
	"github.com/lintang-b-s/supplyroute/pkg/server"
	"github.com/lintang-b-s/supplyroute/pkg/snap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const (
	KindShortestPath  = "shortest-path"
	KindBidirectional = "bidirectional"
	KindCompose       = "compose"
	KindMatrix        = "matrix"
)

type Option func(*RoutingService)

func WithCache(c RouteCache) Option {
	return func(s *RoutingService) { s.cache = c }
}

func WithSnapper(sn Snapper) Option {
	return func(s *RoutingService) { s.snapper = sn }
}

func WithTracer(t trace.Tracer) Option {
	return func(s *RoutingService) { s.tracer = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *RoutingService) { s.log = l }
}

func WithRecorder(r Recorder) Option {
	return func(s *RoutingService) { s.rec = r }
}

// WithDefaultTimeout timeout search kalau request tidak menyebutkan timeout.
func WithDefaultTimeout(d time.Duration) Option {
	return func(s *RoutingService) { s.defaultTimeout = d }
}

func WithMatrixWorkers(n int) Option {
	return func(s *RoutingService) { s.matrixWorkers = n }
}

// RoutingService routing di atas satu network. search pakai read lock, edit graph (disable/enable) pakai write lock,
// jadi search tidak pernah jalan bersamaan dengan mutasi graph.
type RoutingService struct {
	mu      sync.RWMutex
	net     *network.Network
	router  *routingalgorithm.RouteAlgorithm
	cache   RouteCache
	snapper Snapper
	tracer  trace.Tracer
	log     *slog.Logger
	rec     Recorder
	flights singleflight.Group

	defaultTimeout time.Duration
	matrixWorkers  int
}

func NewRoutingService(net *network.Network, opts ...Option) *RoutingService {
	s := &RoutingService{
		net:           net,
		tracer:        otel.Tracer("supplyroute/service"),
		log:           slog.Default(),
		rec:           noopRecorder{},
		matrixWorkers: 8,
	}
	for _, opt := range opts {
		opt(s)
	}

	routerOpts := []routingalgorithm.Option{routingalgorithm.WithLogger(s.log)}
	if h := net.Heuristic(); h != nil {
		routerOpts = append(routerOpts, routingalgorithm.WithHeuristic(h))
	}
	s.router = routingalgorithm.NewRouteAlgorithm(net.Graph, routerOpts...)
	return s
}

func (s *RoutingService) searchOptions(supplies datastructure.Supplies, timeout time.Duration) routingalgorithm.SearchOptions {
	if supplies == nil {
		supplies = s.net.Initial
	}
	if timeout == 0 {
		timeout = s.defaultTimeout
	}
	return routingalgorithm.SearchOptions{
		Supplies:       supplies,
		SupplyCapacity: s.net.Capacity,
		Timeout:        timeout,
	}
}

// ShortestPath resource-aware search dari start ke finish. supplies nil = supply awal network.
func (s *RoutingService) ShortestPath(ctx context.Context, start, finish datastructure.NodeID,
	supplies datastructure.Supplies, timeout time.Duration) (datastructure.PathResult, error) {
	ctx, span := s.tracer.Start(ctx, "RoutingService.ShortestPath", trace.WithAttributes(
		attribute.String("start", string(start)),
		attribute.String("finish", string(finish)),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return datastructure.PathResult{}, endSpan(span, server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled"))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	opts := s.searchOptions(supplies, timeout)
	key := kv.RouteKey(KindShortestPath, []datastructure.NodeID{start, finish}, opts.Supplies, opts.SupplyCapacity, opts.Timeout)
	if res, ok := s.cachedPath(KindShortestPath, key); ok {
		span.SetAttributes(attribute.Bool("cached", true), attribute.Float64("priority", res.Properties.Priority))
		return res, nil
	}

	res, shared, err := s.searchOnce(KindShortestPath, key, func() (datastructure.PathResult, error) {
		return s.router.ShortestPath(start, finish, opts)
	})
	if err != nil {
		return datastructure.PathResult{}, endSpan(span, mapRoutingError(err))
	}

	span.SetAttributes(attribute.Float64("priority", res.Properties.Priority), attribute.Int("edges", len(res.Edges)),
		attribute.Bool("shared", shared))
	return res, nil
}

// Bidirectional bidirectional A* tanpa resource (butuh heuristic di network).
func (s *RoutingService) Bidirectional(ctx context.Context, start, finish datastructure.NodeID,
	timeout time.Duration) (datastructure.BidirectionalResult, error) {
	ctx, span := s.tracer.Start(ctx, "RoutingService.Bidirectional", trace.WithAttributes(
		attribute.String("start", string(start)),
		attribute.String("finish", string(finish)),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return datastructure.BidirectionalResult{}, endSpan(span, server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled"))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	opts := s.searchOptions(nil, timeout)
	key := kv.RouteKey(KindBidirectional, []datastructure.NodeID{start, finish}, nil, nil, opts.Timeout)
	if s.cache != nil {
		res, ok, err := s.cache.GetBidirectional(key)
		if err != nil {
			s.log.Warn("route cache lookup failed", "kind", KindBidirectional, "error", err)
		}
		s.rec.CacheLookup(KindBidirectional, ok)
		if ok {
			return res, nil
		}
	}

	res, err := s.router.ShortestPathBidirectional(start, finish, opts)
	if err != nil {
		return datastructure.BidirectionalResult{}, endSpan(span, mapRoutingError(err))
	}
	s.rec.ObserveSearch(KindBidirectional, res.Properties.TimeTaken)
	if s.cache != nil && !res.Empty() {
		if err := s.cache.PutBidirectional(key, res); err != nil {
			s.log.Warn("route cache store failed", "kind", KindBidirectional, "error", err)
		}
	}

	span.SetAttributes(attribute.Float64("priority", res.Properties.Priority), attribute.Int("vertices", len(res.Path)))
	return res, nil
}

// Compose route lewat semua waypoint berurutan.
func (s *RoutingService) Compose(ctx context.Context, waypoints []datastructure.NodeID, supplies datastructure.Supplies,
	timeout time.Duration) (datastructure.PathResult, error) {
	ctx, span := s.tracer.Start(ctx, "RoutingService.Compose", trace.WithAttributes(
		attribute.Int("waypoints", len(waypoints)),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return datastructure.PathResult{}, endSpan(span, server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled"))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	opts := s.searchOptions(supplies, timeout)
	key := kv.RouteKey(KindCompose, waypoints, opts.Supplies, opts.SupplyCapacity, opts.Timeout)
	if res, ok := s.cachedPath(KindCompose, key); ok {
		return res, nil
	}

	res, shared, err := s.searchOnce(KindCompose, key, func() (datastructure.PathResult, error) {
		return s.router.ComposeRoute(waypoints, opts)
	})
	if err != nil {
		return datastructure.PathResult{}, endSpan(span, mapRoutingError(err))
	}

	span.SetAttributes(attribute.Float64("priority", res.Properties.Priority), attribute.Bool("shared", shared))
	return res, nil
}

// MatrixCell satu sel cost matrix. Reachable false = tidak ada path.
type MatrixCell struct {
	Source    datastructure.NodeID
	Target    datastructure.NodeID
	Priority  float64
	Reachable bool
}

type matrixResult struct {
	row, col int
	key      string
	res      datastructure.PathResult
	err      error
}

// Matrix cost many-to-many, setiap sel satu ShortestPath di worker pool.
func (s *RoutingService) Matrix(ctx context.Context, sources, targets []datastructure.NodeID,
	supplies datastructure.Supplies, timeout time.Duration) ([][]MatrixCell, error) {
	ctx, span := s.tracer.Start(ctx, "RoutingService.Matrix", trace.WithAttributes(
		attribute.Int("sources", len(sources)),
		attribute.Int("targets", len(targets)),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, endSpan(span, server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled"))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	opts := s.searchOptions(supplies, timeout)
	matrix := make([][]MatrixCell, len(sources))
	for i := range sources {
		matrix[i] = make([]MatrixCell, len(targets))
	}

	workers := concurrent.NewWorkerPool[concurrent.MatrixCellParam, matrixResult](s.matrixWorkers, len(sources)*len(targets))
	for i, src := range sources {
		for j, dst := range targets {
			workers.AddJob(concurrent.NewMatrixCellParam(i, j, src, dst))
		}
	}
	workers.Close()
	workers.Start(func(job concurrent.MatrixCellParam) matrixResult {
		key := kv.RouteKey(KindShortestPath, []datastructure.NodeID{job.Source, job.Target}, opts.Supplies,
			opts.SupplyCapacity, opts.Timeout)
		if res, ok := s.cachedPath(KindMatrix, key); ok {
			return matrixResult{row: job.Row, col: job.Col, res: res}
		}
		res, err := s.router.ShortestPath(job.Source, job.Target, opts)
		return matrixResult{row: job.Row, col: job.Col, key: string(key), res: res, err: err}
	})
	workers.Wait()

	fresh := make(map[string]datastructure.PathResult)
	var firstErr error
	for cell := range workers.CollectResults() {
		if cell.err != nil {
			if firstErr == nil {
				firstErr = cell.err
			}
			continue
		}
		src, dst := sources[cell.row], targets[cell.col]
		matrix[cell.row][cell.col] = MatrixCell{
			Source:    src,
			Target:    dst,
			Priority:  cell.res.Properties.Priority,
			Reachable: !cell.res.Empty() || src == dst,
		}
		if cell.key != "" {
			s.rec.ObserveSearch(KindMatrix, cell.res.Properties.TimeTaken)
			if !cell.res.Empty() {
				fresh[cell.key] = cell.res
			}
		}
	}
	if firstErr != nil {
		return nil, endSpan(span, mapRoutingError(firstErr))
	}

	if s.cache != nil {
		if err := s.cache.PutPaths(fresh); err != nil {
			s.log.Warn("route cache batch store failed", "kind", KindMatrix, "error", err)
		}
	}
	return matrix, nil
}

// searchOnce query identik yang jalan bersamaan cuma dicari sekali, caller lain menunggu & dapat hasil yang sama.
// hasil tersebut dipakai bersama, jangan dimodifikasi.
func (s *RoutingService) searchOnce(kind string, key []byte,
	search func() (datastructure.PathResult, error)) (datastructure.PathResult, bool, error) {
	v, err, shared := s.flights.Do(string(key), func() (any, error) {
		res, err := search()
		if err != nil {
			return nil, err
		}
		s.rec.ObserveSearch(kind, res.Properties.TimeTaken)
		s.storePath(key, res)
		return res, nil
	})
	if err != nil {
		return datastructure.PathResult{}, shared, err
	}
	res, ok := v.(datastructure.PathResult)
	if !ok {
		return datastructure.PathResult{}, shared, fmt.Errorf("unexpected type from route search group: %T", v)
	}
	return res, shared, nil
}

func (s *RoutingService) cachedPath(kind string, key []byte) (datastructure.PathResult, bool) {
	if s.cache == nil {
		return datastructure.PathResult{}, false
	}
	res, ok, err := s.cache.GetPath(key)
	if err != nil {
		s.log.Warn("route cache lookup failed", "kind", kind, "error", err)
		return datastructure.PathResult{}, false
	}
	s.rec.CacheLookup(kind, ok)
	return res, ok
}

// storePath hanya simpan path yang tidak kosong. hasil kosong bisa karena timeout.
func (s *RoutingService) storePath(key []byte, res datastructure.PathResult) {
	if s.cache == nil || res.Empty() {
		return
	}
	if err := s.cache.PutPath(key, res); err != nil {
		s.log.Warn("route cache store failed", "error", err)
	}
}

func mapRoutingError(err error) error {
	switch {
	case errors.Is(err, routingalgorithm.ErrStartNotFound), errors.Is(err, routingalgorithm.ErrFinishNotFound),
		errors.Is(err, graph.ErrVertexNotFound):
		return server.WrapErrorf(err, server.ErrNotFound, "vertex not found in road network")
	case errors.Is(err, routingalgorithm.ErrNotEnoughWaypoints), errors.Is(err, routingalgorithm.ErrHeuristicRequired):
		return server.WrapErrorf(err, server.ErrBadParamInput, "%s", err.Error())
	case errors.Is(err, routingalgorithm.ErrNoCapacity):
		return server.WrapErrorf(err, server.ErrConflict, "network has a recovery vertex for a resource without capacity")
	}
	return server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
}

func endSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// Polyline geometry route dari koordinat vertex, disederhanakan douglas-peucker.
// string kosong kalau ada vertex tanpa koordinat.
func (s *RoutingService) Polyline(vertices []datastructure.NodeID) string {
	coords := make([]datastructure.Coordinate, 0, len(vertices))
	for _, v := range vertices {
		c, ok := s.net.Coordinate(v)
		if !ok {
			return ""
		}
		coords = append(coords, c)
	}
	if len(coords) == 0 {
		return ""
	}
	return datastructure.CreatePolyline(geo.SimplifyRoute(coords, geo.DefaultSimplifyThreshold))
}

// NodeForCoordinate vertex aktif terdekat dari koordinat.
func (s *RoutingService) NodeForCoordinate(ctx context.Context, lat, lon float64) (snap.Candidate, error) {
	_, span := s.tracer.Start(ctx, "RoutingService.NodeForCoordinate", trace.WithAttributes(
		attribute.Float64("lat", lat),
		attribute.Float64("lon", lon),
	))
	defer span.End()

	if s.snapper == nil {
		return snap.Candidate{}, endSpan(span, server.NewErrorf(server.ErrBadParamInput, "coordinate snapping is not enabled"))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.snapper.Nearest(lat, lon, func(id datastructure.NodeID) bool {
		return !s.net.Graph.IsVertexDisabled(id)
	})
	if errors.Is(err, snap.ErrNoVertexNearby) {
		return snap.Candidate{}, endSpan(span, server.WrapErrorf(err, server.ErrNotFound,
			"the location (%f, %f) is not covered by the road network", lat, lon))
	}
	if err != nil {
		return snap.Candidate{}, endSpan(span, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error"))
	}
	return c, nil
}

func (s *RoutingService) NetworkName() string {
	return s.net.Name
}
