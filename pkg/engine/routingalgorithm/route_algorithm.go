package routingalgorithm

import (
	"errors"
	"time"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
)

var (
	ErrStartNotFound      = errors.New("routing: start node does not exist in graph")
	ErrFinishNotFound     = errors.New("routing: finish node does not exist in graph")
	ErrNoCapacity         = errors.New("routing: no capacity for supply, cannot recover")
	ErrHeuristicRequired  = errors.New("routing: bidirectional search requires a heuristic function")
	ErrNotEnoughWaypoints = errors.New("routing: route needs at least two waypoints")
)

// negativeSupplyPenalty cost per unit deficit. soft constraint, path yang kekurangan resource tetap bisa dipilih.
const negativeSupplyPenalty = 100000

// Graph read-only view yang dibutuhkan search. *graph.Graph implement ini.
type Graph interface {
	NodeIndex(id datastructure.NodeID) (int32, bool)
	NodeID(idx int32) datastructure.NodeID
	NumSlots() int
	IsLive(idx int32) bool
	Arcs(idx int32) []datastructure.Arc
	Vertex(idx int32) *datastructure.VertexProperties
	IsDisabledIndex(idx int32) bool
}

// Heuristic estimasi sisa cost dari node ke finish.
type Heuristic func(node, finish datastructure.NodeID) float64

// Logger debug sink. *slog.Logger memenuhi interface ini.
type Logger interface {
	Debug(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}

type Option func(*RouteAlgorithm)

func WithHeuristic(h Heuristic) Option {
	return func(rt *RouteAlgorithm) {
		rt.heuristic = h
	}
}

func WithLogger(l Logger) Option {
	return func(rt *RouteAlgorithm) {
		if l != nil {
			rt.log = l
		}
	}
}

// SearchOptions Supplies = level awal, SupplyCapacity = batas atas tiap resource (wajib kalau ada recovery).
// Timeout 0 = tanpa deadline.
type SearchOptions struct {
	Supplies       datastructure.Supplies
	SupplyCapacity datastructure.Supplies
	Timeout        time.Duration
}

type RouteAlgorithm struct {
	g         Graph
	heuristic Heuristic
	log       Logger
}

func NewRouteAlgorithm(g Graph, opts ...Option) *RouteAlgorithm {
	rt := &RouteAlgorithm{g: g, log: noopLogger{}}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (rt *RouteAlgorithm) HasHeuristic() bool {
	return rt.heuristic != nil
}
