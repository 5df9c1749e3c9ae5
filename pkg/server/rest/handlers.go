package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/server"
	"github.com/lintang-b-s/supplyroute/pkg/server/rest/service"
	"github.com/lintang-b-s/supplyroute/pkg/snap"
	"github.com/lintang-b-s/supplyroute/pkg/util"
)

// supply di response dibulatkan, biar noise floating point dari consume/recover tidak ikut.
const supplyPrecision = 6

type RoutingService interface {
	ShortestPath(ctx context.Context, start, finish datastructure.NodeID, supplies datastructure.Supplies,
		timeout time.Duration) (datastructure.PathResult, error)
	Bidirectional(ctx context.Context, start, finish datastructure.NodeID, timeout time.Duration) (datastructure.BidirectionalResult, error)
	Compose(ctx context.Context, waypoints []datastructure.NodeID, supplies datastructure.Supplies,
		timeout time.Duration) (datastructure.PathResult, error)
	Matrix(ctx context.Context, sources, targets []datastructure.NodeID, supplies datastructure.Supplies,
		timeout time.Duration) ([][]service.MatrixCell, error)
	Hops(ctx context.Context, id datastructure.NodeID, hops int, exact bool) ([]datastructure.NodeID, error)
	DisableVertex(ctx context.Context, id datastructure.NodeID) error
	EnableVertex(ctx context.Context, id datastructure.NodeID) error
	Vertex(ctx context.Context, id datastructure.NodeID) (service.VertexInfo, error)
	NodeForCoordinate(ctx context.Context, lat, lon float64) (snap.Candidate, error)
	Polyline(vertices []datastructure.NodeID) string
	NetworkName() string
}

type RoutingHandler struct {
	svc       RoutingService
	validator *requestValidator
}

func RoutingRouter(r *chi.Mux, svc RoutingService) {
	handler := &RoutingHandler{svc: svc, validator: newRequestValidator()}

	r.Group(func(r chi.Router) {
		r.Route("/api/routes", func(r chi.Router) {
			r.Post("/shortest-path", handler.ShortestPath)
			r.Post("/bidirectional", handler.Bidirectional)
			r.Post("/compose", handler.Compose)
			r.Post("/matrix", handler.Matrix)
		})

		r.Route("/api/graph", func(r chi.Router) {
			r.Get("/", handler.Network)
			r.Get("/snap", handler.Snap)
			r.Get("/hops/{id}", handler.Hops)
			r.Get("/vertices/{id}", handler.Vertex)
			r.Put("/vertices/{id}/disable", handler.DisableVertex)
			r.Put("/vertices/{id}/enable", handler.EnableVertex)
		})
	})
}

// Waypoint model info
//
//	@Description	vertex id, atau koordinat yang di-snap ke vertex aktif terdekat
type Waypoint struct {
	ID  string   `json:"id,omitempty"`
	Lat *float64 `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lon *float64 `json:"lon,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

func (w Waypoint) valid() bool {
	return w.ID != "" || (w.Lat != nil && w.Lon != nil)
}

// ShortestPathRequest model info
//
//	@Description	request body resource constrained shortest path
type ShortestPathRequest struct {
	Start     Waypoint           `json:"start"`
	Finish    Waypoint           `json:"finish"`
	Supplies  map[string]float64 `json:"supplies,omitempty"`
	TimeoutMs int64              `json:"timeoutMs,omitempty" validate:"gte=0"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if !s.Start.valid() || !s.Finish.valid() {
		return errors.New("start and finish need an id or a lat/lon pair")
	}
	return nil
}

// ComposeRequest model info
//
//	@Description	request body route lewat beberapa waypoint berurutan
type ComposeRequest struct {
	Waypoints []Waypoint         `json:"waypoints" validate:"required,min=2,dive"`
	Supplies  map[string]float64 `json:"supplies,omitempty"`
	TimeoutMs int64              `json:"timeoutMs,omitempty" validate:"gte=0"`
}

func (s *ComposeRequest) Bind(r *http.Request) error {
	for _, w := range s.Waypoints {
		if !w.valid() {
			return errors.New("every waypoint needs an id or a lat/lon pair")
		}
	}
	return nil
}

// MatrixRequest model info
//
//	@Description	request body cost matrix many-to-many
type MatrixRequest struct {
	Sources   []Waypoint         `json:"sources" validate:"required,min=1,dive"`
	Targets   []Waypoint         `json:"targets" validate:"required,min=1,dive"`
	Supplies  map[string]float64 `json:"supplies,omitempty"`
	TimeoutMs int64              `json:"timeoutMs,omitempty" validate:"gte=0"`
}

func (s *MatrixRequest) Bind(r *http.Request) error {
	for _, w := range append(append([]Waypoint{}, s.Sources...), s.Targets...) {
		if !w.valid() {
			return errors.New("every source and target needs an id or a lat/lon pair")
		}
	}
	return nil
}

// EdgeResponse model info
//
//	@Description	satu edge di path beserta ledger supply setelah edge
type EdgeResponse struct {
	Source              string             `json:"source"`
	Target              string             `json:"target"`
	EdgeID              string             `json:"edgeId"`
	Weight              float64            `json:"weight"`
	Consumes            map[string]float64 `json:"consumes,omitempty"`
	Recover             map[string]float64 `json:"recover,omitempty"`
	Supplies            map[string]float64 `json:"supplies"`
	WeightFromResources float64            `json:"weightFromResources"`
	ExtraWeight         float64            `json:"extraWeight"`
}

// RouteResponse model info
//
//	@Description	response body shortest path & compose
type RouteResponse struct {
	Found          bool               `json:"found"`
	Path           []string           `json:"path"`
	Polyline       string             `json:"polyline,omitempty"`
	Priority       float64            `json:"priority"`
	Distance       float64            `json:"distance"`
	Supplies       map[string]float64 `json:"supplies,omitempty"`
	TotalConsumed  map[string]float64 `json:"totalConsumed,omitempty"`
	TotalRecovered map[string]float64 `json:"totalRecovered,omitempty"`
	ResourceWeight map[string]float64 `json:"resourceWeight,omitempty"`
	Edges          []EdgeResponse     `json:"edges"`
	TimeTakenMs    float64            `json:"timeTakenMs"`
}

func (h *RoutingHandler) RenderRouteResponse(res datastructure.PathResult) *RouteResponse {
	vertices := res.Vertices()
	resp := &RouteResponse{
		Found:          !res.Empty(),
		Path:           nodeIDsToStrings(vertices),
		Polyline:       h.svc.Polyline(vertices),
		Priority:       res.Properties.Priority,
		Distance:       res.TotalWeight(),
		Supplies:       util.RoundMap(res.Properties.Supplies, supplyPrecision),
		TotalConsumed:  util.RoundMap(res.Properties.TotalConsumed, supplyPrecision),
		TotalRecovered: util.RoundMap(res.Properties.TotalRecovered, supplyPrecision),
		ResourceWeight: util.RoundMap(res.Properties.ResourceWeight, supplyPrecision),
		Edges:          make([]EdgeResponse, 0, len(res.Edges)),
		TimeTakenMs:    durationMs(res.Properties.TimeTaken),
	}
	for _, e := range res.Edges {
		resp.Edges = append(resp.Edges, EdgeResponse{
			Source:              string(e.Source),
			Target:              string(e.Target),
			EdgeID:              e.EdgeID,
			Weight:              e.Weight,
			Consumes:            e.Consumes,
			Recover:             e.Recover,
			Supplies:            util.RoundMap(e.Supplies, supplyPrecision),
			WeightFromResources: e.WeightFromResources,
			ExtraWeight:         e.ExtraWeight,
		})
	}
	return resp
}

// ShortestPath
//
//	@Summary		resource constrained shortest path antara dua vertex/koordinat
//	@Description	dijkstra/a* yang membawa ledger supply (fuel, battery, dll). edge yang bikin supply negatif ditolak atau kena penalty, vertex bisa recover supply.
//	@Tags			routes
//	@Param			body	body	ShortestPathRequest	true	"request body shortest path"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/shortest-path [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *RoutingHandler) ShortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := h.validator.check(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	ids, err := h.resolveWaypoints(r.Context(), []Waypoint{data.Start, data.Finish})
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	res, err := h.svc.ShortestPath(r.Context(), ids[0], ids[1], toSupplies(data.Supplies), msToDuration(data.TimeoutMs))
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.RenderRouteResponse(res))
}

// BidirectionalRequest model info
//
//	@Description	request body bidirectional a* (tanpa resource)
type BidirectionalRequest struct {
	Start     Waypoint `json:"start"`
	Finish    Waypoint `json:"finish"`
	TimeoutMs int64    `json:"timeoutMs,omitempty" validate:"gte=0"`
}

func (s *BidirectionalRequest) Bind(r *http.Request) error {
	if !s.Start.valid() || !s.Finish.valid() {
		return errors.New("start and finish need an id or a lat/lon pair")
	}
	return nil
}

// BidirectionalResponse model info
//
//	@Description	response body bidirectional a*. hasil approximate
type BidirectionalResponse struct {
	Found       bool     `json:"found"`
	Path        []string `json:"path"`
	Polyline    string   `json:"polyline,omitempty"`
	Priority    float64  `json:"priority"`
	TimeTakenMs float64  `json:"timeTakenMs"`
}

// Bidirectional
//
//	@Summary		bidirectional a* tanpa resource ledger
//	@Description	forward & backward a* bergantian, berhenti di meeting vertex pertama. hasil approximate, butuh heuristic di network.
//	@Tags			routes
//	@Param			body	body	BidirectionalRequest	true	"request body bidirectional a*"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/bidirectional [post]
//	@Success		200	{object}	BidirectionalResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *RoutingHandler) Bidirectional(w http.ResponseWriter, r *http.Request) {
	data := &BidirectionalRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := h.validator.check(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	ids, err := h.resolveWaypoints(r.Context(), []Waypoint{data.Start, data.Finish})
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	res, err := h.svc.Bidirectional(r.Context(), ids[0], ids[1], msToDuration(data.TimeoutMs))
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &BidirectionalResponse{
		Found:       !res.Empty(),
		Path:        nodeIDsToStrings(res.Path),
		Polyline:    h.svc.Polyline(res.Path),
		Priority:    res.Properties.Priority,
		TimeTakenMs: durationMs(res.Properties.TimeTaken),
	})
}

// Compose
//
//	@Summary		route lewat beberapa waypoint berurutan
//	@Description	shortest path per leg, supply akhir leg jadi supply awal leg berikutnya. satu leg gagal = route kosong.
//	@Tags			routes
//	@Param			body	body	ComposeRequest	true	"request body compose route"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/compose [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *RoutingHandler) Compose(w http.ResponseWriter, r *http.Request) {
	data := &ComposeRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := h.validator.check(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	ids, err := h.resolveWaypoints(r.Context(), data.Waypoints)
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	res, err := h.svc.Compose(r.Context(), ids, toSupplies(data.Supplies), msToDuration(data.TimeoutMs))
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.RenderRouteResponse(res))
}

// MatrixCellResponse model info
//
//	@Description	satu sel cost matrix
type MatrixCellResponse struct {
	Source    string  `json:"source"`
	Target    string  `json:"target"`
	Priority  float64 `json:"priority"`
	Reachable bool    `json:"reachable"`
}

// MatrixResponse model info
//
//	@Description	response body cost matrix, baris = source, kolom = target
type MatrixResponse struct {
	Sources     []string               `json:"sources"`
	Targets     []string               `json:"targets"`
	Cells       [][]MatrixCellResponse `json:"cells"`
	TimeTakenMs float64                `json:"timeTakenMs"`
}

// Matrix
//
//	@Summary		cost matrix many-to-many
//	@Description	satu resource constrained shortest path per pasangan source-target, dijalankan paralel di worker pool.
//	@Tags			routes
//	@Param			body	body	MatrixRequest	true	"request body cost matrix"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/matrix [post]
//	@Success		200	{object}	MatrixResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *RoutingHandler) Matrix(w http.ResponseWriter, r *http.Request) {
	data := &MatrixRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := h.validator.check(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	sources, err := h.resolveWaypoints(r.Context(), data.Sources)
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}
	targets, err := h.resolveWaypoints(r.Context(), data.Targets)
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	start := time.Now()
	cells, err := h.svc.Matrix(r.Context(), sources, targets, toSupplies(data.Supplies), msToDuration(data.TimeoutMs))
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	resp := &MatrixResponse{
		Sources:     nodeIDsToStrings(sources),
		Targets:     nodeIDsToStrings(targets),
		Cells:       make([][]MatrixCellResponse, len(cells)),
		TimeTakenMs: durationMs(time.Since(start)),
	}
	for i, row := range cells {
		resp.Cells[i] = make([]MatrixCellResponse, len(row))
		for j, c := range row {
			resp.Cells[i][j] = MatrixCellResponse{
				Source:    string(c.Source),
				Target:    string(c.Target),
				Priority:  c.Priority,
				Reachable: c.Reachable,
			}
		}
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// HopsResponse model info
//
//	@Description	vertex yang bisa dicapai dalam n hop
type HopsResponse struct {
	Vertex   string   `json:"vertex"`
	Hops     int      `json:"hops"`
	Exact    bool     `json:"exact"`
	Vertices []string `json:"vertices"`
}

// Hops
//
//	@Summary		vertex dalam jangkauan n hop
//	@Description	exact=true hanya vertex yang jarak hop-nya tepat n, selain itu semua vertex dengan jarak 1..n.
//	@Tags			graph
//	@Param			id		path	string	true	"vertex id"
//	@Param			max		query	int		true	"jumlah hop"
//	@Param			exact	query	bool	false	"hanya jarak tepat max"
//	@Produce		application/json
//	@Router			/graph/hops/{id} [get]
//	@Success		200	{object}	HopsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoutingHandler) Hops(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	hops, err := strconv.Atoi(r.URL.Query().Get("max"))
	if err != nil || hops < 0 {
		render.Render(w, r, ErrInvalidRequest(errors.New("max must be a non-negative integer")))
		return
	}
	exact := false
	if raw := r.URL.Query().Get("exact"); raw != "" {
		exact, err = strconv.ParseBool(raw)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(errors.New("exact must be a boolean")))
			return
		}
	}

	vertices, err := h.svc.Hops(r.Context(), datastructure.NodeID(id), hops, exact)
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &HopsResponse{Vertex: id, Hops: hops, Exact: exact, Vertices: nodeIDsToStrings(vertices)})
}

// NeighborResponse model info
//
//	@Description	tetangga satu vertex
type NeighborResponse struct {
	ID       string             `json:"id"`
	EdgeID   string             `json:"edgeId"`
	Weight   float64            `json:"weight"`
	Consumes map[string]float64 `json:"consumes,omitempty"`
}

// VertexResponse model info
//
//	@Description	info vertex
type VertexResponse struct {
	ID        string             `json:"id"`
	Lat       *float64           `json:"lat,omitempty"`
	Lon       *float64           `json:"lon,omitempty"`
	Disabled  bool               `json:"disabled"`
	Recovers  []string           `json:"recovers"`
	Neighbors []NeighborResponse `json:"neighbors"`
}

// Vertex
//
//	@Summary		info satu vertex
//	@Tags			graph
//	@Param			id	path	string	true	"vertex id"
//	@Produce		application/json
//	@Router			/graph/vertices/{id} [get]
//	@Success		200	{object}	VertexResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoutingHandler) Vertex(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Vertex(r.Context(), datastructure.NodeID(chi.URLParam(r, "id")))
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	resp := &VertexResponse{
		ID:        string(info.ID),
		Disabled:  info.Disabled,
		Recovers:  info.Recovers,
		Neighbors: make([]NeighborResponse, 0, len(info.Neighbors)),
	}
	if info.Coordinate != nil {
		lat, lon := info.Coordinate.Lat, info.Coordinate.Lon
		resp.Lat, resp.Lon = &lat, &lon
	}
	for _, n := range info.Neighbors {
		resp.Neighbors = append(resp.Neighbors, NeighborResponse{
			ID:       string(n.ID),
			EdgeID:   n.EdgeID,
			Weight:   n.Weight,
			Consumes: n.Consumes,
		})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// VertexStatusResponse model info
//
//	@Description	status vertex setelah disable/enable
type VertexStatusResponse struct {
	ID       string `json:"id"`
	Disabled bool   `json:"disabled"`
}

// DisableVertex
//
//	@Summary		disable vertex, search berikutnya tidak lewat vertex ini
//	@Tags			graph
//	@Param			id	path	string	true	"vertex id"
//	@Produce		application/json
//	@Router			/graph/vertices/{id}/disable [put]
//	@Success		200	{object}	VertexStatusResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoutingHandler) DisableVertex(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.DisableVertex(r.Context(), datastructure.NodeID(id)); err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &VertexStatusResponse{ID: id, Disabled: true})
}

// EnableVertex
//
//	@Summary		enable lagi vertex yang di-disable
//	@Tags			graph
//	@Param			id	path	string	true	"vertex id"
//	@Produce		application/json
//	@Router			/graph/vertices/{id}/enable [put]
//	@Success		200	{object}	VertexStatusResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoutingHandler) EnableVertex(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.EnableVertex(r.Context(), datastructure.NodeID(id)); err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &VertexStatusResponse{ID: id, Disabled: false})
}

// SnapResponse model info
//
//	@Description	vertex aktif terdekat dari koordinat
type SnapResponse struct {
	ID         string  `json:"id"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKM float64 `json:"distanceKm"`
}

// Snap
//
//	@Summary		snap koordinat ke vertex aktif terdekat
//	@Tags			graph
//	@Param			lat	query	number	true	"latitude"
//	@Param			lon	query	number	true	"longitude"
//	@Produce		application/json
//	@Router			/graph/snap [get]
//	@Success		200	{object}	SnapResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoutingHandler) Snap(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		render.Render(w, r, ErrInvalidRequest(errors.New("lat and lon must be valid coordinates")))
		return
	}

	c, err := h.svc.NodeForCoordinate(r.Context(), lat, lon)
	if err != nil {
		render.Render(w, r, ErrRenderer(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &SnapResponse{
		ID:         string(c.ID),
		Lat:        c.Coordinate.Lat,
		Lon:        c.Coordinate.Lon,
		DistanceKM: c.DistanceKM,
	})
}

// NetworkResponse model info
//
//	@Description	nama network yang sedang diload
type NetworkResponse struct {
	Name string `json:"name"`
}

// Network
//
//	@Summary		network yang sedang diload
//	@Tags			graph
//	@Produce		application/json
//	@Router			/graph [get]
//	@Success		200	{object}	NetworkResponse
func (h *RoutingHandler) Network(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &NetworkResponse{Name: h.svc.NetworkName()})
}

// resolveWaypoints waypoint dengan id dipakai langsung, sisanya di-snap ke vertex terdekat.
func (h *RoutingHandler) resolveWaypoints(ctx context.Context, ws []Waypoint) ([]datastructure.NodeID, error) {
	ids := make([]datastructure.NodeID, 0, len(ws))
	for _, w := range ws {
		if w.ID != "" {
			ids = append(ids, datastructure.NodeID(w.ID))
			continue
		}
		if w.Lat == nil || w.Lon == nil {
			return nil, server.NewErrorf(server.ErrBadParamInput, "waypoint needs an id or a lat/lon pair")
		}
		c, err := h.svc.NodeForCoordinate(ctx, *w.Lat, *w.Lon)
		if err != nil {
			return nil, err
		}
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func toSupplies(m map[string]float64) datastructure.Supplies {
	if m == nil {
		return nil
	}
	return datastructure.Supplies(m)
}

func msToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

func nodeIDsToStrings(ids []datastructure.NodeID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}
