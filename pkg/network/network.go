package network

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/geo"
	"github.com/lintang-b-s/supplyroute/pkg/graph"
)

var (
	ErrInvalidDocument = errors.New("network: invalid document")
	ErrMissingWeight   = errors.New("network: edge has no weight and endpoints have no coordinates")
)

// Network hasil Build: graph yang siap dipakai routing + metadata dari document.
type Network struct {
	Name        string
	Graph       *graph.Graph
	Capacity    datastructure.Supplies
	Initial     datastructure.Supplies
	Coordinates map[datastructure.NodeID]datastructure.Coordinate

	heuristicKind string
	costPerUnit   float64
	planar        map[datastructure.NodeID][2]float64
}

// Build validasi document lalu bangun graph. vertex dulu, baru edge.
func Build(doc *Document) (*Network, error) {
	n := &Network{
		Name:          doc.Name,
		Graph:         graph.NewGraph(),
		Capacity:      datastructure.Supplies{},
		Initial:       datastructure.Supplies{},
		Coordinates:   make(map[datastructure.NodeID]datastructure.Coordinate),
		heuristicKind: doc.Heuristic.Kind,
		costPerUnit:   doc.Heuristic.CostPerUnit,
		planar:        make(map[datastructure.NodeID][2]float64),
	}
	if n.heuristicKind == "" {
		n.heuristicKind = HeuristicNone
	}
	if n.costPerUnit == 0 {
		n.costPerUnit = 1
	}
	switch n.heuristicKind {
	case HeuristicNone, HeuristicHaversine, HeuristicEuclidean:
	default:
		return nil, fmt.Errorf("%w: unknown heuristic kind %q", ErrInvalidDocument, n.heuristicKind)
	}

	for name, res := range doc.Resources {
		if res.Capacity < 0 {
			return nil, fmt.Errorf("%w: resource %q has negative capacity", ErrInvalidDocument, name)
		}
		n.Capacity[name] = res.Capacity
		n.Initial[name] = res.Capacity
		if res.Initial != nil {
			n.Initial[name] = *res.Initial
		}
	}

	seen := make(map[string]struct{}, len(doc.Vertices))
	for _, v := range doc.Vertices {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: vertex without id", ErrInvalidDocument)
		}
		if _, ok := seen[v.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate vertex %q", ErrInvalidDocument, v.ID)
		}
		seen[v.ID] = struct{}{}

		props, err := vertexProperties(v)
		if err != nil {
			return nil, err
		}
		id := datastructure.NodeID(v.ID)
		n.Graph.AddVertex(id, props)
		if v.HasCoordinate() {
			n.Coordinates[id] = datastructure.NewCoordinate(*v.Lat, *v.Lon)
		}
		n.planar[id] = [2]float64{v.X, v.Y}
		if v.Disabled {
			n.Graph.DisableVertex(id)
		}
	}

	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %d needs from and to", ErrInvalidDocument, i)
		}
		props, err := n.edgeProperties(e)
		if err != nil {
			return nil, fmt.Errorf("edge %d (%s -> %s): %w", i, e.From, e.To, err)
		}
		if err := n.Graph.AddEdge(datastructure.NodeID(e.From), datastructure.NodeID(e.To), props, e.Directed); err != nil {
			return nil, fmt.Errorf("edge %d (%s -> %s): %w", i, e.From, e.To, err)
		}
	}

	return n, nil
}

func (n *Network) edgeProperties(e Edge) (*datastructure.EdgeProperties, error) {
	id := e.ID
	if id == "" {
		id = e.From + "-" + e.To
	}

	var weight float64
	if e.Weight != nil {
		weight = *e.Weight
	} else {
		a, okA := n.Coordinates[datastructure.NodeID(e.From)]
		b, okB := n.Coordinates[datastructure.NodeID(e.To)]
		if !okA || !okB {
			return nil, ErrMissingWeight
		}
		weight = geo.GreatCircleDistance(a.Lat, a.Lon, b.Lat, b.Lon)
	}

	props := datastructure.NewEdgeProperties(id, weight, datastructure.Supplies(e.Consumes))
	props.ExtraWeight = e.ExtraWeight
	if e.Surcharge != nil {
		if e.Surcharge.Resource == "" {
			return nil, fmt.Errorf("%w: surcharge without resource", ErrInvalidDocument)
		}
		props.ExtraCost = SurchargeCost(*e.Surcharge)
	}
	return props, nil
}

func vertexProperties(v Vertex) (*datastructure.VertexProperties, error) {
	if len(v.Recover) == 0 {
		return nil, nil
	}
	props := &datastructure.VertexProperties{Recover: make(map[string]datastructure.RecoverFunc, len(v.Recover))}
	for res, p := range v.Recover {
		fn, err := RecoverFunc(p)
		if err != nil {
			return nil, fmt.Errorf("vertex %q resource %q: %w", v.ID, res, err)
		}
		props.Recover[res] = fn
	}
	return props, nil
}

// Heuristic estimasi cost ke finish dari koordinat vertex. nil kalau kind none.
// vertex tanpa koordinat dapat estimasi 0.
func (n *Network) Heuristic() func(node, finish datastructure.NodeID) float64 {
	switch n.heuristicKind {
	case HeuristicHaversine:
		return func(node, finish datastructure.NodeID) float64 {
			a, okA := n.Coordinates[node]
			b, okB := n.Coordinates[finish]
			if !okA || !okB {
				return 0
			}
			return n.costPerUnit * geo.CalculateHaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
		}
	case HeuristicEuclidean:
		return func(node, finish datastructure.NodeID) float64 {
			a, b := n.planar[node], n.planar[finish]
			return n.costPerUnit * geo.EuclideanDistance(a[0], a[1], b[0], b[1])
		}
	}
	return nil
}

func (n *Network) HeuristicKind() string {
	return n.heuristicKind
}

// Coordinate koordinat vertex kalau ada.
func (n *Network) Coordinate(id datastructure.NodeID) (datastructure.Coordinate, bool) {
	c, ok := n.Coordinates[id]
	return c, ok
}
