package graph

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
)

var (
	ErrVertexNotFound = errors.New("graph: vertex not found")
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// Graph adjacency list dengan id->index table. slot vertex yang di-remove jadi dead slot,
// index vertex lain tidak pernah bergeser.
//
// Graph tidak thread-safe. edit graph & search harus di-serialize oleh caller.
type Graph struct {
	index    map[datastructure.NodeID]int32
	ids      []datastructure.NodeID
	live     []bool
	adj      [][]datastructure.Arc
	vertices []*datastructure.VertexProperties
	disabled []bool

	// disable sebelum vertex ada
	pendingDisabled map[datastructure.NodeID]struct{}
}

func NewGraph() *Graph {
	return &Graph{
		index:           make(map[datastructure.NodeID]int32),
		ids:             make([]datastructure.NodeID, 0),
		live:            make([]bool, 0),
		adj:             make([][]datastructure.Arc, 0),
		vertices:        make([]*datastructure.VertexProperties, 0),
		disabled:        make([]bool, 0),
		pendingDisabled: make(map[datastructure.NodeID]struct{}),
	}
}

func (g *Graph) ensureVertex(id datastructure.NodeID) int32 {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := int32(len(g.ids))
	g.index[id] = idx
	g.ids = append(g.ids, id)
	g.live = append(g.live, true)
	g.adj = append(g.adj, make([]datastructure.Arc, 0))
	g.vertices = append(g.vertices, nil)

	_, disabled := g.pendingDisabled[id]
	g.disabled = append(g.disabled, disabled)
	delete(g.pendingDisabled, id)
	return idx
}

// AddVertex buat adjacency list kalau belum ada. props != nil overwrite properties yang tersimpan.
func (g *Graph) AddVertex(id datastructure.NodeID, props *datastructure.VertexProperties) {
	idx := g.ensureVertex(id)
	if props != nil {
		g.vertices[idx] = props.Clone()
	}
}

// AddEdge tambah arc a->b (dan b->a kalau !directed). props nil = {Weight: 1}.
// props di-copy sekali, hasil copy di-share kedua arah.
func (g *Graph) AddEdge(a, b datastructure.NodeID, props *datastructure.EdgeProperties, directed bool) error {
	var edge *datastructure.EdgeProperties
	if props == nil {
		edge = &datastructure.EdgeProperties{Weight: 1}
	} else {
		if !(props.Weight >= 0) {
			return fmt.Errorf("%w: %s->%s weight %f", ErrNegativeWeight, a, b, props.Weight)
		}
		edge = props.Clone()
	}

	from := g.ensureVertex(a)
	to := g.ensureVertex(b)

	g.adj[from] = append(g.adj[from], datastructure.NewArc(to, edge))
	if !directed {
		g.adj[to] = append(g.adj[to], datastructure.NewArc(from, edge))
	}
	return nil
}

// RemoveEdge hapus semua arc a->b (dan b->a kalau !directed).
func (g *Graph) RemoveEdge(a, b datastructure.NodeID, directed bool) {
	from, okA := g.index[a]
	to, okB := g.index[b]
	if !okA || !okB {
		return
	}
	g.adj[from] = filterArcs(g.adj[from], to)
	if !directed {
		g.adj[to] = filterArcs(g.adj[to], from)
	}
}

// RemoveVertex hapus vertex, properties-nya, dan semua arc yang menuju vertex itu.
func (g *Graph) RemoveVertex(id datastructure.NodeID) {
	idx, ok := g.index[id]
	if !ok {
		return
	}
	for i := range g.adj {
		if !g.live[i] {
			continue
		}
		g.adj[i] = filterArcs(g.adj[i], idx)
	}

	delete(g.index, id)
	g.live[idx] = false
	g.adj[idx] = nil
	g.vertices[idx] = nil
	if g.disabled[idx] {
		// status disabled ikut id, bukan slot
		g.pendingDisabled[id] = struct{}{}
	}
	g.disabled[idx] = false
}

func filterArcs(arcs []datastructure.Arc, target int32) []datastructure.Arc {
	filtered := arcs[:0]
	for _, arc := range arcs {
		if arc.To != target {
			filtered = append(filtered, arc)
		}
	}
	for i := len(filtered); i < len(arcs); i++ {
		arcs[i] = datastructure.Arc{}
	}
	return filtered
}

func (g *Graph) DisableVertex(id datastructure.NodeID) {
	if idx, ok := g.index[id]; ok {
		g.disabled[idx] = true
		return
	}
	g.pendingDisabled[id] = struct{}{}
}

func (g *Graph) EnableVertex(id datastructure.NodeID) {
	if idx, ok := g.index[id]; ok {
		g.disabled[idx] = false
		return
	}
	delete(g.pendingDisabled, id)
}

func (g *Graph) IsVertexDisabled(id datastructure.NodeID) bool {
	if idx, ok := g.index[id]; ok {
		return g.disabled[idx]
	}
	_, ok := g.pendingDisabled[id]
	return ok
}

func (g *Graph) HasVertex(id datastructure.NodeID) bool {
	_, ok := g.index[id]
	return ok
}

func (g *Graph) NodeIndex(id datastructure.NodeID) (int32, bool) {
	idx, ok := g.index[id]
	return idx, ok
}

func (g *Graph) NodeID(idx int32) datastructure.NodeID {
	return g.ids[idx]
}

// NumSlots jumlah slot termasuk dead slot. dipakai buat alokasi dense array per search.
func (g *Graph) NumSlots() int {
	return len(g.ids)
}

func (g *Graph) IsLive(idx int32) bool {
	return g.live[idx]
}

func (g *Graph) Arcs(idx int32) []datastructure.Arc {
	return g.adj[idx]
}

func (g *Graph) Vertex(idx int32) *datastructure.VertexProperties {
	return g.vertices[idx]
}

func (g *Graph) IsDisabledIndex(idx int32) bool {
	return g.disabled[idx]
}

// Vertices semua vertex hidup, urut insertion.
func (g *Graph) Vertices() []datastructure.NodeID {
	ids := make([]datastructure.NodeID, 0, len(g.index))
	for i, id := range g.ids {
		if g.live[i] {
			ids = append(ids, id)
		}
	}
	return ids
}

func (g *Graph) NumVertices() int {
	return len(g.index)
}

// NumEdges jumlah arc (edge undirected dihitung dua).
func (g *Graph) NumEdges() int {
	n := 0
	for i := range g.adj {
		n += len(g.adj[i])
	}
	return n
}

// Neighbors arc keluar dari id dalam bentuk (neighbor id, edge).
func (g *Graph) Neighbors(id datastructure.NodeID) ([]datastructure.NodeID, []*datastructure.EdgeProperties, error) {
	idx, ok := g.index[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	ids := make([]datastructure.NodeID, 0, len(g.adj[idx]))
	edges := make([]*datastructure.EdgeProperties, 0, len(g.adj[idx]))
	for _, arc := range g.adj[idx] {
		ids = append(ids, g.ids[arc.To])
		edges = append(edges, arc.Edge)
	}
	return ids, edges, nil
}
