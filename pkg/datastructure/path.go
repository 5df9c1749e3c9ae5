package datastructure

import "time"

// EdgeRecord satu langkah di path: edge yang dilewati + ledger setelah langkah itu.
type EdgeRecord struct {
	Source              NodeID
	Target              NodeID
	EdgeID              string
	Weight              float64
	Consumes            Supplies
	Recover             Supplies
	Supplies            Supplies
	WeightFromResources float64
	ExtraWeight         float64
	TotalConsumed       Supplies
	TotalRecovered      Supplies
}

type PathProperties struct {
	Priority       float64
	Supplies       Supplies
	TotalConsumed  Supplies
	TotalRecovered Supplies
	ResourceWeight Supplies
	TimeTaken      time.Duration
}

type PathResult struct {
	Edges      []EdgeRecord
	Properties PathProperties
}

func NewEmptyPathResult(timeTaken time.Duration) PathResult {
	return PathResult{
		Edges:      []EdgeRecord{},
		Properties: PathProperties{TimeTaken: timeTaken},
	}
}

func (p PathResult) Empty() bool {
	return len(p.Edges) == 0
}

// Vertices vertex ids sepanjang path, start sampai finish.
func (p PathResult) Vertices() []NodeID {
	if len(p.Edges) == 0 {
		return []NodeID{}
	}
	ids := make([]NodeID, 0, len(p.Edges)+1)
	ids = append(ids, p.Edges[0].Source)
	for _, e := range p.Edges {
		ids = append(ids, e.Target)
	}
	return ids
}

// TotalWeight jumlah base weight edge di path (tanpa heuristic, penalty, recovery cost).
func (p PathResult) TotalWeight() float64 {
	w := 0.0
	for _, e := range p.Edges {
		w += e.Weight
	}
	return w
}

type BidirectionalResult struct {
	Path       []NodeID
	Properties PathProperties
}

func (b BidirectionalResult) Empty() bool {
	return len(b.Path) == 0
}
