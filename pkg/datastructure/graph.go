package datastructure

import (
	"maps"
	"slices"
)

// NodeID opaque vertex key.
type NodeID string

// Supplies resource name -> level (atau jumlah). dipakai buat ledger, capacity, consumes.
type Supplies map[string]float64

// Clone copy supplies. nil tetap nil.
func (s Supplies) Clone() Supplies {
	if s == nil {
		return nil
	}
	return maps.Clone(s)
}

// Keys resource names terurut, biar penjumlahan float deterministic.
func (s Supplies) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Add tambah semua resource dari other ke s (in place), return s.
func (s Supplies) Add(other Supplies) Supplies {
	if s == nil {
		s = make(Supplies, len(other))
	}
	for _, k := range other.Keys() {
		s[k] += other[k]
	}
	return s
}

// RecoverFunc dipanggil saat search sampai di vertex. return jumlah resource yang di-recover & cost-nya.
type RecoverFunc func(current, capacity float64) (amount, cost float64)

// ExtraCostFunc additional cost edge, dihitung dari ledger setelah consume & sebelum recover.
type ExtraCostFunc func(supplies, capacity, consumed Supplies, isFinalStep bool) float64

// EdgeProperties config satu arc. setelah masuk graph tidak boleh diubah (di-share oleh dua arah edge undirected).
type EdgeProperties struct {
	ID          string
	Weight      float64
	Consumes    Supplies
	ExtraCost   ExtraCostFunc
	ExtraWeight float64
}

func NewEdgeProperties(id string, weight float64, consumes Supplies) *EdgeProperties {
	return &EdgeProperties{ID: id, Weight: weight, Consumes: consumes}
}

func (e *EdgeProperties) Clone() *EdgeProperties {
	c := *e
	c.Consumes = e.Consumes.Clone()
	return &c
}

type VertexProperties struct {
	Recover map[string]RecoverFunc
}

func (v *VertexProperties) Clone() *VertexProperties {
	if v == nil {
		return nil
	}
	return &VertexProperties{Recover: maps.Clone(v.Recover)}
}

// RecoverKeys resource yang bisa di-recover di vertex ini, terurut.
func (v *VertexProperties) RecoverKeys() []string {
	if v == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(v.Recover))
}

// Arc outgoing edge ke vertex index To.
type Arc struct {
	To   int32
	Edge *EdgeProperties
}

func NewArc(to int32, edge *EdgeProperties) Arc {
	return Arc{To: to, Edge: edge}
}
