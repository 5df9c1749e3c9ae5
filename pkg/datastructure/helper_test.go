package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePolyline(t *testing.T) {
	path := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}
	s := CreatePolyline(path)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", s)

	decoded, err := DecodePolyline(s)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.InDelta(t, 40.7, decoded[1].Lat, 1e-5)
	assert.InDelta(t, -126.453, decoded[2].Lon, 1e-5)
}

func TestSuppliesHelpers(t *testing.T) {
	s := Supplies{"fuel": 2, "ammo": 1}
	c := s.Clone()
	c["fuel"] = 10
	assert.Equal(t, 2.0, s["fuel"])
	assert.Equal(t, []string{"ammo", "fuel"}, s.Keys())

	var sum Supplies
	sum = sum.Add(s).Add(Supplies{"fuel": 1})
	assert.Equal(t, Supplies{"fuel": 3, "ammo": 1}, sum)

	var nilSupplies Supplies
	assert.Nil(t, nilSupplies.Clone())
}

func TestPathResultVertices(t *testing.T) {
	p := PathResult{Edges: []EdgeRecord{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "B", Target: "C", Weight: 2.5},
	}}
	assert.Equal(t, []NodeID{"A", "B", "C"}, p.Vertices())
	assert.Equal(t, 3.5, p.TotalWeight())
	assert.False(t, p.Empty())

	empty := NewEmptyPathResult(0)
	assert.True(t, empty.Empty())
	assert.Equal(t, []NodeID{}, empty.Vertices())
}
