package routingalgorithm

import (
	"testing"
	"time"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
	A --1-- B --1-- C --1-- D          X (terisolasi)
	                ^
	           refuel +2, cost 3

setiap edge consume 1 fuel
*/
func newComposeGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	g.AddVertex("C", &datastructure.VertexProperties{Recover: map[string]datastructure.RecoverFunc{
		"fuel": func(_, _ float64) (float64, float64) { return 2, 3 },
	}})
	for _, e := range [][2]datastructure.NodeID{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], datastructure.NewEdgeProperties(string(e[0])+string(e[1]), 1, datastructure.Supplies{"fuel": 1}), false))
	}
	g.AddVertex("X", nil)
	return g
}

func TestComposeRoute(t *testing.T) {
	rt := NewRouteAlgorithm(newComposeGraph(t))
	opts := SearchOptions{
		Supplies:       datastructure.Supplies{"fuel": 5},
		SupplyCapacity: datastructure.Supplies{"fuel": 10},
	}

	res, err := rt.ComposeRoute([]datastructure.NodeID{"A", "B", "D"}, opts)
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "B", "C", "D"}, res.Vertices())

	// leg 1: A->B, fuel 5 -> 4, priority 1
	// leg 2: B->C->D mulai dari fuel 4, refuel +2 di C: 4-1+2-1 = 4, priority 1+3+1 = 5
	assert.Equal(t, 6.0, res.Properties.Priority)
	assert.Equal(t, datastructure.Supplies{"fuel": 4}, res.Properties.Supplies)
	assert.Equal(t, datastructure.Supplies{"fuel": 3}, res.Properties.TotalConsumed)
	assert.Equal(t, datastructure.Supplies{"fuel": 2}, res.Properties.TotalRecovered)
	assert.Equal(t, datastructure.Supplies{"fuel": 3}, res.Properties.ResourceWeight)
	assert.Equal(t, datastructure.Supplies{"fuel": 5}, res.Edges[1].Supplies)

	single, err := rt.ShortestPath("A", "D", opts)
	require.NoError(t, err)
	assert.Equal(t, single.Vertices(), res.Vertices())
}

func TestComposeRouteNeedsTwoWaypoints(t *testing.T) {
	rt := NewRouteAlgorithm(newComposeGraph(t))

	_, err := rt.ComposeRoute(nil, SearchOptions{})
	assert.ErrorIs(t, err, ErrNotEnoughWaypoints)

	_, err = rt.ComposeRoute([]datastructure.NodeID{"A"}, SearchOptions{})
	assert.ErrorIs(t, err, ErrNotEnoughWaypoints)
}

func TestComposeRouteBrokenLeg(t *testing.T) {
	rt := NewRouteAlgorithm(newComposeGraph(t))
	opts := SearchOptions{
		Supplies:       datastructure.Supplies{"fuel": 5},
		SupplyCapacity: datastructure.Supplies{"fuel": 10},
	}

	res, err := rt.ComposeRoute([]datastructure.NodeID{"A", "X", "D"}, opts)
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, 0.0, res.Properties.Priority)

	_, err = rt.ComposeRoute([]datastructure.NodeID{"A", "Q"}, opts)
	assert.ErrorIs(t, err, ErrFinishNotFound)
}

func TestComposeRouteRepeatedWaypoint(t *testing.T) {
	rt := NewRouteAlgorithm(newComposeGraph(t))

	res, err := rt.ComposeRoute([]datastructure.NodeID{"A", "A", "B"}, SearchOptions{Supplies: datastructure.Supplies{"fuel": 5}})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "B"}, res.Vertices())
	assert.Equal(t, 1.0, res.Properties.Priority)
}

func TestComposeRouteSumsTimeTaken(t *testing.T) {
	const delay = 2 * time.Millisecond
	calls := 0
	slow := func(_, _, _ datastructure.Supplies, _ bool) float64 {
		calls++
		time.Sleep(delay)
		return 0
	}
	g := graph.NewGraph()
	for _, e := range [][2]datastructure.NodeID{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], &datastructure.EdgeProperties{Weight: 1, ExtraCost: slow}, true))
	}
	rt := NewRouteAlgorithm(g)

	single, err := rt.ShortestPath("A", "B", SearchOptions{})
	require.NoError(t, err)
	perLeg := calls
	require.Equal(t, 1, perLeg)
	assert.GreaterOrEqual(t, single.Properties.TimeTaken, delay)

	calls = 0
	res, err := rt.ComposeRoute([]datastructure.NodeID{"A", "B", "C", "D"}, SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "B", "C", "D"}, res.Vertices())
	// tiga leg, masing-masing satu relaksasi lambat
	require.Equal(t, 3, calls)
	assert.GreaterOrEqual(t, res.Properties.TimeTaken, time.Duration(calls)*delay)
}
