package routingalgorithm

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A - B - C - D - E, unit weight, x = posisi di garis
func newLineGraph(t *testing.T) (*graph.Graph, map[datastructure.NodeID]float64) {
	t.Helper()
	g := graph.NewGraph()
	xs := map[datastructure.NodeID]float64{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4}
	ids := []datastructure.NodeID{"A", "B", "C", "D", "E"}
	for i := 1; i < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i-1], ids[i], &datastructure.EdgeProperties{Weight: 1}, false))
	}
	return g, xs
}

func zeroHeuristic(_, _ datastructure.NodeID) float64 { return 0 }

func TestBidirectionalLineZeroHeuristic(t *testing.T) {
	g, _ := newLineGraph(t)
	rt := NewRouteAlgorithm(g, WithHeuristic(zeroHeuristic))

	res, err := rt.ShortestPathBidirectional("A", "E", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "B", "C", "D", "E"}, res.Path)
	assert.Equal(t, 4.0, res.Properties.Priority)
}

func TestBidirectionalLineWithHeuristic(t *testing.T) {
	g, xs := newLineGraph(t)
	rt := NewRouteAlgorithm(g, WithHeuristic(func(node, finish datastructure.NodeID) float64 {
		return math.Abs(xs[finish] - xs[node])
	}))

	res, err := rt.ShortestPathBidirectional("A", "E", SearchOptions{})
	require.NoError(t, err)
	require.Len(t, res.Path, 5)
	assert.Equal(t, datastructure.NodeID("A"), res.Path[0])
	assert.Equal(t, datastructure.NodeID("E"), res.Path[4])
	assert.Greater(t, res.Properties.Priority, 0.0)
}

func TestBidirectionalRequiresHeuristic(t *testing.T) {
	g, _ := newLineGraph(t)
	rt := NewRouteAlgorithm(g)

	_, err := rt.ShortestPathBidirectional("A", "C", SearchOptions{})
	assert.ErrorIs(t, err, ErrHeuristicRequired)

	// node validation duluan
	_, err = rt.ShortestPathBidirectional("Z", "C", SearchOptions{})
	assert.ErrorIs(t, err, ErrStartNotFound)
	_, err = rt.ShortestPathBidirectional("A", "Z", SearchOptions{})
	assert.ErrorIs(t, err, ErrFinishNotFound)
}

func TestBidirectionalGrid(t *testing.T) {
	g := graph.NewGraph()
	locations := map[datastructure.NodeID][2]float64{}
	id := func(x, y int) datastructure.NodeID {
		return datastructure.NodeID(strconv.Itoa(x) + "_" + strconv.Itoa(y))
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			locations[id(x, y)] = [2]float64{float64(x), float64(y)}
			g.AddVertex(id(x, y), nil)
			if x > 0 {
				require.NoError(t, g.AddEdge(id(x-1, y), id(x, y), &datastructure.EdgeProperties{Weight: 1}, false))
			}
			if y > 0 {
				require.NoError(t, g.AddEdge(id(x, y-1), id(x, y), &datastructure.EdgeProperties{Weight: 1}, false))
			}
		}
	}
	rt := NewRouteAlgorithm(g, WithHeuristic(func(node, finish datastructure.NodeID) float64 {
		a, b := locations[node], locations[finish]
		return math.Hypot(b[0]-a[0], b[1]-a[1])
	}))

	res, err := rt.ShortestPathBidirectional("0_0", "4_4", SearchOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, datastructure.NodeID("0_0"), res.Path[0])
	assert.Equal(t, datastructure.NodeID("4_4"), res.Path[len(res.Path)-1])
	assert.Greater(t, res.Properties.Priority, 0.0)

	// setiap pasangan berurutan harus bertetangga di grid
	for i := 1; i < len(res.Path); i++ {
		a, b := locations[res.Path[i-1]], locations[res.Path[i]]
		assert.Equal(t, 1.0, math.Abs(a[0]-b[0])+math.Abs(a[1]-b[1]), "%s -> %s", res.Path[i-1], res.Path[i])
	}
}

func TestBidirectionalDisabledAndUnreachable(t *testing.T) {
	g, _ := newLineGraph(t)
	g.AddVertex("Z", nil)
	rt := NewRouteAlgorithm(g, WithHeuristic(zeroHeuristic))

	res, err := rt.ShortestPathBidirectional("A", "Z", SearchOptions{})
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, 0.0, res.Properties.Priority)

	g.DisableVertex("C")
	res, err = rt.ShortestPathBidirectional("A", "E", SearchOptions{})
	require.NoError(t, err)
	assert.True(t, res.Empty())

	g.DisableVertex("A")
	res, err = rt.ShortestPathBidirectional("A", "E", SearchOptions{})
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestBidirectionalSameStartFinish(t *testing.T) {
	g, _ := newLineGraph(t)
	rt := NewRouteAlgorithm(g, WithHeuristic(zeroHeuristic))

	res, err := rt.ShortestPathBidirectional("C", "C", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"C"}, res.Path)
	assert.Equal(t, 0.0, res.Properties.Priority)
}

func TestBidirectionalTimeout(t *testing.T) {
	g := graph.NewGraph()
	for i := 1; i < 1000; i++ {
		require.NoError(t, g.AddEdge(datastructure.NodeID("node"+strconv.Itoa(i-1)), datastructure.NodeID("node"+strconv.Itoa(i)),
			&datastructure.EdgeProperties{Weight: 1}, false))
	}
	slow := func(_, _ datastructure.NodeID) float64 {
		time.Sleep(50 * time.Microsecond)
		return 0
	}
	rt := NewRouteAlgorithm(g, WithHeuristic(slow))

	res, err := rt.ShortestPathBidirectional("node0", "node999", SearchOptions{Timeout: time.Millisecond})
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Empty(t, res.Path)
	assert.Equal(t, 0.0, res.Properties.Priority)
	assert.GreaterOrEqual(t, res.Properties.TimeTaken, time.Millisecond)
	assert.Less(t, res.Properties.TimeTaken, 50*time.Millisecond)
}
