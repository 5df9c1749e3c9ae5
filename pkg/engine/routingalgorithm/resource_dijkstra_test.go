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
	"golang.org/x/exp/rand"
)

/*
	 A ---4--- B
	 |          \
	 2           3
	 |            \
	 C ---2--- D ---3--- E
	  \        |        /
	   4       1       1
	    \      |      /
	     ------F------

semua edge bidirectional. shortest path A->E: A -> C -> D -> F -> E (6)
*/
func NewGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	edges := []struct {
		a, b datastructure.NodeID
		w    float64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "E", 3}, {"C", "D", 2},
		{"C", "F", 4}, {"D", "E", 3}, {"D", "F", 1}, {"E", "F", 1},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.a, e.b, &datastructure.EdgeProperties{Weight: e.w}, false))
	}
	return g
}

type location struct{ x, y float64 }

var diagonal = map[datastructure.NodeID]location{
	"A": {0, 0}, "B": {1, 1}, "C": {2, 2}, "D": {3, 3}, "E": {4, 4}, "F": {5, 5},
}

func halfEuclidean(node, finish datastructure.NodeID) float64 {
	a, b := diagonal[node], diagonal[finish]
	return math.Sqrt((b.x-a.x)*(b.x-a.x)+(b.y-a.y)*(b.y-a.y)) * 0.5
}

func refill(recoverCost func(amount float64) float64) datastructure.RecoverFunc {
	return func(current, capacity float64) (float64, float64) {
		amount := capacity - current
		return amount, recoverCost(amount)
	}
}

/*
	A ==== B ==== D ==== E
	 \\           |     /
	  C ----------+    /
	   \              /
	    F -----------

A-B, A-C, B-D punya dua edge paralel: warp (weight 2, fuel 1) & burn (weight 1, fuel 2).
sisanya cuma warp. C bisa refuel (refill ke capacity).
*/
func newFuelGraph(t *testing.T, recoverCost func(amount float64) float64) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	g.AddVertex("A", nil)
	g.AddVertex("B", nil)
	g.AddVertex("C", &datastructure.VertexProperties{Recover: map[string]datastructure.RecoverFunc{
		"fuel": refill(recoverCost),
	}})
	g.AddVertex("D", nil)
	g.AddVertex("E", nil)
	g.AddVertex("F", nil)

	warp := func() *datastructure.EdgeProperties {
		return datastructure.NewEdgeProperties("warp", 2, datastructure.Supplies{"fuel": 1})
	}
	burn := func() *datastructure.EdgeProperties {
		return datastructure.NewEdgeProperties("burn", 1, datastructure.Supplies{"fuel": 2})
	}
	edges := []struct {
		a, b datastructure.NodeID
		p    *datastructure.EdgeProperties
	}{
		{"A", "B", warp()}, {"A", "B", burn()},
		{"A", "C", warp()}, {"A", "C", burn()},
		{"B", "D", warp()}, {"B", "D", burn()},
		{"C", "D", warp()}, {"C", "F", warp()},
		{"D", "E", warp()}, {"D", "F", warp()}, {"E", "F", warp()},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.a, e.b, e.p, false))
	}
	return g
}

func TestShortestPathWeighted(t *testing.T) {
	rt := NewRouteAlgorithm(NewGraph(t))

	res, err := rt.ShortestPath("A", "E", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "C", "D", "F", "E"}, res.Vertices())
	assert.Equal(t, 6.0, res.Properties.Priority)
	assert.Equal(t, 6.0, res.TotalWeight())

	assert.Equal(t, datastructure.NodeID("A"), res.Edges[0].Source)
	assert.Equal(t, datastructure.NodeID("C"), res.Edges[0].Target)
	assert.Equal(t, 2.0, res.Edges[0].Weight)

	nodes, err := rt.ShortestPathNodes("A", "E", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "C", "D", "F", "E"}, nodes)
}

func TestShortestPathWithHeuristic(t *testing.T) {
	g := newFuelGraph(t, func(float64) float64 { return 0 })
	rt := NewRouteAlgorithm(g, WithHeuristic(halfEuclidean))

	res, err := rt.ShortestPath("A", "E", SearchOptions{
		Supplies:       datastructure.Supplies{"fuel": 10},
		SupplyCapacity: datastructure.Supplies{"fuel": 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Edges, 3)

	assert.Equal(t, "burn", res.Edges[0].EdgeID)
	assert.Equal(t, datastructure.NodeID("B"), res.Edges[0].Target)
	assert.Equal(t, datastructure.Supplies{"fuel": 2}, res.Edges[0].Consumes)
	assert.Equal(t, datastructure.Supplies{}, res.Edges[0].Recover)

	assert.Equal(t, "burn", res.Edges[1].EdgeID)
	assert.Equal(t, datastructure.NodeID("D"), res.Edges[1].Target)

	assert.Equal(t, "warp", res.Edges[2].EdgeID)
	assert.Equal(t, datastructure.NodeID("E"), res.Edges[2].Target)
	assert.Equal(t, 2.0, res.Edges[2].Weight)

	assert.InDelta(t, 6.82842712474619, res.Properties.Priority, 1e-9)
	assert.Equal(t, 5.0, res.Properties.Supplies["fuel"])
	assert.Equal(t, 5.0, res.Properties.TotalConsumed["fuel"])
}

func TestShortestPathLackingFuel(t *testing.T) {
	g := newFuelGraph(t, func(amount float64) float64 { return amount })
	rt := NewRouteAlgorithm(g, WithHeuristic(halfEuclidean))

	res, err := rt.ShortestPath("A", "E", SearchOptions{
		Supplies:       datastructure.Supplies{"fuel": 4},
		SupplyCapacity: datastructure.Supplies{"fuel": 4},
	})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "C", "F", "E"}, res.Vertices())

	assert.Equal(t, "warp", res.Edges[0].EdgeID)
	assert.Equal(t, datastructure.Supplies{"fuel": 1}, res.Edges[0].Recover)
	assert.Equal(t, 1.0, res.Edges[0].WeightFromResources)
	assert.Equal(t, 4.0, res.Edges[0].Supplies["fuel"])

	assert.Equal(t, datastructure.Supplies{}, res.Edges[1].Recover)
	assert.Equal(t, datastructure.Supplies{}, res.Edges[2].Recover)

	assert.InDelta(t, 9.121320343559642, res.Properties.Priority, 1e-9)
	assert.Equal(t, 2.0, res.Properties.Supplies["fuel"])
	assert.Equal(t, 1.0, res.Properties.TotalRecovered["fuel"])
	assert.Equal(t, 1.0, res.Properties.ResourceWeight["fuel"])
	assert.Equal(t, 3.0, res.Properties.TotalConsumed["fuel"])
	assert.Less(t, res.Properties.TimeTaken, 50*time.Millisecond)
}

func TestShortestPathEdgesBeforeVertices(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", &datastructure.EdgeProperties{Weight: 1}, false))
	require.NoError(t, g.AddEdge("B", "C", &datastructure.EdgeProperties{Weight: 1}, false))
	g.AddVertex("A", nil)
	g.AddVertex("B", nil)
	g.AddVertex("C", nil)

	nodes, err := NewRouteAlgorithm(g).ShortestPathNodes("A", "C", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "B", "C"}, nodes)
}

func TestShortestPathPartialRecovery(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex("A", nil)
	g.AddVertex("B", &datastructure.VertexProperties{Recover: map[string]datastructure.RecoverFunc{
		"fuel": func(_, _ float64) (float64, float64) { return 2, 5 },
	}})
	g.AddVertex("C", nil)
	require.NoError(t, g.AddEdge("A", "B", datastructure.NewEdgeProperties("edge1", 1, datastructure.Supplies{"fuel": 3}), false))
	require.NoError(t, g.AddEdge("B", "C", datastructure.NewEdgeProperties("edge2", 1, datastructure.Supplies{"fuel": 1}), false))

	res, err := NewRouteAlgorithm(g).ShortestPath("A", "C", SearchOptions{
		Supplies:       datastructure.Supplies{"fuel": 10},
		SupplyCapacity: datastructure.Supplies{"fuel": 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Edges, 2)

	// 10 - 3 + 2, tidak di-refill ke capacity
	assert.Equal(t, datastructure.Supplies{"fuel": 2}, res.Edges[0].Recover)
	assert.Equal(t, datastructure.Supplies{"fuel": 9}, res.Edges[0].Supplies)
	assert.Equal(t, 5.0, res.Edges[0].WeightFromResources)

	assert.Equal(t, datastructure.Supplies{}, res.Edges[1].Recover)
	assert.Equal(t, datastructure.Supplies{"fuel": 8}, res.Edges[1].Supplies)
	assert.Equal(t, datastructure.Supplies{"fuel": 4}, res.Edges[1].TotalConsumed)
	assert.Equal(t, datastructure.Supplies{"fuel": 2}, res.Edges[1].TotalRecovered)

	assert.Equal(t, 7.0, res.Properties.Priority)
	assert.Equal(t, datastructure.Supplies{"fuel": 8}, res.Properties.Supplies)
	assert.Equal(t, datastructure.Supplies{"fuel": 5}, res.Properties.ResourceWeight)
}

func TestShortestPathRecoverySkippedWhenCurrentSupplyIsZero(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex("B", &datastructure.VertexProperties{Recover: map[string]datastructure.RecoverFunc{
		"fuel": func(_, _ float64) (float64, float64) { return 5, 1 },
	}})
	require.NoError(t, g.AddEdge("A", "B", datastructure.NewEdgeProperties("e", 1, nil), false))

	res, err := NewRouteAlgorithm(g).ShortestPath("A", "B", SearchOptions{
		SupplyCapacity: datastructure.Supplies{"fuel": 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, datastructure.Supplies{}, res.Edges[0].Recover)
	assert.Equal(t, 1.0, res.Properties.Priority)
}

func TestShortestPathPenaltyTiming(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", datastructure.NewEdgeProperties("edge1", 1, datastructure.Supplies{"fuel": 15}), false))
	require.NoError(t, g.AddEdge("B", "C", datastructure.NewEdgeProperties("edge2", 1, datastructure.Supplies{"fuel": 1}), false))
	require.NoError(t, g.AddEdge("A", "C", datastructure.NewEdgeProperties("edge3", 3, datastructure.Supplies{"fuel": 5}), false))

	res, err := NewRouteAlgorithm(g).ShortestPath("A", "C", SearchOptions{
		Supplies:       datastructure.Supplies{"fuel": 10},
		SupplyCapacity: datastructure.Supplies{"fuel": 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, "edge3", res.Edges[0].EdgeID)
	assert.Equal(t, 3.0, res.Properties.Priority)
}

func TestShortestPathUnavoidableDeficitIsPenalized(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", datastructure.NewEdgeProperties("long", 1, datastructure.Supplies{"fuel": 3}), false))

	res, err := NewRouteAlgorithm(g).ShortestPath("A", "B", SearchOptions{
		Supplies: datastructure.Supplies{"fuel": 1},
	})
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, -2.0, res.Properties.Supplies["fuel"])
	assert.Equal(t, 1+2*100000.0, res.Properties.Priority)
}

func TestShortestPathDirected(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", &datastructure.EdgeProperties{Weight: 1}, true))
	require.NoError(t, g.AddEdge("B", "C", &datastructure.EdgeProperties{Weight: 1}, true))
	rt := NewRouteAlgorithm(g)

	nodes, err := rt.ShortestPathNodes("A", "C", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "B", "C"}, nodes)

	res, err := rt.ShortestPath("C", "A", SearchOptions{})
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, 0.0, res.Properties.Priority)
}

func TestShortestPathValidation(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex("A", nil)
	g.AddVertex("B", nil)
	rt := NewRouteAlgorithm(g)

	_, err := rt.ShortestPath("Z", "B", SearchOptions{})
	assert.ErrorIs(t, err, ErrStartNotFound)
	assert.Contains(t, err.Error(), `"Z"`)

	_, err = rt.ShortestPath("A", "Z", SearchOptions{})
	assert.ErrorIs(t, err, ErrFinishNotFound)
}

func TestShortestPathNoCapacity(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex("B", &datastructure.VertexProperties{Recover: map[string]datastructure.RecoverFunc{
		"fuel": refill(func(float64) float64 { return 0 }),
	}})
	require.NoError(t, g.AddEdge("A", "B", datastructure.NewEdgeProperties("e", 1, datastructure.Supplies{"fuel": 1}), false))

	_, err := NewRouteAlgorithm(g).ShortestPath("A", "B", SearchOptions{Supplies: datastructure.Supplies{"fuel": 5}})
	assert.ErrorIs(t, err, ErrNoCapacity)
	assert.Contains(t, err.Error(), "fuel")
}

func TestShortestPathExtraCost(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex("B", &datastructure.VertexProperties{Recover: map[string]datastructure.RecoverFunc{
		"fuel": refill(func(float64) float64 { return 0 }),
	}})

	type call struct {
		fuel    float64
		final   bool
		consume float64
	}
	calls := []call{}
	lowFuel := func(supplies, capacity, consumed datastructure.Supplies, isFinalStep bool) float64 {
		calls = append(calls, call{fuel: supplies["fuel"], final: isFinalStep, consume: consumed["fuel"]})
		if supplies["fuel"] < capacity["fuel"]/2 {
			return 10
		}
		return 0
	}
	require.NoError(t, g.AddEdge("A", "B", &datastructure.EdgeProperties{ID: "ab", Weight: 1,
		Consumes: datastructure.Supplies{"fuel": 7}, ExtraCost: lowFuel}, true))
	require.NoError(t, g.AddEdge("B", "C", &datastructure.EdgeProperties{ID: "bc", Weight: 1,
		Consumes: datastructure.Supplies{"fuel": 1}, ExtraCost: lowFuel}, true))

	res, err := NewRouteAlgorithm(g).ShortestPath("A", "C", SearchOptions{
		Supplies:       datastructure.Supplies{"fuel": 10},
		SupplyCapacity: datastructure.Supplies{"fuel": 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Edges, 2)

	// extra cost lihat ledger sebelum recovery di B
	require.Len(t, calls, 2)
	assert.Equal(t, call{fuel: 3, final: false, consume: 7}, calls[0])
	assert.Equal(t, call{fuel: 9, final: true, consume: 1}, calls[1])

	assert.Equal(t, 10.0, res.Edges[0].ExtraWeight)
	assert.Equal(t, 0.0, res.Edges[1].ExtraWeight)
	assert.Equal(t, 12.0, res.Properties.Priority)
	assert.Equal(t, 9.0, res.Properties.Supplies["fuel"])
}

func TestShortestPathStaticExtraWeight(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", &datastructure.EdgeProperties{ID: "ab", Weight: 1, ExtraWeight: 100}, false))
	require.NoError(t, g.AddEdge("A", "C", &datastructure.EdgeProperties{ID: "ac", Weight: 2}, false))
	require.NoError(t, g.AddEdge("C", "B", &datastructure.EdgeProperties{ID: "cb", Weight: 2}, false))
	rt := NewRouteAlgorithm(g)

	res, err := rt.ShortestPath("A", "B", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "C", "B"}, res.Vertices())
	assert.Equal(t, 4.0, res.Properties.Priority)

	// extraWeight statis dijumlah dengan hasil ExtraCost
	g2 := graph.NewGraph()
	require.NoError(t, g2.AddEdge("A", "B", &datastructure.EdgeProperties{ID: "ab", Weight: 1, ExtraWeight: 5,
		ExtraCost: func(_, _, _ datastructure.Supplies, _ bool) float64 { return 2 }}, false))
	res, err = NewRouteAlgorithm(g2).ShortestPath("A", "B", SearchOptions{})
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, 7.0, res.Edges[0].ExtraWeight)
	assert.Equal(t, 8.0, res.Properties.Priority)
}

func TestShortestPathDisabledVertex(t *testing.T) {
	g := NewGraph(t)
	rt := NewRouteAlgorithm(g)

	g.DisableVertex("D")
	res, err := rt.ShortestPath("A", "E", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Properties.Priority)
	assert.NotContains(t, res.Vertices(), datastructure.NodeID("D"))

	g.EnableVertex("D")
	res, err = rt.ShortestPath("A", "E", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Properties.Priority)
	assert.Equal(t, []datastructure.NodeID{"A", "C", "D", "F", "E"}, res.Vertices())

	g.DisableVertex("E")
	res, err = rt.ShortestPath("A", "E", SearchOptions{})
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, time.Duration(0), res.Properties.TimeTaken)
}

func TestShortestPathSameStartFinish(t *testing.T) {
	res, err := NewRouteAlgorithm(NewGraph(t)).ShortestPath("A", "A", SearchOptions{})
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, 0.0, res.Properties.Priority)
}

func TestShortestPathIdempotent(t *testing.T) {
	g := newFuelGraph(t, func(amount float64) float64 { return amount })
	rt := NewRouteAlgorithm(g, WithHeuristic(halfEuclidean))
	opts := SearchOptions{
		Supplies:       datastructure.Supplies{"fuel": 4},
		SupplyCapacity: datastructure.Supplies{"fuel": 4},
	}

	first, err := rt.ShortestPath("A", "E", opts)
	require.NoError(t, err)
	second, err := rt.ShortestPath("A", "E", opts)
	require.NoError(t, err)

	assert.Equal(t, first.Edges, second.Edges)
	assert.Equal(t, first.Properties.Priority, second.Properties.Priority)
	// caller supplies tidak berubah
	assert.Equal(t, datastructure.Supplies{"fuel": 4}, opts.Supplies)
}

func TestShortestPathFeasibleSuppliesNeverDipNegative(t *testing.T) {
	g := newFuelGraph(t, func(amount float64) float64 { return amount })
	rt := NewRouteAlgorithm(g, WithHeuristic(halfEuclidean))

	for _, fuel := range []float64{3, 4, 6, 10} {
		res, err := rt.ShortestPath("A", "E", SearchOptions{
			Supplies:       datastructure.Supplies{"fuel": fuel},
			SupplyCapacity: datastructure.Supplies{"fuel": fuel},
		})
		require.NoError(t, err)
		if res.Properties.Supplies["fuel"] < 0 {
			continue
		}
		for _, e := range res.Edges {
			assert.GreaterOrEqual(t, e.Supplies["fuel"], 0.0, "fuel %f edge %s->%s", fuel, e.Source, e.Target)
		}
	}
}

func TestShortestPathTimeout(t *testing.T) {
	g := graph.NewGraph()
	slow := func(datastructure.Supplies, datastructure.Supplies, datastructure.Supplies, bool) float64 {
		time.Sleep(50 * time.Microsecond)
		return 0
	}
	for i := 1; i < 1000; i++ {
		require.NoError(t, g.AddEdge(datastructure.NodeID("node"+strconv.Itoa(i-1)), datastructure.NodeID("node"+strconv.Itoa(i)),
			&datastructure.EdgeProperties{Weight: 1, Consumes: datastructure.Supplies{"fuel": 0.1}, ExtraCost: slow}, false))
	}
	rt := NewRouteAlgorithm(g)

	res, err := rt.ShortestPath("node0", "node999", SearchOptions{
		Supplies:       datastructure.Supplies{"fuel": 1000},
		SupplyCapacity: datastructure.Supplies{"fuel": 1000},
		Timeout:        time.Millisecond,
	})
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, 0.0, res.Properties.Priority)
	assert.GreaterOrEqual(t, res.Properties.TimeTaken, time.Millisecond)
	assert.Less(t, res.Properties.TimeTaken, 50*time.Millisecond)
}

func TestShortestPathCompletesWithinTimeout(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", datastructure.NewEdgeProperties("", 1, datastructure.Supplies{"fuel": 1}), false))
	require.NoError(t, g.AddEdge("B", "C", datastructure.NewEdgeProperties("", 1, datastructure.Supplies{"fuel": 1}), false))

	res, err := NewRouteAlgorithm(g).ShortestPath("A", "C", SearchOptions{
		Supplies:       datastructure.Supplies{"fuel": 10},
		SupplyCapacity: datastructure.Supplies{"fuel": 10},
		Timeout:        time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{"A", "B", "C"}, res.Vertices())
	assert.Equal(t, 2.0, res.Properties.Priority)
	assert.Less(t, res.Properties.TimeTaken, time.Second)
}

// floydWarshall brute force reference buat graph kecil.
func floydWarshall(n int, edges [][3]float64) [][]float64 {
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range edges {
		u, v, w := int(e[0]), int(e[1]), e[2]
		dist[u][v] = math.Min(dist[u][v], w)
		dist[v][u] = math.Min(dist[v][u], w)
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	return dist
}

func TestShortestPathMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	nodeName := func(i int) datastructure.NodeID { return datastructure.NodeID("n" + strconv.Itoa(i)) }

	for iter := 0; iter < 30; iter++ {
		n := 3 + rng.Intn(8)
		g := graph.NewGraph()
		for i := 0; i < n; i++ {
			g.AddVertex(nodeName(i), nil)
		}
		edges := make([][3]float64, 0)
		for i := 0; i < n*2; i++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			w := float64(rng.Intn(20))
			edges = append(edges, [3]float64{float64(u), float64(v), w})
			require.NoError(t, g.AddEdge(nodeName(u), nodeName(v), &datastructure.EdgeProperties{Weight: w}, false))
		}

		ref := floydWarshall(n, edges)
		rt := NewRouteAlgorithm(g)
		for s := 0; s < n; s++ {
			for f := 0; f < n; f++ {
				if s == f {
					continue
				}
				res, err := rt.ShortestPath(nodeName(s), nodeName(f), SearchOptions{})
				require.NoError(t, err)
				if math.IsInf(ref[s][f], 1) {
					assert.True(t, res.Empty())
					continue
				}
				if ref[s][f] == 0 && res.Empty() {
					// zero-weight path: tetap harus ketemu
					t.Fatalf("missing zero-cost path %d -> %d", s, f)
				}
				assert.InDelta(t, ref[s][f], res.Properties.Priority, 1e-9, "%d -> %d", s, f)
				assert.InDelta(t, ref[s][f], res.TotalWeight(), 1e-9, "%d -> %d", s, f)
			}
		}
	}
}

type recordingLogger struct {
	msgs []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) {
	l.msgs = append(l.msgs, msg)
}

func TestShortestPathLogger(t *testing.T) {
	logger := &recordingLogger{}
	rt := NewRouteAlgorithm(NewGraph(t), WithLogger(logger))

	_, err := rt.ShortestPath("A", "E", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, "start running dijkstra", logger.msgs[0])
	assert.Contains(t, logger.msgs, "found better path")
	assert.Equal(t, "final distance calculated", logger.msgs[len(logger.msgs)-1])
}

func BenchmarkShortestPathGrid(b *testing.B) {
	g := graph.NewGraph()
	size := 60
	id := func(x, y int) datastructure.NodeID {
		return datastructure.NodeID(strconv.Itoa(x) + "_" + strconv.Itoa(y))
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if x > 0 {
				_ = g.AddEdge(id(x-1, y), id(x, y), datastructure.NewEdgeProperties("", 1, datastructure.Supplies{"fuel": 0.1}), false)
			}
			if y > 0 {
				_ = g.AddEdge(id(x, y-1), id(x, y), datastructure.NewEdgeProperties("", 1, datastructure.Supplies{"fuel": 0.1}), false)
			}
		}
	}
	rt := NewRouteAlgorithm(g)
	opts := SearchOptions{Supplies: datastructure.Supplies{"fuel": 1000}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rt.ShortestPath(id(0, 0), id(size-1, size-1), opts)
	}
}
