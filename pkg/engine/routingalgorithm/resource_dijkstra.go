package routingalgorithm

import (
	"fmt"
	"math"
	"time"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/util"
)

// ledger resource state sebuah path. map di dalamnya tidak pernah diubah setelah label dibuat (copy-on-relax).
type ledger struct {
	supplies       datastructure.Supplies
	totalConsumed  datastructure.Supplies
	totalRecovered datastructure.Supplies
	resourceWeight datastructure.Supplies
}

func newLedger(supplies datastructure.Supplies) ledger {
	return ledger{
		supplies:       copySupplies(supplies),
		totalConsumed:  datastructure.Supplies{},
		totalRecovered: datastructure.Supplies{},
		resourceWeight: datastructure.Supplies{},
	}
}

func (l ledger) copy() ledger {
	return ledger{
		supplies:       copySupplies(l.supplies),
		totalConsumed:  copySupplies(l.totalConsumed),
		totalRecovered: copySupplies(l.totalRecovered),
		resourceWeight: copySupplies(l.resourceWeight),
	}
}

func copySupplies(s datastructure.Supplies) datastructure.Supplies {
	c := make(datastructure.Supplies, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// nodeLabel search state per vertex index. discovered=false artinya priority = +Inf.
type nodeLabel struct {
	discovered bool
	priority   float64
	ledger     ledger
	prev       int32
	edge       *datastructure.EdgeRecord
}

// buildHeuristicCache h(v, finish) untuk semua vertex hidup, dihitung sekali di awal search.
func (rt *RouteAlgorithm) buildHeuristicCache(finish datastructure.NodeID) []float64 {
	if rt.heuristic == nil {
		return nil
	}
	cache := make([]float64, rt.g.NumSlots())
	for i := range cache {
		idx := int32(i)
		if !rt.g.IsLive(idx) {
			continue
		}
		cache[i] = rt.heuristic(rt.g.NodeID(idx), finish)
	}
	return cache
}

// ShortestPath resource-aware dijkstra (A* kalau heuristic di-set) dari start ke finish.
// error hanya untuk kesalahan konfigurasi (node tidak ada, capacity tidak ada saat recovery).
// tidak ada path, endpoint disabled, atau timeout -> result kosong dengan priority 0.
func (rt *RouteAlgorithm) ShortestPath(start, finish datastructure.NodeID, opts SearchOptions) (datastructure.PathResult, error) {
	startIdx, ok := rt.g.NodeIndex(start)
	if !ok {
		return datastructure.PathResult{}, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	finishIdx, ok := rt.g.NodeIndex(finish)
	if !ok {
		return datastructure.PathResult{}, fmt.Errorf("%w: %q", ErrFinishNotFound, finish)
	}
	if rt.g.IsDisabledIndex(startIdx) || rt.g.IsDisabledIndex(finishIdx) {
		return datastructure.NewEmptyPathResult(0), nil
	}

	rt.log.Debug("start running dijkstra", "start", start, "finish", finish)
	startTime := time.Now()
	deadline := startTime.Add(opts.Timeout)

	heuristicCache := rt.buildHeuristicCache(finish)

	labels := make([]nodeLabel, rt.g.NumSlots())
	labels[startIdx] = nodeLabel{
		discovered: true,
		priority:   0,
		ledger:     newLedger(opts.Supplies),
		prev:       -1,
	}

	pq := datastructure.NewMinHeap[int32]()
	pq.Insert(datastructure.NewPriorityQueueNode(0, startIdx))

	reached := false
	for !pq.IsEmpty() {
		if opts.Timeout > 0 && time.Now().After(deadline) {
			rt.log.Debug("pathfinding timeout exceeded", "timeout", opts.Timeout)
			return datastructure.NewEmptyPathResult(time.Since(startTime)), nil
		}

		current, _ := pq.ExtractMin()
		curr := current.Item
		if current.Rank > labels[curr].priority {
			// stale
			continue
		}
		if curr == finishIdx {
			reached = true
			break
		}

		for _, arc := range rt.g.Arcs(curr) {
			if err := rt.relax(labels, pq, curr, arc, finishIdx, heuristicCache, opts); err != nil {
				return datastructure.PathResult{}, err
			}
		}
	}

	if !reached {
		return datastructure.NewEmptyPathResult(time.Since(startTime)), nil
	}

	edges := make([]datastructure.EdgeRecord, 0)
	for v := finishIdx; labels[v].prev != -1; v = labels[v].prev {
		edges = append(edges, *labels[v].edge)
	}
	if len(edges) == 0 {
		// start == finish, tidak ada traversal
		return datastructure.NewEmptyPathResult(time.Since(startTime)), nil
	}
	edges = util.ReverseG(edges)

	final := labels[finishIdx]
	rt.log.Debug("final distance calculated", "priority", final.priority, "supplies", final.ledger.supplies)

	ledgerCopy := final.ledger.copy()
	return datastructure.PathResult{
		Edges: edges,
		Properties: datastructure.PathProperties{
			Priority:       final.priority,
			Supplies:       ledgerCopy.supplies,
			TotalConsumed:  ledgerCopy.totalConsumed,
			TotalRecovered: ledgerCopy.totalRecovered,
			ResourceWeight: ledgerCopy.resourceWeight,
			TimeTaken:      time.Since(startTime),
		},
	}, nil
}

// relax satu arc curr->arc.To. urutan: early rejection, consume, penalty, heuristic, extraCost, recovery.
func (rt *RouteAlgorithm) relax(labels []nodeLabel, pq *datastructure.MinHeap[int32], curr int32, arc datastructure.Arc,
	finishIdx int32, heuristicCache []float64, opts SearchOptions) error {
	next := arc.To
	if rt.g.IsDisabledIndex(next) {
		return nil
	}
	if !labels[next].discovered {
		labels[next] = nodeLabel{discovered: true, priority: math.Inf(1), prev: -1}
	}

	edge := arc.Edge
	baseCost := labels[curr].priority + edge.Weight
	if baseCost >= labels[next].priority {
		return nil
	}

	currLedger := labels[curr].ledger
	nextLedger := currLedger.copy()

	for _, supply := range edge.Consumes.Keys() {
		consumed := edge.Consumes[supply]
		nextLedger.supplies[supply] -= consumed
		nextLedger.totalConsumed[supply] += consumed
	}

	candidate := baseCost
	for _, supply := range nextLedger.supplies.Keys() {
		if level := nextLedger.supplies[supply]; level < 0 {
			candidate += math.Abs(level) * negativeSupplyPenalty
		}
	}

	if heuristicCache != nil {
		candidate += heuristicCache[next]
	}

	// extraWeight statis dari edge + extraCost dinamis
	extraWeight := edge.ExtraWeight
	if edge.ExtraCost != nil {
		capacity := opts.SupplyCapacity
		if capacity == nil {
			capacity = datastructure.Supplies{}
		}
		consumes := edge.Consumes
		if consumes == nil {
			consumes = datastructure.Supplies{}
		}
		extraWeight += edge.ExtraCost(nextLedger.supplies, capacity, consumes, next == finishIdx)
	}
	candidate += extraWeight

	weightFromResources := 0.0
	recoverHere := datastructure.Supplies{}
	if vertex := rt.g.Vertex(next); vertex != nil && len(vertex.Recover) > 0 {
		rt.log.Debug("recover found", "node", rt.g.NodeID(next))
		for _, supply := range vertex.RecoverKeys() {
			capacity := opts.SupplyCapacity[supply]
			if capacity == 0 {
				return fmt.Errorf("%w: %s", ErrNoCapacity, supply)
			}
			recoverFn := vertex.Recover[supply]
			if currLedger.supplies[supply] == 0 || recoverFn == nil {
				continue
			}

			amount, cost := recoverFn(nextLedger.supplies[supply], capacity)
			candidate += cost
			weightFromResources += cost
			recoverHere[supply] = amount
			nextLedger.resourceWeight[supply] += cost
			nextLedger.totalRecovered[supply] += amount
			nextLedger.supplies[supply] += amount
		}
	}

	rt.log.Debug("traversing edge", "from", rt.g.NodeID(curr), "via", edge.ID, "to", rt.g.NodeID(next),
		"priority", candidate, "supplies", nextLedger.supplies)

	if candidate < labels[next].priority {
		rt.log.Debug("found better path", "node", rt.g.NodeID(next), "newPriority", candidate,
			"oldPriority", labels[next].priority, "recover", recoverHere)

		labels[next] = nodeLabel{
			discovered: true,
			priority:   candidate,
			ledger:     nextLedger,
			prev:       curr,
			edge: &datastructure.EdgeRecord{
				Source:              rt.g.NodeID(curr),
				Target:              rt.g.NodeID(next),
				EdgeID:              edge.ID,
				Weight:              edge.Weight,
				Consumes:            edge.Consumes.Clone(),
				Recover:             recoverHere,
				Supplies:            nextLedger.supplies,
				WeightFromResources: weightFromResources,
				ExtraWeight:         extraWeight,
				TotalConsumed:       nextLedger.totalConsumed,
				TotalRecovered:      nextLedger.totalRecovered,
			},
		}
		pq.Insert(datastructure.NewPriorityQueueNode(candidate, next))
	}
	return nil
}

// ShortestPathNodes vertex ids dari ShortestPath.
func (rt *RouteAlgorithm) ShortestPathNodes(start, finish datastructure.NodeID, opts SearchOptions) ([]datastructure.NodeID, error) {
	result, err := rt.ShortestPath(start, finish, opts)
	if err != nil {
		return nil, err
	}
	return result.Vertices(), nil
}
