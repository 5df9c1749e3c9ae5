package routingalgorithm

import (
	"fmt"
	"math"
	"time"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/util"
)

// frontier satu sisi bidirectional search. dist tidak ada di map = belum discovered.
type frontier struct {
	pq   *datastructure.MinHeap[int32]
	dist map[int32]float64
	prev map[int32]int32
}

func newFrontier(source int32) *frontier {
	f := &frontier{
		pq:   datastructure.NewMinHeap[int32](),
		dist: make(map[int32]float64),
		prev: make(map[int32]int32),
	}
	f.dist[source] = 0
	f.pq.Insert(datastructure.NewPriorityQueueNode(0, source))
	return f
}

// expand relax semua arc keluar dari node. cost = g + w + h(next, target), h ikut terakumulasi.
func (rt *RouteAlgorithm) expand(f *frontier, node int32, target datastructure.NodeID) {
	for _, arc := range rt.g.Arcs(node) {
		next := arc.To
		if rt.g.IsDisabledIndex(next) {
			continue
		}
		if _, ok := f.dist[next]; !ok {
			f.dist[next] = math.Inf(1)
		}

		newCost := f.dist[node] + arc.Edge.Weight + rt.heuristic(rt.g.NodeID(next), target)
		if newCost < f.dist[next] {
			f.dist[next] = newCost
			f.prev[next] = node
			f.pq.Insert(datastructure.NewPriorityQueueNode(newCost, next))
		}
	}
}

// ShortestPathBidirectional bidirectional A* tanpa resource ledger. forward dari start (heuristic ke finish),
// backward dari finish (heuristic ke start) pakai adjacency yang sama (graph dianggap undirected).
// forward & backward gantian satu step per iterasi.
//
// search berhenti begitu forward step menemukan vertex yang sudah punya jarak di backward frontier,
// jadi hasilnya approximate: tidak dijamin shortest path global. pakai ShortestPath kalau butuh exact.
func (rt *RouteAlgorithm) ShortestPathBidirectional(start, finish datastructure.NodeID, opts SearchOptions) (datastructure.BidirectionalResult, error) {
	startIdx, ok := rt.g.NodeIndex(start)
	if !ok {
		return datastructure.BidirectionalResult{}, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	finishIdx, ok := rt.g.NodeIndex(finish)
	if !ok {
		return datastructure.BidirectionalResult{}, fmt.Errorf("%w: %q", ErrFinishNotFound, finish)
	}
	if rt.heuristic == nil {
		return datastructure.BidirectionalResult{}, ErrHeuristicRequired
	}
	if rt.g.IsDisabledIndex(startIdx) || rt.g.IsDisabledIndex(finishIdx) {
		return datastructure.BidirectionalResult{Path: []datastructure.NodeID{}}, nil
	}

	rt.log.Debug("start running bidirectional a*", "start", start, "finish", finish)
	startTime := time.Now()
	deadline := startTime.Add(opts.Timeout)

	forw := newFrontier(startIdx)
	back := newFrontier(finishIdx)

	bestCost := math.Inf(1)
	meeting := int32(-1)

search:
	for !forw.pq.IsEmpty() || !back.pq.IsEmpty() {
		if opts.Timeout > 0 && time.Now().After(deadline) {
			rt.log.Debug("bidirectional search timeout exceeded", "timeout", opts.Timeout)
			return datastructure.BidirectionalResult{
				Path:       []datastructure.NodeID{},
				Properties: datastructure.PathProperties{TimeTaken: time.Since(startTime)},
			}, nil
		}

		if !forw.pq.IsEmpty() {
			current, _ := forw.pq.ExtractMin()
			curr := current.Item
			if current.Rank > forw.dist[curr] {
				// stale, backward step iterasi ini juga dilewati
				continue
			}

			if backDist, ok := back.dist[curr]; ok {
				if total := forw.dist[curr] + backDist; total < bestCost {
					bestCost = total
					meeting = curr
					break search
				}
			}

			if forw.dist[curr] < bestCost {
				rt.expand(forw, curr, finish)
			}
		}

		if !back.pq.IsEmpty() {
			current, _ := back.pq.ExtractMin()
			curr := current.Item
			if current.Rank > back.dist[curr] {
				continue
			}

			if forwDist, ok := forw.dist[curr]; ok {
				if total := forwDist + back.dist[curr]; total < bestCost {
					bestCost = total
					meeting = curr
				}
			}

			if back.dist[curr] < bestCost {
				rt.expand(back, curr, start)
			}
		}
	}

	if meeting == -1 {
		return datastructure.BidirectionalResult{
			Path:       []datastructure.NodeID{},
			Properties: datastructure.PathProperties{TimeTaken: time.Since(startTime)},
		}, nil
	}

	return datastructure.BidirectionalResult{
		Path:       rt.createBidirectionalPath(meeting, startIdx, forw.prev, back.prev),
		Properties: datastructure.PathProperties{Priority: bestCost, TimeTaken: time.Since(startTime)},
	}, nil
}

// createBidirectionalPath start -> meeting pakai predecessor forward, lalu meeting -> finish pakai predecessor backward.
func (rt *RouteAlgorithm) createBidirectionalPath(meeting, startIdx int32, prevF, prevB map[int32]int32) []datastructure.NodeID {
	fPath := make([]datastructure.NodeID, 0)
	v := meeting
	for v != startIdx {
		fPath = append(fPath, rt.g.NodeID(v))
		p, ok := prevF[v]
		if !ok {
			break
		}
		v = p
	}
	fPath = append(fPath, rt.g.NodeID(startIdx))
	fPath = util.ReverseG(fPath)

	bPath := make([]datastructure.NodeID, 0)
	for v, ok := prevB[meeting]; ok; v, ok = prevB[v] {
		bPath = append(bPath, rt.g.NodeID(v))
	}

	return append(fPath, bPath...)
}
