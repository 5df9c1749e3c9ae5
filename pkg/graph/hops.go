package graph

import (
	"fmt"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
)

type hopItem struct {
	idx  int32
	hops int
}

// NodesWithinHops BFS, semua vertex yang bisa dicapai dengan <= maxHops edge (termasuk start).
// vertex disabled tidak dilewati. start disabled -> kosong.
func (g *Graph) NodesWithinHops(start datastructure.NodeID, maxHops int) ([]datastructure.NodeID, error) {
	startIdx, ok := g.index[start]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, start)
	}
	if g.disabled[startIdx] {
		return []datastructure.NodeID{}, nil
	}

	visited := make(map[int32]struct{})
	visited[startIdx] = struct{}{}
	result := []datastructure.NodeID{start}

	queue := []hopItem{{idx: startIdx, hops: 0}}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr.hops >= maxHops {
			continue
		}
		for _, arc := range g.adj[curr.idx] {
			if _, seen := visited[arc.To]; seen || g.disabled[arc.To] {
				continue
			}
			visited[arc.To] = struct{}{}
			result = append(result, g.ids[arc.To])
			queue = append(queue, hopItem{idx: arc.To, hops: curr.hops + 1})
		}
	}
	return result, nil
}

// NodesAtExactHops BFS, cuma vertex yang jarak hop-nya tepat = hops.
func (g *Graph) NodesAtExactHops(start datastructure.NodeID, hops int) ([]datastructure.NodeID, error) {
	startIdx, ok := g.index[start]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, start)
	}
	if g.disabled[startIdx] {
		return []datastructure.NodeID{}, nil
	}

	visited := make(map[int32]struct{})
	visited[startIdx] = struct{}{}
	result := []datastructure.NodeID{}

	queue := []hopItem{{idx: startIdx, hops: 0}}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr.hops == hops {
			result = append(result, g.ids[curr.idx])
			continue
		}
		for _, arc := range g.adj[curr.idx] {
			if _, seen := visited[arc.To]; seen || g.disabled[arc.To] {
				continue
			}
			visited[arc.To] = struct{}{}
			queue = append(queue, hopItem{idx: arc.To, hops: curr.hops + 1})
		}
	}
	return result, nil
}
