package graph

import (
	"sort"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/util"
)

// StronglyConnectedComponents kosaraju. component diurutkan dari yang terbesar, vertex di dalamnya urut insertion.
// vertex disabled tetap dihitung, yang dilihat cuma struktur edge.
func (g *Graph) StronglyConnectedComponents() [][]datastructure.NodeID {
	n := int32(len(g.ids))

	rev := make([][]int32, n)
	for v := int32(0); v < n; v++ {
		if !g.live[v] {
			continue
		}
		for _, arc := range g.adj[v] {
			rev[arc.To] = append(rev[arc.To], v)
		}
	}

	order := make([]int32, 0, n)
	visited := make([]bool, n)
	for v := int32(0); v < n; v++ {
		if g.live[v] && !visited[v] {
			g.sccDfs(v, &order, visited, nil)
		}
	}
	order = util.ReverseG(order)

	visited = make([]bool, n)
	components := make([][]int32, 0)
	for _, v := range order {
		if visited[v] {
			continue
		}
		component := make([]int32, 0)
		g.sccDfs(v, &component, visited, rev)
		components = append(components, component)
	}

	sort.SliceStable(components, func(i, j int) bool {
		return len(components[i]) > len(components[j])
	})

	out := make([][]datastructure.NodeID, 0, len(components))
	for _, component := range components {
		sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
		ids := make([]datastructure.NodeID, 0, len(component))
		for _, v := range component {
			ids = append(ids, g.ids[v])
		}
		out = append(out, ids)
	}
	return out
}

// sccDfs rev nil = jalan lewat arc keluar, selain itu lewat reverse adjacency.
func (g *Graph) sccDfs(v int32, output *[]int32, visited []bool, rev [][]int32) {
	visited[v] = true

	if rev == nil {
		for _, arc := range g.adj[v] {
			if !visited[arc.To] {
				g.sccDfs(arc.To, output, visited, rev)
			}
		}
	} else {
		for _, u := range rev[v] {
			if !visited[u] {
				g.sccDfs(u, output, visited, rev)
			}
		}
	}

	*output = append(*output, v)
}
