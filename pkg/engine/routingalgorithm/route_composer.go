package routingalgorithm

import (
	"fmt"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
)

// ComposeRoute ShortestPath berurutan antar waypoint. supplies akhir leg i jadi supplies awal leg i+1.
// edge record disambung; priority, timeTaken, totalConsumed, totalRecovered, resourceWeight dijumlah.
// kalau salah satu leg tidak punya path, seluruh route kosong.
func (rt *RouteAlgorithm) ComposeRoute(waypoints []datastructure.NodeID, opts SearchOptions) (datastructure.PathResult, error) {
	if len(waypoints) < 2 {
		return datastructure.PathResult{}, fmt.Errorf("%w: got %d", ErrNotEnoughWaypoints, len(waypoints))
	}

	composed := datastructure.PathResult{
		Edges: make([]datastructure.EdgeRecord, 0),
		Properties: datastructure.PathProperties{
			Supplies:       copySupplies(opts.Supplies),
			TotalConsumed:  datastructure.Supplies{},
			TotalRecovered: datastructure.Supplies{},
			ResourceWeight: datastructure.Supplies{},
		},
	}

	current := waypoints[0]
	for i, next := range waypoints[1:] {
		legOpts := opts
		legOpts.Supplies = composed.Properties.Supplies

		leg, err := rt.ShortestPath(current, next, legOpts)
		if err != nil {
			return datastructure.PathResult{}, fmt.Errorf("leg %d (%s -> %s): %w", i, current, next, err)
		}
		composed.Properties.TimeTaken += leg.Properties.TimeTaken

		if leg.Empty() && current != next {
			rt.log.Debug("route leg has no path", "leg", i, "from", current, "to", next)
			return datastructure.NewEmptyPathResult(composed.Properties.TimeTaken), nil
		}
		if leg.Empty() {
			continue
		}

		composed.Edges = append(composed.Edges, leg.Edges...)
		composed.Properties.Priority += leg.Properties.Priority
		composed.Properties.Supplies = leg.Properties.Supplies.Clone()
		composed.Properties.TotalConsumed.Add(leg.Properties.TotalConsumed)
		composed.Properties.TotalRecovered.Add(leg.Properties.TotalRecovered)
		composed.Properties.ResourceWeight.Add(leg.Properties.ResourceWeight)
		current = next
	}

	if len(composed.Edges) == 0 {
		return datastructure.NewEmptyPathResult(composed.Properties.TimeTaken), nil
	}
	return composed, nil
}
