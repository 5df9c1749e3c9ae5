package geo

import (
	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
)

// DefaultSimplifyThreshold meter, titik route yang lebih dekat dari ini ke garis dibuang.
const DefaultSimplifyThreshold = 7.0

// SimplifyRoute douglas-peucker iteratif. titik pertama & terakhir selalu dipertahankan,
// titik tengah dipertahankan kalau jarak tegak lurusnya ke segmen > thresholdMeters.
func SimplifyRoute(coords []datastructure.Coordinate, thresholdMeters float64) []datastructure.Coordinate {
	size := len(coords)
	if size < 3 {
		return coords
	}

	kept := make([]bool, size)
	kept[0], kept[size-1] = true, true

	stack := [][2]int{{0, size - 1}}
	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		left, right := seg[0], seg[1]

		farthest, maxDist := -1, thresholdMeters
		for i := left + 1; i < right; i++ {
			if d := PointLinePerpendicularDistance(coords[left], coords[right], coords[i]); d > maxDist {
				farthest, maxDist = i, d
			}
		}
		if farthest == -1 {
			continue
		}

		kept[farthest] = true
		stack = append(stack, [2]int{left, farthest}, [2]int{farthest, right})
	}

	simplified := make([]datastructure.Coordinate, 0, size)
	for i, k := range kept {
		if k {
			simplified = append(simplified, coords[i])
		}
	}
	return simplified
}
