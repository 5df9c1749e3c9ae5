package snap

import (
	"cmp"
	"errors"
	"slices"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/geo"
)

var ErrNoVertexNearby = errors.New("snap: no vertex near the given coordinate")

// Candidate vertex hasil snapping.
type Candidate struct {
	ID         datastructure.NodeID
	Coordinate datastructure.Coordinate
	DistanceKM float64
}

// AcceptFunc filter vertex (mis. skip vertex yang di-disable). nil = terima semua.
type AcceptFunc func(id datastructure.NodeID) bool

type Snapper interface {
	Nearest(lat, lon float64, accept AcceptFunc) (Candidate, error)
}

const (
	RTREE = "rtree"
	H3    = "h3"
)

// New bikin snapper berdasarkan kind (rtree | h3).
func New(kind string, coords map[datastructure.NodeID]datastructure.Coordinate) (Snapper, error) {
	switch kind {
	case RTREE, "":
		return NewRtreeSnapper(coords), nil
	case H3:
		return NewH3Snapper(coords), nil
	}
	return nil, errors.New("snap: unknown snapper kind " + kind)
}

func closest(lat, lon float64, ids []datastructure.NodeID, coords map[datastructure.NodeID]datastructure.Coordinate,
	accept AcceptFunc) (Candidate, bool) {
	best := Candidate{DistanceKM: -1}
	for _, id := range ids {
		if accept != nil && !accept(id) {
			continue
		}
		c := coords[id]
		dist := geo.GreatCircleDistance(lat, lon, c.Lat, c.Lon)
		if best.DistanceKM < 0 || dist < best.DistanceKM || (dist == best.DistanceKM && id < best.ID) {
			best = Candidate{ID: id, Coordinate: c, DistanceKM: dist}
		}
	}
	return best, best.DistanceKM >= 0
}

func sortCandidates(cs []Candidate) {
	slices.SortFunc(cs, func(a, b Candidate) int {
		if c := cmp.Compare(a.DistanceKM, b.DistanceKM); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
