package snap

import (
	"github.com/dhconnelly/rtreego"
	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
)

const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
	// kandidat dari rtree (jarak derajat) di-ranking ulang pakai jarak great-circle
	rtreeCandidates = 8
	pointTolerance  = 1e-9
)

type vertexLeaf struct {
	id    datastructure.NodeID
	coord datastructure.Coordinate
}

func (v *vertexLeaf) Bounds() rtreego.Rect {
	return rtreego.Point{v.coord.Lat, v.coord.Lon}.ToRect(pointTolerance)
}

type RtreeSnapper struct {
	rtree  *rtreego.Rtree
	coords map[datastructure.NodeID]datastructure.Coordinate
}

func NewRtreeSnapper(coords map[datastructure.NodeID]datastructure.Coordinate) *RtreeSnapper {
	leaves := make([]rtreego.Spatial, 0, len(coords))
	for id, c := range coords {
		leaves = append(leaves, &vertexLeaf{id: id, coord: c})
	}
	return &RtreeSnapper{
		rtree:  rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren, leaves...),
		coords: coords,
	}
}

func (rs *RtreeSnapper) Size() int {
	return rs.rtree.Size()
}

func (rs *RtreeSnapper) Nearest(lat, lon float64, accept AcceptFunc) (Candidate, error) {
	var filter rtreego.Filter = func(_ []rtreego.Spatial, obj rtreego.Spatial) (bool, bool) {
		if accept == nil {
			return false, false
		}
		return !accept(obj.(*vertexLeaf).id), false
	}

	nearest := rs.rtree.NearestNeighbors(rtreeCandidates, rtreego.Point{lat, lon}, filter)
	ids := make([]datastructure.NodeID, 0, len(nearest))
	for _, obj := range nearest {
		if obj == nil {
			continue
		}
		ids = append(ids, obj.(*vertexLeaf).id)
	}

	c, ok := closest(lat, lon, ids, rs.coords, accept)
	if !ok {
		return Candidate{}, ErrNoVertexNearby
	}
	return c, nil
}
