package snap

import (
	"math"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/uber/h3-go/v4"
)

const (
	h3Resolution = 9
	maxRingLevel = 10
	// ring tambahan karena disk hexagon tidak menutupi lingkaran secara penuh
	ringMargin = 2
)

// H3Snapper index vertex per cell h3 (resolusi 9). query: cell sendiri, lalu grid disk yang makin besar.
type H3Snapper struct {
	cells  map[h3.Cell][]datastructure.NodeID
	coords map[datastructure.NodeID]datastructure.Coordinate
}

func NewH3Snapper(coords map[datastructure.NodeID]datastructure.Coordinate) *H3Snapper {
	cells := make(map[h3.Cell][]datastructure.NodeID)
	for id, c := range coords {
		cell := h3.LatLngToCell(h3.NewLatLng(c.Lat, c.Lon), h3Resolution)
		cells[cell] = append(cells[cell], id)
	}
	return &H3Snapper{cells: cells, coords: coords}
}

func (hs *H3Snapper) Nearest(lat, lon float64, accept AcceptFunc) (Candidate, error) {
	home := h3.LatLngToCell(h3.NewLatLng(lat, lon), h3Resolution)

	if c, ok := closest(lat, lon, hs.cells[home], hs.coords, accept); ok {
		// vertex di cell tetangga bisa lebih dekat
		return hs.refine(lat, lon, home, accept, c), nil
	}

	for lev := 1; lev <= maxRingLevel; lev++ {
		ids := make([]datastructure.NodeID, 0)
		for _, cell := range h3.GridDisk(home, lev) {
			ids = append(ids, hs.cells[cell]...)
		}
		if c, ok := closest(lat, lon, ids, hs.coords, accept); ok {
			return hs.refine(lat, lon, home, accept, c), nil
		}
	}
	return Candidate{}, ErrNoVertexNearby
}

// refine cek ulang semua cell dalam radius jarak kandidat yang sudah ketemu.
func (hs *H3Snapper) refine(lat, lon float64, home h3.Cell, accept AcceptFunc, found Candidate) Candidate {
	ids := []datastructure.NodeID{found.ID}
	for _, cell := range h3.GridDisk(home, kRingForRadius(lat, lon, found.DistanceKM)+ringMargin) {
		ids = append(ids, hs.cells[cell]...)
	}
	c, _ := closest(lat, lon, ids, hs.coords, accept)
	return c
}

// kRingForRadius jumlah ring grid disk yang menutupi lingkaran radius km.
func kRingForRadius(lat, lon, searchRadiusKm float64) int {
	origin := h3.LatLngToCell(h3.NewLatLng(lat, lon), h3Resolution)
	originArea := h3.CellAreaKm2(origin)
	searchArea := math.Pi * searchRadiusKm * searchRadiusKm

	radius := 0
	diskArea := originArea
	for diskArea < searchArea {
		radius++
		cellCount := float64(3*radius*(radius+1) + 1)
		diskArea = cellCount * originArea
	}
	return radius
}

// WithinRadius semua vertex dalam radius km dari titik, urut jarak.
func (hs *H3Snapper) WithinRadius(lat, lon, radiusKm float64) []Candidate {
	origin := h3.LatLngToCell(h3.NewLatLng(lat, lon), h3Resolution)
	out := make([]Candidate, 0)
	for _, cell := range h3.GridDisk(origin, kRingForRadius(lat, lon, radiusKm)+ringMargin) {
		for _, id := range hs.cells[cell] {
			c, _ := closest(lat, lon, []datastructure.NodeID{id}, hs.coords, nil)
			if c.DistanceKM <= radiusKm {
				out = append(out, c)
			}
		}
	}
	sortCandidates(out)
	return out
}
