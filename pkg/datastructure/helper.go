package datastructure

import (
	"github.com/twpayne/go-polyline"
)

type Coordinate struct {
	Lat float64
	Lon float64
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// CreatePolyline encode path jadi google encoded polyline (precision 5).
func CreatePolyline(path []Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline kebalikan CreatePolyline.
func DecodePolyline(s string) ([]Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, err
	}
	path := make([]Coordinate, 0, len(coords))
	for _, c := range coords {
		path = append(path, NewCoordinate(c[0], c[1]))
	}
	return path, nil
}
