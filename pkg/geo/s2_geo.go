package geo

import (
	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
)

func toS2Point(c datastructure.Coordinate) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon))
}

// PointLinePerpendicularDistance jarak (meter) dari p ke segmen (a,b).
func PointLinePerpendicularDistance(a, b, p datastructure.Coordinate) float64 {
	if a == b {
		return s2.LatLngFromDegrees(a.Lat, a.Lon).Distance(s2.LatLngFromDegrees(p.Lat, p.Lon)).Radians() * earthRadiusM
	}
	return s2.DistanceFromSegment(toS2Point(p), toS2Point(a), toS2Point(b)).Radians() * earthRadiusM
}

// PolylineLength panjang total (km) dari rangkaian koordinat.
func PolylineLength(coords []datastructure.Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(coords); i++ {
		total += GreatCircleDistance(coords[i-1].Lat, coords[i-1].Lon, coords[i].Lat, coords[i].Lon)
	}
	return total
}
