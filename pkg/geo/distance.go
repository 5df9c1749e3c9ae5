package geo

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	earthRadiusKM = 6371.0
	earthRadiusM  = 6371007
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

// CalculateHaversineDistance jarak great-circle dalam km.
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// GreatCircleDistance sama dengan CalculateHaversineDistance tapi lewat s2 (km).
func GreatCircleDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	angle := s2.LatLngFromDegrees(latOne, longOne).Distance(s2.LatLngFromDegrees(latTwo, longTwo))
	return angleToKM(angle)
}

func angleToKM(angle s1.Angle) float64 {
	return angle.Radians() * earthRadiusKM
}

func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
