// Package geo contains pure great-circle distance helpers.
package geo

import (
	"github.com/umahmood/haversine"

	"skytaxi/internal/types"
)

// EarthRadiusKm is the mean radius used by the haversine package.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometres between two
// points on a spherical Earth.
func DistanceKm(a, b types.Point) float64 {
	if a == b {
		return 0
	}
	_, km := haversine.Distance(toCoord(a), toCoord(b))
	return km
}

func toCoord(p types.Point) haversine.Coord {
	return haversine.Coord{Lat: p.Lat, Lon: p.Lng}
}
