package util

import (
	"math"

	"routeopt/internal/domain/entity"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance between two coordinates.
func HaversineMeters(a, b entity.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DurationSeconds estimates travel time for a distance at a constant speed.
func DurationSeconds(distanceMeters, speedKmh float64) float64 {
	if speedKmh <= 0 {
		return 0
	}

	return distanceMeters / 1000 * (3600 / speedKmh)
}

// Interpolate returns count evenly spaced points strictly between a and b.
func Interpolate(a, b entity.Coordinate, count int) []entity.Coordinate {
	points := make([]entity.Coordinate, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		ratio := float64(i) / float64(count+1)
		points = append(points, entity.Coordinate{
			Lat: a.Lat + (b.Lat-a.Lat)*ratio,
			Lng: a.Lng + (b.Lng-a.Lng)*ratio,
		})
	}

	return points
}
