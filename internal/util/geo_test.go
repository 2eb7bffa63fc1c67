package util

import (
	"testing"

	"routeopt/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineMeters(t *testing.T) {
	t.Parallel()

	a := entity.Coordinate{Lat: 35.82, Lng: 10.63}
	b := entity.Coordinate{Lat: 35.85, Lng: 10.60}

	d := HaversineMeters(a, b)
	// ~4.3 km between the two Sousse points
	assert.InDelta(t, 4300, d, 150)
	assert.InDelta(t, d, HaversineMeters(b, a), 1e-9)
	assert.Zero(t, HaversineMeters(a, a))
}

func TestHaversineMeters_OneDegreeLatitude(t *testing.T) {
	t.Parallel()

	d := HaversineMeters(entity.Coordinate{Lat: 0, Lng: 0}, entity.Coordinate{Lat: 1, Lng: 0})
	assert.InDelta(t, 111195, d, 1)
}

func TestDurationSeconds(t *testing.T) {
	t.Parallel()

	// 30 km/h covers 1 km in two minutes
	assert.InDelta(t, 120, DurationSeconds(1000, 30), 1e-9)
	assert.Zero(t, DurationSeconds(1000, 0))
}

func TestInterpolate(t *testing.T) {
	t.Parallel()

	a := entity.Coordinate{Lat: 0, Lng: 0}
	b := entity.Coordinate{Lat: 6, Lng: 12}

	points := Interpolate(a, b, 5)
	require.Len(t, points, 5)
	assert.InDelta(t, 1.0, points[0].Lat, 1e-9)
	assert.InDelta(t, 2.0, points[0].Lng, 1e-9)
	assert.InDelta(t, 5.0, points[4].Lat, 1e-9)
	assert.InDelta(t, 10.0, points[4].Lng, 1e-9)

	assert.Empty(t, Interpolate(a, b, 0))
}
