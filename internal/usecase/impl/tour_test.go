package impl

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"routeopt/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestTwoOpt_UncrossesTour(t *testing.T) {
	start := entity.Coordinate{Lat: 0, Lng: 0}
	// 0,2,1,3 crosses the square twice.
	coords := []entity.Coordinate{
		{Lat: 0, Lng: 0.01},
		{Lat: 0.01, Lng: 0.01},
		{Lat: 0.01, Lng: 0},
		{Lat: 0.02, Lng: 0},
	}
	dist := scaledHaversine(1.3)
	order := []int{0, 2, 1, 3}

	improved, passes := twoOpt(start, coords, order, 10, dist)

	assert.Positive(t, passes)
	assert.Less(t, tourLength(start, coords, improved, dist), tourLength(start, coords, order, dist))
	assert.Equal(t, []int{0, 2, 1, 3}, order, "input order must not be mutated")
}

func TestTwoOpt_NeverLengthensTour(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	start := entity.Coordinate{Lat: 35.8256, Lng: 10.6360}
	dist := scaledHaversine(1.3)

	for n := 3; n <= 20; n++ {
		coords := make([]entity.Coordinate, n)
		for i := range coords {
			coords[i] = entity.Coordinate{
				Lat: 35.78 + rng.Float64()*0.1,
				Lng: 10.56 + rng.Float64()*0.12,
			}
		}
		order := rng.Perm(n)

		improved, passes := twoOpt(start, coords, order, twoOptPassCap(10, n), dist)

		assert.LessOrEqual(t, tourLength(start, coords, improved, dist), tourLength(start, coords, order, dist)+1e-9)
		assert.LessOrEqual(t, passes, min(10, 2*n))

		sorted := slices.Clone(improved)
		slices.Sort(sorted)
		for i, v := range sorted {
			assert.Equal(t, i, v)
		}
	}
}

func TestTwoOpt_RepeatedRunsNeverLengthen(t *testing.T) {
	rng := rand.New(rand.NewPCG(19, 4))
	start := entity.Coordinate{Lat: 35.8256, Lng: 10.6360}
	dist := scaledHaversine(1.3)

	for n := 3; n <= 15; n++ {
		coords := make([]entity.Coordinate, n)
		for i := range coords {
			coords[i] = entity.Coordinate{
				Lat: 35.78 + rng.Float64()*0.1,
				Lng: 10.56 + rng.Float64()*0.12,
			}
		}

		order := rng.Perm(n)
		prev := tourLength(start, coords, order, dist)
		// A single pass per run so every run feeds on the previous output.
		for run := range 2 * n {
			order, _ = twoOpt(start, coords, order, 1, dist)
			length := tourLength(start, coords, order, dist)
			assert.LessOrEqual(t, length, prev+1e-9, "n=%d run=%d", n, run)
			prev = length
		}
	}
}

func TestTwoOpt_ShortToursUntouched(t *testing.T) {
	start := entity.Coordinate{}
	coords := []entity.Coordinate{{Lat: 1, Lng: 1}, {Lat: 0.5, Lng: 0.5}}

	for _, order := range [][]int{{0}, {1, 0}} {
		got, passes := twoOpt(start, coords, order, 10, scaledHaversine(1))
		assert.Equal(t, order, got)
		assert.Zero(t, passes)
	}
}

func TestTwoOpt_ZeroPassCap(t *testing.T) {
	start := entity.Coordinate{}
	coords := []entity.Coordinate{{Lat: 0, Lng: 0.01}, {Lat: 0.01, Lng: 0.01}, {Lat: 0.01, Lng: 0}, {Lat: 0.02, Lng: 0}}
	order := []int{0, 2, 1, 3}

	got, passes := twoOpt(start, coords, order, 0, scaledHaversine(1))
	assert.Equal(t, order, got)
	assert.Zero(t, passes)
}

func TestTwoOptPassCap(t *testing.T) {
	assert.Equal(t, 4, twoOptPassCap(10, 2))
	assert.Equal(t, 10, twoOptPassCap(10, 8))
	assert.Equal(t, 3, twoOptPassCap(3, 20))
}

func TestTourLength_OpenPath(t *testing.T) {
	start := entity.Coordinate{}
	coords := []entity.Coordinate{{Lat: 0, Lng: 1}, {Lat: 0, Lng: 2}}
	unit := func(a, b entity.Coordinate) float64 { return math.Abs(b.Lng - a.Lng) }

	assert.InDelta(t, 2, tourLength(start, coords, []int{0, 1}, unit), 1e-12)
	assert.InDelta(t, 3, tourLength(start, coords, []int{1, 0}, unit), 1e-12)
}

