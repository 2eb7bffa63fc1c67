package impl

import (
	"routeopt/internal/domain/entity"
	"routeopt/internal/util"
)

// distanceFunc is a symmetric cost between two points in meters.
type distanceFunc func(a, b entity.Coordinate) float64

// scaledHaversine approximates road distance from the great-circle distance.
func scaledHaversine(factor float64) distanceFunc {
	return func(a, b entity.Coordinate) float64 {
		return util.HaversineMeters(a, b) * factor
	}
}

// tourLength is the open path cost from start through coords in order.
func tourLength(start entity.Coordinate, coords []entity.Coordinate, order []int, dist distanceFunc) float64 {
	total := 0.0
	current := start
	for _, idx := range order {
		total += dist(current, coords[idx])
		current = coords[idx]
	}

	return total
}

// twoOptPassCap bounds the number of improving 2-opt moves.
func twoOptPassCap(configured, stops int) int {
	return min(configured, 2*stops)
}

// twoOpt reverses segments order[i+1..j] while that shortens the open tour.
// Each pass accepts the first improving move and starts over; it stops after
// maxPasses improvements or a pass without one. The first element stays
// fixed relative to start. It returns the new order and the improvements
// applied.
func twoOpt(start entity.Coordinate, coords []entity.Coordinate, order []int, maxPasses int, dist distanceFunc) ([]int, int) {
	best := append([]int(nil), order...)
	if len(best) <= 2 {
		return best, 0
	}

	bestLength := tourLength(start, coords, best, dist)
	candidate := make([]int, len(best))
	passes := 0

	for passes < maxPasses {
		improved := false

	search:
		for i := 0; i < len(best)-1; i++ {
			for j := i + 2; j < len(best); j++ {
				copy(candidate, best)
				reverse(candidate[i+1 : j+1])

				if length := tourLength(start, coords, candidate, dist); length < bestLength {
					best, candidate = candidate, best
					bestLength = length
					improved = true

					break search
				}
			}
		}

		if !improved {
			break
		}
		passes++
	}

	return best, passes
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
