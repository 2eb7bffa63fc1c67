package usecase

import (
	"context"

	"routeopt/internal/domain/entity"
)

// RoutingUsecase computes road paths through ordered waypoints
type RoutingUsecase interface {
	// Route walks the provider chain and falls back to straight-line
	// synthesis. It fails only for fewer than two waypoints.
	Route(ctx context.Context, waypoints []entity.Coordinate) (*entity.Route, error)

	// DistanceAndDuration returns the road distance (m) and travel time (s)
	// between two points, or the Haversine estimate when routing fails.
	DistanceAndDuration(ctx context.Context, from, to entity.Coordinate) (float64, float64)
}
