package usecase

import (
	"context"

	"routeopt/internal/domain/entity"
)

// OptimizerUsecase plans the visiting order of one delivery round
type OptimizerUsecase interface {
	// Optimize resolves every stop, orders them with nearest neighbour plus
	// bounded 2-opt and fetches one route for the final order.
	Optimize(ctx context.Context, start entity.Coordinate, stops []entity.Stop) (*entity.RoutePlan, error)
}

// StopResolver turns a stop into a coordinate
type StopResolver interface {
	Resolve(ctx context.Context, stop entity.Stop) (entity.Coordinate, error)
}
