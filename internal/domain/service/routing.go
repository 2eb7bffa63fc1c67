package service

import (
	"context"

	"routeopt/internal/domain/entity"
	"routeopt/internal/errors"
)

// ErrRoutingProviderFailure marks a transport or decoding failure of a single
// routing provider. The chain recovers it by trying the next provider.
var ErrRoutingProviderFailure = errors.New("routing provider failure")

// RoutingProvider computes a path that visits waypoints in the given order.
type RoutingProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// Route returns the path through waypoints without reordering them.
	Route(ctx context.Context, waypoints []entity.Coordinate) (*entity.Route, error)
}

// ReadinessChecker is implemented by providers that load data before they
// can answer.
type ReadinessChecker interface {
	IsReady() bool
}
