package impl

import (
	"context"
	"log/slog"

	"routeopt/config"
	"routeopt/internal/domain/entity"
	domainerrors "routeopt/internal/domain/errors"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	"routeopt/internal/usecase"
	"routeopt/internal/util"

	"go.uber.org/fx"
)

// defaultSpeedKmh keeps duration estimates meaningful when config is missing
const defaultSpeedKmh = 30.0

// RoutingServiceParams holds dependencies for RoutingService, injected by Fx
type RoutingServiceParams struct {
	fx.In

	Config    *config.RoutingConfig
	Providers []service.RoutingProvider
	Fallback  service.RoutingProvider `name:"fallbackRouting"`
	Metrics   service.MetricsRecorder `optional:"true"`
	Logger    *slog.Logger
}

type routingService struct {
	providers []service.RoutingProvider
	fallback  service.RoutingProvider
	speedKmh  float64
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// NewRoutingService creates the provider chain. Providers are tried in order
// and the fallback answers when all of them fail.
func NewRoutingService(params RoutingServiceParams) usecase.RoutingUsecase {
	speed := defaultSpeedKmh
	if params.Config != nil && params.Config.DefaultSpeedKmh > 0 {
		speed = params.Config.DefaultSpeedKmh
	}

	recorder := params.Metrics
	if recorder == nil {
		recorder = service.NoopMetrics{}
	}

	return &routingService{
		providers: params.Providers,
		fallback:  params.Fallback,
		speedKmh:  speed,
		metrics:   recorder,
		logger:    params.Logger,
	}
}

// Route implements usecase.RoutingUsecase
func (s *routingService) Route(ctx context.Context, waypoints []entity.Coordinate) (*entity.Route, error) {
	if len(waypoints) < 2 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("at least two waypoints are required")
	}

	for _, provider := range s.providers {
		route, err := provider.Route(ctx, waypoints)
		if err == nil && len(route.Polyline) < 2 {
			err = errors.Wrap(service.ErrRoutingProviderFailure, "route has fewer than two points")
		}
		s.metrics.RoutingRequest(provider.Name(), err)

		if err == nil {
			return route, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WithStack(ctxErr)
		}

		s.logger.Warn("[Routing] Provider failed, trying next",
			slog.String("provider", provider.Name()),
			slog.Int("waypoints", len(waypoints)),
			slog.Any("error", err),
		)
	}

	route, err := s.fallback.Route(ctx, waypoints)
	s.metrics.RoutingRequest(s.fallback.Name(), err)
	if err != nil {
		return nil, errors.Wrap(err, "fallback routing failed")
	}

	return route, nil
}

// DistanceAndDuration implements usecase.RoutingUsecase
func (s *routingService) DistanceAndDuration(ctx context.Context, from, to entity.Coordinate) (float64, float64) {
	route, err := s.Route(ctx, []entity.Coordinate{from, to})
	if err == nil {
		return route.DistanceMeters, route.DurationSeconds
	}

	meters := util.HaversineMeters(from, to)

	return meters, util.DurationSeconds(meters, s.speedKmh)
}
