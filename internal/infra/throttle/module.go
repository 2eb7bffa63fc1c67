package throttle

import (
	"routeopt/config"
	"routeopt/internal/domain/service"

	"go.uber.org/fx"
)

func newGeocodeThrottle(cfg *config.OptimizerConfig) service.Throttle {
	return New(cfg.GeocodeInterval, nil)
}

func newRoadThrottle(cfg *config.OptimizerConfig) service.Throttle {
	return New(cfg.RoadDistanceInterval, nil)
}

// Module provides the optimizer's geocode and road-distance throttles
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(newGeocodeThrottle, fx.ResultTags(`name:"geocodeThrottle"`)),
		fx.Annotate(newRoadThrottle, fx.ResultTags(`name:"roadThrottle"`)),
	),
)
