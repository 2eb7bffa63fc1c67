package main

import (
	"context"
	"log/slog"
	"os"

	"routeopt/config"
	"routeopt/internal/delivery"
	"routeopt/internal/delivery/api"
	"routeopt/internal/delivery/api/router/handler"
	"routeopt/internal/delivery/middleware"
	"routeopt/internal/infra/geocoding"
	logs "routeopt/internal/infra/log"
	"routeopt/internal/infra/metrics"
	"routeopt/internal/infra/persistence/postgres"
	"routeopt/internal/infra/persistence/redis"
	"routeopt/internal/infra/pubsub"
	"routeopt/internal/infra/routing"
	"routeopt/internal/infra/throttle"
	"routeopt/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			config.GeocodingSection,
			config.RoutingSection,
			config.OptimizerSection,
			logs.New,
			context.Background,
			postgres.New,
			provideHTTPRecorder,
		),
		metrics.Module,
		redis.Module,
	)
}

// provideHTTPRecorder keeps the metrics middleware off when metrics are disabled.
func provideHTTPRecorder(m *metrics.Metrics) middleware.HTTPRecorder {
	if m == nil {
		return nil
	}

	return m
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCourseRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		geocoding.Module,
		routing.Module,
		throttle.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeocodingService,
			impl.NewRoutingService,
			impl.NewStopResolver,
			impl.NewOptimizerService,
			impl.NewCourseService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewRouteHandler,
			handler.NewGeocodeHandler,
			handler.NewCourseHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
