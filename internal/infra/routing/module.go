// Package routing assembles the road routing provider chain.
package routing

import (
	"context"
	"log/slog"

	"routeopt/config"
	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	"routeopt/internal/infra/routing/graph"
	"routeopt/internal/infra/routing/ors"
	"routeopt/internal/infra/routing/osrm"
	"routeopt/internal/infra/routing/pmtiles"
	"routeopt/internal/infra/routing/straightline"

	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the provider chain, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.RoutingConfig
	Logger *slog.Logger
}

// NewProviders returns the enabled road providers in query order: OSRM, ORS,
// the vector-tile archive, then the local road graph.
func NewProviders(params ProviderParams) ([]service.RoutingProvider, error) {
	cfg := params.Config
	providers := make([]service.RoutingProvider, 0, 4)

	if cfg.OSRM.Enabled {
		providers = append(providers, osrm.NewProvider(cfg, params.Logger))
	}

	if cfg.ORS.Enabled {
		if cfg.ORS.APIKey == "" {
			params.Logger.Warn("[Routing] ORS enabled without an API key, skipping")
		} else {
			providers = append(providers, ors.NewProvider(cfg, params.Logger))
		}
	}

	if cfg.PMTiles.Enabled {
		tiles, err := pmtiles.Open(context.Background(), cfg, params.Logger)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open tile archive %s", cfg.PMTiles.Source)
		}
		providers = append(providers, tiles)
	}

	if cfg.Graph.Enabled {
		router := graph.NewRouter(cfg, params.Logger)
		if err := router.LoadDir(cfg.Graph.DataPath); err != nil {
			return nil, errors.Wrapf(err, "failed to load road graph from %s", cfg.Graph.DataPath)
		}
		providers = append(providers, router)
	}

	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	params.Logger.Info("[Routing] Provider chain configured", slog.Any("providers", names))

	return providers, nil
}

// NewFallback returns the straight-line synthesizer used when every provider fails
func NewFallback(cfg *config.RoutingConfig, region *entity.TargetRegion) service.RoutingProvider {
	return straightline.NewProvider(cfg.DefaultSpeedKmh, region.StartLabel, region.StopLabel)
}

// Module provides the routing FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewProviders,
		fx.Annotate(NewFallback, fx.ResultTags(`name:"fallbackRouting"`)),
	),
)
