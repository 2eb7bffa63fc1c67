package geocoding

import (
	"log/slog"

	"routeopt/config"
	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/repository"
	"routeopt/internal/domain/service"
	"routeopt/internal/infra/persistence/redis"
	"routeopt/internal/infra/throttle"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the search tiers, injected by Fx
type ProviderParams struct {
	fx.In

	Config   *config.GeocodingConfig
	Region   *entity.TargetRegion
	Throttle service.Throttle `name:"variantThrottle"`
	Logger   *slog.Logger
}

// NewProviders returns the enabled search tiers in query order
func NewProviders(params ProviderParams) []service.GeocodeProvider {
	cfg := params.Config
	providers := make([]service.GeocodeProvider, 0, 2)

	if cfg.Nominatim.Enabled {
		providers = append(providers, NewNominatimProvider(cfg, params.Region, params.Throttle, params.Logger))
	}
	if cfg.Photon.Enabled {
		providers = append(providers, NewPhotonProvider(cfg, params.Region, params.Logger))
	}

	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	params.Logger.Info("[Geocoding] Search tiers configured", slog.Any("providers", names))

	return providers
}

// CacheParams holds dependencies for the geocode cache, injected by Fx
type CacheParams struct {
	fx.In

	Config *config.Config
	Redis  *goredis.Client `optional:"true"`
	Logger *slog.Logger
}

// NewCache returns the in-memory cache, backed by Redis when a client exists
func NewCache(params CacheParams) repository.GeocodeCache {
	l1 := NewMemoryCache()
	if params.Redis == nil {
		return l1
	}

	prefix := ""
	if params.Config.Redis != nil {
		prefix = params.Config.Redis.GeocodeKeyPrefix
	}

	return NewTieredCache(l1, redis.NewGeocodeCache(params.Redis, prefix, params.Logger))
}

func newVariantThrottle(cfg *config.GeocodingConfig) service.Throttle {
	return throttle.New(cfg.VariantInterval, nil)
}

// Module provides the geocoding FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		LoadRegionData,
		ProvideTargetRegion,
		NewGazetteerFromRegion,
		NewCache,
		NewProviders,
		fx.Annotate(newVariantThrottle, fx.ResultTags(`name:"variantThrottle"`)),
	),
)
