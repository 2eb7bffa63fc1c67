package impl

import (
	"context"
	"log/slog"

	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/repository"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	"routeopt/internal/usecase"
	"routeopt/internal/util"

	"go.uber.org/fx"
)

// GeocodingServiceParams holds dependencies for GeocodingService, injected by Fx
type GeocodingServiceParams struct {
	fx.In

	Cache     repository.GeocodeCache
	Gazetteer service.Gazetteer
	Providers []service.GeocodeProvider
	Region    *entity.TargetRegion
	Metrics   service.MetricsRecorder `optional:"true"`
	Logger    *slog.Logger
}

type geocodingService struct {
	cache     repository.GeocodeCache
	gazetteer service.Gazetteer
	providers []service.GeocodeProvider
	region    *entity.TargetRegion
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// NewGeocodingService creates the cascading geocoder
func NewGeocodingService(params GeocodingServiceParams) usecase.GeocodingUsecase {
	recorder := params.Metrics
	if recorder == nil {
		recorder = service.NoopMetrics{}
	}

	return &geocodingService{
		cache:     params.Cache,
		gazetteer: params.Gazetteer,
		providers: params.Providers,
		region:    params.Region,
		metrics:   recorder,
		logger:    params.Logger,
	}
}

// Resolve implements usecase.GeocodingUsecase
func (s *geocodingService) Resolve(ctx context.Context, address string) (entity.Coordinate, error) {
	key := util.Normalize(address)
	if key == "" {
		return entity.Coordinate{}, errors.WithStack(service.ErrGeocodeNotFound)
	}

	if coord, ok := s.cache.Get(ctx, key); ok {
		s.metrics.GeocodeResolved(string(entity.GeocodeTierCache))

		return coord, nil
	}

	if coord, match, ok := s.gazetteer.Lookup(key); ok {
		s.logger.Debug("[Geocoding] Gazetteer match", slog.String("address", key), slog.String("entry", match))
		s.cache.Set(ctx, key, coord)
		s.metrics.GeocodeResolved(string(entity.GeocodeTierGazetteer))

		return coord, nil
	}

	cleaned := util.CleanAddress(address)
	for _, provider := range s.providers {
		coord, err := provider.Geocode(ctx, cleaned)
		if err == nil {
			s.cache.Set(ctx, key, coord)
			s.metrics.GeocodeResolved(provider.Name())

			return coord, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.Coordinate{}, errors.WithStack(ctxErr)
		}
		if !errors.Is(err, service.ErrGeocodeNotFound) {
			s.logger.Warn("[Geocoding] Provider failed",
				slog.String("provider", provider.Name()),
				slog.String("address", cleaned),
				slog.Any("error", err),
			)
		}
	}

	s.metrics.GeocodeResolved(string(entity.GeocodeTierNotFound))

	return entity.Coordinate{}, errors.WithStack(service.ErrGeocodeNotFound)
}

// ResolveWithFallback implements usecase.GeocodingUsecase
func (s *geocodingService) ResolveWithFallback(ctx context.Context, address string) entity.Coordinate {
	coord, err := s.Resolve(ctx, address)
	if err == nil {
		return coord
	}

	if s.region.MentionsCity(address) {
		s.metrics.GeocodeResolved(string(entity.GeocodeTierFallbackCity))
		s.logger.Info("[Geocoding] Using city centroid", slog.String("address", address), slog.String("city", s.region.City))

		return s.region.CityCentroid
	}

	s.metrics.GeocodeResolved(string(entity.GeocodeTierFallbackCountry))
	s.logger.Warn("[Geocoding] Using default centroid", slog.String("address", address), slog.Any("error", err))

	return s.region.CountryCentroid
}
