package usecase

import (
	"context"

	"routeopt/internal/domain/entity"
)

// GeocodingUsecase resolves free-text addresses inside the target region
type GeocodingUsecase interface {
	// Resolve tries the cache, the gazetteer and the search providers in
	// order. It returns service.ErrGeocodeNotFound when every tier misses.
	Resolve(ctx context.Context, address string) (entity.Coordinate, error)

	// ResolveWithFallback never fails: unresolved addresses get the city
	// centroid when they name the city, else the country default.
	ResolveWithFallback(ctx context.Context, address string) entity.Coordinate
}
