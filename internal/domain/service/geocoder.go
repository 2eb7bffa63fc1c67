package service

import (
	"context"

	"routeopt/internal/domain/entity"
	"routeopt/internal/errors"
)

// ErrGeocodeNotFound is returned when no tier can resolve an address.
// It never reaches optimizer callers: the fallback wrapper recovers it.
var ErrGeocodeNotFound = errors.New("geocode not found")

// GeocodeProvider is one external search tier of the geocoder.
type GeocodeProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// Geocode returns the best coordinate for a cleaned address or
	// ErrGeocodeNotFound when no acceptable candidate exists.
	Geocode(ctx context.Context, address string) (entity.Coordinate, error)
}
