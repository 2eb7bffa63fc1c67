// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"routeopt/internal/domain/entity"
)

// GeocodeCache memoizes resolved coordinates by normalized address.
// Implementations must tolerate concurrent readers and writers; on a key
// collision the last writer wins.
type GeocodeCache interface {
	// Get returns the cached coordinate for key, if any.
	Get(ctx context.Context, key string) (entity.Coordinate, bool)

	// Set stores the coordinate for key.
	Set(ctx context.Context, key string, coord entity.Coordinate)
}
