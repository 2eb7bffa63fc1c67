package service

import "routeopt/internal/domain/entity"

// Gazetteer is the curated local lookup table consulted before any external provider.
type Gazetteer interface {
	// Lookup resolves a normalized address. It returns the matched key so
	// callers can log which entry answered.
	Lookup(normalized string) (coord entity.Coordinate, key string, ok bool)
}
