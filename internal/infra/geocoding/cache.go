package geocoding

import (
	"context"
	"sync"

	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/repository"
)

// MemoryCache is the process-lifetime geocode cache. Entries are never evicted
// and concurrent writers of the same key leave the last value.
type MemoryCache struct {
	entries sync.Map
}

// NewMemoryCache creates an empty in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

// Get returns the cached coordinate for a normalized key
func (c *MemoryCache) Get(_ context.Context, key string) (entity.Coordinate, bool) {
	v, ok := c.entries.Load(key)
	if !ok {
		return entity.Coordinate{}, false
	}

	coord, ok := v.(entity.Coordinate)

	return coord, ok
}

// Set stores a coordinate under a normalized key
func (c *MemoryCache) Set(_ context.Context, key string, coord entity.Coordinate) {
	c.entries.Store(key, coord)
}

// Len counts the cached entries.
func (c *MemoryCache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}

// TieredCache reads the in-memory level first and promotes hits from the
// second level. Writes go to both levels.
type TieredCache struct {
	l1 *MemoryCache
	l2 repository.GeocodeCache
}

// NewTieredCache puts l1 in front of l2
func NewTieredCache(l1 *MemoryCache, l2 repository.GeocodeCache) *TieredCache {
	return &TieredCache{l1: l1, l2: l2}
}

// Get checks l1 then l2
func (c *TieredCache) Get(ctx context.Context, key string) (entity.Coordinate, bool) {
	if coord, ok := c.l1.Get(ctx, key); ok {
		return coord, true
	}

	coord, ok := c.l2.Get(ctx, key)
	if ok {
		c.l1.Set(ctx, key, coord)
	}

	return coord, ok
}

// Set writes through both levels
func (c *TieredCache) Set(ctx context.Context, key string, coord entity.Coordinate) {
	c.l1.Set(ctx, key, coord)
	c.l2.Set(ctx, key, coord)
}
