package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/repository"
	"routeopt/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// GeocodeCache stores resolved coordinates as JSON under prefix+key with no
// expiry. Redis failures are logged and reported as misses.
type GeocodeCache struct {
	client *goredis.Client
	prefix string
	logger *slog.Logger
}

// NewGeocodeCache creates the Redis geocode cache level
func NewGeocodeCache(client *goredis.Client, prefix string, logger *slog.Logger) repository.GeocodeCache {
	return &GeocodeCache{client: client, prefix: prefix, logger: logger}
}

// Get returns the coordinate stored for key
func (c *GeocodeCache) Get(ctx context.Context, key string) (entity.Coordinate, bool) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.Warn("[GeocodeCache] Redis read failed", slog.String("key", key), slog.Any("error", err))
		}

		return entity.Coordinate{}, false
	}

	var coord entity.Coordinate
	if err := json.Unmarshal(raw, &coord); err != nil {
		c.logger.Warn("[GeocodeCache] Corrupt entry ignored", slog.String("key", key), slog.Any("error", err))

		return entity.Coordinate{}, false
	}

	return coord, true
}

// Set stores the coordinate for key
func (c *GeocodeCache) Set(ctx context.Context, key string, coord entity.Coordinate) {
	raw, err := json.Marshal(coord)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, c.prefix+key, raw, 0).Err(); err != nil {
		c.logger.Warn("[GeocodeCache] Redis write failed", slog.String("key", key), slog.Any("error", err))
	}
}
