// Package redis holds the Redis-backed geocode cache and client directory.
package redis

import (
	"context"
	"log/slog"

	"routeopt/config"
	"routeopt/internal/domain/lifecycle"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client. It returns nil when Redis is disabled so the
// callers can fall back to in-process state.
func New(params Params) (*goredis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("[Redis] Disabled, using in-memory geocode cache only")

		return nil, nil
	}

	opt, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Redis URL")
	}
	client := goredis.NewClient(opt)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("[Redis] Connected", slog.String("addr", opt.Addr), slog.Int("db", opt.DB))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// DirectoryParams holds dependencies for the client directory, injected by Fx
type DirectoryParams struct {
	fx.In

	Config *config.Config
	Client *goredis.Client `optional:"true"`
}

// ProvideClientDirectory returns the Redis client directory, or nil when Redis
// is disabled so that stops referencing a client fall back to their region.
func ProvideClientDirectory(params DirectoryParams) service.ClientDirectory {
	if params.Client == nil {
		return nil
	}

	return NewClientDirectory(params.Client, params.Config.Redis.ClientKeyPrefix)
}

// Module provides the Redis FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		ProvideClientDirectory,
	),
)
