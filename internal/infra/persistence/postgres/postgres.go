package postgres

import (
	"context"
	"log/slog"

	"routeopt/config"
	"routeopt/internal/domain/lifecycle"
	"routeopt/internal/errors"
	"routeopt/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// poolStatsName labels the course store in go_sql_* metrics.
const poolStatsName = "courses"

// Params holds the dependencies of the course store connection
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the PostgreSQL connection that backs the course store. The pool
// is pinged on start, watched for connection waits and exported to metrics.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every course write is a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if err := params.Metrics.RegisterDBStats(sqlDB, poolStatsName); err != nil {
		params.Logger.Warn("[Postgres] Pool stats not exported", slog.Any("error", err))
	}

	monitor := newPoolMonitor(sqlDB, params.Logger)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitor.run(monitorCtx)
			params.Logger.Info("[Postgres] Connected", slog.Int("maxOpenConns", sqlDB.Stats().MaxOpenConnections))

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}
