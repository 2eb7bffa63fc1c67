package metrics

import (
	"log/slog"
	"net/http"

	"routeopt/config"
	"routeopt/internal/domain/service"

	"go.uber.org/fx"
)

// Provide returns the collectors, or nil when metrics are disabled.
func Provide(cfg *config.Config, logger *slog.Logger) *Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		logger.Info("[Metrics] Disabled")

		return nil
	}

	return New()
}

func asRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

func provideHandler(m *Metrics) http.Handler {
	if m == nil {
		return nil
	}

	return m.Handler()
}

func providePath(cfg *config.Config) string {
	if cfg.Metrics == nil {
		return ""
	}

	return cfg.Metrics.Path
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		Provide,
		asRecorder,
		fx.Annotate(provideHandler, fx.ResultTags(`name:"metricsHandler"`)),
		fx.Annotate(providePath, fx.ResultTags(`name:"metricsPath"`)),
	),
)
