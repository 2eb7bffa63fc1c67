// Package metrics exposes the Prometheus collectors of the service on a
// dedicated registry.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	geocodeResolutions *prometheus.CounterVec
	routingRequests    *prometheus.CounterVec
	optimizeDuration   prometheus.Histogram
	optimizedStops     prometheus.Histogram
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		geocodeResolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "geocode_resolutions_total", Help: "Address resolutions by the tier that answered."},
			[]string{"tier"},
		),
		routingRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "routing_requests_total", Help: "Routing provider calls by provider and outcome."},
			[]string{"provider", "outcome"},
		),
		optimizeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{Name: "optimize_duration_seconds", Help: "Wall time of one optimization call.", Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60}},
		),
		optimizedStops: prometheus.NewHistogram(
			prometheus.HistogramOpts{Name: "optimize_stops", Help: "Stops per optimization call.", Buckets: []float64{0, 1, 2, 5, 10, 20, 50}},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"method", "path", "status"},
		),
	}

	m.registry.MustRegister(
		m.geocodeResolutions,
		m.routingRequests,
		m.optimizeDuration,
		m.optimizedStops,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RegisterDBStats exports the connection pool stats of db under dbName.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if m == nil {
		return nil
	}

	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// GeocodeResolved counts one resolution answered by tier.
func (m *Metrics) GeocodeResolved(tier string) {
	if m == nil {
		return
	}
	m.geocodeResolutions.WithLabelValues(tier).Inc()
}

// RoutingRequest counts one provider call; outcome is "ok" or "error".
func (m *Metrics) RoutingRequest(provider string, err error) {
	if m == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.routingRequests.WithLabelValues(provider, outcome).Inc()
}

// OptimizeObserved records one optimization call.
func (m *Metrics) OptimizeObserved(stops int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.optimizeDuration.Observe(elapsed.Seconds())
	m.optimizedStops.Observe(float64(stops))
}

// HTTPObserved records one served request.
func (m *Metrics) HTTPObserved(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, code).Inc()
	m.httpDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}
