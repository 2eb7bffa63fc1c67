package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.GeocodeResolved("cache")
	m.GeocodeResolved("cache")
	m.GeocodeResolved("nominatim")
	m.RoutingRequest("osrm", nil)
	m.RoutingRequest("osrm", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.geocodeResolutions.WithLabelValues("cache")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.geocodeResolutions.WithLabelValues("nominatim")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.routingRequests.WithLabelValues("osrm", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.routingRequests.WithLabelValues("osrm", "error")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.GeocodeResolved("cache")
		m.RoutingRequest("osrm", nil)
		m.OptimizeObserved(3, time.Second)
		m.HTTPObserved("GET", "/health", 200, time.Millisecond)
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.HTTPObserved(http.MethodPost, "/api/v1/routes/optimize", http.StatusOK, 20*time.Millisecond)
	m.OptimizeObserved(4, 2*time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "http_requests_total"))
	assert.True(t, strings.Contains(body, "optimize_duration_seconds"))
}

func TestRegisterDBStats_NilMetrics(t *testing.T) {
	var m *Metrics

	assert.NoError(t, m.RegisterDBStats(nil, "courses"))
}
