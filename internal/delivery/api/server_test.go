package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"routeopt/config"
	"routeopt/internal/delivery/api/router"
	"routeopt/internal/delivery/api/router/handler"
	"routeopt/internal/domain/entity"
	"routeopt/internal/infra/metrics"
	mockUsecase "routeopt/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler   http.Handler
	routingUC *mockUsecase.MockRoutingUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "2KB"
	m := metrics.New()
	routingUC := mockUsecase.NewMockRoutingUsecase(t)

	e := newEcho(ServerParams{
		Cfg:          cfg,
		Logger:       logger,
		HTTPRecorder: m,
		RouterParams: router.RouterParams{
			HealthHandler: handler.NewHealthHandler(handler.HealthHandlerParams{}),
			RouteHandler: handler.NewRouteHandler(handler.RouteHandlerParams{
				OptimizerUC: mockUsecase.NewMockOptimizerUsecase(t),
				RoutingUC:   routingUC,
				Logger:      logger,
			}),
			GeocodeHandler: handler.NewGeocodeHandler(handler.GeocodeHandlerParams{
				GeocodingUC: mockUsecase.NewMockGeocodingUsecase(t),
				Logger:      logger,
			}),
			CourseHandler: handler.NewCourseHandler(handler.CourseHandlerParams{
				CourseUC: mockUsecase.NewMockCourseUsecase(t),
				Logger:   logger,
			}),
			MetricsHandler: m.Handler(),
			MetricsPath:    "/metrics",
		},
	})

	return &testServer{handler: e, routingUC: routingUC}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthGetsRequestID(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get("X-Request-Id"))
	assert.NoError(t, err)
}

func TestServer_RouteThroughMiddleware(t *testing.T) {
	srv := newTestServer(t)
	srv.routingUC.EXPECT().Route(mock.Anything, mock.Anything).Return(&entity.Route{
		Polyline:        []entity.Coordinate{{Lat: 35.82, Lng: 10.63}, {Lat: 35.83, Lng: 10.64}},
		DistanceMeters:  1500,
		DurationSeconds: 180,
		Provider:        "osrm",
	}, nil)

	rec := srv.do(http.MethodPost, "/api/v1/routes",
		`{"waypoints":[{"lat":35.82,"lng":10.63},{"lat":35.83,"lng":10.64}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data entity.Route `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 1500.0, body.Data.DistanceMeters, 1e-9)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), body.Meta.RequestID)

	metricsRec := srv.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), `http_requests_total{method="POST",path="/api/v1/routes",status="200"} 1`)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/api/v1/nothing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_BodyLimit(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/api/v1/geocode", `{"address":"`+strings.Repeat("a", 4096)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
