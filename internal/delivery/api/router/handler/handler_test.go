package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "routeopt/internal/delivery/api/middleware"
	"routeopt/internal/delivery/api/validator"
	"routeopt/internal/domain/entity"
	domainerrors "routeopt/internal/domain/errors"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	mockUsecase "routeopt/internal/mocks/usecase"
	"routeopt/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	e         *echo.Echo
	optimizer *mockUsecase.MockOptimizerUsecase
	routing   *mockUsecase.MockRoutingUsecase
	geocoding *mockUsecase.MockGeocodingUsecase
	course    *mockUsecase.MockCourseUsecase
}

func newTestServer(t *testing.T) handlerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := handlerFixtures{
		optimizer: mockUsecase.NewMockOptimizerUsecase(t),
		routing:   mockUsecase.NewMockRoutingUsecase(t),
		geocoding: mockUsecase.NewMockGeocodingUsecase(t),
		course:    mockUsecase.NewMockCourseUsecase(t),
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	routeHandler := NewRouteHandler(RouteHandlerParams{OptimizerUC: fx.optimizer, RoutingUC: fx.routing, Logger: logger})
	geocodeHandler := NewGeocodeHandler(GeocodeHandlerParams{GeocodingUC: fx.geocoding, Logger: logger})
	courseHandler := NewCourseHandler(CourseHandlerParams{CourseUC: fx.course, Logger: logger})

	e.GET("/health", NewHealthHandler(HealthHandlerParams{}).Check)
	e.POST("/api/v1/routes", routeHandler.Route)
	e.POST("/api/v1/routes/optimize", routeHandler.Optimize)
	e.POST("/api/v1/routes/distance", routeHandler.Distance)
	e.POST("/api/v1/geocode", geocodeHandler.Geocode)
	e.POST("/api/v1/courses", courseHandler.CreateCourse)
	e.GET("/api/v1/courses/:id", courseHandler.GetCourse)
	e.POST("/api/v1/courses/:id/optimize", courseHandler.OptimizeCourse)
	e.GET("/api/v1/courses/:id/geojson", courseHandler.GetCourseGeoJSON)

	fx.e = e

	return fx
}

func (fx handlerFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestHealthCheck(t *testing.T) {
	fx := newTestServer(t)

	rec := fx.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// loadedProvider is a routing tier that reports whether its data is loaded.
type loadedProvider struct {
	name  string
	ready bool
}

func (p loadedProvider) Name() string { return p.name }

func (p loadedProvider) Route(context.Context, []entity.Coordinate) (*entity.Route, error) {
	return nil, service.ErrRoutingProviderFailure
}

func (p loadedProvider) IsReady() bool { return p.ready }

// remoteProvider has no local data to load.
type remoteProvider struct{}

func (remoteProvider) Name() string { return "osrm" }

func (remoteProvider) Route(context.Context, []entity.Coordinate) (*entity.Route, error) {
	return nil, service.ErrRoutingProviderFailure
}

func TestHealthHandler_RoutingReadiness(t *testing.T) {
	tests := []struct {
		name      string
		providers []service.RoutingProvider
		wantCode  int
		wantBody  string
	}{
		{
			name:      "all tiers loaded",
			providers: []service.RoutingProvider{remoteProvider{}, loadedProvider{name: "graph", ready: true}},
			wantCode:  http.StatusOK,
			wantBody:  `{"status":"ok","routing":{"graph":true}}`,
		},
		{
			name: "tier without data",
			providers: []service.RoutingProvider{
				loadedProvider{name: "pmtiles", ready: true},
				loadedProvider{name: "graph", ready: false},
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"status":"unavailable","routing":{"pmtiles":true,"graph":false}}`,
		},
		{
			name:      "remote tiers only",
			providers: []service.RoutingProvider{remoteProvider{}},
			wantCode:  http.StatusOK,
			wantBody:  `{"status":"ok"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/health", NewHealthHandler(HealthHandlerParams{Providers: tt.providers}).Check)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRouteHandler_Optimize(t *testing.T) {
	fx := newTestServer(t)
	start := entity.Coordinate{Lat: 35.8256, Lng: 10.636}
	plan := &entity.RoutePlan{
		OrderedStopIDs:       []string{"b", "a"},
		TotalDistanceMeters:  4200,
		TotalDurationSeconds: 600,
		Provider:             "osrm",
	}

	fx.optimizer.EXPECT().Optimize(mock.Anything, start, mock.MatchedBy(func(stops []entity.Stop) bool {
		return len(stops) == 2 &&
			stops[0].ID == "a" && *stops[0].AddressText == "Rue de Marseille" &&
			stops[1].ID == "b" && stops[1].KnownCoordinate != nil && *stops[1].FallbackRegion == entity.RegionSousse
	})).Return(plan, nil)

	rec := fx.do(http.MethodPost, "/api/v1/routes/optimize", `{
		"start": {"lat": 35.8256, "lng": 10.636},
		"stops": [
			{"id": "a", "addressText": "Rue de Marseille"},
			{"id": "b", "knownCoordinate": {"lat": 35.84, "lng": 10.6}, "fallbackRegion": "SOUSSE"}
		]
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got entity.RoutePlan
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, []string{"b", "a"}, got.OrderedStopIDs)
	assert.InDelta(t, 4200, got.TotalDistanceMeters, 1e-9)
}

func TestRouteHandler_Optimize_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(fx handlerFixtures)
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{
			name:       "missing start",
			body:       `{"stops": []}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantDetail: `"field":"start"`,
		},
		{
			name:       "stop without id",
			body:       `{"start": {"lat": 35.8, "lng": 10.6}, "stops": [{"addressText": "x"}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantDetail: `"field":"stops[0].id"`,
		},
		{
			name:       "latitude out of range",
			body:       `{"start": {"lat": 135.8, "lng": 10.6}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantDetail: `"rule":"lte"`,
		},
		{
			name:       "malformed body",
			body:       `{"start":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "unresolvable stop",
			body: `{"start": {"lat": 35.8, "lng": 10.6}, "stops": [{"id": "x"}]}`,
			setup: func(fx handlerFixtures) {
				fx.optimizer.EXPECT().Optimize(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.WithStack(domainerrors.ErrStopUnresolvable.WithDetails("stop x")))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "STOP_UNRESOLVABLE",
			wantDetail: `"stop x"`,
		},
		{
			name: "unexpected failure hides details",
			body: `{"start": {"lat": 35.8, "lng": 10.6}}`,
			setup: func(fx handlerFixtures) {
				fx.optimizer.EXPECT().Optimize(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("dial tcp: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newTestServer(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			rec := fx.do(http.MethodPost, "/api/v1/routes/optimize", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantDetail != "" {
				assert.Contains(t, string(env.Error.Details), tt.wantDetail)
			}
			if tt.wantStatus >= http.StatusInternalServerError {
				assert.Empty(t, env.Error.Details)
				assert.NotContains(t, rec.Body.String(), "connection refused")
			}
		})
	}
}

func TestRouteHandler_Route(t *testing.T) {
	fx := newTestServer(t)
	route := &entity.Route{
		Polyline:        []entity.Coordinate{{Lat: 35.82, Lng: 10.63}, {Lat: 35.84, Lng: 10.6}},
		DistanceMeters:  3100,
		DurationSeconds: 420,
		Provider:        "osrm",
	}

	fx.routing.EXPECT().Route(mock.Anything, []entity.Coordinate{{Lat: 35.82, Lng: 10.63}, {Lat: 35.84, Lng: 10.6}}).
		Return(route, nil)

	rec := fx.do(http.MethodPost, "/api/v1/routes", `{"waypoints": [{"lat": 35.82, "lng": 10.63}, {"lat": 35.84, "lng": 10.6}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got entity.Route
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, "osrm", got.Provider)
	assert.Len(t, got.Polyline, 2)
}

func TestRouteHandler_Route_TooFewWaypoints(t *testing.T) {
	fx := newTestServer(t)

	rec := fx.do(http.MethodPost, "/api/v1/routes", `{"waypoints": [{"lat": 35.82, "lng": 10.63}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}

func TestRouteHandler_Distance(t *testing.T) {
	fx := newTestServer(t)

	fx.routing.EXPECT().DistanceAndDuration(mock.Anything,
		entity.Coordinate{Lat: 35.82, Lng: 10.63}, entity.Coordinate{Lat: 35.84, Lng: 10.6}).
		Return(3100.0, 420.0)

	rec := fx.do(http.MethodPost, "/api/v1/routes/distance",
		`{"from": {"lat": 35.82, "lng": 10.63}, "to": {"lat": 35.84, "lng": 10.6}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"distanceMeters": 3100, "durationSeconds": 420}`, string(decodeEnvelope(t, rec).Data))
}

func TestGeocodeHandler(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		fx := newTestServer(t)
		fx.geocoding.EXPECT().Resolve(mock.Anything, "Port El Kantaoui").
			Return(entity.Coordinate{Lat: 35.8920, Lng: 10.5950}, nil)

		rec := fx.do(http.MethodPost, "/api/v1/geocode", `{"address": "Port El Kantaoui"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"lat": 35.892, "lng": 10.595}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("not found", func(t *testing.T) {
		fx := newTestServer(t)
		fx.geocoding.EXPECT().Resolve(mock.Anything, "nowhere").
			Return(entity.Coordinate{}, errors.WithStack(service.ErrGeocodeNotFound))

		rec := fx.do(http.MethodPost, "/api/v1/geocode", `{"address": "nowhere"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ADDRESS_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("fallback never misses", func(t *testing.T) {
		fx := newTestServer(t)
		fx.geocoding.EXPECT().ResolveWithFallback(mock.Anything, "nowhere, Sousse").
			Return(entity.Coordinate{Lat: 35.8256, Lng: 10.636})

		rec := fx.do(http.MethodPost, "/api/v1/geocode", `{"address": "nowhere, Sousse", "fallback": true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty address", func(t *testing.T) {
		fx := newTestServer(t)

		rec := fx.do(http.MethodPost, "/api/v1/geocode", `{"address": ""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func optimizedCourse() *entity.Course {
	return &entity.Course{
		ID:             uuid.New(),
		DriverID:       "driver-1",
		Start:          entity.Coordinate{Lat: 35.8256, Lng: 10.636},
		Stops:          []entity.Stop{{ID: "a"}, {ID: "b"}},
		Status:         entity.CourseStatusOptimized,
		OrderedStopIDs: []string{"b", "a"},
		DistanceKm:     6.2,
		DurationMin:    14,
		Route: []entity.Coordinate{
			{Lat: 35.8256, Lng: 10.636},
			{Lat: 35.81, Lng: 10.62},
			{Lat: 35.84, Lng: 10.61},
		},
		DetailedRoute: []entity.Coordinate{
			{Lat: 35.8256, Lng: 10.636},
			{Lat: 35.82, Lng: 10.63},
			{Lat: 35.81, Lng: 10.62},
			{Lat: 35.84, Lng: 10.61},
		},
		CreatedAt: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 10, 1, 8, 1, 0, 0, time.UTC),
	}
}

func TestCourseHandler_CreateCourse(t *testing.T) {
	fx := newTestServer(t)
	created := &entity.Course{
		ID:       uuid.New(),
		DriverID: "driver-1",
		Start:    entity.Coordinate{Lat: 35.8256, Lng: 10.636},
		Stops:    []entity.Stop{{ID: "a", ClientID: "client-7"}},
		Status:   entity.CourseStatusPending,
	}

	fx.course.EXPECT().CreateCourse(mock.Anything, mock.MatchedBy(func(in *usecase.CreateCourseInput) bool {
		return in.DriverID == "driver-1" && len(in.Stops) == 1 && in.Stops[0].ClientID == "client-7"
	})).Return(created, nil)

	rec := fx.do(http.MethodPost, "/api/v1/courses",
		`{"driverId": "driver-1", "start": {"lat": 35.8256, "lng": 10.636}, "stops": [{"id": "a", "clientId": "client-7"}]}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got CourseResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, created.ID.String(), got.ID)
	assert.Equal(t, entity.CourseStatusPending, got.Status)
}

func TestCourseHandler_GetCourse(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		fx := newTestServer(t)

		rec := fx.do(http.MethodGet, "/api/v1/courses/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		fx := newTestServer(t)
		id := uuid.New()
		fx.course.EXPECT().GetCourse(mock.Anything, id).Return(nil, errors.WithStack(domainerrors.ErrCourseNotFound))

		rec := fx.do(http.MethodGet, "/api/v1/courses/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "COURSE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestCourseHandler_OptimizeCourse(t *testing.T) {
	t.Run("stored start", func(t *testing.T) {
		fx := newTestServer(t)
		course := optimizedCourse()
		fx.course.EXPECT().OptimizeCourse(mock.Anything, course.ID, (*entity.Coordinate)(nil)).Return(course, nil)

		rec := fx.do(http.MethodPost, "/api/v1/courses/"+course.ID.String()+"/optimize", "")

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("start override", func(t *testing.T) {
		fx := newTestServer(t)
		course := optimizedCourse()
		fx.course.EXPECT().OptimizeCourse(mock.Anything, course.ID, &entity.Coordinate{Lat: 35.77, Lng: 10.59}).
			Return(course, nil)

		rec := fx.do(http.MethodPost, "/api/v1/courses/"+course.ID.String()+"/optimize",
			`{"start": {"lat": 35.77, "lng": 10.59}}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCourseHandler_GetCourseGeoJSON(t *testing.T) {
	t.Run("optimized", func(t *testing.T) {
		fx := newTestServer(t)
		course := optimizedCourse()
		fx.course.EXPECT().GetCourse(mock.Anything, course.ID).Return(course, nil)

		rec := fx.do(http.MethodGet, "/api/v1/courses/"+course.ID.String()+"/geojson", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))

		var fc struct {
			Type     string `json:"type"`
			Features []struct {
				Geometry struct {
					Type string `json:"type"`
				} `json:"geometry"`
				Properties map[string]any `json:"properties"`
			} `json:"features"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
		assert.Equal(t, "FeatureCollection", fc.Type)
		require.Len(t, fc.Features, 4)
		assert.Equal(t, "LineString", fc.Features[0].Geometry.Type)
		assert.Equal(t, "start", fc.Features[1].Properties["role"])
		assert.Equal(t, "b", fc.Features[2].Properties["stopId"])
		assert.Equal(t, "a", fc.Features[3].Properties["stopId"])
	})

	t.Run("not optimized yet", func(t *testing.T) {
		fx := newTestServer(t)
		course := optimizedCourse()
		course.Status = entity.CourseStatusPending
		fx.course.EXPECT().GetCourse(mock.Anything, course.ID).Return(course, nil)

		rec := fx.do(http.MethodGet, "/api/v1/courses/"+course.ID.String()+"/geojson", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "COURSE_NOT_OPTIMIZED", decodeEnvelope(t, rec).Error.Code)
	})
}
