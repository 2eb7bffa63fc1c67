// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"routeopt/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	RouteHandler   *handler.RouteHandler
	GeocodeHandler *handler.GeocodeHandler
	CourseHandler  *handler.CourseHandler
	MetricsHandler http.Handler `name:"metricsHandler" optional:"true"`
	MetricsPath    string       `name:"metricsPath" optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler  *handler.HealthHandler
	routeHandler   *handler.RouteHandler
	geocodeHandler *handler.GeocodeHandler
	courseHandler  *handler.CourseHandler
	metricsHandler http.Handler
	metricsPath    string
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	metricsPath := params.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	return &router{
		healthHandler:  params.HealthHandler,
		routeHandler:   params.RouteHandler,
		geocodeHandler: params.GeocodeHandler,
		courseHandler:  params.CourseHandler,
		metricsHandler: params.MetricsHandler,
		metricsPath:    metricsPath,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	if r.metricsHandler != nil {
		e.GET(r.metricsPath, echo.WrapHandler(r.metricsHandler))
	}

	apiV1 := e.Group("/api/v1")

	routesGroup := apiV1.Group("/routes")
	{
		routesGroup.POST("", r.routeHandler.Route)
		routesGroup.POST("/optimize", r.routeHandler.Optimize)
		routesGroup.POST("/distance", r.routeHandler.Distance)
	}

	apiV1.POST("/geocode", r.geocodeHandler.Geocode)

	coursesGroup := apiV1.Group("/courses")
	{
		coursesGroup.POST("", r.courseHandler.CreateCourse)
		coursesGroup.GET("/:id", r.courseHandler.GetCourse)
		coursesGroup.POST("/:id/optimize", r.courseHandler.OptimizeCourse)
		coursesGroup.GET("/:id/geojson", r.courseHandler.GetCourseGeoJSON)
	}
}
