package handler

import (
	"log/slog"
	"net/http"

	"routeopt/internal/delivery/api/response"
	"routeopt/internal/domain/entity"
	domainerrors "routeopt/internal/domain/errors"
	"routeopt/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	OptimizerUC usecase.OptimizerUsecase
	RoutingUC   usecase.RoutingUsecase
	Logger      *slog.Logger
}

// RouteHandler serves the optimization and routing endpoints
type RouteHandler struct {
	optimizerUC usecase.OptimizerUsecase
	routingUC   usecase.RoutingUsecase
	logger      *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		optimizerUC: params.OptimizerUC,
		routingUC:   params.RoutingUC,
		logger:      params.Logger,
	}
}

// OptimizeRequest is the body of POST /api/v1/routes/optimize
type OptimizeRequest struct {
	Start *CoordinateRequest `json:"start" validate:"required"`
	Stops []StopRequest      `json:"stops" validate:"dive"`
}

// RouteRequest is the body of POST /api/v1/routes
type RouteRequest struct {
	Waypoints []CoordinateRequest `json:"waypoints" validate:"min=2,dive"`
}

// DistanceRequest is the body of POST /api/v1/routes/distance
type DistanceRequest struct {
	From *CoordinateRequest `json:"from" validate:"required"`
	To   *CoordinateRequest `json:"to" validate:"required"`
}

// DistanceResponse holds one leg estimate
type DistanceResponse struct {
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// Optimize plans the visiting order of a round
func (h *RouteHandler) Optimize(c echo.Context) error {
	var req OptimizeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plan, err := h.optimizerUC.Optimize(c.Request().Context(), req.Start.toEntity(), toStops(req.Stops))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan)
}

// Route returns the road path through ordered waypoints
func (h *RouteHandler) Route(c echo.Context) error {
	var req RouteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	waypoints := make([]entity.Coordinate, 0, len(req.Waypoints))
	for i := range req.Waypoints {
		waypoints = append(waypoints, req.Waypoints[i].toEntity())
	}

	route, err := h.routingUC.Route(c.Request().Context(), waypoints)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route)
}

// Distance estimates the road distance and travel time between two points
func (h *RouteHandler) Distance(c echo.Context) error {
	var req DistanceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	meters, seconds := h.routingUC.DistanceAndDuration(c.Request().Context(), req.From.toEntity(), req.To.toEntity())

	return response.Success(c, http.StatusOK, DistanceResponse{
		DistanceMeters:  meters,
		DurationSeconds: seconds,
	})
}

// bindAndValidate decodes the body and runs the struct rules. Failures are
// returned for the error handler to render.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
