package handler

import (
	"net/http"

	"routeopt/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Providers []service.RoutingProvider `optional:"true"`
}

// HealthHandler reports liveness and whether data-backed routing tiers are loaded
type HealthHandler struct {
	checks map[string]service.ReadinessChecker
}

type healthResponse struct {
	Status  string          `json:"status"`
	Routing map[string]bool `json:"routing,omitempty"`
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	checks := make(map[string]service.ReadinessChecker)
	for _, p := range params.Providers {
		if checker, ok := p.(service.ReadinessChecker); ok {
			checks[p.Name()] = checker
		}
	}

	return &HealthHandler{checks: checks}
}

// Check answers 503 while any routing tier is still without data
func (h *HealthHandler) Check(c echo.Context) error {
	resp := healthResponse{Status: "ok"}
	code := http.StatusOK

	if len(h.checks) > 0 {
		resp.Routing = make(map[string]bool, len(h.checks))
		for name, checker := range h.checks {
			ready := checker.IsReady()
			resp.Routing[name] = ready
			if !ready {
				resp.Status = "unavailable"
				code = http.StatusServiceUnavailable
			}
		}
	}

	return c.JSON(code, resp)
}
