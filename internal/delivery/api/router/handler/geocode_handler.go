package handler

import (
	"log/slog"
	"net/http"

	"routeopt/internal/delivery/api/response"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	"routeopt/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	GeocodingUC usecase.GeocodingUsecase
	Logger      *slog.Logger
}

// GeocodeHandler exposes address resolution
type GeocodeHandler struct {
	geocodingUC usecase.GeocodingUsecase
	logger      *slog.Logger
}

// NewGeocodeHandler is the constructor for GeocodeHandler
func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{
		geocodingUC: params.GeocodingUC,
		logger:      params.Logger,
	}
}

// GeocodeRequest is the body of POST /api/v1/geocode
type GeocodeRequest struct {
	Address  string `json:"address" validate:"required,max=512"`
	Fallback bool   `json:"fallback"`
}

// Geocode resolves one address. With fallback set it never misses.
func (h *GeocodeHandler) Geocode(c echo.Context) error {
	var req GeocodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if req.Fallback {
		return response.Success(c, http.StatusOK, h.geocodingUC.ResolveWithFallback(ctx, req.Address))
	}

	coord, err := h.geocodingUC.Resolve(ctx, req.Address)
	if err != nil {
		if errors.Is(err, service.ErrGeocodeNotFound) {
			return response.NotFound(c, "ADDRESS_NOT_FOUND", "address could not be located")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coord)
}
