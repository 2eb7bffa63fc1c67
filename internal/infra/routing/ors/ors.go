// Package ors is the secondary routing provider backed by OpenRouteService.
package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"routeopt/config"
	"routeopt/internal/domain/constants"
	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const maxErrorBody = 512

// Provider queries the OpenRouteService directions API.
type Provider struct {
	baseURL string
	apiKey  string
	profile string
	client  *http.Client
	logger  *slog.Logger
}

type directionsRequest struct {
	Coordinates  [][2]float64 `json:"coordinates"`
	Format       string       `json:"format"`
	Instructions bool         `json:"instructions"`
}

type directionsResponse struct {
	Features []struct {
		Geometry   *geojson.Geometry `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
			Segments []struct {
				Steps []struct {
					Instruction string `json:"instruction"`
				} `json:"steps"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// NewProvider creates the OpenRouteService routing provider
func NewProvider(cfg *config.RoutingConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(cfg.ORS.BaseURL, "/"),
		apiKey:  cfg.ORS.APIKey,
		profile: cfg.ORS.Profile,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return constants.RoutingProviderORS
}

// Route posts the waypoints to the GeoJSON directions endpoint
func (p *Provider) Route(ctx context.Context, waypoints []entity.Coordinate) (*entity.Route, error) {
	if p.apiKey == "" {
		return nil, errors.Wrap(service.ErrRoutingProviderFailure, "ors: api key not configured")
	}

	body := directionsRequest{Format: "geojson", Instructions: true}
	for _, w := range waypoints {
		body.Coordinates = append(body.Coordinates, [2]float64{w.Lng, w.Lat})
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	url := fmt.Sprintf("%s/v2/directions/%s/geojson", p.baseURL, p.profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Authorization", p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(service.ErrRoutingProviderFailure, "ors: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, errors.Wrapf(service.ErrRoutingProviderFailure, "ors: HTTP %d: %s", resp.StatusCode, msg)
	}

	var payload directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrapf(service.ErrRoutingProviderFailure, "ors: decode response: %v", err)
	}
	if len(payload.Features) == 0 || payload.Features[0].Geometry == nil {
		return nil, errors.Wrap(service.ErrRoutingProviderFailure, "ors: no route in response")
	}

	feature := payload.Features[0]
	line, ok := feature.Geometry.Coordinates.(orb.LineString)
	if !ok || len(line) == 0 {
		return nil, errors.Wrap(service.ErrRoutingProviderFailure, "ors: route geometry is not a line string")
	}

	result := &entity.Route{
		Polyline:        make([]entity.Coordinate, 0, len(line)),
		DistanceMeters:  feature.Properties.Summary.Distance,
		DurationSeconds: feature.Properties.Summary.Duration,
		Provider:        p.Name(),
	}
	for _, pt := range line {
		result.Polyline = append(result.Polyline, entity.CoordinateFromPoint(pt))
	}
	for _, seg := range feature.Properties.Segments {
		for _, s := range seg.Steps {
			if s.Instruction != "" {
				result.Instructions = append(result.Instructions, s.Instruction)
			}
		}
	}

	p.logger.Debug("[ORS] Route fetched",
		slog.Int("waypoints", len(waypoints)),
		slog.Float64("distance_m", result.DistanceMeters),
	)

	return result, nil
}
