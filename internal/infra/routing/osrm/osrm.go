// Package osrm is the primary routing provider backed by an OSRM HTTP server.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
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

// Provider queries the OSRM route service.
type Provider struct {
	baseURL string
	profile string
	client  *http.Client
	logger  *slog.Logger
}

type routeResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Routes  []route `json:"routes"`
}

type route struct {
	Geometry *geojson.Geometry `json:"geometry"`
	Distance float64           `json:"distance"`
	Duration float64           `json:"duration"`
	Legs     []struct {
		Steps []step `json:"steps"`
	} `json:"legs"`
}

type step struct {
	Name     string `json:"name"`
	Maneuver struct {
		Type        string `json:"type"`
		Modifier    string `json:"modifier"`
		Instruction string `json:"instruction"`
	} `json:"maneuver"`
}

// NewProvider creates the OSRM routing provider
func NewProvider(cfg *config.RoutingConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(cfg.OSRM.BaseURL, "/"),
		profile: cfg.OSRM.Profile,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return constants.RoutingProviderOSRM
}

// Route fetches the driving route through waypoints in order
func (p *Provider) Route(ctx context.Context, waypoints []entity.Coordinate) (*entity.Route, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.routeURL(waypoints), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(service.ErrRoutingProviderFailure, "osrm: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, errors.Wrapf(service.ErrRoutingProviderFailure, "osrm: HTTP %d: %s", resp.StatusCode, body)
	}

	var payload routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrapf(service.ErrRoutingProviderFailure, "osrm: decode response: %v", err)
	}

	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		return nil, errors.Wrapf(service.ErrRoutingProviderFailure, "osrm: code %q: %s", payload.Code, payload.Message)
	}

	best := payload.Routes[0]
	line, ok := lineString(best.Geometry)
	if !ok {
		return nil, errors.Wrap(service.ErrRoutingProviderFailure, "osrm: route geometry is not a line string")
	}

	result := &entity.Route{
		Polyline:        make([]entity.Coordinate, 0, len(line)),
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Provider:        p.Name(),
	}
	for _, pt := range line {
		result.Polyline = append(result.Polyline, entity.CoordinateFromPoint(pt))
	}
	for _, leg := range best.Legs {
		for _, s := range leg.Steps {
			if text := s.instruction(); text != "" {
				result.Instructions = append(result.Instructions, text)
			}
		}
	}

	p.logger.Debug("[OSRM] Route fetched",
		slog.Int("waypoints", len(waypoints)),
		slog.Float64("distance_m", result.DistanceMeters),
		slog.Int("points", len(result.Polyline)),
	)

	return result, nil
}

func (p *Provider) routeURL(waypoints []entity.Coordinate) string {
	pairs := make([]string, 0, len(waypoints))
	for _, w := range waypoints {
		pairs = append(pairs, strconv.FormatFloat(w.Lng, 'f', -1, 64)+","+strconv.FormatFloat(w.Lat, 'f', -1, 64))
	}

	return fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson&steps=true",
		p.baseURL, p.profile, strings.Join(pairs, ";"))
}

func lineString(g *geojson.Geometry) (orb.LineString, bool) {
	if g == nil {
		return nil, false
	}
	line, ok := g.Coordinates.(orb.LineString)

	return line, ok && len(line) > 0
}

// instruction prefers the server-provided text and otherwise composes one
// from the maneuver, e.g. "turn left onto Avenue Habib Bourguiba".
func (s step) instruction() string {
	if s.Maneuver.Instruction != "" {
		return s.Maneuver.Instruction
	}

	parts := make([]string, 0, 3)
	if s.Maneuver.Type != "" {
		parts = append(parts, s.Maneuver.Type)
	}
	if s.Maneuver.Modifier != "" {
		parts = append(parts, s.Maneuver.Modifier)
	}
	if s.Name != "" {
		parts = append(parts, "onto "+s.Name)
	}

	return strings.Join(parts, " ")
}
