package geocoding

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"routeopt/config"
	"routeopt/internal/domain/constants"
	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
)

// NominatimProvider searches OpenStreetMap Nominatim inside the target region.
type NominatimProvider struct {
	baseURL   string
	userAgent string
	limit     int
	client    *http.Client
	region    *entity.TargetRegion
	throttle  service.Throttle
	logger    *slog.Logger
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
}

// NewNominatimProvider creates the bounded Nominatim search tier. throttle
// paces the query variants of one lookup.
func NewNominatimProvider(
	cfg *config.GeocodingConfig,
	region *entity.TargetRegion,
	throttle service.Throttle,
	logger *slog.Logger,
) *NominatimProvider {
	return &NominatimProvider{
		baseURL:   strings.TrimRight(cfg.Nominatim.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		limit:     cfg.Nominatim.Limit,
		client:    &http.Client{Timeout: cfg.Timeout},
		region:    region,
		throttle:  throttle,
		logger:    logger,
	}
}

// Name returns the provider identifier
func (p *NominatimProvider) Name() string {
	return constants.GeocodeProviderNominatim
}

// Geocode tries each query variant in turn and returns the best scored
// candidate of the first variant that yields one. A transport failure stops
// the remaining variants.
func (p *NominatimProvider) Geocode(ctx context.Context, address string) (entity.Coordinate, error) {
	query := strings.ToLower(address)

	for _, variant := range p.variants(address) {
		if err := p.throttle.Wait(ctx); err != nil {
			return entity.Coordinate{}, errors.WithStack(err)
		}

		var results []nominatimResult
		if err := getJSON(ctx, p.client, p.Name(), p.searchURL(variant), p.userAgent, &results); err != nil {
			return entity.Coordinate{}, err
		}

		best, ok := bestCandidate(p.region, query, toCandidates(results))
		if !ok {
			p.logger.Debug("[Nominatim] No acceptable candidate",
				slog.String("variant", variant),
				slog.Int("results", len(results)),
			)

			continue
		}

		p.logger.Debug("[Nominatim] Geocoded address",
			slog.String("address", address),
			slog.String("match", best.DisplayName),
			slog.Float64("lat", best.Coordinate.Lat),
			slog.Float64("lng", best.Coordinate.Lng),
		)

		return best.Coordinate, nil
	}

	return entity.Coordinate{}, errors.WithStack(service.ErrGeocodeNotFound)
}

func (p *NominatimProvider) variants(address string) []string {
	city, country := p.region.City, p.region.Country

	return []string{
		fmt.Sprintf("%s, %s, %s", address, city, country),
		fmt.Sprintf("%s, %s", address, city),
		fmt.Sprintf("%s %s %s", address, city, country),
		address,
	}
}

func (p *NominatimProvider) searchURL(q string) string {
	box := p.region.SearchBox
	params := url.Values{}
	params.Set("q", q)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(p.limit))
	params.Set("addressdetails", "1")
	params.Set("bounded", "1")
	params.Set("viewbox", formatBox(box.Min.X(), box.Min.Y(), box.Max.X(), box.Max.Y()))
	if p.region.CountryCode != "" {
		params.Set("countrycodes", p.region.CountryCode)
	}

	return p.baseURL + "/search?" + params.Encode()
}

// toCandidates drops results whose coordinates do not parse.
func toCandidates(results []nominatimResult) []entity.GeocodeCandidate {
	candidates := make([]entity.GeocodeCandidate, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			continue
		}

		candidates = append(candidates, entity.GeocodeCandidate{
			DisplayName: r.DisplayName,
			Type:        r.Type,
			Coordinate:  entity.Coordinate{Lat: lat, Lng: lng},
		})
	}

	return candidates
}

// formatBox renders west,south,east,north as both providers expect.
func formatBox(west, south, east, north float64) string {
	parts := []string{
		strconv.FormatFloat(west, 'f', -1, 64),
		strconv.FormatFloat(south, 'f', -1, 64),
		strconv.FormatFloat(east, 'f', -1, 64),
		strconv.FormatFloat(north, 'f', -1, 64),
	}

	return strings.Join(parts, ",")
}
