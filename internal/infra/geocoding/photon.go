package geocoding

import (
	"context"
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

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// PhotonProvider searches the Komoot Photon API inside the target region.
type PhotonProvider struct {
	baseURL   string
	userAgent string
	limit     int
	client    *http.Client
	region    *entity.TargetRegion
	logger    *slog.Logger
}

// NewPhotonProvider creates the bounded Photon search tier
func NewPhotonProvider(cfg *config.GeocodingConfig, region *entity.TargetRegion, logger *slog.Logger) *PhotonProvider {
	return &PhotonProvider{
		baseURL:   strings.TrimRight(cfg.Photon.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		limit:     cfg.Photon.Limit,
		client:    &http.Client{Timeout: cfg.Timeout},
		region:    region,
		logger:    logger,
	}
}

// Name returns the provider identifier
func (p *PhotonProvider) Name() string {
	return constants.GeocodeProviderPhoton
}

// Geocode runs one query scoped to the search box and returns the first point
// feature inside the acceptance bounds.
func (p *PhotonProvider) Geocode(ctx context.Context, address string) (entity.Coordinate, error) {
	var fc geojson.FeatureCollection
	if err := getJSON(ctx, p.client, p.Name(), p.searchURL(address), p.userAgent, &fc); err != nil {
		return entity.Coordinate{}, err
	}

	for _, f := range fc.Features {
		point, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}

		c := entity.CoordinateFromPoint(point)
		if !p.region.Contains(c) {
			p.logger.Debug("[Photon] Candidate outside bounds",
				slog.Float64("lat", c.Lat),
				slog.Float64("lng", c.Lng),
			)

			continue
		}

		return c, nil
	}

	return entity.Coordinate{}, errors.WithStack(service.ErrGeocodeNotFound)
}

func (p *PhotonProvider) searchURL(address string) string {
	box := p.region.SearchBox
	params := url.Values{}
	params.Set("q", address+", "+p.region.City+", "+p.region.Country)
	params.Set("limit", strconv.Itoa(p.limit))
	params.Set("bbox", formatBox(box.Min.X(), box.Min.Y(), box.Max.X(), box.Max.Y()))

	return p.baseURL + "/api/?" + params.Encode()
}
