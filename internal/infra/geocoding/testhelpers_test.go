package geocoding

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"routeopt/config"
	"routeopt/internal/domain/entity"

	"github.com/paulmach/orb"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRegion() *entity.TargetRegion {
	return &entity.TargetRegion{
		City:            "Sousse",
		Country:         "Tunisia",
		CountryCode:     "tn",
		CityCentroid:    entity.Coordinate{Lat: 35.8245, Lng: 10.6346},
		CountryCentroid: entity.Coordinate{Lat: 36.8065, Lng: 10.1815},
		Bounds:          orb.Bound{Min: orb.Point{10.5, 35.7}, Max: orb.Point{10.7, 35.95}},
		SearchBox:       orb.Bound{Min: orb.Point{10.5, 35.7}, Max: orb.Point{10.7, 35.9}},
		Landmarks: []entity.Landmark{
			{Query: "14 janvier", Result: "14 janvier"},
			{Query: "corniche", Result: "corniche"},
			{Query: "imam abou hanifa", Result: "imam"},
			{Query: "khzema", Result: "khzema"},
		},
	}
}

func testGeocodingConfig(baseURL string) *config.GeocodingConfig {
	cfg := config.DefaultGeocodingConfig()
	cfg.Nominatim.BaseURL = baseURL
	cfg.Photon.BaseURL = baseURL

	return cfg
}

// countingThrottle records how many waits were requested.
type countingThrottle struct {
	waits atomic.Int32
	err   error
}

func (t *countingThrottle) Wait(_ context.Context) error {
	t.waits.Add(1)

	return t.err
}

// steppingClock advances by the requested duration on every Sleep.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *steppingClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)

	return nil
}
