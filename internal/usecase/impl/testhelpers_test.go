package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"routeopt/internal/domain/entity"
	"routeopt/internal/util"
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
		Centroids: map[entity.Region]entity.Coordinate{
			entity.RegionTunis:  {Lat: 36.8065, Lng: 10.1815},
			entity.RegionNabeul: {Lat: 36.4561, Lng: 10.7376},
		},
	}
}

func strPtr(s string) *string {
	return &s
}

// countingThrottle records waits and optionally fails them.
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

func newSteppingClock() *steppingClock {
	return &steppingClock{now: time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)}
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

// gaps returns the spacing between consecutive timestamps.
func gaps(at []time.Time) []time.Duration {
	out := make([]time.Duration, 0, len(at))
	for i := 1; i < len(at); i++ {
		out = append(out, at[i].Sub(at[i-1]))
	}

	return out
}

// stubGazetteer matches exact normalized keys only.
type stubGazetteer map[string]entity.Coordinate

func (g stubGazetteer) Lookup(normalized string) (entity.Coordinate, string, bool) {
	coord, ok := g[normalized]

	return coord, normalized, ok
}

// recordingMetrics keeps every observation for assertions.
type recordingMetrics struct {
	mu       sync.Mutex
	tiers    []string
	routing  map[string]int
	failures map[string]int
	rounds   int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{routing: map[string]int{}, failures: map[string]int{}}
}

func (m *recordingMetrics) GeocodeResolved(tier string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tiers = append(m.tiers, tier)
}

func (m *recordingMetrics) RoutingRequest(provider string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routing[provider]++
	if err != nil {
		m.failures[provider]++
	}
}

func (m *recordingMetrics) OptimizeObserved(_ int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds++
}

// haversineRouting answers every request with great-circle legs.
type haversineRouting struct {
	distanceCalls atomic.Int32
	routeCalls    atomic.Int32
	lastWaypoints []entity.Coordinate
	routeErr      error
}

func (r *haversineRouting) Route(_ context.Context, waypoints []entity.Coordinate) (*entity.Route, error) {
	r.routeCalls.Add(1)
	r.lastWaypoints = append([]entity.Coordinate(nil), waypoints...)
	if r.routeErr != nil {
		return nil, r.routeErr
	}

	total := 0.0
	for i := 1; i < len(waypoints); i++ {
		total += util.HaversineMeters(waypoints[i-1], waypoints[i])
	}

	return &entity.Route{
		Polyline:        append([]entity.Coordinate(nil), waypoints...),
		DistanceMeters:  total,
		DurationSeconds: util.DurationSeconds(total, 30),
		Provider:        "test",
	}, nil
}

func (r *haversineRouting) DistanceAndDuration(_ context.Context, from, to entity.Coordinate) (float64, float64) {
	r.distanceCalls.Add(1)
	meters := util.HaversineMeters(from, to)

	return meters, util.DurationSeconds(meters, 30)
}

// knownResolver returns the stop's known coordinate.
type knownResolver struct{}

func (knownResolver) Resolve(_ context.Context, stop entity.Stop) (entity.Coordinate, error) {
	return *stop.KnownCoordinate, nil
}
