package pmtiles

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"routeopt/config"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/require"
)

const testZoom = 12

// Road network inside tile 12/2168/1611 (Sousse):
//
//	D ---------- C
//	|            |
//	A ---------- B        E --> F (one way)
//
// A-B-C is primary, A-D-C is a longer residential detour.
//
//nolint:gochecknoglobals
var (
	pointA = orb.Point{10.56, 35.800}
	pointB = orb.Point{10.58, 35.800}
	pointC = orb.Point{10.58, 35.810}
	pointD = orb.Point{10.56, 35.815}
	pointE = orb.Point{10.60, 35.800}
	pointF = orb.Point{10.62, 35.800}

	testTile = maptile.At(pointA, testZoom)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRoutingConfig() *config.RoutingConfig {
	cfg := config.DefaultRoutingConfig()
	cfg.PMTiles.Enabled = true
	cfg.PMTiles.ZoomLevel = testZoom

	return cfg
}

func road(class string, oneway bool, points ...orb.Point) *geojson.Feature {
	f := geojson.NewFeature(orb.LineString(points))
	f.Properties["class"] = class
	if oneway {
		f.Properties["oneway"] = true
	}

	return f
}

// encodeTile builds plain MVT bytes with one road layer.
func encodeTile(t *testing.T, tile maptile.Tile, layer string, roads ...*geojson.Feature) []byte {
	t.Helper()

	fc := geojson.NewFeatureCollection()
	for _, r := range roads {
		fc.Append(r)
	}
	layers := mvt.NewLayers(map[string]*geojson.FeatureCollection{layer: fc})
	layers.ProjectToTile(tile)

	data, err := mvt.Marshal(layers)
	require.NoError(t, err)

	return data
}

func sousseTile(t *testing.T) []byte {
	t.Helper()

	return encodeTile(t, testTile, "transportation",
		road("primary", false, pointA, pointB, pointC),
		road("residential", false, pointA, pointD, pointC),
		road("secondary", true, pointE, pointF),
	)
}

// tileServer serves fixed tiles and counts fetches.
type tileServer struct {
	tiles   map[maptile.Tile][]byte
	fetches atomic.Int32
}

func (s *tileServer) fetch(ctx context.Context, tile maptile.Tile) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.fetches.Add(1)

	data, ok := s.tiles[tile]
	if !ok {
		return nil, errTileNotFound
	}

	return data, nil
}
