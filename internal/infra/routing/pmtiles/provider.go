// Package pmtiles routes over the road layer of a PMTiles vector-tile
// archive. Tiles covering the waypoints are decoded into a road graph and
// legs are joined by Dijkstra.
package pmtiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"sync"

	"routeopt/config"
	"routeopt/internal/domain/constants"
	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	"routeopt/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	// maxTilesPerRoute bounds the area one request may decode.
	maxTilesPerRoute = 64
	tileLoadWorkers  = 4
)

var errTileNotFound = errors.New("tile not found")

// TileFetcher returns the raw MVT bytes of one tile.
type TileFetcher func(ctx context.Context, tile maptile.Tile) ([]byte, error)

// Provider is the vector-tile routing tier.
type Provider struct {
	zoom          maptile.Zoom
	maxSnapMeters float64
	speedKmh      float64
	fetch         TileFetcher
	parser        *MVTParser
	cache         *tileCache
	loads         singleflight.Group
	logger        *slog.Logger
}

// Open checks the archive and starts a tile server for it. Local archives
// must exist and carry a valid header.
func Open(ctx context.Context, cfg *config.RoutingConfig, logger *slog.Logger) (*Provider, error) {
	tiles := cfg.PMTiles
	if tiles.Source == "" {
		return nil, errors.New("pmtiles source is required when enabled")
	}

	loc, err := parseSourcePath(tiles.Source)
	if err != nil {
		return nil, err
	}

	if loc.isLocal() {
		header, err := readHeader(ctx, loc)
		if err != nil {
			return nil, err
		}
		if header.TileType != pmtiles.Mvt {
			return nil, errors.Errorf("tile archive %s does not hold vector tiles", loc.key)
		}
		if zoom := uint8(tiles.ZoomLevel); zoom < header.MinZoom || zoom > header.MaxZoom {
			logger.Warn("[PMTiles] Zoom level outside archive range",
				slog.Int("zoom", tiles.ZoomLevel),
				slog.Int("min_zoom", int(header.MinZoom)),
				slog.Int("max_zoom", int(header.MaxZoom)),
			)
		}
	}

	server, err := pmtiles.NewServer(loc.bucketURL, "", log.New(io.Discard, "", 0), tiles.CacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}
	server.Start()

	fetch := func(ctx context.Context, tile maptile.Tile) ([]byte, error) {
		status, _, data := server.Get(ctx, fmt.Sprintf("/%s/%d/%d/%d.mvt", loc.tileset, tile.Z, tile.X, tile.Y))
		switch status {
		case http.StatusOK:
			return data, nil
		case http.StatusNotFound, http.StatusNoContent:
			return nil, errTileNotFound
		default:
			return nil, errors.Errorf("tile server returned status %d", status)
		}
	}

	logger.Info("[PMTiles] Tile archive opened",
		slog.String("source", tiles.Source),
		slog.String("tileset", loc.tileset),
		slog.String("road_layer", tiles.RoadLayer),
		slog.Int("zoom_level", tiles.ZoomLevel),
	)

	return NewProvider(cfg, fetch, logger), nil
}

// NewProvider creates a provider reading tiles through fetch
func NewProvider(cfg *config.RoutingConfig, fetch TileFetcher, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}

	return &Provider{
		zoom:          maptile.Zoom(cfg.PMTiles.ZoomLevel),
		maxSnapMeters: cfg.PMTiles.MaxSnapDistanceKm * 1000,
		speedKmh:      cfg.DefaultSpeedKmh,
		fetch:         fetch,
		parser:        NewMVTParser(cfg.PMTiles.RoadLayer),
		cache:         newTileCache(cfg.PMTiles.CacheSize),
		logger:        logger,
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return constants.RoutingProviderPMTiles
}

// IsReady reports whether a tile source is attached
func (p *Provider) IsReady() bool {
	return p.fetch != nil
}

// Route snaps the waypoints to roads of the covering tiles and joins the
// shortest legs. Snap distances count at the default speed.
func (p *Provider) Route(ctx context.Context, waypoints []entity.Coordinate) (*entity.Route, error) {
	if len(waypoints) == 0 {
		return nil, errors.Wrap(service.ErrRoutingProviderFailure, "pmtiles: no waypoints")
	}

	graph, err := p.buildGraphForArea(ctx, waypoints)
	if err != nil {
		return nil, err
	}

	nodes := make([]NodeID, len(waypoints))
	snaps := make([]float64, len(waypoints))
	for i, w := range waypoints {
		id, dist, ok := graph.FindNearestNode(w.Point())
		if !ok || dist > p.maxSnapMeters {
			return nil, errors.Wrapf(service.ErrRoutingProviderFailure,
				"pmtiles: waypoint %d is %.0f m from the road network", i, dist)
		}
		nodes[i], snaps[i] = id, dist
	}

	pathfinder := NewPathfinder(graph)
	result := &entity.Route{
		Polyline: []entity.Coordinate{entity.CoordinateFromPoint(graph.Nodes[nodes[0]])},
		Provider: p.Name(),
	}

	for i := 1; i < len(nodes); i++ {
		leg := pathfinder.ShortestPath(nodes[i-1], nodes[i])
		if !leg.IsReachable {
			return nil, errors.Wrapf(service.ErrRoutingProviderFailure, "pmtiles: waypoint %d is unreachable", i)
		}
		for _, id := range leg.Nodes[1:] {
			result.Polyline = append(result.Polyline, entity.CoordinateFromPoint(graph.Nodes[id]))
		}

		snap := snaps[i-1] + snaps[i]
		result.DistanceMeters += leg.Distance + snap
		result.DurationSeconds += leg.Duration + util.DurationSeconds(snap, p.speedKmh)
	}

	if len(result.Polyline) == 1 {
		result.Polyline = append(result.Polyline, result.Polyline[0])
	}

	return result, nil
}

// buildGraphForArea merges the tiles covering the waypoints plus the snap
// radius. Missing or undecodable tiles are skipped.
func (p *Provider) buildGraphForArea(ctx context.Context, waypoints []entity.Coordinate) (*RoadGraph, error) {
	bound := orb.MultiPoint(pointsOf(waypoints)).Bound()
	pad := p.maxSnapMeters / 111_320
	bound = bound.Pad(pad)

	tiles := tilesForBound(bound, p.zoom)
	if len(tiles) > maxTilesPerRoute {
		return nil, errors.Wrapf(service.ErrRoutingProviderFailure,
			"pmtiles: route spans %d tiles, limit is %d", len(tiles), maxTilesPerRoute)
	}

	graphs := make([]*RoadGraph, len(tiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(tileLoadWorkers)
	for i, tile := range tiles {
		g.Go(func() error {
			tileGraph, err := p.loadTileGraph(gctx, tile)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return errors.WithStack(ctxErr)
				}
				if !errors.Is(err, errTileNotFound) {
					p.logger.Debug("[PMTiles] Skipping tile",
						slog.String("tile", tileKey(tile)),
						slog.Any("error", err),
					)
				}

				return nil
			}
			graphs[i] = tileGraph

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	graph := NewRoadGraph()
	for _, tileGraph := range graphs {
		if tileGraph != nil {
			mergeGraphs(graph, tileGraph)
		}
	}

	return graph, nil
}

// loadTileGraph decodes one tile, sharing concurrent loads of the same tile.
func (p *Provider) loadTileGraph(ctx context.Context, tile maptile.Tile) (*RoadGraph, error) {
	key := tileKey(tile)
	if graph, ok := p.cache.get(key); ok {
		return graph, nil
	}

	v, err, _ := p.loads.Do(key, func() (any, error) {
		data, err := p.fetch(ctx, tile)
		if err != nil {
			return nil, err
		}

		segments, err := p.parser.ParseTile(data, tile)
		if err != nil {
			return nil, err
		}

		graph := NewRoadGraph()
		for i := range segments {
			graph.AddSegment(&segments[i], p.speedKmh)
		}
		p.cache.put(key, graph)

		return graph, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*RoadGraph), nil
}

func tileKey(tile maptile.Tile) string {
	return fmt.Sprintf("%d/%d/%d", tile.Z, tile.X, tile.Y)
}

// tilesForBound lists the tiles covering bound at zoom
func tilesForBound(bound orb.Bound, zoom maptile.Zoom) []maptile.Tile {
	minTile := maptile.At(orb.Point{bound.Min[0], bound.Max[1]}, zoom)
	maxTile := maptile.At(orb.Point{bound.Max[0], bound.Min[1]}, zoom)

	tiles := make([]maptile.Tile, 0, (maxTile.X-minTile.X+1)*(maxTile.Y-minTile.Y+1))
	for x := minTile.X; x <= maxTile.X; x++ {
		for y := minTile.Y; y <= maxTile.Y; y++ {
			tiles = append(tiles, maptile.Tile{X: x, Y: y, Z: zoom})
		}
	}

	return tiles
}

func pointsOf(coords []entity.Coordinate) []orb.Point {
	points := make([]orb.Point, len(coords))
	for i, c := range coords {
		points[i] = c.Point()
	}

	return points
}

// tileCache keeps decoded tile graphs, dropping the oldest past its limit.
type tileCache struct {
	mu     sync.Mutex
	limit  int
	graphs map[string]*RoadGraph
	order  []string
}

func newTileCache(limit int) *tileCache {
	if limit <= 0 {
		limit = 1
	}

	return &tileCache{limit: limit, graphs: make(map[string]*RoadGraph, limit)}
}

func (c *tileCache) get(key string) (*RoadGraph, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	graph, ok := c.graphs[key]

	return graph, ok
}

func (c *tileCache) put(key string, graph *RoadGraph) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.graphs[key]; ok {
		return
	}
	for len(c.order) >= c.limit {
		delete(c.graphs, c.order[0])
		c.order = c.order[1:]
	}
	c.graphs[key] = graph
	c.order = append(c.order, key)
}
