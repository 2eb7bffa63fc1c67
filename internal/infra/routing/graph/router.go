package graph

import (
	"container/heap"
	"context"
	"log/slog"
	"math"
	"sync"

	"routeopt/config"
	"routeopt/internal/domain/constants"
	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	"routeopt/internal/util"
)

// ErrNotReady is returned before graph data has been loaded.
var ErrNotReady = errors.New("graph router not ready")

// Router answers routes over a loaded road graph.
type Router struct {
	maxSnapMeters float64
	cellSizeKm    float64
	speedKmh      float64
	logger        *slog.Logger

	mu       sync.RWMutex
	vertices []Vertex
	adj      [][]arc
	index    *gridIndex
}

type arc struct {
	to     int
	meters float64
}

// NewRouter creates an empty router using the graph settings
func NewRouter(cfg *config.RoutingConfig, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}

	return &Router{
		maxSnapMeters: cfg.Graph.MaxSnapDistanceKm * 1000,
		cellSizeKm:    cfg.Graph.GridCellSizeKm,
		speedKmh:      cfg.DefaultSpeedKmh,
		logger:        logger,
	}
}

// Name returns the provider identifier
func (r *Router) Name() string {
	return constants.RoutingProviderGraph
}

// LoadDir loads graph data from dir and swaps it in
func (r *Router) LoadDir(dir string) error {
	data, err := Load(dir)
	if err != nil {
		return errors.Wrap(err, "failed to load graph data")
	}
	r.Use(data)

	attrs := []any{slog.String("dir", dir), slog.Int("vertices", len(data.Vertices)), slog.Int("edges", len(data.Edges))}
	if data.Metadata != nil {
		attrs = append(attrs, slog.String("region", data.Metadata.Region), slog.Time("generated_at", data.Metadata.GeneratedAt))
	}
	r.logger.Info("[GraphRouter] Road graph loaded", attrs...)

	return nil
}

// Use installs already loaded graph data
func (r *Router) Use(data *Data) {
	adj := make([][]arc, len(data.Vertices))
	for _, e := range data.Edges {
		adj[e.From] = append(adj[e.From], arc{to: e.To, meters: e.DistanceMeters})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.vertices = data.Vertices
	r.adj = adj
	r.index = newGridIndex(data.Vertices, r.cellSizeKm)
}

// IsReady reports whether graph data is loaded
func (r *Router) IsReady() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.vertices) > 0
}

// Route snaps every waypoint to the graph and joins the shortest paths
// between consecutive waypoints. Snap or reachability failures are provider
// failures so the chain can move on.
func (r *Router) Route(ctx context.Context, waypoints []entity.Coordinate) (*entity.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.vertices) == 0 {
		return nil, errors.Wrap(service.ErrRoutingProviderFailure, ErrNotReady.Error())
	}

	nodes := make([]int, len(waypoints))
	for i, w := range waypoints {
		idx, dist, ok := r.index.nearest(w)
		if !ok || dist > r.maxSnapMeters {
			return nil, errors.Wrapf(service.ErrRoutingProviderFailure,
				"graph: waypoint %d is %.0f m from the road network", i, dist)
		}
		nodes[i] = idx
	}

	result := &entity.Route{Provider: r.Name()}
	for i := range nodes {
		if i == 0 {
			result.Polyline = append(result.Polyline, r.coordinate(nodes[0]))

			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		path, meters, ok := r.shortestPath(nodes[i-1], nodes[i])
		if !ok {
			return nil, errors.Wrapf(service.ErrRoutingProviderFailure, "graph: waypoint %d is unreachable", i)
		}
		for _, node := range path[1:] {
			result.Polyline = append(result.Polyline, r.coordinate(node))
		}
		result.DistanceMeters += meters
	}

	// A single snapped node still yields a drawable line.
	if len(result.Polyline) == 1 {
		result.Polyline = append(result.Polyline, result.Polyline[0])
	}
	result.DurationSeconds = util.DurationSeconds(result.DistanceMeters, r.speedKmh)

	return result, nil
}

func (r *Router) coordinate(node int) entity.Coordinate {
	v := r.vertices[node]

	return entity.Coordinate{Lat: v.Lat, Lng: v.Lng}
}

// shortestPath runs Dijkstra from source to target and returns the node path.
func (r *Router) shortestPath(source, target int) ([]int, float64, bool) {
	if source == target {
		return []int{source}, 0, true
	}

	dist := make([]float64, len(r.vertices))
	prev := make([]int, len(r.vertices))
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[source] = 0

	pq := &queue{{node: source}}
	for pq.Len() > 0 {
		current := heap.Pop(pq).(item)
		if current.node == target {
			break
		}
		if current.dist > dist[current.node] {
			continue
		}

		for _, a := range r.adj[current.node] {
			if d := current.dist + a.meters; d < dist[a.to] {
				dist[a.to] = d
				prev[a.to] = current.node
				heap.Push(pq, item{node: a.to, dist: d})
			}
		}
	}

	if math.IsInf(dist[target], 1) {
		return nil, 0, false
	}

	var path []int
	for n := target; n != -1; n = prev[n] {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], true
}

type item struct {
	node int
	dist float64
}

type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }
func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
