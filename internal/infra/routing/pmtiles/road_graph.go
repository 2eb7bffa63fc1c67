package pmtiles

import (
	"container/heap"
	"math"
	"strconv"

	"routeopt/internal/domain/entity"
	"routeopt/internal/util"

	"github.com/paulmach/orb"
)

// NodeID identifies a node of a RoadGraph.
type NodeID int64

// Edge is a directed road link.
type Edge struct {
	To       NodeID
	Distance float64 // meters
	Duration float64 // seconds
}

// RoadGraph is the road network decoded from one or more tiles. Points that
// round to the same ~1 m key share a node, which joins features and tiles.
type RoadGraph struct {
	Nodes    map[NodeID]orb.Point
	Edges    map[NodeID][]Edge
	nodeIdx  int64
	pointMap map[string]NodeID
}

// NewRoadGraph creates an empty graph
func NewRoadGraph() *RoadGraph {
	return &RoadGraph{
		Nodes:    make(map[NodeID]orb.Point),
		Edges:    make(map[NodeID][]Edge),
		pointMap: make(map[string]NodeID),
	}
}

// AddSegment links consecutive points of segment. Segments without a known
// speed use defaultSpeedKmh.
func (g *RoadGraph) AddSegment(segment *RoadSegment, defaultSpeedKmh float64) {
	if len(segment.Points) < 2 {
		return
	}

	speed := segment.MaxSpeed
	if speed <= 0 {
		speed = defaultSpeedKmh
	}

	prev := g.getOrCreateNode(segment.Points[0])
	for _, point := range segment.Points[1:] {
		curr := g.getOrCreateNode(point)
		if curr == prev {
			continue
		}

		dist := pointMeters(g.Nodes[prev], g.Nodes[curr])
		edge := Edge{To: curr, Distance: dist, Duration: util.DurationSeconds(dist, speed)}
		g.Edges[prev] = append(g.Edges[prev], edge)

		if !segment.OneWay {
			g.Edges[curr] = append(g.Edges[curr], Edge{To: prev, Distance: dist, Duration: edge.Duration})
		}

		prev = curr
	}
}

func (g *RoadGraph) getOrCreateNode(point orb.Point) NodeID {
	key := pointKey(point)
	if id, ok := g.pointMap[key]; ok {
		return id
	}

	g.nodeIdx++
	id := NodeID(g.nodeIdx)
	g.Nodes[id] = point
	g.pointMap[key] = id

	return id
}

// pointKey rounds to five decimals, about one meter.
func pointKey(p orb.Point) string {
	lat := math.Round(p[1]*1e5) / 1e5
	lng := math.Round(p[0]*1e5) / 1e5

	return strconv.FormatFloat(lat, 'f', 5, 64) + "," + strconv.FormatFloat(lng, 'f', 5, 64)
}

// FindNearestNode scans every node; graphs are built per request from a
// handful of tiles.
func (g *RoadGraph) FindNearestNode(point orb.Point) (NodeID, float64, bool) {
	if len(g.Nodes) == 0 {
		return 0, 0, false
	}

	var nearest NodeID
	best := math.MaxFloat64
	for id, p := range g.Nodes {
		if d := pointMeters(point, p); d < best || (d == best && id < nearest) {
			nearest, best = id, d
		}
	}

	return nearest, best, true
}

// mergeGraphs copies source into target, remapping node IDs by point key
func mergeGraphs(target, source *RoadGraph) {
	idMapping := make(map[NodeID]NodeID, len(source.Nodes))
	for sourceID, point := range source.Nodes {
		idMapping[sourceID] = target.getOrCreateNode(point)
	}

	for sourceFrom, edges := range source.Edges {
		targetFrom := idMapping[sourceFrom]
		for _, edge := range edges {
			target.Edges[targetFrom] = append(target.Edges[targetFrom], Edge{
				To:       idMapping[edge.To],
				Distance: edge.Distance,
				Duration: edge.Duration,
			})
		}
	}
}

// PathResult is the outcome of a shortest path search.
type PathResult struct {
	Nodes       []NodeID
	Distance    float64 // meters
	Duration    float64 // seconds
	IsReachable bool
}

// Pathfinder runs Dijkstra by distance over a RoadGraph.
type Pathfinder struct {
	graph *RoadGraph
}

// NewPathfinder creates a pathfinder for graph
func NewPathfinder(graph *RoadGraph) *Pathfinder {
	return &Pathfinder{graph: graph}
}

type dijkstraNode struct {
	id       NodeID
	distance float64
	duration float64
	index    int
}

type priorityQueue []*dijkstraNode

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].distance < pq[j].distance
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	node := x.(*dijkstraNode)
	node.index = len(*pq)
	*pq = append(*pq, node)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*pq = old[:n-1]

	return node
}

// ShortestPath returns the node path from source to target
func (pf *Pathfinder) ShortestPath(source, target NodeID) PathResult {
	if _, ok := pf.graph.Nodes[source]; !ok {
		return PathResult{}
	}
	if _, ok := pf.graph.Nodes[target]; !ok {
		return PathResult{}
	}

	distances := map[NodeID]float64{source: 0}
	prev := make(map[NodeID]NodeID)
	visited := make(map[NodeID]bool)

	pq := &priorityQueue{}
	heap.Push(pq, &dijkstraNode{id: source})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*dijkstraNode)
		if visited[current.id] {
			continue
		}
		visited[current.id] = true

		if current.id == target {
			return PathResult{
				Nodes:       tracePath(prev, source, target),
				Distance:    current.distance,
				Duration:    current.duration,
				IsReachable: true,
			}
		}

		for _, edge := range pf.graph.Edges[current.id] {
			if visited[edge.To] {
				continue
			}
			d := current.distance + edge.Distance
			if known, ok := distances[edge.To]; ok && d >= known {
				continue
			}
			distances[edge.To] = d
			prev[edge.To] = current.id
			heap.Push(pq, &dijkstraNode{id: edge.To, distance: d, duration: current.duration + edge.Duration})
		}
	}

	return PathResult{}
}

func tracePath(prev map[NodeID]NodeID, source, target NodeID) []NodeID {
	path := []NodeID{target}
	for n := target; n != source; {
		n = prev[n]
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func pointMeters(a, b orb.Point) float64 {
	return util.HaversineMeters(entity.CoordinateFromPoint(a), entity.CoordinateFromPoint(b))
}
