package graph

import (
	"math"

	"routeopt/internal/domain/entity"
	"routeopt/internal/util"
)

const kmPerDegreeLat = 111.0

// gridIndex buckets vertices into cells of roughly cellSizeKm for nearest
// vertex lookups.
type gridIndex struct {
	vertices    []Vertex
	cells       map[cell][]int
	cellSizeLat float64
	cellSizeLng float64
	minLat      float64
	minLng      float64
	maxRing     int
}

type cell struct {
	lat int
	lng int
}

func newGridIndex(vertices []Vertex, cellSizeKm float64) *gridIndex {
	g := &gridIndex{
		vertices:    vertices,
		cells:       make(map[cell][]int),
		cellSizeLat: cellSizeKm / kmPerDegreeLat,
	}
	if len(vertices) == 0 {
		return g
	}

	minLat, maxLat := vertices[0].Lat, vertices[0].Lat
	minLng, maxLng := vertices[0].Lng, vertices[0].Lng
	for _, v := range vertices[1:] {
		minLat, maxLat = math.Min(minLat, v.Lat), math.Max(maxLat, v.Lat)
		minLng, maxLng = math.Min(minLng, v.Lng), math.Max(maxLng, v.Lng)
	}
	g.minLat, g.minLng = minLat, minLng

	// Longitude degrees shrink with latitude; size cells at the graph's middle.
	midLat := (minLat + maxLat) / 2 * math.Pi / 180
	g.cellSizeLng = cellSizeKm / (kmPerDegreeLat * math.Max(math.Cos(midLat), 0.01))

	for i, v := range vertices {
		key := g.cellOf(v.Lat, v.Lng)
		g.cells[key] = append(g.cells[key], i)
	}

	latCells := int(math.Ceil((maxLat - minLat) / g.cellSizeLat))
	lngCells := int(math.Ceil((maxLng - minLng) / g.cellSizeLng))
	g.maxRing = max(latCells, lngCells) + 1

	return g
}

func (g *gridIndex) cellOf(lat, lng float64) cell {
	return cell{
		lat: int(math.Floor((lat - g.minLat) / g.cellSizeLat)),
		lng: int(math.Floor((lng - g.minLng) / g.cellSizeLng)),
	}
}

// nearest returns the closest vertex and its great-circle distance. Rings of
// cells are searched outward until the next ring cannot hold a closer vertex.
func (g *gridIndex) nearest(c entity.Coordinate) (int, float64, bool) {
	if len(g.vertices) == 0 {
		return -1, 0, false
	}

	center := g.cellOf(c.Lat, c.Lng)
	best, bestDist := -1, math.MaxFloat64
	ringWidthMeters := math.Min(g.cellSizeLat, g.cellSizeLng) * kmPerDegreeLat * 1000

	for ring := 0; ring <= g.maxRing; ring++ {
		g.visitRing(center, ring, func(idx int) {
			v := g.vertices[idx]
			if d := util.HaversineMeters(c, entity.Coordinate{Lat: v.Lat, Lng: v.Lng}); d < bestDist {
				best, bestDist = idx, d
			}
		})

		if best >= 0 && float64(ring)*ringWidthMeters >= bestDist {
			break
		}
	}

	return best, bestDist, best >= 0
}

func (g *gridIndex) visitRing(center cell, ring int, visit func(idx int)) {
	for dLat := -ring; dLat <= ring; dLat++ {
		for dLng := -ring; dLng <= ring; dLng++ {
			if ring > 0 && abs(dLat) != ring && abs(dLng) != ring {
				continue
			}
			for _, idx := range g.cells[cell{lat: center.lat + dLat, lng: center.lng + dLng}] {
				visit(idx)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
