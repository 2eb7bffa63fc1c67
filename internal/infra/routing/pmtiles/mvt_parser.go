package pmtiles

import (
	"routeopt/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
)

// RoadSegment is one line feature of the road layer in WGS84.
type RoadSegment struct {
	Points   []orb.Point
	Class    string  // road class, e.g. "primary" or "residential"
	MaxSpeed float64 // km/h, 0 when the class has no known speed
	OneWay   bool
	Name     string
}

// MVTParser extracts road segments from vector tiles.
type MVTParser struct {
	roadLayerName string
}

// NewMVTParser creates a parser reading the named layer
func NewMVTParser(roadLayerName string) *MVTParser {
	return &MVTParser{roadLayerName: roadLayerName}
}

// ParseTile decodes gzipped or plain MVT data. A tile without the road
// layer yields no segments.
func (p *MVTParser) ParseTile(data []byte, tile maptile.Tile) ([]RoadSegment, error) {
	layers, err := mvt.UnmarshalGzipped(data)
	if err != nil {
		layers, err = mvt.Unmarshal(data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode vector tile")
		}
	}

	var roadLayer *mvt.Layer
	for _, layer := range layers {
		if layer.Name == p.roadLayerName {
			roadLayer = layer

			break
		}
	}
	if roadLayer == nil {
		return nil, nil
	}

	roadLayer.ProjectToWGS84(tile)

	segments := make([]RoadSegment, 0, len(roadLayer.Features))
	for _, feature := range roadLayer.Features {
		if segment, ok := p.extractRoadSegment(feature); ok {
			segments = append(segments, segment)
		}
	}

	return segments, nil
}

func (p *MVTParser) extractRoadSegment(feature *geojson.Feature) (RoadSegment, bool) {
	var points []orb.Point
	switch geom := feature.Geometry.(type) {
	case orb.LineString:
		points = append(points, geom...)
	case orb.MultiLineString:
		for _, ls := range geom {
			points = append(points, ls...)
		}
	default:
		return RoadSegment{}, false
	}
	if len(points) < 2 {
		return RoadSegment{}, false
	}

	class := stringProperty(feature, "class", "highway", "type")

	return RoadSegment{
		Points:   points,
		Class:    class,
		MaxSpeed: roadSpeeds[class],
		OneWay:   boolProperty(feature, "oneway"),
		Name:     stringProperty(feature, "name"),
	}, true
}

// stringProperty returns the first string value among keys
func stringProperty(feature *geojson.Feature, keys ...string) string {
	for _, key := range keys {
		if str, ok := feature.Properties[key].(string); ok {
			return str
		}
	}

	return ""
}

func boolProperty(feature *geojson.Feature, key string) bool {
	switch value := feature.Properties[key].(type) {
	case bool:
		return value
	case int:
		return value != 0
	case int64:
		return value != 0
	case uint64:
		return value != 0
	case float64:
		return value != 0
	case string:
		return value == "yes" || value == "true" || value == "1"
	}

	return false
}

// roadSpeeds holds typical urban speeds in km/h per OpenMapTiles class.
//
//nolint:gochecknoglobals
var roadSpeeds = map[string]float64{
	"motorway":       110,
	"motorway_link":  80,
	"trunk":          80,
	"trunk_link":     60,
	"primary":        60,
	"primary_link":   50,
	"secondary":      50,
	"secondary_link": 40,
	"tertiary":       40,
	"tertiary_link":  30,
	"minor":          30,
	"residential":    30,
	"unclassified":   30,
	"road":           30,
	"living_street":  20,
	"service":        20,
}
