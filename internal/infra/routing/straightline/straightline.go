// Package straightline synthesizes a route from great-circle segments when no
// road-network provider answers.
package straightline

import (
	"context"
	"fmt"

	"routeopt/internal/domain/constants"
	"routeopt/internal/domain/entity"
	"routeopt/internal/util"
)

// PointsPerSegment is the number of interpolated points inserted between two
// consecutive waypoints.
const PointsPerSegment = 5

// Provider never fails. Distance is the Haversine sum and duration assumes a
// constant speed.
type Provider struct {
	speedKmh   float64
	startLabel string
	stopLabel  string
}

// NewProvider creates the synthesis tier. Labels name the instructions.
func NewProvider(speedKmh float64, startLabel, stopLabel string) *Provider {
	return &Provider{speedKmh: speedKmh, startLabel: startLabel, stopLabel: stopLabel}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return constants.RoutingProviderStraightLine
}

// Route connects consecutive waypoints with interpolated straight segments
func (p *Provider) Route(_ context.Context, waypoints []entity.Coordinate) (*entity.Route, error) {
	result := &entity.Route{Provider: p.Name()}
	if len(waypoints) == 0 {
		return result, nil
	}

	result.Polyline = make([]entity.Coordinate, 0, len(waypoints)+(len(waypoints)-1)*PointsPerSegment)
	result.Polyline = append(result.Polyline, waypoints[0])
	result.Instructions = append(result.Instructions, p.startLabel)

	for i := 1; i < len(waypoints); i++ {
		from, to := waypoints[i-1], waypoints[i]
		result.Polyline = append(result.Polyline, util.Interpolate(from, to, PointsPerSegment)...)
		result.Polyline = append(result.Polyline, to)
		result.DistanceMeters += util.HaversineMeters(from, to)
		result.Instructions = append(result.Instructions, fmt.Sprintf("%s %d", p.stopLabel, i))
	}
	result.DurationSeconds = util.DurationSeconds(result.DistanceMeters, p.speedKmh)

	return result, nil
}
