package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"routeopt/config"
	"routeopt/internal/domain/entity"
	"routeopt/internal/errors"
	"routeopt/internal/infra/routing/graph"
	"routeopt/internal/util"
)

type routeOptions struct {
	dir      string
	points   string
	speedKmh float64
	snapKm   float64
}

func runRoute(ctx context.Context, out io.Writer, opts routeOptions) error {
	waypoints, err := parseWaypoints(opts.points)
	if err != nil {
		return err
	}
	if len(waypoints) < 2 {
		return errors.New("at least two waypoints are required")
	}

	cfg := config.DefaultRoutingConfig()
	cfg.DefaultSpeedKmh = opts.speedKmh
	cfg.Graph.MaxSnapDistanceKm = opts.snapKm

	router := graph.NewRouter(cfg, slog.New(slog.DiscardHandler))

	loadStart := time.Now()
	if err := router.LoadDir(opts.dir); err != nil {
		return err
	}
	fmt.Fprintf(out, "Graph loaded in %s\n", util.FormatDuration(time.Since(loadStart)))

	route, err := router.Route(ctx, waypoints)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Distance: %.2f km\n", route.DistanceMeters/1000)
	fmt.Fprintf(out, "Duration: %.1f min\n", route.DurationSeconds/60)
	fmt.Fprintf(out, "Polyline points: %d\n", len(route.Polyline))

	return nil
}

// parseWaypoints reads "lat,lng;lat,lng" into coordinates.
func parseWaypoints(raw string) ([]entity.Coordinate, error) {
	parts := strings.Split(raw, ";")
	waypoints := make([]entity.Coordinate, 0, len(parts))

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		latText, lngText, ok := strings.Cut(part, ",")
		if !ok {
			return nil, errors.Errorf("waypoint %d: expected lat,lng", i)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "waypoint %d: lat", i)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(lngText), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "waypoint %d: lng", i)
		}

		c := entity.Coordinate{Lat: lat, Lng: lng}
		if !c.IsValid() {
			return nil, errors.Errorf("waypoint %d out of range", i)
		}
		waypoints = append(waypoints, c)
	}

	return waypoints, nil
}
