package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"routeopt/config"
	"routeopt/internal/domain/constants"
	"routeopt/internal/domain/entity"
	domainerrors "routeopt/internal/domain/errors"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	"routeopt/internal/usecase"

	"go.uber.org/fx"
)

// OptimizerServiceParams holds dependencies for OptimizerService, injected by Fx
type OptimizerServiceParams struct {
	fx.In

	Config          *config.OptimizerConfig
	Resolver        usecase.StopResolver
	Routing         usecase.RoutingUsecase
	GeocodeThrottle service.Throttle        `name:"geocodeThrottle"`
	RoadThrottle    service.Throttle        `name:"roadThrottle"`
	Metrics         service.MetricsRecorder `optional:"true"`
	Logger          *slog.Logger
}

type optimizerService struct {
	roadWindow      int
	roadFactor      float64
	maxPasses       int
	resolver        usecase.StopResolver
	routing         usecase.RoutingUsecase
	geocodeThrottle service.Throttle
	roadThrottle    service.Throttle
	metrics         service.MetricsRecorder
	logger          *slog.Logger
}

// NewOptimizerService creates the round planner
func NewOptimizerService(params OptimizerServiceParams) usecase.OptimizerUsecase {
	cfg := params.Config
	if cfg == nil {
		cfg = config.DefaultOptimizerConfig()
	}

	window := cfg.RoadWindow
	if cfg.Metric == constants.MetricHaversine {
		window = 0
	}

	recorder := params.Metrics
	if recorder == nil {
		recorder = service.NoopMetrics{}
	}

	return &optimizerService{
		roadWindow:      window,
		roadFactor:      cfg.RoadFactor,
		maxPasses:       cfg.MaxTwoOptPasses,
		resolver:        params.Resolver,
		routing:         params.Routing,
		geocodeThrottle: params.GeocodeThrottle,
		roadThrottle:    params.RoadThrottle,
		metrics:         recorder,
		logger:          params.Logger,
	}
}

// Optimize implements usecase.OptimizerUsecase
func (s *optimizerService) Optimize(ctx context.Context, start entity.Coordinate, stops []entity.Stop) (*entity.RoutePlan, error) {
	began := time.Now()

	if err := validateStops(start, stops); err != nil {
		return nil, err
	}

	if len(stops) == 0 {
		return &entity.RoutePlan{
			OrderedStopIDs: []string{},
			Polyline:       []entity.Coordinate{start},
			Waypoints:      []entity.Coordinate{start},
		}, nil
	}

	coords, err := s.resolveAll(ctx, stops)
	if err != nil {
		return nil, err
	}

	order := []int{0}
	if len(stops) > 1 {
		order, err = s.nearestNeighbour(ctx, start, coords)
		if err != nil {
			return nil, err
		}

		var passes int
		order, passes = twoOpt(start, coords, order, twoOptPassCap(s.maxPasses, len(stops)), scaledHaversine(s.roadFactor))
		s.logger.Debug("[Optimizer] 2-opt finished", slog.Int("improvements", passes))
	}

	plan, err := s.buildPlan(ctx, start, stops, coords, order)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(began)
	s.metrics.OptimizeObserved(len(stops), elapsed)
	s.logger.Info("[Optimizer] Round optimized",
		slog.Int("stops", len(stops)),
		slog.Float64("distance_km", plan.TotalDistanceMeters/1000),
		slog.Float64("duration_min", plan.TotalDurationSeconds/60),
		slog.String("provider", plan.Provider),
		slog.Duration("elapsed", elapsed),
	)

	return plan, nil
}

func validateStops(start entity.Coordinate, stops []entity.Stop) error {
	if !start.IsValid() {
		return domainerrors.ErrInvalidInput.WithDetails("start coordinate is out of range")
	}

	seen := make(map[string]struct{}, len(stops))
	for _, stop := range stops {
		if stop.ID == "" {
			return domainerrors.ErrInvalidInput.WithDetails("stop id is required")
		}
		if _, dup := seen[stop.ID]; dup {
			return domainerrors.ErrInvalidInput.WithDetails("duplicate stop id " + stop.ID)
		}
		seen[stop.ID] = struct{}{}
	}

	return nil
}

// resolveAll resolves every stop up front, pacing consecutive lookups.
func (s *optimizerService) resolveAll(ctx context.Context, stops []entity.Stop) ([]entity.Coordinate, error) {
	coords := make([]entity.Coordinate, len(stops))
	for i, stop := range stops {
		if err := s.geocodeThrottle.Wait(ctx); err != nil {
			return nil, errors.WithStack(err)
		}

		coord, err := s.resolver.Resolve(ctx, stop)
		if err != nil {
			return nil, err
		}
		coords[i] = coord
	}

	return coords, nil
}

// nearestNeighbour builds the greedy order. At each step the first
// roadWindow unvisited stops are measured by road and the rest by scaled
// great-circle distance; the smallest value wins and earlier stops win ties.
func (s *optimizerService) nearestNeighbour(ctx context.Context, start entity.Coordinate, coords []entity.Coordinate) ([]int, error) {
	estimate := scaledHaversine(s.roadFactor)
	unvisited := make([]int, len(coords))
	for i := range unvisited {
		unvisited[i] = i
	}

	order := make([]int, 0, len(coords))
	current := start

	for len(unvisited) > 0 {
		bestPos, bestDist := -1, math.Inf(1)

		for pos, idx := range unvisited {
			var d float64
			if pos < s.roadWindow {
				if err := s.roadThrottle.Wait(ctx); err != nil {
					return nil, errors.WithStack(err)
				}
				d, _ = s.routing.DistanceAndDuration(ctx, current, coords[idx])
			} else {
				d = estimate(current, coords[idx])
			}

			if d < bestDist {
				bestPos, bestDist = pos, d
			}
		}

		next := unvisited[bestPos]
		order = append(order, next)
		current = coords[next]
		unvisited = append(unvisited[:bestPos], unvisited[bestPos+1:]...)
	}

	return order, nil
}

func (s *optimizerService) buildPlan(
	ctx context.Context,
	start entity.Coordinate,
	stops []entity.Stop,
	coords []entity.Coordinate,
	order []int,
) (*entity.RoutePlan, error) {
	waypoints := make([]entity.Coordinate, 0, len(order)+1)
	waypoints = append(waypoints, start)
	ids := make([]string, 0, len(order))
	for _, idx := range order {
		waypoints = append(waypoints, coords[idx])
		ids = append(ids, stops[idx].ID)
	}

	route, err := s.routing.Route(ctx, waypoints)
	if err != nil {
		return nil, err
	}
	if len(route.Polyline) < 2 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("insufficient route points generated")
	}

	return &entity.RoutePlan{
		OrderedStopIDs:       ids,
		TotalDistanceMeters:  route.DistanceMeters,
		TotalDurationSeconds: route.DurationSeconds,
		Polyline:             route.Polyline,
		Waypoints:            waypoints,
		Instructions:         route.Instructions,
		Provider:             route.Provider,
	}, nil
}
