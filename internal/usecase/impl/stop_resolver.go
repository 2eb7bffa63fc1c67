package impl

import (
	"context"
	"log/slog"

	"routeopt/internal/domain/entity"
	domainerrors "routeopt/internal/domain/errors"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	"routeopt/internal/usecase"

	"go.uber.org/fx"
)

// StopResolverParams holds dependencies for StopResolver, injected by Fx
type StopResolverParams struct {
	fx.In

	Geocoder  usecase.GeocodingUsecase
	Directory service.ClientDirectory `optional:"true"`
	Region    *entity.TargetRegion
	Logger    *slog.Logger
}

type stopResolver struct {
	geocoder  usecase.GeocodingUsecase
	directory service.ClientDirectory
	region    *entity.TargetRegion
	logger    *slog.Logger
}

// NewStopResolver creates the stop position resolver
func NewStopResolver(params StopResolverParams) usecase.StopResolver {
	return &stopResolver{
		geocoder:  params.Geocoder,
		directory: params.Directory,
		region:    params.Region,
		logger:    params.Logger,
	}
}

// Resolve tries the known coordinate, the address text, the client record
// and the fallback region in that order.
func (r *stopResolver) Resolve(ctx context.Context, stop entity.Stop) (entity.Coordinate, error) {
	if stop.KnownCoordinate != nil {
		if !stop.KnownCoordinate.IsValid() {
			return entity.Coordinate{}, domainerrors.ErrInvalidInput.WithDetails("stop " + stop.ID + " has an out of range coordinate")
		}

		return *stop.KnownCoordinate, nil
	}

	if stop.HasAddress() {
		return r.geocoder.ResolveWithFallback(ctx, *stop.AddressText), nil
	}

	if stop.ClientID != "" && r.directory != nil {
		coord, ok, err := r.resolveClient(ctx, stop)
		if err != nil {
			return entity.Coordinate{}, err
		}
		if ok {
			return coord, nil
		}
	}

	if stop.FallbackRegion != nil {
		return r.region.RegionCentroid(*stop.FallbackRegion), nil
	}

	if stop.ClientID != "" {
		r.logger.Warn("[StopResolver] No position for client, using default centroid",
			slog.String("stop_id", stop.ID),
			slog.String("client_id", stop.ClientID),
		)

		return r.region.CountryCentroid, nil
	}

	return entity.Coordinate{}, domainerrors.ErrStopUnresolvable.WithDetails("stop " + stop.ID)
}

// resolveClient reports ok=false when the directory has nothing usable so the
// caller can continue with the fallback region.
func (r *stopResolver) resolveClient(ctx context.Context, stop entity.Stop) (entity.Coordinate, bool, error) {
	profile, err := r.directory.Lookup(ctx, stop.ClientID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.Coordinate{}, false, errors.WithStack(ctxErr)
		}
		if !errors.Is(err, service.ErrClientNotFound) {
			r.logger.Warn("[StopResolver] Client directory lookup failed",
				slog.String("client_id", stop.ClientID),
				slog.Any("error", err),
			)
		}

		return entity.Coordinate{}, false, nil
	}

	if address := profile.FullAddress(); address != "" {
		return r.geocoder.ResolveWithFallback(ctx, address), true, nil
	}
	if profile.Region != "" {
		return r.region.RegionCentroid(profile.Region), true, nil
	}

	return entity.Coordinate{}, false, nil
}
