// Package geocoding implements the address resolution tiers: the local
// gazetteer, the Nominatim and Photon search providers and the in-memory cache.
package geocoding

import (
	"log/slog"

	"routeopt/config"
	"routeopt/internal/domain/entity"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// RegionParams holds dependencies for building the target region, injected by Fx
type RegionParams struct {
	fx.In

	Data   *config.RegionData
	Logger *slog.Logger
}

// LoadRegionData reads the configured region file
func LoadRegionData(cfg *config.GeocodingConfig) (*config.RegionData, error) {
	return config.LoadRegion(cfg.RegionFile)
}

// ProvideTargetRegion converts the loaded region data for the use cases
func ProvideTargetRegion(params RegionParams) *entity.TargetRegion {
	region := NewTargetRegion(params.Data)
	params.Logger.Info("[Geocoding] Target region loaded",
		slog.String("city", region.City),
		slog.Int("gazetteer_entries", len(params.Data.Gazetteer)),
		slog.Int("region_centroids", len(region.Centroids)),
	)

	return region
}

// NewTargetRegion converts region data into the domain form
func NewTargetRegion(data *config.RegionData) *entity.TargetRegion {
	region := &entity.TargetRegion{
		City:            data.City,
		Country:         data.Country,
		CountryCode:     data.CountryCode,
		CityCentroid:    entity.Coordinate{Lat: data.CityCentroid.Lat, Lng: data.CityCentroid.Lng},
		CountryCentroid: entity.Coordinate{Lat: data.CountryCentroid.Lat, Lng: data.CountryCentroid.Lng},
		Bounds:          toBound(data.Bounds),
		SearchBox:       toBound(data.SearchBox),
		Centroids:       make(map[entity.Region]entity.Coordinate, len(data.Regions)),
		StartLabel:      data.StartLabel,
		StopLabel:       data.StopLabel,
	}

	// An omitted search box falls back to the acceptance bounds
	if region.SearchBox.IsZero() {
		region.SearchBox = region.Bounds
	}

	for _, lm := range data.Landmarks {
		region.Landmarks = append(region.Landmarks, entity.Landmark{Query: lm.Query, Result: lm.Result})
	}

	for name, c := range data.Regions {
		region.Centroids[entity.Region(name)] = entity.Coordinate{Lat: c.Lat, Lng: c.Lng}
	}

	return region
}

func toBound(b config.Box) orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}
