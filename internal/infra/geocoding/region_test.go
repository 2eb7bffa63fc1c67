package geocoding

import (
	"testing"

	"routeopt/config"
	"routeopt/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTargetRegion(t *testing.T) {
	data, err := LoadRegionData(&config.GeocodingConfig{RegionFile: "config/regions/sousse.yaml"})
	require.NoError(t, err)

	region := NewTargetRegion(data)

	assert.Equal(t, "Sousse", region.City)
	assert.Len(t, region.Landmarks, 4)
	assert.True(t, region.Contains(entity.Coordinate{Lat: 35.95, Lng: 10.7}), "edges are inside")
	assert.False(t, region.Contains(entity.Coordinate{Lat: 36.8065, Lng: 10.1815}))
	assert.InDelta(t, 35.9, region.SearchBox.Max.Y(), 1e-9)
	assert.Equal(t, entity.Coordinate{Lat: 35.7643, Lng: 10.8113}, region.RegionCentroid(entity.Region("MONASTIR")))
	assert.Equal(t, region.CountryCentroid, region.RegionCentroid(entity.Region("ATLANTIS")))
}

func TestNewTargetRegion_SearchBoxDefaultsToBounds(t *testing.T) {
	region := NewTargetRegion(&config.RegionData{
		City:   "Sousse",
		Bounds: config.Box{North: 35.95, South: 35.7, East: 10.7, West: 10.5},
	})

	assert.Equal(t, region.Bounds, region.SearchBox)
}
