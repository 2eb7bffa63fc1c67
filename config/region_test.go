package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegion_BundledSousse(t *testing.T) {
	region, err := LoadRegion("regions/sousse.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Sousse", region.City)
	assert.Equal(t, "tn", region.CountryCode)
	assert.InDelta(t, 35.8245, region.CityCentroid.Lat, 1e-9)
	assert.InDelta(t, 10.1815, region.CountryCentroid.Lng, 1e-9)
	assert.InDelta(t, 35.95, region.Bounds.North, 1e-9)
	assert.InDelta(t, 35.9, region.SearchBox.North, 1e-9)
	assert.Len(t, region.Landmarks, 4)
	assert.Len(t, region.Regions, 24)

	require.NotEmpty(t, region.Gazetteer)
	// Order is preserved from the file
	assert.Equal(t, "boulevard du 14 janvier sousse corniche", region.Gazetteer[0].Name)
	assert.Equal(t, "sousse", region.Gazetteer[len(region.Gazetteer)-1].Name)
}

func TestLoadRegion_NotFound(t *testing.T) {
	_, err := LoadRegion(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRegion_InvalidBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := "city: nowhere\nbounds: { north: 1, south: 2, east: 3, west: 4 }\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadRegion(path)
	assert.Error(t, err)
}

func TestRegionData_Validate(t *testing.T) {
	tests := []struct {
		name    string
		region  RegionData
		wantErr bool
	}{
		{
			name:   "valid",
			region: RegionData{City: "sousse", Bounds: Box{North: 36, South: 35, East: 11, West: 10}},
		},
		{
			name:    "missing city",
			region:  RegionData{Bounds: Box{North: 36, South: 35, East: 11, West: 10}},
			wantErr: true,
		},
		{
			name: "blank gazetteer name",
			region: RegionData{
				City:      "sousse",
				Bounds:    Box{North: 36, South: 35, East: 11, West: 10},
				Gazetteer: []GazetteerItem{{Name: "  "}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.region.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyDefaults_NilSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.NotNil(t, cfg.Geocoding)
	require.NotNil(t, cfg.Routing)
	require.NotNil(t, cfg.Optimizer)
	assert.True(t, cfg.Geocoding.Nominatim.Enabled)
	assert.Equal(t, 30.0, cfg.Routing.DefaultSpeedKmh)
	assert.Equal(t, 3, cfg.Optimizer.RoadWindow)
	assert.Equal(t, 1.3, cfg.Optimizer.RoadFactor)
	assert.Equal(t, 10, cfg.Optimizer.MaxTwoOptPasses)
	assert.Equal(t, "hybrid", cfg.Optimizer.Metric)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Optimizer: &OptimizerConfig{RoadWindow: 5, RoadFactor: 1.5, Metric: "haversine"},
		Redis:     &RedisConfig{Enabled: true},
	}
	cfg.applyDefaults()

	assert.Equal(t, 5, cfg.Optimizer.RoadWindow)
	assert.Equal(t, 1.5, cfg.Optimizer.RoadFactor)
	assert.Equal(t, "haversine", cfg.Optimizer.Metric)
	assert.Equal(t, "geocode:", cfg.Redis.GeocodeKeyPrefix)
	assert.Equal(t, "client:", cfg.Redis.ClientKeyPrefix)
}
