package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"geocoding": map[string]any{
			"regionFile": "config/regions/sousse.yaml",
			"nominatim": map[string]any{
				"baseUrl": "",
			},
		},
		"routing": map[string]any{
			"defaultSpeedKmh": 30,
			"ors": map[string]any{
				"apiKey": "",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GEOCODING_REGIONFILE", want: "geocoding.regionFile"},
		{envKey: "GEOCODING_NOMINATIM_BASEURL", want: "geocoding.nominatim.baseUrl"},
		{envKey: "ROUTING_DEFAULTSPEEDKMH", want: "routing.defaultSpeedKmh"},
		{envKey: "ROUTING_ORS_APIKEY", want: "routing.ors.apiKey"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "OPTIMIZER__METRIC", want: "optimizer.metric"},
		{envKey: "UNKNOWN_SECTION_KEY", want: "unknown.section.key"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

const testConfigYAML = `
env:
  env: develop
  serviceName: routeopt
http:
  port: 8080
routing:
  defaultSpeedKmh: 25
  timeout: 5s
  ors:
    apiKey: ""
optimizer:
  metric: haversine
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("ROUTING_ORS_APIKEY", "ors-secret")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "routeopt", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Routing)
	assert.Equal(t, "ors-secret", cfg.Routing.ORS.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Routing.Timeout)
	assert.InDelta(t, 25.0, cfg.Routing.DefaultSpeedKmh, 1e-9)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Optimizer: &OptimizerConfig{Metric: "haversine"},
		Redis:     &RedisConfig{Enabled: true},
	}
	cfg.applyDefaults()

	require.NotNil(t, cfg.Geocoding)
	assert.Equal(t, defaultRegionFile, cfg.Geocoding.RegionFile)
	assert.Equal(t, defaultGeocodeTimeout, cfg.Geocoding.Timeout)

	require.NotNil(t, cfg.Routing)
	assert.Equal(t, defaultRoutingTimeout, cfg.Routing.Timeout)
	assert.InDelta(t, defaultSpeedKmh, cfg.Routing.DefaultSpeedKmh, 1e-9)

	assert.Equal(t, "haversine", cfg.Optimizer.Metric)
	assert.Zero(t, cfg.Optimizer.RoadWindow)
	assert.Equal(t, defaultMaxTwoOptPasses, cfg.Optimizer.MaxTwoOptPasses)

	require.NotNil(t, cfg.Metrics)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)

	assert.Equal(t, defaultGeocodeKeyPrefix, cfg.Redis.GeocodeKeyPrefix)
	assert.Equal(t, defaultClientKeyPrefix, cfg.Redis.ClientKeyPrefix)
}
