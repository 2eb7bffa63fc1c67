package routing

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"routeopt/config"
	"routeopt/internal/domain/constants"
	"routeopt/internal/domain/service"

	"github.com/protomaps/go-pmtiles/pmtiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offlineConfig() *config.RoutingConfig {
	cfg := config.DefaultRoutingConfig()
	cfg.OSRM.Enabled = false
	cfg.ORS.Enabled = false

	return cfg
}

func providerNames(providers []service.RoutingProvider) []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}

	return names
}

func TestNewProviders_TileArchiveTier(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "sousse.pmtiles")
	header := pmtiles.HeaderV3{SpecVersion: 3, TileType: pmtiles.Mvt, MaxZoom: 14}
	require.NoError(t, os.WriteFile(archive, pmtiles.SerializeHeader(header), 0o600))

	cfg := offlineConfig()
	cfg.OSRM.Enabled = true
	cfg.PMTiles.Enabled = true
	cfg.PMTiles.Source = archive

	providers, err := NewProviders(ProviderParams{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	assert.Equal(t, []string{constants.RoutingProviderOSRM, constants.RoutingProviderPMTiles}, providerNames(providers))

	checker, ok := providers[1].(service.ReadinessChecker)
	require.True(t, ok)
	assert.True(t, checker.IsReady())
}

func TestNewProviders_MissingArchiveFailsStartup(t *testing.T) {
	cfg := offlineConfig()
	cfg.PMTiles.Enabled = true
	cfg.PMTiles.Source = filepath.Join(t.TempDir(), "absent.pmtiles")

	_, err := NewProviders(ProviderParams{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open tile archive")
}

func TestNewProviders_ORSWithoutKeySkipped(t *testing.T) {
	cfg := offlineConfig()
	cfg.ORS.Enabled = true

	providers, err := NewProviders(ProviderParams{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)
	assert.Empty(t, providers)
}
