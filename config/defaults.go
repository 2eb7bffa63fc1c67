package config

import (
	"strings"
	"time"
)

const (
	defaultRegionFile           = "config/regions/sousse.yaml"
	defaultUserAgent            = "RouteOptimizationApp/1.0"
	defaultGeocodeTimeout       = 15 * time.Second
	defaultVariantInterval      = 300 * time.Millisecond
	defaultNominatimURL         = "https://nominatim.openstreetmap.org"
	defaultNominatimLimit       = 5
	defaultPhotonURL            = "https://photon.komoot.io"
	defaultPhotonLimit          = 3
	defaultSpeedKmh             = 30.0
	defaultRoutingTimeout       = 10 * time.Second
	defaultOSRMURL              = "https://router.project-osrm.org"
	defaultOSRMProfile          = "driving"
	defaultORSURL               = "https://api.openrouteservice.org"
	defaultORSProfile           = "driving-car"
	defaultMaxSnapDistanceKm    = 1.0
	defaultGridCellSizeKm       = 1.0
	defaultRoadLayer            = "transportation"
	defaultTileZoom             = 14
	defaultTileCacheSize        = 64
	defaultTileSnapDistanceKm   = 0.5
	defaultRoadWindow           = 3
	defaultRoadFactor           = 1.3
	defaultMaxTwoOptPasses      = 10
	defaultMetric               = "hybrid"
	defaultGeocodeInterval      = 200 * time.Millisecond
	defaultRoadDistanceInterval = 100 * time.Millisecond
	defaultMetricsPath          = "/metrics"
	defaultGeocodeKeyPrefix     = "geocode:"
	defaultClientKeyPrefix      = "client:"
)

// DefaultGeocodingConfig returns the geocoder settings used when the section is absent.
func DefaultGeocodingConfig() *GeocodingConfig {
	return &GeocodingConfig{
		RegionFile:      defaultRegionFile,
		UserAgent:       defaultUserAgent,
		Timeout:         defaultGeocodeTimeout,
		VariantInterval: defaultVariantInterval,
		Nominatim:       ProviderEndpoint{Enabled: true, BaseURL: defaultNominatimURL, Limit: defaultNominatimLimit},
		Photon:          ProviderEndpoint{Enabled: true, BaseURL: defaultPhotonURL, Limit: defaultPhotonLimit},
	}
}

// DefaultRoutingConfig returns the routing settings used when the section is absent.
func DefaultRoutingConfig() *RoutingConfig {
	return &RoutingConfig{
		DefaultSpeedKmh: defaultSpeedKmh,
		Timeout:         defaultRoutingTimeout,
		OSRM:            OSRMConfig{Enabled: true, BaseURL: defaultOSRMURL, Profile: defaultOSRMProfile},
		ORS:             ORSConfig{Enabled: true, BaseURL: defaultORSURL, Profile: defaultORSProfile},
		Graph:           GraphConfig{MaxSnapDistanceKm: defaultMaxSnapDistanceKm, GridCellSizeKm: defaultGridCellSizeKm},
		PMTiles: PMTilesConfig{
			RoadLayer:         defaultRoadLayer,
			ZoomLevel:         defaultTileZoom,
			CacheSize:         defaultTileCacheSize,
			MaxSnapDistanceKm: defaultTileSnapDistanceKm,
		},
	}
}

// DefaultOptimizerConfig returns the heuristic settings used when the section is absent.
func DefaultOptimizerConfig() *OptimizerConfig {
	return &OptimizerConfig{
		RoadWindow:           defaultRoadWindow,
		RoadFactor:           defaultRoadFactor,
		MaxTwoOptPasses:      defaultMaxTwoOptPasses,
		Metric:               defaultMetric,
		GeocodeInterval:      defaultGeocodeInterval,
		RoadDistanceInterval: defaultRoadDistanceInterval,
	}
}

func (c *Config) applyDefaults() {
	if c.Geocoding == nil {
		c.Geocoding = DefaultGeocodingConfig()
	}
	c.Geocoding.fillZero()

	if c.Routing == nil {
		c.Routing = DefaultRoutingConfig()
	}
	c.Routing.fillZero()

	if c.Optimizer == nil {
		c.Optimizer = DefaultOptimizerConfig()
	}
	c.Optimizer.fillZero()

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{Enabled: true}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}

	if c.Redis != nil {
		if c.Redis.GeocodeKeyPrefix == "" {
			c.Redis.GeocodeKeyPrefix = defaultGeocodeKeyPrefix
		}
		if c.Redis.ClientKeyPrefix == "" {
			c.Redis.ClientKeyPrefix = defaultClientKeyPrefix
		}
	}
}

func (g *GeocodingConfig) fillZero() {
	if strings.TrimSpace(g.RegionFile) == "" {
		g.RegionFile = defaultRegionFile
	}
	if g.UserAgent == "" {
		g.UserAgent = defaultUserAgent
	}
	if g.Timeout <= 0 {
		g.Timeout = defaultGeocodeTimeout
	}
	if g.VariantInterval < 0 {
		g.VariantInterval = 0
	}
	if g.Nominatim.BaseURL == "" {
		g.Nominatim.BaseURL = defaultNominatimURL
	}
	if g.Nominatim.Limit <= 0 {
		g.Nominatim.Limit = defaultNominatimLimit
	}
	if g.Photon.BaseURL == "" {
		g.Photon.BaseURL = defaultPhotonURL
	}
	if g.Photon.Limit <= 0 {
		g.Photon.Limit = defaultPhotonLimit
	}
}

func (r *RoutingConfig) fillZero() {
	if r.DefaultSpeedKmh <= 0 {
		r.DefaultSpeedKmh = defaultSpeedKmh
	}
	if r.Timeout <= 0 {
		r.Timeout = defaultRoutingTimeout
	}
	if r.OSRM.BaseURL == "" {
		r.OSRM.BaseURL = defaultOSRMURL
	}
	if r.OSRM.Profile == "" {
		r.OSRM.Profile = defaultOSRMProfile
	}
	if r.ORS.BaseURL == "" {
		r.ORS.BaseURL = defaultORSURL
	}
	if r.ORS.Profile == "" {
		r.ORS.Profile = defaultORSProfile
	}
	if r.Graph.MaxSnapDistanceKm <= 0 {
		r.Graph.MaxSnapDistanceKm = defaultMaxSnapDistanceKm
	}
	if r.Graph.GridCellSizeKm <= 0 {
		r.Graph.GridCellSizeKm = defaultGridCellSizeKm
	}
	if r.PMTiles.RoadLayer == "" {
		r.PMTiles.RoadLayer = defaultRoadLayer
	}
	if r.PMTiles.ZoomLevel <= 0 {
		r.PMTiles.ZoomLevel = defaultTileZoom
	}
	if r.PMTiles.CacheSize <= 0 {
		r.PMTiles.CacheSize = defaultTileCacheSize
	}
	if r.PMTiles.MaxSnapDistanceKm <= 0 {
		r.PMTiles.MaxSnapDistanceKm = defaultTileSnapDistanceKm
	}
}

func (o *OptimizerConfig) fillZero() {
	if o.RoadWindow < 0 {
		o.RoadWindow = 0
	}
	if o.RoadWindow == 0 && o.Metric != "haversine" {
		o.RoadWindow = defaultRoadWindow
	}
	if o.RoadFactor <= 0 {
		o.RoadFactor = defaultRoadFactor
	}
	if o.MaxTwoOptPasses <= 0 {
		o.MaxTwoOptPasses = defaultMaxTwoOptPasses
	}
	if o.Metric == "" {
		o.Metric = defaultMetric
	}
	if o.GeocodeInterval < 0 {
		o.GeocodeInterval = 0
	}
	if o.RoadDistanceInterval < 0 {
		o.RoadDistanceInterval = 0
	}
}
