package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs the second-level geocode cache and the client directory
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for course event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Geocoding configuration for the address resolution pipeline
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Routing configuration for the provider chain
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// Optimizer configuration for the tour heuristics
	Optimizer *OptimizerConfig `json:"optimizer" yaml:"optimizer"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Connection URL, e.g. redis://localhost:6379/0
	URL string `json:"url" yaml:"url"`

	// Prefix for geocode cache keys
	GeocodeKeyPrefix string `json:"geocodeKeyPrefix" yaml:"geocodeKeyPrefix"`

	// Prefix for client profile hashes
	ClientKeyPrefix string `json:"clientKeyPrefix" yaml:"clientKeyPrefix"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected in push OIDC tokens (worker side)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// GeocodingConfig defines the geocoder tiers
type GeocodingConfig struct {
	// Path to the region data file (gazetteer, bounding box, centroids)
	RegionFile string `json:"regionFile" yaml:"regionFile"`

	// User-Agent sent to public geocoding services
	UserAgent string `json:"userAgent" yaml:"userAgent"`

	// Per-request HTTP timeout
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Delay between query variants sent to the primary provider
	VariantInterval time.Duration `json:"variantInterval" yaml:"variantInterval"`

	Nominatim ProviderEndpoint `json:"nominatim" yaml:"nominatim"`
	Photon    ProviderEndpoint `json:"photon" yaml:"photon"`
}

// ProviderEndpoint defines one external search provider
type ProviderEndpoint struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Limit   int    `json:"limit" yaml:"limit"`
}

// RoutingConfig defines the routing provider chain
type RoutingConfig struct {
	// Default vehicle speed in km/h for duration estimation when no provider answers
	DefaultSpeedKmh float64 `json:"defaultSpeedKmh" yaml:"defaultSpeedKmh"`

	// Per-request HTTP timeout
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	OSRM  OSRMConfig  `json:"osrm" yaml:"osrm"`
	ORS   ORSConfig   `json:"ors" yaml:"ors"`
	Graph GraphConfig `json:"graph" yaml:"graph"`

	PMTiles PMTilesConfig `json:"pmtiles" yaml:"pmtiles"`
}

// OSRMConfig defines the primary routing service
type OSRMConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Profile string `json:"profile" yaml:"profile"`
}

// ORSConfig defines the secondary routing service
type ORSConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	Profile string `json:"profile" yaml:"profile"`
}

// PMTilesConfig defines the vector-tile routing tier
type PMTilesConfig struct {
	// Enable routing over road layers read from a PMTiles archive
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Archive location: a local path, a file:// URL or an http(s) URL
	Source string `json:"source" yaml:"source"`

	// Road layer name in the MVT tiles
	RoadLayer string `json:"roadLayer" yaml:"roadLayer"`

	// Zoom level for tile queries
	ZoomLevel int `json:"zoomLevel" yaml:"zoomLevel"`

	// Number of parsed tiles kept in memory
	CacheSize int `json:"cacheSize" yaml:"cacheSize"`

	// Maximum distance in kilometers for snapping a waypoint to a road
	MaxSnapDistanceKm float64 `json:"maxSnapDistanceKm" yaml:"maxSnapDistanceKm"`
}

// GraphConfig defines the local road-graph routing tier
type GraphConfig struct {
	// Enable the local graph tier (inserted before straight-line synthesis)
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path to the directory containing vertices.csv, edges.csv and metadata.json
	DataPath string `json:"dataPath" yaml:"dataPath"`

	// Maximum distance in kilometers for snapping a waypoint to the road network
	MaxSnapDistanceKm float64 `json:"maxSnapDistanceKm" yaml:"maxSnapDistanceKm"`

	// Grid cell size in kilometers for the spatial index
	GridCellSizeKm float64 `json:"gridCellSizeKm" yaml:"gridCellSizeKm"`
}

// OptimizerConfig defines the tour heuristics
type OptimizerConfig struct {
	// Number of unvisited stops evaluated with road distance per nearest-neighbour step
	RoadWindow int `json:"roadWindow" yaml:"roadWindow"`

	// Multiplier applied to great-circle distance to approximate road distance
	RoadFactor float64 `json:"roadFactor" yaml:"roadFactor"`

	// Upper bound on 2-opt passes (effective cap is min(maxTwoOptPasses, 2n))
	MaxTwoOptPasses int `json:"maxTwoOptPasses" yaml:"maxTwoOptPasses"`

	// "hybrid" (road window + scaled great-circle) or "haversine" (scaled great-circle only)
	Metric string `json:"metric" yaml:"metric"`

	// Minimum spacing between geocoding calls
	GeocodeInterval time.Duration `json:"geocodeInterval" yaml:"geocodeInterval"`

	// Minimum spacing between road-distance calls
	RoadDistanceInterval time.Duration `json:"roadDistanceInterval" yaml:"roadDistanceInterval"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
