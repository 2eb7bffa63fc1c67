// Package constants holds identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Routing provider names used in logs and metrics
const (
	RoutingProviderOSRM         = "osrm"
	RoutingProviderORS          = "openrouteservice"
	RoutingProviderGraph        = "graph"
	RoutingProviderPMTiles      = "pmtiles"
	RoutingProviderStraightLine = "straight_line"
)

// Geocoding provider names used in logs and metrics
const (
	GeocodeProviderNominatim = "nominatim"
	GeocodeProviderPhoton    = "photon"
)

// Optimizer distance metrics
const (
	MetricHybrid    = "hybrid"
	MetricHaversine = "haversine"
)
