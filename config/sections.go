package config

// GeocodingSection exposes the geocoding settings to constructors that only need them.
func GeocodingSection(cfg *Config) *GeocodingConfig {
	if cfg == nil || cfg.Geocoding == nil {
		return DefaultGeocodingConfig()
	}

	return cfg.Geocoding
}

// RoutingSection exposes the routing settings.
func RoutingSection(cfg *Config) *RoutingConfig {
	if cfg == nil || cfg.Routing == nil {
		return DefaultRoutingConfig()
	}

	return cfg.Routing
}

// OptimizerSection exposes the optimizer settings.
func OptimizerSection(cfg *Config) *OptimizerConfig {
	if cfg == nil || cfg.Optimizer == nil {
		return DefaultOptimizerConfig()
	}

	return cfg.Optimizer
}
