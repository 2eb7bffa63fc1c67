package entity

// GeocodeCandidate is one result returned by an external search provider.
type GeocodeCandidate struct {
	DisplayName string
	Type        string
	Coordinate  Coordinate
}

// GeocodeTier names the layer that produced a resolution.
type GeocodeTier string

const (
	GeocodeTierCache           GeocodeTier = "cache"
	GeocodeTierGazetteer       GeocodeTier = "gazetteer"
	GeocodeTierFallbackCity    GeocodeTier = "fallback_city"
	GeocodeTierFallbackCountry GeocodeTier = "fallback_country"
	GeocodeTierNotFound        GeocodeTier = "not_found"
)
