package entity

import (
	"strings"

	"github.com/paulmach/orb"
)

// TargetRegion is the city the geocoder is tuned for, with its fallbacks.
type TargetRegion struct {
	City        string
	Country     string
	CountryCode string

	CityCentroid    Coordinate
	CountryCentroid Coordinate

	// Bounds accepts candidates; SearchBox is sent to providers as a viewbox.
	Bounds    orb.Bound
	SearchBox orb.Bound

	Landmarks []Landmark
	Centroids map[Region]Coordinate

	StartLabel string
	StopLabel  string
}

// Landmark is a keyword pair matched between a query and a result description.
type Landmark struct {
	Query  string
	Result string
}

// Contains reports whether c lies inside the acceptance bounds, edges included.
func (r *TargetRegion) Contains(c Coordinate) bool {
	return r.Bounds.Contains(c.Point())
}

// MentionsCity reports whether text names the target city.
func (r *TargetRegion) MentionsCity(text string) bool {
	if r.City == "" {
		return false
	}

	return strings.Contains(strings.ToLower(text), strings.ToLower(r.City))
}

// RegionCentroid returns the centroid for a governorate. Unknown regions get
// the country default centroid (the capital).
func (r *TargetRegion) RegionCentroid(region Region) Coordinate {
	if c, ok := r.Centroids[region]; ok {
		return c
	}

	return r.CountryCentroid
}
