package entity

// Route is a road (or synthesized) path through an ordered waypoint list.
type Route struct {
	Polyline        []Coordinate `json:"polyline"`
	DistanceMeters  float64      `json:"distanceMeters"`
	DurationSeconds float64      `json:"durationSeconds"`
	Instructions    []string     `json:"instructions,omitempty"`
	Provider        string       `json:"provider"`
}

// RoutePlan is the result of one optimization call. The caller owns it.
type RoutePlan struct {
	OrderedStopIDs       []string     `json:"orderedStopIds"`
	TotalDistanceMeters  float64      `json:"totalDistanceMeters"`
	TotalDurationSeconds float64      `json:"totalDurationSeconds"`
	Polyline             []Coordinate `json:"polyline"`
	Waypoints            []Coordinate `json:"waypoints"`
	Instructions         []string     `json:"instructions,omitempty"`
	Provider             string       `json:"provider,omitempty"`
}
