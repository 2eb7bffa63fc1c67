package entity

import (
	"time"

	"github.com/google/uuid"
)

// CourseStatus tracks where a course is in its optimization lifecycle.
type CourseStatus string

const (
	CourseStatusPending   CourseStatus = "pending"
	CourseStatusOptimized CourseStatus = "optimized"
	CourseStatusFailed    CourseStatus = "failed"
)

// Course is a driver's delivery round together with its optimized route.
type Course struct {
	ID             uuid.UUID
	DriverID       string
	Start          Coordinate
	Stops          []Stop
	Status         CourseStatus
	OrderedStopIDs []string
	DistanceKm     float64
	DurationMin    float64
	Route          []Coordinate // start followed by the stop waypoints
	DetailedRoute  []Coordinate // full road polyline
	Instructions   []string
	FailureReason  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ApplyPlan copies an optimization result into the course, converting units
// to kilometers and minutes.
func (c *Course) ApplyPlan(plan *RoutePlan) {
	c.OrderedStopIDs = append([]string(nil), plan.OrderedStopIDs...)
	c.DistanceKm = plan.TotalDistanceMeters / 1000
	c.DurationMin = plan.TotalDurationSeconds / 60
	c.Route = append([]Coordinate(nil), plan.Waypoints...)
	c.DetailedRoute = append([]Coordinate(nil), plan.Polyline...)
	c.Instructions = append([]string(nil), plan.Instructions...)
	c.Status = CourseStatusOptimized
	c.FailureReason = ""
}
