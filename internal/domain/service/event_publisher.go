package service

import (
	"context"
)

// Course event types
const (
	CourseEventOptimizationRequested = "course.optimization.requested"
	CourseEventOptimized             = "course.optimized"
	CourseEventOptimizationFailed    = "course.optimization.failed"
)

// CourseEvent is published whenever a course changes optimization state
type CourseEvent struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	EventID   string   `json:"event_id"`
	Type      string   `json:"type"`
	CourseID  string   `json:"course_id"`
	DriverID  string   `json:"driver_id,omitempty"`
	StartLat  *float64 `json:"start_lat,omitempty"` // Optional start override for re-optimization
	StartLng  *float64 `json:"start_lng,omitempty"`

	DistanceKm  float64 `json:"distance_km,omitempty"`
	DurationMin float64 `json:"duration_min,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCourseEvent publishes a course event for async processing
	PublishCourseEvent(ctx context.Context, event *CourseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
