package handler

import (
	"time"

	"routeopt/internal/domain/entity"
)

// CoordinateRequest is a WGS84 point in a request body
type CoordinateRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// StopRequest is one delivery stop. At least one of knownCoordinate,
// addressText, clientId or fallbackRegion should be set.
type StopRequest struct {
	ID              string             `json:"id" validate:"required"`
	AddressText     *string            `json:"addressText"`
	KnownCoordinate *CoordinateRequest `json:"knownCoordinate"`
	FallbackRegion  *string            `json:"fallbackRegion"`
	ClientID        string             `json:"clientId"`
}

func (r *CoordinateRequest) toEntity() entity.Coordinate {
	if r == nil || r.Lat == nil || r.Lng == nil {
		return entity.Coordinate{}
	}

	return entity.Coordinate{Lat: *r.Lat, Lng: *r.Lng}
}

func (r *CoordinateRequest) toEntityPtr() *entity.Coordinate {
	if r == nil {
		return nil
	}
	c := r.toEntity()

	return &c
}

func toStops(in []StopRequest) []entity.Stop {
	stops := make([]entity.Stop, 0, len(in))
	for _, s := range in {
		stop := entity.Stop{
			ID:              s.ID,
			AddressText:     s.AddressText,
			KnownCoordinate: s.KnownCoordinate.toEntityPtr(),
			ClientID:        s.ClientID,
		}
		if s.FallbackRegion != nil {
			region := entity.Region(*s.FallbackRegion)
			stop.FallbackRegion = &region
		}
		stops = append(stops, stop)
	}

	return stops
}

// CourseResponse is the public view of a course
type CourseResponse struct {
	ID             string              `json:"id"`
	DriverID       string              `json:"driverId"`
	Status         entity.CourseStatus `json:"status"`
	Start          entity.Coordinate   `json:"start"`
	Stops          []entity.Stop       `json:"stops"`
	OrderedStopIDs []string            `json:"orderedStopIds,omitempty"`
	DistanceKm     float64             `json:"distanceKm"`
	DurationMin    float64             `json:"durationMin"`
	Route          []entity.Coordinate `json:"route,omitempty"`
	DetailedRoute  []entity.Coordinate `json:"detailedRoute,omitempty"`
	Instructions   []string            `json:"instructions,omitempty"`
	FailureReason  string              `json:"failureReason,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func toCourseResponse(course *entity.Course) *CourseResponse {
	return &CourseResponse{
		ID:             course.ID.String(),
		DriverID:       course.DriverID,
		Status:         course.Status,
		Start:          course.Start,
		Stops:          course.Stops,
		OrderedStopIDs: course.OrderedStopIDs,
		DistanceKm:     course.DistanceKm,
		DurationMin:    course.DurationMin,
		Route:          course.Route,
		DetailedRoute:  course.DetailedRoute,
		Instructions:   course.Instructions,
		FailureReason:  course.FailureReason,
		CreatedAt:      course.CreatedAt,
		UpdatedAt:      course.UpdatedAt,
	}
}
