package model

import (
	"time"

	"github.com/google/uuid"
)

// CoordinateModel is the JSON shape of a stored position.
type CoordinateModel struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StopModel is the JSON shape of a stored stop.
type StopModel struct {
	ID              string           `json:"id"`
	AddressText     *string          `json:"addressText,omitempty"`
	KnownCoordinate *CoordinateModel `json:"knownCoordinate,omitempty"`
	FallbackRegion  *string          `json:"fallbackRegion,omitempty"`
	ClientID        string           `json:"clientId,omitempty"`
}

// CourseModel mirrors the 'courses' table. Stops and route geometry are
// stored as jsonb through GORM's json serializer.
type CourseModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key"`
	DriverID       string            `gorm:"type:varchar(100);not null;index"`
	StartLat       float64           `gorm:"not null"`
	StartLng       float64           `gorm:"not null"`
	Stops          []StopModel       `gorm:"type:jsonb;serializer:json;not null"`
	Status         string            `gorm:"type:varchar(20);not null;index"`
	OrderedStopIDs []string          `gorm:"type:jsonb;serializer:json"`
	DistanceKm     float64           `gorm:"not null;default:0"`
	DurationMin    float64           `gorm:"not null;default:0"`
	Route          []CoordinateModel `gorm:"type:jsonb;serializer:json"`
	DetailedRoute  []CoordinateModel `gorm:"type:jsonb;serializer:json"`
	Instructions   []string          `gorm:"type:jsonb;serializer:json"`
	FailureReason  string            `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}
