package usecase

import (
	"context"

	"routeopt/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCourseInput represents a new delivery round
type CreateCourseInput struct {
	DriverID string            `json:"driverId" validate:"required"`
	Start    entity.Coordinate `json:"start"`
	Stops    []entity.Stop     `json:"stops" validate:"dive"`
}

// CourseUsecase persists delivery rounds and their optimized plans
type CourseUsecase interface {
	CreateCourse(ctx context.Context, input *CreateCourseInput) (*entity.Course, error)

	// OptimizeCourse plans a stored course. start overrides the stored start
	// when non-nil. A failed optimization marks the course failed.
	OptimizeCourse(ctx context.Context, courseID uuid.UUID, start *entity.Coordinate) (*entity.Course, error)

	GetCourse(ctx context.Context, courseID uuid.UUID) (*entity.Course, error)
}
