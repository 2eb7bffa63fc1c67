package repository

import (
	"context"

	"routeopt/internal/domain/entity"
	"routeopt/internal/errors"

	"github.com/google/uuid"
)

// ErrCourseNotFound is returned when a course is not found.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository defines the interface for course persistence.
type CourseRepository interface {
	// CreateCourse persists a new course and fills its generated fields.
	CreateCourse(ctx context.Context, course *entity.Course) error

	// FindCourseByID retrieves a course by its ID.
	// Returns ErrCourseNotFound if it does not exist.
	FindCourseByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// UpdateCourse saves the optimization fields and status of a course.
	UpdateCourse(ctx context.Context, course *entity.Course) error
}
