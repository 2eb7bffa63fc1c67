// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"routeopt/internal/domain/entity"
	domainerrors "routeopt/internal/domain/errors"
	"routeopt/internal/domain/repository"
	"routeopt/internal/errors"
	"routeopt/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// courseRepository implements the repository.CourseRepository interface.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{
		db: db,
	}
}

// CreateCourse persists a new course.
func (repo *courseRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("course already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required course information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// FindCourseByID retrieves a course by its unique ID.
func (repo *courseRepository) FindCourseByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by ID")
	}

	return toCourseDomain(&courseM), nil
}

// UpdateCourse writes the optimization result and status of a course.
func (repo *courseRepository) UpdateCourse(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	result := repo.db.WithContext(ctx).
		Model(&model.CourseModel{}).
		Where("id = ?", course.ID).
		Select("StartLat", "StartLng", "Status", "OrderedStopIDs", "DistanceKm", "DurationMin",
			"Route", "DetailedRoute", "Instructions", "FailureReason", "UpdatedAt").
		Updates(courseM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidInput.WrapMessage("invalid course status")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update course")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCourseDomain converts a GORM CourseModel to a domain Course entity.
func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	stops := make([]entity.Stop, 0, len(data.Stops))
	for _, s := range data.Stops {
		stop := entity.Stop{
			ID:          s.ID,
			AddressText: s.AddressText,
			ClientID:    s.ClientID,
		}
		if s.KnownCoordinate != nil {
			stop.KnownCoordinate = &entity.Coordinate{Lat: s.KnownCoordinate.Lat, Lng: s.KnownCoordinate.Lng}
		}
		if s.FallbackRegion != nil {
			region := entity.Region(*s.FallbackRegion)
			stop.FallbackRegion = &region
		}
		stops = append(stops, stop)
	}

	return &entity.Course{
		ID:             data.ID,
		DriverID:       data.DriverID,
		Start:          entity.Coordinate{Lat: data.StartLat, Lng: data.StartLng},
		Stops:          stops,
		Status:         entity.CourseStatus(data.Status),
		OrderedStopIDs: data.OrderedStopIDs,
		DistanceKm:     data.DistanceKm,
		DurationMin:    data.DurationMin,
		Route:          toCoordinates(data.Route),
		DetailedRoute:  toCoordinates(data.DetailedRoute),
		Instructions:   data.Instructions,
		FailureReason:  data.FailureReason,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCourseDomain converts a domain Course entity to a GORM CourseModel.
func fromCourseDomain(data *entity.Course) *model.CourseModel {
	if data == nil {
		return nil
	}

	stops := make([]model.StopModel, 0, len(data.Stops))
	for _, s := range data.Stops {
		stop := model.StopModel{
			ID:          s.ID,
			AddressText: s.AddressText,
			ClientID:    s.ClientID,
		}
		if s.KnownCoordinate != nil {
			stop.KnownCoordinate = &model.CoordinateModel{Lat: s.KnownCoordinate.Lat, Lng: s.KnownCoordinate.Lng}
		}
		if s.FallbackRegion != nil {
			region := string(*s.FallbackRegion)
			stop.FallbackRegion = &region
		}
		stops = append(stops, stop)
	}

	return &model.CourseModel{
		ID:             data.ID,
		DriverID:       data.DriverID,
		StartLat:       data.Start.Lat,
		StartLng:       data.Start.Lng,
		Stops:          stops,
		Status:         string(data.Status),
		OrderedStopIDs: data.OrderedStopIDs,
		DistanceKm:     data.DistanceKm,
		DurationMin:    data.DurationMin,
		Route:          fromCoordinates(data.Route),
		DetailedRoute:  fromCoordinates(data.DetailedRoute),
		Instructions:   data.Instructions,
		FailureReason:  data.FailureReason,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toCoordinates(in []model.CoordinateModel) []entity.Coordinate {
	if in == nil {
		return nil
	}

	out := make([]entity.Coordinate, len(in))
	for i, c := range in {
		out[i] = entity.Coordinate{Lat: c.Lat, Lng: c.Lng}
	}

	return out
}

func fromCoordinates(in []entity.Coordinate) []model.CoordinateModel {
	if in == nil {
		return nil
	}

	out := make([]model.CoordinateModel, len(in))
	for i, c := range in {
		out[i] = model.CoordinateModel{Lat: c.Lat, Lng: c.Lng}
	}

	return out
}
