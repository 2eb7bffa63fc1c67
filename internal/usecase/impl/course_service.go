package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "routeopt/internal/delivery/context"
	"routeopt/internal/domain/entity"
	domainerrors "routeopt/internal/domain/errors"
	"routeopt/internal/domain/repository"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	"routeopt/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// CourseServiceParams holds dependencies for CourseService, injected by Fx
type CourseServiceParams struct {
	fx.In

	Repo      repository.CourseRepository
	Optimizer usecase.OptimizerUsecase
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

type courseService struct {
	repo      repository.CourseRepository
	optimizer usecase.OptimizerUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewCourseService creates the course use case
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		repo:      params.Repo,
		optimizer: params.Optimizer,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (s *courseService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateCourse implements usecase.CourseUsecase
func (s *courseService) CreateCourse(ctx context.Context, input *usecase.CreateCourseInput) (*entity.Course, error) {
	if input == nil || input.DriverID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("driver id is required")
	}
	if err := validateStops(input.Start, input.Stops); err != nil {
		return nil, err
	}

	now := time.Now()
	course := &entity.Course{
		ID:        uuid.New(),
		DriverID:  input.DriverID,
		Start:     input.Start,
		Stops:     input.Stops,
		Status:    entity.CourseStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return nil, errors.Wrap(err, "failed to create course")
	}

	s.publish(ctx, &service.CourseEvent{
		Type:     service.CourseEventOptimizationRequested,
		CourseID: course.ID.String(),
		DriverID: course.DriverID,
	})

	s.getLogger(ctx).Info("[CourseService] Course created",
		slog.String("course_id", course.ID.String()),
		slog.String("driver_id", course.DriverID),
		slog.Int("stops", len(course.Stops)),
	)

	return course, nil
}

// OptimizeCourse implements usecase.CourseUsecase
func (s *courseService) OptimizeCourse(ctx context.Context, courseID uuid.UUID, start *entity.Coordinate) (*entity.Course, error) {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	// An override becomes the stored start only once a plan exists.
	from := course.Start
	if start != nil {
		from = *start
	}

	logger := s.getLogger(ctx).With(slog.String("course_id", courseID.String()))

	plan, optimizeErr := s.optimizer.Optimize(ctx, from, course.Stops)
	if optimizeErr != nil {
		course.Status = entity.CourseStatusFailed
		course.FailureReason = optimizeErr.Error()
		course.UpdatedAt = time.Now()

		if err := s.repo.UpdateCourse(ctx, course); err != nil {
			logger.Error("[CourseService] Failed to record optimization failure", slog.Any("error", err))
		}
		s.publish(ctx, &service.CourseEvent{
			Type:     service.CourseEventOptimizationFailed,
			CourseID: course.ID.String(),
			DriverID: course.DriverID,
			Reason:   course.FailureReason,
		})
		logger.Warn("[CourseService] Optimization failed", slog.Any("error", optimizeErr))

		return nil, optimizeErr
	}

	course.Start = from
	course.ApplyPlan(plan)
	course.UpdatedAt = time.Now()
	if err := s.repo.UpdateCourse(ctx, course); err != nil {
		return nil, errors.Wrap(err, "failed to save optimized course")
	}

	s.publish(ctx, &service.CourseEvent{
		Type:        service.CourseEventOptimized,
		CourseID:    course.ID.String(),
		DriverID:    course.DriverID,
		DistanceKm:  course.DistanceKm,
		DurationMin: course.DurationMin,
	})

	logger.Info("[CourseService] Course optimized",
		slog.Float64("distance_km", course.DistanceKm),
		slog.Float64("duration_min", course.DurationMin),
	)

	return course, nil
}

// GetCourse implements usecase.CourseUsecase
func (s *courseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*entity.Course, error) {
	course, err := s.repo.FindCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound.WithDetails(courseID.String())
		}

		return nil, errors.Wrap(err, "failed to load course")
	}

	return course, nil
}

// publish is best effort: a lost event never fails the request.
func (s *courseService) publish(ctx context.Context, event *service.CourseEvent) {
	if s.publisher == nil {
		return
	}

	event.EventID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishCourseEvent(ctx, event); err != nil {
		s.getLogger(ctx).Warn("[CourseService] Failed to publish course event",
			slog.String("type", event.Type),
			slog.String("course_id", event.CourseID),
			slog.Any("error", err),
		)
	}
}
