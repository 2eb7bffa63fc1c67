package handler

import (
	"log/slog"
	"net/http"

	"routeopt/internal/delivery/api/response"
	"routeopt/internal/domain/entity"
	domainerrors "routeopt/internal/domain/errors"
	"routeopt/internal/errors"
	"routeopt/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// CourseHandlerParams holds dependencies for CourseHandler, injected by Fx.
type CourseHandlerParams struct {
	fx.In

	CourseUC usecase.CourseUsecase
	Logger   *slog.Logger
}

// CourseHandler serves persisted delivery rounds
type CourseHandler struct {
	courseUC usecase.CourseUsecase
	logger   *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler
func NewCourseHandler(params CourseHandlerParams) *CourseHandler {
	return &CourseHandler{
		courseUC: params.CourseUC,
		logger:   params.Logger,
	}
}

// CreateCourseRequest is the body of POST /api/v1/courses
type CreateCourseRequest struct {
	DriverID string             `json:"driverId" validate:"required,max=128"`
	Start    *CoordinateRequest `json:"start" validate:"required"`
	Stops    []StopRequest      `json:"stops" validate:"dive"`
}

// OptimizeCourseRequest optionally overrides the stored start
type OptimizeCourseRequest struct {
	Start *CoordinateRequest `json:"start"`
}

// CreateCourse stores a pending course and queues its optimization
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req CreateCourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	course, err := h.courseUC.CreateCourse(c.Request().Context(), &usecase.CreateCourseInput{
		DriverID: req.DriverID,
		Start:    req.Start.toEntity(),
		Stops:    toStops(req.Stops),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCourseResponse(course))
}

// GetCourse returns one course
func (h *CourseHandler) GetCourse(c echo.Context) error {
	id, err := courseIDParam(c)
	if err != nil {
		return err
	}

	course, err := h.courseUC.GetCourse(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCourseResponse(course))
}

// OptimizeCourse plans a stored course synchronously
func (h *CourseHandler) OptimizeCourse(c echo.Context) error {
	id, err := courseIDParam(c)
	if err != nil {
		return err
	}

	var req OptimizeCourseRequest
	if c.Request().ContentLength > 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	course, err := h.courseUC.OptimizeCourse(c.Request().Context(), id, req.Start.toEntityPtr())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCourseResponse(course))
}

// GetCourseGeoJSON exports an optimized course as a FeatureCollection: the
// road polyline followed by the start and each stop in visiting order.
func (h *CourseHandler) GetCourseGeoJSON(c echo.Context) error {
	id, err := courseIDParam(c)
	if err != nil {
		return err
	}

	course, err := h.courseUC.GetCourse(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if course.Status != entity.CourseStatusOptimized {
		return domainerrors.ErrCourseNotOptimized.WithDetails(string(course.Status))
	}

	raw, err := courseFeatureCollection(course).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode course geojson")
	}

	return c.Blob(http.StatusOK, "application/geo+json", raw)
}

func courseFeatureCollection(course *entity.Course) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	path := course.DetailedRoute
	if len(path) < 2 {
		path = course.Route
	}
	if len(path) >= 2 {
		line := geojson.NewFeature(entity.LineString(path))
		line.Properties["courseId"] = course.ID.String()
		line.Properties["distanceKm"] = course.DistanceKm
		line.Properties["durationMin"] = course.DurationMin
		fc.Append(line)
	}

	start := geojson.NewFeature(course.Start.Point())
	start.Properties["role"] = "start"
	fc.Append(start)

	// Route holds the start followed by one waypoint per ordered stop.
	for i, stopID := range course.OrderedStopIDs {
		if i+1 >= len(course.Route) {
			break
		}
		point := geojson.NewFeature(course.Route[i+1].Point())
		point.Properties["role"] = "stop"
		point.Properties["stopId"] = stopID
		point.Properties["sequence"] = i + 1
		fc.Append(point)
	}

	return fc
}

func courseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("course id must be a UUID")
	}

	return id, nil
}
