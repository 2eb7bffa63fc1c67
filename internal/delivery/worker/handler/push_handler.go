package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"routeopt/config"
	deliverycontext "routeopt/internal/delivery/context"
	"routeopt/internal/domain/constants"
	"routeopt/internal/domain/entity"
	domainerrors "routeopt/internal/domain/errors"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	"routeopt/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenVerifier checks the OIDC token of a push request against an audience
type tokenVerifier func(req *http.Request, audience string) error

// PushHandler runs course optimizations delivered by Pub/Sub push
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verifyToken    tokenVerifier
	logger         *slog.Logger
	courseUC       usecase.CourseUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	CourseUC usecase.CourseUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsubCfg := params.Config.PubSub
	verifyPushAuth := pubsubCfg != nil &&
		pubsubCfg.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	audience := ""
	if pubsubCfg != nil {
		audience = pubsubCfg.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		courseUC:       params.CourseUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Pub/Sub redelivers on
// any non-2xx answer, so only infrastructure failures return 500.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request(), h.audienceFor(c.Request())); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.CourseEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse course event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("course_id", event.CourseID),
		slog.String("event_id", event.EventID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if event.Type != service.CourseEventOptimizationRequested {
		reqLogger.Debug("[Worker] Ignoring course event", slog.String("type", event.Type))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Processing optimization request")

	course, err := h.processOptimization(ctx, &event)
	if err != nil {
		retry := isRetryable(err)
		reqLogger.Error("[Worker] Failed to optimize course",
			slog.Any("error", err),
			slog.Bool("retryable", retry),
		)
		if retry {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Course optimized",
		slog.Int("stops", len(course.OrderedStopIDs)),
		slog.Float64("distance_km", course.DistanceKm),
		slog.Float64("duration_min", course.DurationMin),
	)

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) processOptimization(ctx context.Context, event *service.CourseEvent) (*entity.Course, error) {
	courseID, err := uuid.Parse(event.CourseID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("course_id is not a UUID")
	}

	start, err := startOverride(event)
	if err != nil {
		return nil, err
	}

	// Redeliveries of a plain request for an already planned course are acknowledged as-is.
	if start == nil {
		course, err := h.courseUC.GetCourse(ctx, courseID)
		if err != nil {
			return nil, err
		}
		if course.Status == entity.CourseStatusOptimized {
			return course, nil
		}
	}

	return h.courseUC.OptimizeCourse(ctx, courseID, start)
}

func startOverride(event *service.CourseEvent) (*entity.Coordinate, error) {
	if event.StartLat == nil && event.StartLng == nil {
		return nil, nil
	}
	if event.StartLat == nil || event.StartLng == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("start override needs both start_lat and start_lng")
	}

	return &entity.Coordinate{Lat: *event.StartLat, Lng: *event.StartLng}, nil
}

// isRetryable reports whether Pub/Sub should redeliver. Bad input and
// missing courses never succeed on retry.
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrStopUnresolvable),
		errors.Is(err, domainerrors.ErrCourseNotFound):
		return false
	default:
		return true
	}
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.CourseEvent) string {
	return deliverycontext.ResolveRequestID(
		pushMsg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	)
}

// audienceFor returns the configured push audience, else the endpoint URL.
func (h *PushHandler) audienceFor(req *http.Request) string {
	if h.audience != "" {
		return h.audience
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
