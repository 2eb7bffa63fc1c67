package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPRecorder receives one observation per served request.
type HTTPRecorder interface {
	HTTPObserved(method, path string, status int, elapsed time.Duration)
}

// MetricsMiddleware records request counts and latency per route template
type MetricsMiddleware struct {
	recorder HTTPRecorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder HTTPRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle observes the request after the handler and error handler ran. The
// handler error is returned unchanged for outer middleware.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		m.recorder.HTTPObserved(c.Request().Method, path, c.Response().Status, time.Since(start))

		return err
	}
}
