package middleware

import (
	"vitae/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latencies per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates the request instrumentation middleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle resolves errors through the error handler before recording, so the status is the one sent.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := m.metrics.StartRequest()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		done(c.Request().Method, route, c.Response().Status)

		return nil
	}
}
