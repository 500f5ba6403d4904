package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver receives one observation per finished request.
type RequestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

// MetricsMiddleware records request counts and latency by route template.
type MetricsMiddleware struct {
	observer RequestObserver
}

// NewMetricsMiddleware returns nil when observer is nil. A nil middleware passes requests through.
func NewMetricsMiddleware(observer RequestObserver) *MetricsMiddleware {
	if observer == nil {
		return nil
	}

	return &MetricsMiddleware{observer: observer}
}

// Handle observes the request after the error handler has set the final status.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if m == nil {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.observer.ObserveRequest(route, c.Request().Method, c.Response().Status, time.Since(start))

		return nil
	}
}
