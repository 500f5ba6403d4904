package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ecommerce/config"
	deliverycontext "ecommerce/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var fromContext string
	e.GET("/", func(c echo.Context) error {
		fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	}, mw.Process)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	header := rec.Header().Get(deliverycontext.HeaderXRequestID)
	require.NotEmpty(t, header)
	assert.Equal(t, header, fromContext)
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Process)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.NotEqual(t, strings.Repeat("x", maxRequestIDLength+1), rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestCacheControl(t *testing.T) {
	e := echo.New()
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, CacheControl(10*time.Second))
	e.GET("/missing", func(c echo.Context) error { return c.String(http.StatusNotFound, "no") }, CacheControl(10*time.Second))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, "public, max-age=10", rec.Header().Get("Cache-Control"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

type observation struct {
	route  string
	method string
	status int
}

type recordingObserver struct {
	seen []observation
}

func (o *recordingObserver) ObserveRequest(route, method string, status int, _ time.Duration) {
	o.seen = append(o.seen, observation{route: route, method: method, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplateAndFinalStatus(t *testing.T) {
	e := echo.New()
	observer := &recordingObserver{}
	e.Use(NewMetricsMiddleware(observer).Handle)
	e.GET("/products/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/42", nil))

	require.Len(t, observer.seen, 1)
	assert.Equal(t, observation{route: "/products/:id", method: http.MethodGet, status: http.StatusNotFound}, observer.seen[0])
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsMiddleware_NilObserverPassesThrough(t *testing.T) {
	mw := NewMetricsMiddleware(nil)
	assert.Nil(t, mw)

	called := false
	handler := mw.Handle(func(c echo.Context) error {
		called = true

		return nil
	})
	require.NoError(t, handler(nil))
	assert.True(t, called)
}

func TestLoggerMiddleware_LogsOnlyInDebug(t *testing.T) {
	for _, debug := range []bool{true, false} {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health?verbose=1", nil))

		if debug {
			assert.Contains(t, buf.String(), "HTTP Request")
			assert.Contains(t, buf.String(), "verbose=1")
		} else {
			assert.Empty(t, buf.String())
		}
	}
}
