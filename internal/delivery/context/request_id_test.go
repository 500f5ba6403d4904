package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestClaims(t *testing.T) {
	c := newEchoContext()
	_, ok := GetClaims(c)
	assert.False(t, ok)

	SetClaims(c, &service.Claims{Username: "alice", Role: "Admin"})
	claims, ok := GetClaims(c)
	require.True(t, ok)
	assert.Equal(t, "alice", claims.Username)
}
