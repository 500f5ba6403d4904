package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce/internal/delivery/http/middleware"
	"ecommerce/internal/delivery/http/response"
	"ecommerce/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// envelope keeps data raw so each test can decode it into its own type.
type envelope struct {
	response.Response
	Data json.RawMessage `json:"data,omitempty"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	if data != nil {
		require.NoError(t, json.Unmarshal(body.Data, data))
	}

	return body
}
