package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "ecommerce/internal/delivery/context"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/service"
	mockUC "ecommerce/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/catalog-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandlePush_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		handleErr  error
		wantStatus int
	}{
		{name: "processed", wantStatus: http.StatusOK},
		{name: "retryable failure", handleErr: errors.New("db down"), wantStatus: http.StatusServiceUnavailable},
		{
			name:       "permanent failure is acknowledged",
			handleErr:  errors.WithStack(domainerrors.ValidationError("unknown event type")),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventUC := mockUC.NewMockEventUsecase(t)
			eventUC.EXPECT().HandleProductEvent(mock.Anything, mock.MatchedBy(func(e *service.ProductEvent) bool {
				return e.Type == service.ProductPurchased && e.Name == "Widget" && e.Quantity == 2
			})).Return(tt.handleErr).Once()

			rec := push(newPushHandler(eventUC, discardLogger(), nil), pushBody(t, service.ProductEvent{
				Type: service.ProductPurchased, Name: "Widget", Quantity: 2,
			}, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_RequestIDFromAttributes(t *testing.T) {
	eventUC := mockUC.NewMockEventUsecase(t)
	eventUC.EXPECT().HandleProductEvent(mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil).Once()

	rec := push(newPushHandler(eventUC, discardLogger(), nil), pushBody(t, service.ProductEvent{
		Type: service.ProductCreated, RequestID: "req-event",
	}, map[string]string{"request_id": "req-attr"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedDeliveries(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad base64", body: `{"message":{"data":"***"}}`},
		{name: "data is not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := push(newPushHandler(mockUC.NewMockEventUsecase(t), discardLogger(), nil), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_RejectsUnverifiedToken(t *testing.T) {
	verify := func(*http.Request) error { return errors.New("missing authorization header") }

	rec := push(newPushHandler(mockUC.NewMockEventUsecase(t), discardLogger(), verify), pushBody(t, service.ProductEvent{}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPubSubToken_HeaderFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Error(t, verifyPubSubToken(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	assert.Error(t, verifyPubSubToken(req))
}
