// Package handler contains the HTTP handlers of the catalog event worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"ecommerce/config"
	deliverycontext "ecommerce/internal/delivery/context"
	"ecommerce/internal/domain/constants"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
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

// TokenVerifier checks the bearer token of a push request.
type TokenVerifier func(req *http.Request) error

// PushHandler handles Pub/Sub push deliveries of catalog events.
type PushHandler struct {
	verify  TokenVerifier
	logger  *slog.Logger
	eventUC usecase.EventUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	EventUC usecase.EventUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Google push tokens are
// verified outside the develop environment.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var verify TokenVerifier
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		verify = verifyPubSubToken
	}

	return newPushHandler(params.EventUC, params.Logger, verify)
}

func newPushHandler(eventUC usecase.EventUsecase, logger *slog.Logger, verify TokenVerifier) *PushHandler {
	return &PushHandler{
		verify:  verify,
		logger:  logger,
		eventUC: eventUC,
	}
}

// HandlePush acknowledges a delivery with 200, asks for redelivery with 503,
// and rejects malformed deliveries with 400.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
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

	var event service.ProductEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse product event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.eventUC.HandleProductEvent(ctx, &event); err != nil {
		retryable := !errors.Is(err, domainerrors.ErrValidationFailed)
		reqLogger.Error("[Worker] Failed to process product event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// Acknowledging permanent failures stops Pub/Sub from redelivering forever.
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the
// request context, and generates one as a last resort.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ProductEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

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
