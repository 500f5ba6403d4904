// Package middleware contains the echo middleware specific to the HTTP API.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "ecommerce/internal/delivery/context"
	"ecommerce/internal/delivery/http/response"
	"ecommerce/internal/domain/entity"
	"ecommerce/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate validates the bearer token and stores its claims on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}
		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireRole rejects callers whose token role differs from role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetClaims(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication is required")
			}

			if claims.Role != role.String() {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}
