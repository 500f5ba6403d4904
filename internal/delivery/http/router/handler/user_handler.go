package handler

import (
	"log/slog"
	"net/http"

	"ecommerce/internal/delivery/http/response"
	"ecommerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	authUC usecase.AuthUsecase
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		authUC: params.AuthUC,
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for registering a user.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest represents the request body for logging in.
// Password stays a pointer so a missing password reaches the login steps.
type LoginRequest struct {
	Username string  `json:"username"`
	Password *string `json:"password"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	view, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(view), "User registered successfully")
}

// Login handles the user login request. Failed steps answer 401 with the step message.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Succeeded {
		return response.Unauthorized(c, "LOGIN_FAILED", output.Message)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		Token: output.Token,
		User:  toUserResponse(output.User),
	}, output.Message)
}

// ListUsers returns every user ordered by username.
func (h *UserHandler) ListUsers(c echo.Context) error {
	views, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(views), "")
}

// GetUser returns one user.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	view, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(view), "")
}
