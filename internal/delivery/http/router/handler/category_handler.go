package handler

import (
	"net/http"

	"ecommerce/internal/delivery/http/response"
	"ecommerce/internal/domain/entity"
	"ecommerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
}

// CategoryHandler serves both API versions of the category endpoints.
// They differ only in listing order.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{categoryUC: params.CategoryUC}
}

// CategoryRequest represents the request body for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListCategories returns a handler listing categories in the given order.
func (h *CategoryHandler) ListCategories(order entity.CategoryOrder) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := h.categoryUC.ListCategories(c.Request().Context(), order)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toCategoryResponses(categories), "")
	}
}

// GetCategory returns one category.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category), "")
}

// CreateCategory creates a category.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Request().URL.Path+"/"+formatID(category.ID))

	return response.Success(c, http.StatusCreated, toCategoryResponse(category), "Category created successfully")
}

// UpdateCategory renames a category.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), id, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category), "Category updated successfully")
}

// DeleteCategory removes a category without products.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}
