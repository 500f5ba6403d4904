// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"ecommerce/internal/domain/entity"
	"ecommerce/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImgURL       string    `json:"imgUrl"`
	SKU          string    `json:"sku"`
	Stock        int       `json:"stock"`
	CategoryID   int64     `json:"categoryId"`
	CategoryName string    `json:"categoryName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProductPageResponse is one page of products.
type ProductPageResponse struct {
	PageNumber int                `json:"pageNumber"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
	TotalItems int64              `json:"totalItems"`
	Items      []*ProductResponse `json:"items"`
}

// PurchaseResponse reports whether stock was taken.
type PurchaseResponse struct {
	Purchased bool `json:"purchased"`
}

func toUserResponse(view *usecase.UserView) *UserResponse {
	if view == nil {
		return nil
	}

	return &UserResponse{
		ID:       view.ID,
		Username: view.Username,
		Name:     view.Name,
		Role:     view.Role.String(),
	}
}

func toUserResponses(views []*usecase.UserView) []*UserResponse {
	result := make([]*UserResponse, 0, len(views))
	for _, view := range views {
		result = append(result, toUserResponse(view))
	}

	return result
}

func toCategoryResponse(category *entity.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func toCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, toCategoryResponse(category))
	}

	return result
}

func toProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		ImgURL:       product.ImgURL,
		SKU:          product.SKU,
		Stock:        product.Stock,
		CategoryID:   product.CategoryID,
		CategoryName: product.CategoryName(),
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	result := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product))
	}

	return result
}
