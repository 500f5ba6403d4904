package usecase

import (
	"context"

	"ecommerce/internal/domain/entity"
)

// CategoryUsecase defines category management.
type CategoryUsecase interface {
	ListCategories(ctx context.Context, order entity.CategoryOrder) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
