package repository

import (
	"context"
	"errors"

	"ecommerce/internal/domain/entity"
)

// ErrCategoryNotFound is returned when no category matches the lookup.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository persists categories. Name comparisons are normalized.
type CategoryRepository interface {
	// List returns all categories in the requested order.
	List(ctx context.Context, order entity.CategoryOrder) ([]*entity.Category, error)

	// FindByID retrieves a category or ErrCategoryNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// ExistsByID reports whether the category exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByName reports whether the normalized name is taken.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create inserts a category and fills its ID and timestamps.
	// A duplicate name yields ErrCategoryAlreadyExists.
	Create(ctx context.Context, category *entity.Category) error

	// Update renames a category and refreshes its update timestamp.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. A category referenced by products yields ErrCategoryInUse.
	Delete(ctx context.Context, id int64) error
}
