package repository

import (
	"context"
	"errors"

	"ecommerce/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists products. Listings are ordered by name unless noted.
type ProductRepository interface {
	// List returns every product ordered by name.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a product with its category or ErrProductNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByName retrieves a product by normalized name or ErrProductNotFound.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// ListByCategory returns the products of one category ordered by name.
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)

	// Search matches the term as a case-insensitive substring of name or description.
	Search(ctx context.Context, term string) ([]*entity.Product, error)

	// Page returns one page of products ordered by id. pageNumber starts at 1.
	Page(ctx context.Context, pageNumber, pageSize int) ([]*entity.Product, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// ExistsByName reports whether a product with the normalized name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create inserts a product and fills its ID and timestamps.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites the mutable fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product or returns ErrProductNotFound.
	Delete(ctx context.Context, id int64) error

	// TryDecrementStock subtracts amount from the stock of the product with the
	// normalized name in one conditional write. It returns false when no row had
	// enough stock.
	TryDecrementStock(ctx context.Context, name string, amount int) (bool, error)
}
