package usecase

import (
	"context"

	"ecommerce/internal/domain/entity"
)

// ProductPage is one page of the id-ordered product listing.
type ProductPage struct {
	Items      []*entity.Product
	PageNumber int
	PageSize   int
	TotalPages int
	TotalItems int64
}

// CatalogUsecase defines the public catalog queries and purchasing.
type CatalogUsecase interface {
	// ListPaged returns the requested page. A page past the end is ErrPageNotFound,
	// except page 1 of an empty catalog, which is an empty page.
	ListPaged(ctx context.Context, pageNumber, pageSize int) (*ProductPage, error)

	// Search matches the trimmed term against name or description, case-insensitively.
	Search(ctx context.Context, term string) ([]*entity.Product, error)

	// ListByCategory returns the products of a category. Non-positive ids yield an empty list.
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)

	// BuyProduct removes quantity units from stock atomically. It returns false when
	// the product exists but has too little stock.
	BuyProduct(ctx context.Context, name string, quantity int) (bool, error)
}
