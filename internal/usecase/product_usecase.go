package usecase

import (
	"context"
	"io"

	"ecommerce/internal/domain/entity"
	"ecommerce/internal/domain/service"
)

// ProductInput holds the editable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	SKU         string
	Stock       int
	CategoryID  int64
}

// ImageUpload is an image received with a product form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProductUsecase defines product management.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// CreateProduct stores the product. Without an image the placeholder URL is used.
	CreateProduct(ctx context.Context, input *ProductInput, image *ImageUpload) (*entity.Product, error)

	// UpdateProduct overwrites the fields. Without an image the current one is kept.
	UpdateProduct(ctx context.Context, id int64, input *ProductInput, image *ImageUpload) (*entity.Product, error)

	DeleteProduct(ctx context.Context, id int64) error

	// ProductQRCode renders a PNG label for the product.
	ProductQRCode(ctx context.Context, id int64) ([]byte, error)

	// OpenImage streams a stored product image.
	OpenImage(ctx context.Context, key string) (*service.StoredImage, error)
}
