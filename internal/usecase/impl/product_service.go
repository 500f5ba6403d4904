package impl

import (
	"context"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"ecommerce/config"
	deliverycontext "ecommerce/internal/delivery/context"
	"ecommerce/internal/domain/constants"
	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/usecase"
	"ecommerce/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
	storage        service.ImageStorage
	qrcode         service.QRCodeService
	events         *eventNotifier
	placeholderURL string
	maxImageSize   int64
	logger         *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Storage      service.ImageStorage
	QRCode       service.QRCodeService
	Publisher    service.EventPublisher
	Metrics      service.CatalogMetrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	placeholderURL := constants.DefaultPlaceholderImageURL
	maxImageSize := int64(constants.DefaultMaxImageSize)
	if params.Config != nil {
		if params.Config.Catalog != nil && params.Config.Catalog.PlaceholderImageURL != "" {
			placeholderURL = params.Config.Catalog.PlaceholderImageURL
		}
		if params.Config.Storage != nil && params.Config.Storage.MaxImageSize > 0 {
			maxImageSize = params.Config.Storage.MaxImageSize
		}
	}

	return &productService{
		productRepo:    params.ProductRepo,
		categoryRepo:   params.CategoryRepo,
		storage:        params.Storage,
		qrcode:         params.QRCode,
		events:         &eventNotifier{publisher: params.Publisher, metrics: params.Metrics},
		placeholderURL: placeholderURL,
		maxImageSize:   maxImageSize,
		logger:         params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return product, nil
}

func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput, image *usecase.ImageUpload) (*entity.Product, error) {
	if err := srv.validateInput(ctx, input); err != nil {
		return nil, err
	}

	product := &entity.Product{ImgURL: srv.placeholderURL}
	applyProductInput(product, input)

	if image != nil {
		url, key, err := srv.storeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		product.ImgURL, product.ImgKey = url, key
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.discardImage(ctx, product.ImgKey)

		return nil, mapRepositoryError(err)
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("name", product.Name))
	srv.events.notify(ctx, srv.log(ctx), &service.ProductEvent{
		Type:      service.ProductCreated,
		ProductID: product.ID,
		Name:      product.Name,
	})

	return product, nil
}

func (srv *productService) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput, image *usecase.ImageUpload) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if err := srv.validateInput(ctx, input); err != nil {
		return nil, err
	}

	previousKey := product.ImgKey
	applyProductInput(product, input)

	if image != nil {
		url, key, err := srv.storeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		product.ImgURL, product.ImgKey = url, key
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if image != nil {
			srv.discardImage(ctx, product.ImgKey)
		}

		return nil, mapRepositoryError(err)
	}

	if image != nil {
		srv.discardImage(ctx, previousKey)
	}

	srv.events.notify(ctx, srv.log(ctx), &service.ProductEvent{
		Type:      service.ProductUpdated,
		ProductID: product.ID,
		Name:      product.Name,
	})

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id int64) error {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	srv.discardImage(ctx, product.ImgKey)
	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))
	srv.events.notify(ctx, srv.log(ctx), &service.ProductEvent{
		Type:      service.ProductDeleted,
		ProductID: product.ID,
		Name:      product.Name,
	})

	return nil
}

func (srv *productService) ProductQRCode(ctx context.Context, id int64) ([]byte, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	png, err := srv.qrcode.GenerateProductQR(product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

func (srv *productService) OpenImage(ctx context.Context, key string) (*service.StoredImage, error) {
	// Keys are flat object names. Anything path-like cannot have been issued by storeImage.
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return nil, errors.WithStack(domainerrors.ErrImageNotFound)
	}

	image, err := srv.storage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			return nil, errors.WithStack(domainerrors.ErrImageNotFound)
		}

		return nil, errors.Wrap(err, "failed to open product image")
	}

	return image, nil
}

// validateInput checks field ranges and that the referenced category exists.
// Name uniqueness is left to the storage constraint.
func (srv *productService) validateInput(ctx context.Context, input *usecase.ProductInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return errors.WithStack(domainerrors.ValidationError("product name is required"))
	}
	if input.Price < 0 {
		return errors.WithStack(domainerrors.ValidationError("price must not be negative"))
	}
	if input.Stock < 0 {
		return errors.WithStack(domainerrors.ValidationError("stock must not be negative"))
	}
	if input.CategoryID <= 0 {
		return errors.WithStack(domainerrors.ErrCategoryReferenceInvalid)
	}

	exists, err := srv.categoryRepo.ExistsByID(ctx, input.CategoryID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !exists {
		return errors.WithStack(domainerrors.ErrCategoryReferenceInvalid)
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = input.Price
	product.SKU = strings.TrimSpace(input.SKU)
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID
}

// storeImage uploads the image under a fresh key and returns its URL and key.
func (srv *productService) storeImage(ctx context.Context, image *usecase.ImageUpload) (string, string, error) {
	if image.Size > srv.maxImageSize {
		return "", "", errors.WithStack(domainerrors.ErrImageTooLarge.WithDetails(
			"limit is " + util.FormatBytes(srv.maxImageSize),
		))
	}

	ext := strings.ToLower(filepath.Ext(image.Filename))
	contentType := image.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", "", errors.WithStack(domainerrors.ValidationError("uploaded file is not an image"))
	}
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}
	}

	key := uuid.NewString() + ext
	url, err := srv.storage.Upload(ctx, key, image.Body, image.Size, contentType)
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			return "", "", errors.WithStack(domainerrors.ErrImageUploadDisabled)
		}

		return "", "", errors.Wrap(err, "failed to upload product image")
	}

	return url, key, nil
}

// discardImage removes a stored object. Failures leave an orphan and are only logged.
func (srv *productService) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := srv.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
		srv.log(ctx).Warn("Failed to delete product image", slog.String("key", key), slog.Any("error", err))
	}
}
