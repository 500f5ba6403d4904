package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ecommerce/internal/delivery/context"
	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/usecase"
	"ecommerce/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
	metrics     service.CatalogMetrics
	events      *eventNotifier
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Metrics     service.CatalogMetrics `optional:"true"`
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		metrics:     params.Metrics,
		events:      &eventNotifier{publisher: params.Publisher, metrics: params.Metrics},
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) recordPurchase(outcome service.PurchaseOutcome, quantity int) {
	if srv.metrics != nil {
		srv.metrics.RecordPurchase(outcome, quantity)
	}
}

func (srv *catalogService) ListPaged(ctx context.Context, pageNumber, pageSize int) (*usecase.ProductPage, error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, errors.WithStack(domainerrors.ErrInvalidPagination)
	}

	total, err := srv.productRepo.Count(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	totalPages := util.TotalPages(total, pageSize)
	page := &usecase.ProductPage{
		Items:      []*entity.Product{},
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
	}

	if total == 0 && pageNumber == 1 {
		return page, nil
	}
	if pageNumber > totalPages {
		return nil, errors.WithStack(domainerrors.ErrPageNotFound)
	}

	items, err := srv.productRepo.Page(ctx, pageNumber, pageSize)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	page.Items = items

	return page, nil
}

func (srv *catalogService) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	products, err := srv.productRepo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return products, nil
}

func (srv *catalogService) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	if categoryID <= 0 {
		return []*entity.Product{}, nil
	}

	products, err := srv.productRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return products, nil
}

// BuyProduct relies on one conditional UPDATE. The existence lookup only runs after
// a miss, to tell an unknown product from one without enough stock.
func (srv *catalogService) BuyProduct(ctx context.Context, name string, quantity int) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, errors.WithStack(domainerrors.ValidationError("product name is required"))
	}
	if quantity <= 0 {
		return false, errors.WithStack(domainerrors.ValidationError("quantity must be greater than zero"))
	}

	bought, err := srv.productRepo.TryDecrementStock(ctx, name, quantity)
	if err != nil {
		return false, mapRepositoryError(err)
	}

	if bought {
		srv.recordPurchase(service.PurchaseSucceeded, quantity)
		srv.log(ctx).Info("Product purchased", slog.String("name", name), slog.Int("quantity", quantity))
		srv.events.notify(ctx, srv.log(ctx), &service.ProductEvent{
			Type:     service.ProductPurchased,
			Name:     name,
			Quantity: quantity,
		})

		return true, nil
	}

	exists, err := srv.productRepo.ExistsByName(ctx, name)
	if err != nil {
		return false, mapRepositoryError(err)
	}
	if !exists {
		srv.recordPurchase(service.PurchaseUnknownProduct, quantity)

		return false, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	srv.recordPurchase(service.PurchaseInsufficientStock, quantity)
	srv.log(ctx).Info("Purchase rejected, insufficient stock", slog.String("name", name), slog.Int("quantity", quantity))

	return false, nil
}
