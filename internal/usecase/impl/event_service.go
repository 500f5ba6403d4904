package impl

import (
	"context"
	"log/slog"
	"strings"

	"ecommerce/config"
	deliverycontext "ecommerce/internal/delivery/context"
	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventService struct {
	productRepo       repository.ProductRepository
	lowStockThreshold int
	logger            *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	threshold := 0
	if params.Config != nil && params.Config.Catalog != nil {
		threshold = params.Config.Catalog.LowStockThreshold
	}

	return &eventService{
		productRepo:       params.ProductRepo,
		lowStockThreshold: threshold,
		logger:            params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *eventService) HandleProductEvent(ctx context.Context, event *service.ProductEvent) error {
	if event == nil {
		return errors.WithStack(domainerrors.ValidationError("event is empty"))
	}

	logger := srv.log(ctx).With(
		slog.String("type", string(event.Type)),
		slog.Int64("product_id", event.ProductID),
	)

	switch event.Type {
	case service.ProductCreated, service.ProductUpdated, service.ProductDeleted:
		logger.Info("Catalog changed", slog.String("name", event.Name))

		return nil
	case service.ProductPurchased:
		return srv.checkStock(ctx, logger, event)
	default:
		return errors.WithStack(domainerrors.ValidationError("unknown event type " + string(event.Type)))
	}
}

// checkStock reads the current stock, which may already be lower than right after the purchase.
func (srv *eventService) checkStock(ctx context.Context, logger *slog.Logger, event *service.ProductEvent) error {
	product, err := srv.findPurchased(ctx, event)
	if errors.Is(err, repository.ErrProductNotFound) {
		logger.Info("Purchased product no longer exists")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "load purchased product")
	}

	if product == nil {
		return errors.WithStack(domainerrors.ValidationError("purchase event without product id or name"))
	}

	if product.Stock <= srv.lowStockThreshold {
		logger.Warn("Product stock is low",
			slog.String("name", product.Name),
			slog.Int("stock", product.Stock),
			slog.Int("threshold", srv.lowStockThreshold),
		)
	}

	return nil
}

func (srv *eventService) findPurchased(ctx context.Context, event *service.ProductEvent) (*entity.Product, error) {
	switch {
	case event.ProductID > 0:
		return srv.productRepo.FindByID(ctx, event.ProductID)
	case strings.TrimSpace(event.Name) != "":
		return srv.productRepo.FindByName(ctx, event.Name)
	default:
		return nil, nil
	}
}
