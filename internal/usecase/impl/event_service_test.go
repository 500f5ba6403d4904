package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"ecommerce/config"
	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	"ecommerce/internal/domain/service"
	mockRepo "ecommerce/internal/mocks/repository"
	"ecommerce/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEventService(t *testing.T) (usecase.EventUsecase, *mockRepo.MockProductRepository, *bytes.Buffer) {
	productRepo := mockRepo.NewMockProductRepository(t)
	var logs bytes.Buffer

	return NewEventService(EventServiceParams{
		ProductRepo: productRepo,
		Config:      &config.Config{Catalog: &config.CatalogConfig{LowStockThreshold: 3}},
		Logger:      slog.New(slog.NewTextHandler(&logs, nil)),
	}), productRepo, &logs
}

func TestEventService_PurchaseStockLevels(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		wantWarn bool
	}{
		{name: "above threshold", stock: 4},
		{name: "at threshold", stock: 3, wantWarn: true},
		{name: "sold out", stock: 0, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, logs := createTestEventService(t)
			repo.EXPECT().FindByName(mock.Anything, "Widget").
				Return(&entity.Product{ID: 1, Name: "Widget", Stock: tt.stock}, nil).Once()

			err := svc.HandleProductEvent(context.Background(), &service.ProductEvent{
				Type: service.ProductPurchased, Name: "Widget", Quantity: 2,
			})

			require.NoError(t, err)
			if tt.wantWarn {
				assert.Contains(t, logs.String(), "Product stock is low")
			} else {
				assert.NotContains(t, logs.String(), "Product stock is low")
			}
		})
	}
}

func TestEventService_PurchaseLooksUpByIDFirst(t *testing.T) {
	svc, repo, _ := createTestEventService(t)
	repo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Product{ID: 7, Stock: 10}, nil).Once()

	err := svc.HandleProductEvent(context.Background(), &service.ProductEvent{
		Type: service.ProductPurchased, ProductID: 7, Name: "Widget",
	})

	require.NoError(t, err)
}

func TestEventService_PurchaseOfDeletedProduct(t *testing.T) {
	svc, repo, _ := createTestEventService(t)
	repo.EXPECT().FindByName(mock.Anything, "Widget").Return(nil, repository.ErrProductNotFound).Once()

	err := svc.HandleProductEvent(context.Background(), &service.ProductEvent{Type: service.ProductPurchased, Name: "Widget"})

	assert.NoError(t, err)
}

func TestEventService_RepositoryFailureIsRetryable(t *testing.T) {
	svc, repo, _ := createTestEventService(t)
	repo.EXPECT().FindByName(mock.Anything, "Widget").Return(nil, errors.New("connection reset")).Once()

	err := svc.HandleProductEvent(context.Background(), &service.ProductEvent{Type: service.ProductPurchased, Name: "Widget"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestEventService_PermanentFailures(t *testing.T) {
	tests := []struct {
		name  string
		event *service.ProductEvent
	}{
		{name: "nil event"},
		{name: "unknown type", event: &service.ProductEvent{Type: "product.archived"}},
		{name: "purchase without product", event: &service.ProductEvent{Type: service.ProductPurchased}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := createTestEventService(t)

			err := svc.HandleProductEvent(context.Background(), tt.event)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestEventService_CatalogChangesAreLogged(t *testing.T) {
	svc, _, logs := createTestEventService(t)

	err := svc.HandleProductEvent(context.Background(), &service.ProductEvent{
		Type: service.ProductCreated, ProductID: 3, Name: "Gizmo",
	})

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Catalog changed")
	assert.Contains(t, logs.String(), "product.created")
}
