package usecase

import (
	"context"

	"ecommerce/internal/domain/entity"
	"ecommerce/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCatalogUsecase is a mock of usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

// NewMockCatalogUsecase creates a mock that asserts its expectations on cleanup.
func NewMockCatalogUsecase(t TestingT) *MockCatalogUsecase {
	m := &MockCatalogUsecase{}
	register(&m.Mock, t)

	return m
}

// MockCatalogUsecase_Expecter records expected calls.
type MockCatalogUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCatalogUsecase) EXPECT() *MockCatalogUsecase_Expecter {
	return &MockCatalogUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockCatalogUsecase) ListPaged(ctx context.Context, pageNumber, pageSize int) (*usecase.ProductPage, error) {
	ret := _m.Called(ctx, pageNumber, pageSize)

	return value[*usecase.ProductPage](ret, 0), ret.Error(1)
}

func (_e *MockCatalogUsecase_Expecter) ListPaged(ctx, pageNumber, pageSize any) *mock.Call {
	return _e.mock.On("ListPaged", ctx, pageNumber, pageSize)
}

func (_m *MockCatalogUsecase) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	ret := _m.Called(ctx, term)

	return value[[]*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockCatalogUsecase_Expecter) Search(ctx, term any) *mock.Call {
	return _e.mock.On("Search", ctx, term)
}

func (_m *MockCatalogUsecase) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	ret := _m.Called(ctx, categoryID)

	return value[[]*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockCatalogUsecase_Expecter) ListByCategory(ctx, categoryID any) *mock.Call {
	return _e.mock.On("ListByCategory", ctx, categoryID)
}

func (_m *MockCatalogUsecase) BuyProduct(ctx context.Context, name string, quantity int) (bool, error) {
	ret := _m.Called(ctx, name, quantity)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockCatalogUsecase_Expecter) BuyProduct(ctx, name, quantity any) *mock.Call {
	return _e.mock.On("BuyProduct", ctx, name, quantity)
}
