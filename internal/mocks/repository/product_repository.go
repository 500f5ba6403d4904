package repository

import (
	"context"

	"ecommerce/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock that asserts its expectations on cleanup.
func NewMockProductRepository(t TestingT) *MockProductRepository {
	m := &MockProductRepository{}
	register(&m.Mock, t)

	return m
}

// MockProductRepository_Expecter records expected calls.
type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	ret := _m.Called(ctx)

	return value[[]*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) List(ctx any) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	return value[*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	ret := _m.Called(ctx, categoryID)

	return value[[]*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) ListByCategory(ctx, categoryID any) *mock.Call {
	return _e.mock.On("ListByCategory", ctx, categoryID)
}

func (_m *MockProductRepository) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	ret := _m.Called(ctx, term)

	return value[[]*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) Search(ctx, term any) *mock.Call {
	return _e.mock.On("Search", ctx, term)
}

func (_m *MockProductRepository) Page(ctx context.Context, pageNumber, pageSize int) ([]*entity.Product, error) {
	ret := _m.Called(ctx, pageNumber, pageSize)

	return value[[]*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) Page(ctx, pageNumber, pageSize any) *mock.Call {
	return _e.mock.On("Page", ctx, pageNumber, pageSize)
}

func (_m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	return value[int64](ret, 0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) Count(ctx any) *mock.Call {
	return _e.mock.On("Count", ctx)
}

func (_m *MockProductRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	ret := _m.Called(ctx, name)

	return value[*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) FindByName(ctx, name any) *mock.Call {
	return _e.mock.On("FindByName", ctx, name)
}

func (_m *MockProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ret := _m.Called(ctx, name)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) ExistsByName(ctx, name any) *mock.Call {
	return _e.mock.On("ExistsByName", ctx, name)
}

func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return _m.Called(ctx, product).Error(0)
}

func (_e *MockProductRepository_Expecter) Create(ctx, product any) *mock.Call {
	return _e.mock.On("Create", ctx, product)
}

func (_m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return _m.Called(ctx, product).Error(0)
}

func (_e *MockProductRepository_Expecter) Update(ctx, product any) *mock.Call {
	return _e.mock.On("Update", ctx, product)
}

func (_m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

func (_e *MockProductRepository_Expecter) Delete(ctx, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

func (_m *MockProductRepository) TryDecrementStock(ctx context.Context, name string, amount int) (bool, error) {
	ret := _m.Called(ctx, name, amount)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) TryDecrementStock(ctx, name, amount any) *mock.Call {
	return _e.mock.On("TryDecrementStock", ctx, name, amount)
}
