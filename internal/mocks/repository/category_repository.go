package repository

import (
	"context"

	"ecommerce/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock that asserts its expectations on cleanup.
func NewMockCategoryRepository(t TestingT) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	register(&m.Mock, t)

	return m
}

// MockCategoryRepository_Expecter records expected calls.
type MockCategoryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCategoryRepository) EXPECT() *MockCategoryRepository_Expecter {
	return &MockCategoryRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockCategoryRepository) List(ctx context.Context, order entity.CategoryOrder) ([]*entity.Category, error) {
	ret := _m.Called(ctx, order)

	return value[[]*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) List(ctx, order any) *mock.Call {
	return _e.mock.On("List", ctx, order)
}

func (_m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	ret := _m.Called(ctx, id)

	return value[*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockCategoryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	ret := _m.Called(ctx, id)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) ExistsByID(ctx, id any) *mock.Call {
	return _e.mock.On("ExistsByID", ctx, id)
}

func (_m *MockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ret := _m.Called(ctx, name)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) ExistsByName(ctx, name any) *mock.Call {
	return _e.mock.On("ExistsByName", ctx, name)
}

func (_m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return _m.Called(ctx, category).Error(0)
}

func (_e *MockCategoryRepository_Expecter) Create(ctx, category any) *mock.Call {
	return _e.mock.On("Create", ctx, category)
}

func (_m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return _m.Called(ctx, category).Error(0)
}

func (_e *MockCategoryRepository_Expecter) Update(ctx, category any) *mock.Call {
	return _e.mock.On("Update", ctx, category)
}

func (_m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

func (_e *MockCategoryRepository_Expecter) Delete(ctx, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}
