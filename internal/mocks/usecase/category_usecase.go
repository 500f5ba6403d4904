package usecase

import (
	"context"

	"ecommerce/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCategoryUsecase is a mock of usecase.CategoryUsecase.
type MockCategoryUsecase struct {
	mock.Mock
}

// NewMockCategoryUsecase creates a mock that asserts its expectations on cleanup.
func NewMockCategoryUsecase(t TestingT) *MockCategoryUsecase {
	m := &MockCategoryUsecase{}
	register(&m.Mock, t)

	return m
}

// MockCategoryUsecase_Expecter records expected calls.
type MockCategoryUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCategoryUsecase) EXPECT() *MockCategoryUsecase_Expecter {
	return &MockCategoryUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockCategoryUsecase) ListCategories(ctx context.Context, order entity.CategoryOrder) ([]*entity.Category, error) {
	ret := _m.Called(ctx, order)

	return value[[]*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCategoryUsecase_Expecter) ListCategories(ctx, order any) *mock.Call {
	return _e.mock.On("ListCategories", ctx, order)
}

func (_m *MockCategoryUsecase) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	ret := _m.Called(ctx, id)

	return value[*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCategoryUsecase_Expecter) GetCategory(ctx, id any) *mock.Call {
	return _e.mock.On("GetCategory", ctx, id)
}

func (_m *MockCategoryUsecase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	ret := _m.Called(ctx, name)

	return value[*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCategoryUsecase_Expecter) CreateCategory(ctx, name any) *mock.Call {
	return _e.mock.On("CreateCategory", ctx, name)
}

func (_m *MockCategoryUsecase) UpdateCategory(ctx context.Context, id int64, name string) (*entity.Category, error) {
	ret := _m.Called(ctx, id, name)

	return value[*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCategoryUsecase_Expecter) UpdateCategory(ctx, id, name any) *mock.Call {
	return _e.mock.On("UpdateCategory", ctx, id, name)
}

func (_m *MockCategoryUsecase) DeleteCategory(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

func (_e *MockCategoryUsecase_Expecter) DeleteCategory(ctx, id any) *mock.Call {
	return _e.mock.On("DeleteCategory", ctx, id)
}
