package usecase

import (
	"context"

	"ecommerce/internal/domain/entity"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockProductUsecase is a mock of usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

// NewMockProductUsecase creates a mock that asserts its expectations on cleanup.
func NewMockProductUsecase(t TestingT) *MockProductUsecase {
	m := &MockProductUsecase{}
	register(&m.Mock, t)

	return m
}

// MockProductUsecase_Expecter records expected calls.
type MockProductUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductUsecase) EXPECT() *MockProductUsecase_Expecter {
	return &MockProductUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockProductUsecase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	ret := _m.Called(ctx)

	return value[[]*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) ListProducts(ctx any) *mock.Call {
	return _e.mock.On("ListProducts", ctx)
}

func (_m *MockProductUsecase) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	return value[*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) GetProduct(ctx, id any) *mock.Call {
	return _e.mock.On("GetProduct", ctx, id)
}

func (_m *MockProductUsecase) CreateProduct(ctx context.Context, input *usecase.ProductInput, image *usecase.ImageUpload) (*entity.Product, error) {
	ret := _m.Called(ctx, input, image)

	return value[*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) CreateProduct(ctx, input, image any) *mock.Call {
	return _e.mock.On("CreateProduct", ctx, input, image)
}

func (_m *MockProductUsecase) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput, image *usecase.ImageUpload) (*entity.Product, error) {
	ret := _m.Called(ctx, id, input, image)

	return value[*entity.Product](ret, 0), ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) UpdateProduct(ctx, id, input, image any) *mock.Call {
	return _e.mock.On("UpdateProduct", ctx, id, input, image)
}

func (_m *MockProductUsecase) DeleteProduct(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

func (_e *MockProductUsecase_Expecter) DeleteProduct(ctx, id any) *mock.Call {
	return _e.mock.On("DeleteProduct", ctx, id)
}

func (_m *MockProductUsecase) ProductQRCode(ctx context.Context, id int64) ([]byte, error) {
	ret := _m.Called(ctx, id)

	return value[[]byte](ret, 0), ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) ProductQRCode(ctx, id any) *mock.Call {
	return _e.mock.On("ProductQRCode", ctx, id)
}

func (_m *MockProductUsecase) OpenImage(ctx context.Context, key string) (*service.StoredImage, error) {
	ret := _m.Called(ctx, key)

	return value[*service.StoredImage](ret, 0), ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) OpenImage(ctx, key any) *mock.Call {
	return _e.mock.On("OpenImage", ctx, key)
}
