package service

import (
	"context"
	"io"

	"ecommerce/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockImageStorage is a mock of service.ImageStorage.
type MockImageStorage struct {
	mock.Mock
}

// NewMockImageStorage creates a mock that asserts its expectations on cleanup.
func NewMockImageStorage(t TestingT) *MockImageStorage {
	m := &MockImageStorage{}
	register(&m.Mock, t)

	return m
}

// MockImageStorage_Expecter records expected calls.
type MockImageStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *MockImageStorage) EXPECT() *MockImageStorage_Expecter {
	return &MockImageStorage_Expecter{mock: &_m.Mock}
}

func (_m *MockImageStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	ret := _m.Called(ctx, key, body, size, contentType)

	return ret.String(0), ret.Error(1)
}

func (_e *MockImageStorage_Expecter) Upload(ctx, key, body, size, contentType any) *mock.Call {
	return _e.mock.On("Upload", ctx, key, body, size, contentType)
}

func (_m *MockImageStorage) Open(ctx context.Context, key string) (*service.StoredImage, error) {
	ret := _m.Called(ctx, key)

	return value[*service.StoredImage](ret, 0), ret.Error(1)
}

func (_e *MockImageStorage_Expecter) Open(ctx, key any) *mock.Call {
	return _e.mock.On("Open", ctx, key)
}

func (_m *MockImageStorage) Delete(ctx context.Context, key string) error {
	return _m.Called(ctx, key).Error(0)
}

func (_e *MockImageStorage_Expecter) Delete(ctx, key any) *mock.Call {
	return _e.mock.On("Delete", ctx, key)
}
