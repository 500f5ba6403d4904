package service

import (
	"ecommerce/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a mock that asserts its expectations on cleanup.
func NewMockQRCodeService(t TestingT) *MockQRCodeService {
	m := &MockQRCodeService{}
	register(&m.Mock, t)

	return m
}

// MockQRCodeService_Expecter records expected calls.
type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

func (_m *MockQRCodeService) GenerateProductQR(product *entity.Product) ([]byte, error) {
	ret := _m.Called(product)

	return value[[]byte](ret, 0), ret.Error(1)
}

func (_e *MockQRCodeService_Expecter) GenerateProductQR(product any) *mock.Call {
	return _e.mock.On("GenerateProductQR", product)
}

func (_m *MockQRCodeService) ParseProductQR(qrData string) (int64, error) {
	ret := _m.Called(qrData)

	return value[int64](ret, 0), ret.Error(1)
}

func (_e *MockQRCodeService_Expecter) ParseProductQR(qrData any) *mock.Call {
	return _e.mock.On("ParseProductQR", qrData)
}
