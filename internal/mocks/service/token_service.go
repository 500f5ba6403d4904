package service

import (
	"ecommerce/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock that asserts its expectations on cleanup.
func NewMockTokenService(t TestingT) *MockTokenService {
	m := &MockTokenService{}
	register(&m.Mock, t)

	return m
}

// MockTokenService_Expecter records expected calls.
type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenService) IssueToken(claims service.Claims) (string, error) {
	ret := _m.Called(claims)

	return ret.String(0), ret.Error(1)
}

func (_e *MockTokenService_Expecter) IssueToken(claims any) *mock.Call {
	return _e.mock.On("IssueToken", claims)
}

func (_m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	return value[*service.Claims](ret, 0), ret.Error(1)
}

func (_e *MockTokenService_Expecter) ValidateToken(tokenString any) *mock.Call {
	return _e.mock.On("ValidateToken", tokenString)
}
