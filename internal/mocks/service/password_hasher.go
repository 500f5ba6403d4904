package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock that asserts its expectations on cleanup.
func NewMockPasswordHasher(t TestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	register(&m.Mock, t)

	return m
}

// MockPasswordHasher_Expecter records expected calls.
type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (_e *MockPasswordHasher_Expecter) Hash(password any) *mock.Call {
	return _e.mock.On("Hash", password)
}

func (_m *MockPasswordHasher) Check(password, hash string) bool {
	return _m.Called(password, hash).Bool(0)
}

func (_e *MockPasswordHasher_Expecter) Check(password, hash any) *mock.Call {
	return _e.mock.On("Check", password, hash)
}
