package usecase

import (
	"context"

	"ecommerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock that asserts its expectations on cleanup.
func NewMockAuthUsecase(t TestingT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	register(&m.Mock, t)

	return m
}

// MockAuthUsecase_Expecter records expected calls.
type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserView, error) {
	ret := _m.Called(ctx, input)

	return value[*usecase.UserView](ret, 0), ret.Error(1)
}

func (_e *MockAuthUsecase_Expecter) Register(ctx, input any) *mock.Call {
	return _e.mock.On("Register", ctx, input)
}

func (_m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	return value[*usecase.LoginOutput](ret, 0), ret.Error(1)
}

func (_e *MockAuthUsecase_Expecter) Login(ctx, input any) *mock.Call {
	return _e.mock.On("Login", ctx, input)
}

// MockUserUsecase is a mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock that asserts its expectations on cleanup.
func NewMockUserUsecase(t TestingT) *MockUserUsecase {
	m := &MockUserUsecase{}
	register(&m.Mock, t)

	return m
}

// MockUserUsecase_Expecter records expected calls.
type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockUserUsecase) ListUsers(ctx context.Context) ([]*usecase.UserView, error) {
	ret := _m.Called(ctx)

	return value[[]*usecase.UserView](ret, 0), ret.Error(1)
}

func (_e *MockUserUsecase_Expecter) ListUsers(ctx any) *mock.Call {
	return _e.mock.On("ListUsers", ctx)
}

func (_m *MockUserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*usecase.UserView, error) {
	ret := _m.Called(ctx, id)

	return value[*usecase.UserView](ret, 0), ret.Error(1)
}

func (_e *MockUserUsecase_Expecter) GetUser(ctx, id any) *mock.Call {
	return _e.mock.On("GetUser", ctx, id)
}
