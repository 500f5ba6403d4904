package usecase

import (
	"context"

	"ecommerce/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventUsecase is a mock of usecase.EventUsecase.
type MockEventUsecase struct {
	mock.Mock
}

// NewMockEventUsecase creates a mock that asserts its expectations on cleanup.
func NewMockEventUsecase(t TestingT) *MockEventUsecase {
	m := &MockEventUsecase{}
	register(&m.Mock, t)

	return m
}

// MockEventUsecase_Expecter records expected calls.
type MockEventUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventUsecase) EXPECT() *MockEventUsecase_Expecter {
	return &MockEventUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockEventUsecase) HandleProductEvent(ctx context.Context, event *service.ProductEvent) error {
	return _m.Called(ctx, event).Error(0)
}

func (_e *MockEventUsecase_Expecter) HandleProductEvent(ctx, event any) *mock.Call {
	return _e.mock.On("HandleProductEvent", ctx, event)
}
