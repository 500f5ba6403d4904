package service

import (
	"context"

	"ecommerce/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock that asserts its expectations on cleanup.
func NewMockEventPublisher(t TestingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	register(&m.Mock, t)

	return m
}

// MockEventPublisher_Expecter records expected calls.
type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

func (_m *MockEventPublisher) PublishProductEvent(ctx context.Context, event *service.ProductEvent) error {
	return _m.Called(ctx, event).Error(0)
}

func (_e *MockEventPublisher_Expecter) PublishProductEvent(ctx, event any) *mock.Call {
	return _e.mock.On("PublishProductEvent", ctx, event)
}

func (_m *MockEventPublisher) Close() error {
	return _m.Called().Error(0)
}

func (_e *MockEventPublisher_Expecter) Close() *mock.Call {
	return _e.mock.On("Close")
}
