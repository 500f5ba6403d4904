package service

import (
	"ecommerce/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockCatalogMetrics is a mock of service.CatalogMetrics.
type MockCatalogMetrics struct {
	mock.Mock
}

// NewMockCatalogMetrics creates a mock that asserts its expectations on cleanup.
func NewMockCatalogMetrics(t TestingT) *MockCatalogMetrics {
	m := &MockCatalogMetrics{}
	register(&m.Mock, t)

	return m
}

// MockCatalogMetrics_Expecter records expected calls.
type MockCatalogMetrics_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCatalogMetrics) EXPECT() *MockCatalogMetrics_Expecter {
	return &MockCatalogMetrics_Expecter{mock: &_m.Mock}
}

func (_m *MockCatalogMetrics) RecordPurchase(outcome service.PurchaseOutcome, quantity int) {
	_m.Called(outcome, quantity)
}

func (_e *MockCatalogMetrics_Expecter) RecordPurchase(outcome, quantity any) *mock.Call {
	return _e.mock.On("RecordPurchase", outcome, quantity)
}

func (_m *MockCatalogMetrics) RecordEventPublished(eventType service.ProductEventType, err error) {
	_m.Called(eventType, err)
}

func (_e *MockCatalogMetrics_Expecter) RecordEventPublished(eventType, err any) *mock.Call {
	return _e.mock.On("RecordEventPublished", eventType, err)
}
