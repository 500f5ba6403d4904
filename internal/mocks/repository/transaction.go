package repository

import (
	"context"

	"ecommerce/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock that asserts its expectations on cleanup.
func NewMockTransactionManager(t TestingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	register(&m.Mock, t)

	return m
}

// MockTransactionManager_Expecter records expected calls.
type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &_m.Mock}
}

// Execute accepts either an error or a function with the Execute signature as its return value.
// The function form lets a test run the transaction body against its own factory.
func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

func (_e *MockTransactionManager_Expecter) Execute(ctx, fn any) *mock.Call {
	return _e.mock.On("Execute", ctx, fn)
}

// MockRepositoryFactory is a mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock that asserts its expectations on cleanup.
func NewMockRepositoryFactory(t TestingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	register(&m.Mock, t)

	return m
}

// MockRepositoryFactory_Expecter records expected calls.
type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

func (_m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return value[repository.UserRepository](_m.Called(), 0)
}

func (_e *MockRepositoryFactory_Expecter) UserRepo() *mock.Call {
	return _e.mock.On("UserRepo")
}

func (_m *MockRepositoryFactory) RoleRepo() repository.RoleRepository {
	return value[repository.RoleRepository](_m.Called(), 0)
}

func (_e *MockRepositoryFactory_Expecter) RoleRepo() *mock.Call {
	return _e.mock.On("RoleRepo")
}

func (_m *MockRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	return value[repository.CategoryRepository](_m.Called(), 0)
}

func (_e *MockRepositoryFactory_Expecter) CategoryRepo() *mock.Call {
	return _e.mock.On("CategoryRepo")
}

func (_m *MockRepositoryFactory) ProductRepo() repository.ProductRepository {
	return value[repository.ProductRepository](_m.Called(), 0)
}

func (_e *MockRepositoryFactory_Expecter) ProductRepo() *mock.Call {
	return _e.mock.On("ProductRepo")
}
