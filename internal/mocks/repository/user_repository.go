package repository

import (
	"context"

	"ecommerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock that asserts its expectations on cleanup.
func NewMockUserRepository(t TestingT) *MockUserRepository {
	m := &MockUserRepository{}
	register(&m.Mock, t)

	return m
}

// MockUserRepository_Expecter records expected calls.
type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	return value[*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ret := _m.Called(ctx, username)

	return value[*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByUsername(ctx, username any) *mock.Call {
	return _e.mock.On("FindByUsername", ctx, username)
}

func (_m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	ret := _m.Called(ctx, username)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockUserRepository_Expecter) ExistsByUsername(ctx, username any) *mock.Call {
	return _e.mock.On("ExistsByUsername", ctx, username)
}

func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return _m.Called(ctx, user).Error(0)
}

func (_e *MockUserRepository_Expecter) Create(ctx, user any) *mock.Call {
	return _e.mock.On("Create", ctx, user)
}

func (_m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	ret := _m.Called(ctx)

	return value[[]*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserRepository_Expecter) List(ctx any) *mock.Call {
	return _e.mock.On("List", ctx)
}
