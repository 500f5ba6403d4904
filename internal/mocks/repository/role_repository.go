package repository

import (
	"context"

	"ecommerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRoleRepository is a mock of repository.RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

// NewMockRoleRepository creates a mock that asserts its expectations on cleanup.
func NewMockRoleRepository(t TestingT) *MockRoleRepository {
	m := &MockRoleRepository{}
	register(&m.Mock, t)

	return m
}

// MockRoleRepository_Expecter records expected calls.
type MockRoleRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRoleRepository) EXPECT() *MockRoleRepository_Expecter {
	return &MockRoleRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockRoleRepository) Exists(ctx context.Context, name entity.Role) (bool, error) {
	ret := _m.Called(ctx, name)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockRoleRepository_Expecter) Exists(ctx, name any) *mock.Call {
	return _e.mock.On("Exists", ctx, name)
}

func (_m *MockRoleRepository) Create(ctx context.Context, name entity.Role) error {
	return _m.Called(ctx, name).Error(0)
}

func (_e *MockRoleRepository_Expecter) Create(ctx, name any) *mock.Call {
	return _e.mock.On("Create", ctx, name)
}

func (_m *MockRoleRepository) Assign(ctx context.Context, userID uuid.UUID, name entity.Role) error {
	return _m.Called(ctx, userID, name).Error(0)
}

func (_e *MockRoleRepository_Expecter) Assign(ctx, userID, name any) *mock.Call {
	return _e.mock.On("Assign", ctx, userID, name)
}

func (_m *MockRoleRepository) RolesOf(ctx context.Context, userID uuid.UUID) (entity.Roles, error) {
	ret := _m.Called(ctx, userID)

	return value[entity.Roles](ret, 0), ret.Error(1)
}

func (_e *MockRoleRepository_Expecter) RolesOf(ctx, userID any) *mock.Call {
	return _e.mock.On("RolesOf", ctx, userID)
}
