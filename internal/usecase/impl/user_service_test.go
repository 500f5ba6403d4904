package impl

import (
	"context"
	"testing"

	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	mockRepo "ecommerce/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_ListUsers_HidesPasswordHash(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo})

	users := []*entity.User{
		{ID: uuid.New(), Username: "alice", Name: "Alice", PasswordHash: "h1", Roles: entity.Roles{entity.RoleAdmin}},
		{ID: uuid.New(), Username: "bob", Name: "Bob", PasswordHash: "h2"},
	}
	userRepo.EXPECT().List(mock.Anything).Return(users, nil)

	views, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "alice", views[0].Username)
	assert.Equal(t, entity.RoleAdmin, views[0].Role)
	assert.Equal(t, entity.Role(""), views[1].Role)
}

func TestUserService_ListUsers_Empty(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo})
	userRepo.EXPECT().List(mock.Anything).Return([]*entity.User{}, nil)

	views, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo})
	id := uuid.New()
	userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	view, err := svc.GetUser(context.Background(), id)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
