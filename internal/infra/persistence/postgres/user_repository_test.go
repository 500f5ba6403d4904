package postgres

import (
	"context"
	"testing"

	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	roles := NewRoleRepository(db)

	user := &entity.User{Username: "Bob", Name: "Bob Builder", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	require.NoError(t, roles.Create(ctx, entity.RoleAdmin))
	require.NoError(t, roles.Create(ctx, entity.RoleUser))
	require.NoError(t, roles.Assign(ctx, user.ID, entity.RoleAdmin))
	require.NoError(t, roles.Assign(ctx, user.ID, entity.RoleUser))

	found, err := users.FindByUsername(ctx, "  bob ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Bob", found.Username)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Equal(t, entity.Roles{entity.RoleAdmin, entity.RoleUser}, found.Roles)
	assert.Equal(t, entity.RoleAdmin, found.PrimaryRole())

	byID, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob Builder", byID.Name)
}

func TestUserRepository_UsernamesCollideAfterNormalization(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)

	require.NoError(t, users.Create(ctx, &entity.User{Username: "alice", PasswordHash: "h"}))

	err := users.Create(ctx, &entity.User{Username: " ALICE ", PasswordHash: "h"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	exists, err := users.ExistsByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)

	_, err := users.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = users.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	exists, err := users.ExistsByUsername(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_ListOrdersByUsername(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)

	for _, name := range []string{"charlie", "Alice", "bob"} {
		require.NoError(t, users.Create(ctx, &entity.User{Username: name, PasswordHash: "h"}))
	}

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Alice", list[0].Username)
	assert.Equal(t, "bob", list[1].Username)
	assert.Equal(t, "charlie", list[2].Username)
}

func TestRoleRepository_CreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	roles := NewRoleRepository(db)

	require.NoError(t, roles.Create(ctx, "Editor"))
	require.NoError(t, roles.Create(ctx, "Editor"))

	exists, err := roles.Exists(ctx, "Editor")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = roles.Exists(ctx, "Ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRoleRepository_AssignUnknownRole(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	roles := NewRoleRepository(db)

	user := &entity.User{Username: "dana", PasswordHash: "h"}
	require.NoError(t, users.Create(ctx, user))

	err := roles.Assign(ctx, user.ID, "Missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	assigned, err := roles.RolesOf(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, assigned)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	sentinel := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, &entity.User{Username: "eve", PasswordHash: "h"}); err != nil {
			return err
		}

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	exists, err := NewUserRepository(db).ExistsByUsername(ctx, "eve")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	var userID uuid.UUID
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		user := &entity.User{Username: "frank", PasswordHash: "h"}
		if err := f.UserRepo().Create(ctx, user); err != nil {
			return err
		}
		if err := f.RoleRepo().Create(ctx, entity.RoleUser); err != nil {
			return err
		}
		userID = user.ID

		return f.RoleRepo().Assign(ctx, user.ID, entity.RoleUser)
	})
	require.NoError(t, err)

	found, err := NewUserRepository(db).FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleUser}, found.Roles)
}
