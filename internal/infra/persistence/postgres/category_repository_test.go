package postgres

import (
	"context"
	"testing"
	"time"

	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_ListOrders(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	categories := NewCategoryRepository(db)

	for _, name := range []string{"Toys", "books", "Garden"} {
		seedCategory(t, db, name)
	}

	byName, err := categories.List(ctx, entity.CategoryOrderByName)
	require.NoError(t, err)
	require.Len(t, byName, 3)
	assert.Equal(t, []string{"books", "Garden", "Toys"}, categoryNames(byName))

	byID, err := categories.List(ctx, entity.CategoryOrderByID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Toys", "books", "Garden"}, categoryNames(byID))
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	categories := NewCategoryRepository(db)
	seedCategory(t, db, "Books")

	err := categories.Create(ctx, &entity.Category{Name: " books"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryAlreadyExists))

	exists, err := categories.ExistsByName(ctx, "BOOKS")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCategoryRepository_UpdateRefreshesTimestamp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	categories := NewCategoryRepository(db)
	category := seedCategory(t, db, "Books")
	seedCategory(t, db, "Music")
	created := category.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	category.Name = "Novels"
	require.NoError(t, categories.Update(ctx, category))

	stored, err := categories.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Novels", stored.Name)
	assert.True(t, stored.UpdatedAt.After(created))

	category.Name = "music"
	err = categories.Update(ctx, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryAlreadyExists))

	err = categories.Update(ctx, &entity.Category{ID: 999, Name: "Ghost"})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryRepository_DeleteReferencedIsRejected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	categories := NewCategoryRepository(db)
	category := seedCategory(t, db, "Tools")
	seedProduct(t, db, &entity.Product{Name: "Hammer", Price: 9.5, Stock: 3, CategoryID: category.ID})

	err := categories.Delete(ctx, category.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryInUse))

	empty := seedCategory(t, db, "Empty")
	require.NoError(t, categories.Delete(ctx, empty.ID))

	exists, err := categories.ExistsByID(ctx, empty.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, categories.Delete(ctx, empty.ID), repository.ErrCategoryNotFound)
}

func categoryNames(categories []*entity.Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}

	return names
}
