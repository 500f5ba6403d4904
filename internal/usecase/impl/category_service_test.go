package impl

import (
	"context"
	"testing"

	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	mockRepo "ecommerce/internal/mocks/repository"
	"ecommerce/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCategoryService(t *testing.T) (usecase.CategoryUsecase, *mockRepo.MockCategoryRepository) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	return NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	}), categoryRepo
}

func TestCategoryService_ListCategories_PassesOrder(t *testing.T) {
	svc, repo := createTestCategoryService(t)
	want := []*entity.Category{{ID: 2, Name: "Books"}, {ID: 1, Name: "Toys"}}
	repo.EXPECT().List(mock.Anything, entity.CategoryOrderByName).Return(want, nil)

	got, err := svc.ListCategories(context.Background(), entity.CategoryOrderByName)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	svc, repo := createTestCategoryService(t)
	repo.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, repository.ErrCategoryNotFound)

	got, err := svc.GetCategory(context.Background(), 9)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	svc, repo := createTestCategoryService(t)
	repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *entity.Category) bool { return c.Name == "Books" })).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Category).ID = 4 }).
		Return(nil)

	got, err := svc.CreateCategory(context.Background(), "  Books ")

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "Books", got.Name)
}

func TestCategoryService_CreateCategory_Duplicate(t *testing.T) {
	svc, repo := createTestCategoryService(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.WithStack(domainerrors.ErrCategoryAlreadyExists))

	_, err := svc.CreateCategory(context.Background(), "books")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCategoryService_CreateCategory_BlankName(t *testing.T) {
	svc, _ := createTestCategoryService(t)

	_, err := svc.CreateCategory(context.Background(), "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	svc, repo := createTestCategoryService(t)
	repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(&entity.Category{ID: 1, Name: "Toys"}, nil)
	repo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(c *entity.Category) bool { return c.ID == 1 && c.Name == "Games" })).
		Return(nil)

	got, err := svc.UpdateCategory(context.Background(), 1, "Games")

	require.NoError(t, err)
	assert.Equal(t, "Games", got.Name)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	svc, repo := createTestCategoryService(t)
	repo.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, repository.ErrCategoryNotFound)

	_, err := svc.UpdateCategory(context.Background(), 5, "Games")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "deleted"},
		{name: "not found", repoErr: repository.ErrCategoryNotFound, wantErr: domainerrors.ErrCategoryNotFound},
		{name: "in use", repoErr: domainerrors.ErrCategoryInUse.WrapMessage("category has products"), wantErr: domainerrors.ErrCategoryInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := createTestCategoryService(t)
			repo.EXPECT().Delete(mock.Anything, int64(3)).Return(tt.repoErr)

			err := svc.DeleteCategory(context.Background(), 3)

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
