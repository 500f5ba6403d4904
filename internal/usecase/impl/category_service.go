package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ecommerce/internal/delivery/context"
	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	"ecommerce/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) ListCategories(ctx context.Context, order entity.CategoryOrder) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx, order)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return categories, nil
}

func (srv *categoryService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return category, nil
}

func (srv *categoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.WithStack(domainerrors.ValidationError("category name is required"))
	}

	category := &entity.Category{Name: name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, mapRepositoryError(err)
	}

	srv.log(ctx).Info("Category created", slog.Int64("categoryID", category.ID), slog.String("name", name))

	return category, nil
}

func (srv *categoryService) UpdateCategory(ctx context.Context, id int64, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.WithStack(domainerrors.ValidationError("category name is required"))
	}

	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	category.Name = name
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, mapRepositoryError(err)
	}

	return category, nil
}

// DeleteCategory fails with ErrCategoryInUse while products still reference the category.
func (srv *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	srv.log(ctx).Info("Category deleted", slog.Int64("categoryID", id))

	return nil
}
