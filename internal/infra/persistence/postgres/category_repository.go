package postgres

import (
	"context"
	"time"

	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	"ecommerce/internal/infra/persistence/model"
	"ecommerce/internal/util"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) List(ctx context.Context, order entity.CategoryOrder) ([]*entity.Category, error) {
	orderBy := "name_normalized ASC, id ASC"
	if order == entity.CategoryOrderByID {
		orderBy = "id ASC"
	}

	var categoryMs []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order(orderBy).Find(&categoryMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return repo.exists(ctx, "id = ?", id)
}

func (repo *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return repo.exists(ctx, "name_normalized = ?", util.Normalize(name))
}

func (repo *categoryRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where(query, arg).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check category")
	}

	return count > 0, nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{
		Name:           category.Name,
		NameNormalized: util.Normalize(category.Name),
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryAlreadyExists.WrapMessage("category name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	now := time.Now().UTC()
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":            category.Name,
			"name_normalized": util.Normalize(category.Name),
			"updated_at":      now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryAlreadyExists.WrapMessage("category name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	category.UpdatedAt = now

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryInUse.WrapMessage("category has products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
