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
	"gorm.io/plugin/dbresolver"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) withCategory(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Category")
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	return repo.find(repo.withCategory(ctx).Order("products.name_normalized ASC"), "failed to list products")
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return repo.findOne(repo.withCategory(ctx), id)
}

func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	return repo.findOneWhere(repo.withCategory(ctx), "products.name_normalized = ?", util.Normalize(name))
}

func (repo *productRepository) findOne(db *gorm.DB, id int64) (*entity.Product, error) {
	return repo.findOneWhere(db, "products.id = ?", id)
}

// findOneWhere reads from the primary so a row written in the same request is visible.
func (repo *productRepository) findOneWhere(db *gorm.DB, query string, arg any) (*entity.Product, error) {
	var productM model.ProductModel
	if err := db.Clauses(dbresolver.Write).Where(query, arg).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	if categoryID <= 0 {
		return []*entity.Product{}, nil
	}

	return repo.find(
		repo.withCategory(ctx).
			Where("products.category_id = ?", categoryID).
			Order("products.name_normalized ASC"),
		"failed to list products by category",
	)
}

// Search matches the term literally: LIKE wildcards in it are escaped.
func (repo *productRepository) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	query := repo.withCategory(ctx)

	needle := util.Normalize(term)
	if needle != "" {
		pattern := "%" + util.EscapeLike(needle) + "%"
		query = query.Where(
			`products.name_normalized LIKE ? ESCAPE '\' OR LOWER(products.description) LIKE ? ESCAPE '\'`,
			pattern, pattern,
		)
	}

	return repo.find(query.Order("products.name_normalized ASC"), "failed to search products")
}

func (repo *productRepository) Page(ctx context.Context, pageNumber, pageSize int) ([]*entity.Product, error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, domainerrors.ErrInvalidPagination
	}

	return repo.find(
		repo.withCategory(ctx).
			Order("products.id ASC").
			Offset((pageNumber-1)*pageSize).
			Limit(pageSize),
		"failed to page products",
	)
}

func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}

	return count, nil
}

func (repo *productRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("name_normalized = ?", util.Normalize(name)).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check product name")
	}

	return count > 0, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category").Create(productM).Error; err != nil {
		return mapProductWriteError(err, "failed to create product")
	}

	return repo.reload(ctx, product, productM.ID)
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":            productM.Name,
			"name_normalized": productM.NameNormalized,
			"description":     productM.Description,
			"price":           productM.Price,
			"img_url":         productM.ImgURL,
			"img_key":         productM.ImgKey,
			"sku":             productM.SKU,
			"stock":           productM.Stock,
			"category_id":     productM.CategoryID,
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return mapProductWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return repo.reload(ctx, product, product.ID)
}

func (repo *productRepository) reload(ctx context.Context, product *entity.Product, id int64) error {
	stored, err := repo.findOne(repo.withCategory(ctx), id)
	if err != nil {
		return err
	}
	*product = *stored

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// TryDecrementStock is a single conditional UPDATE. Concurrent buyers serialize on the
// row lock and the stock >= amount predicate is re-checked, so stock never goes negative.
func (repo *productRepository) TryDecrementStock(ctx context.Context, name string, amount int) (bool, error) {
	if amount <= 0 {
		return false, domainerrors.ValidationError("quantity must be greater than zero")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("name_normalized = ? AND stock >= ?", util.Normalize(name), amount).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", amount),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}

	return result.RowsAffected == 1, nil
}

func (repo *productRepository) find(query *gorm.DB, details string) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

func mapProductWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrProductAlreadyExists.WrapMessage("product name already exists")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrCategoryReferenceInvalid.WrapMessage("category does not exist")
	case isCheckConstraintViolation(err):
		return domainerrors.ValidationError("price and stock must not be negative")
	case isNotNullConstraintViolation(err):
		return domainerrors.ValidationError("missing required product information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImgURL:      data.ImgURL,
		ImgKey:      data.ImgKey,
		SKU:         data.SKU,
		Stock:       data.Stock,
		CategoryID:  data.CategoryID,
		Category:    toCategoryDomain(data.Category),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             data.ID,
		Name:           data.Name,
		NameNormalized: util.Normalize(data.Name),
		Description:    data.Description,
		Price:          data.Price,
		ImgURL:         data.ImgURL,
		ImgKey:         data.ImgKey,
		SKU:            data.SKU,
		Stock:          data.Stock,
		CategoryID:     data.CategoryID,
	}
}
