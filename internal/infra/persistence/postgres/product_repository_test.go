package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CreateLoadsCategory(t *testing.T) {
	db := newTestDB(t)
	category := seedCategory(t, db, "Tools")

	product := seedProduct(t, db, &entity.Product{
		Name: "Hammer", Description: "Claw hammer", Price: 12.5, Stock: 4, SKU: "HM-1", CategoryID: category.ID,
	})

	assert.Positive(t, product.ID)
	assert.Equal(t, "Tools", product.CategoryName())
	assert.Equal(t, 12.5, product.Price)
	assert.Equal(t, "HM-1", product.SKU)
}

func TestProductRepository_CreateRejectsDuplicateAndUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductRepository(db)
	category := seedCategory(t, db, "Tools")
	seedProduct(t, db, &entity.Product{Name: "Hammer", CategoryID: category.ID})

	err := products.Create(ctx, &entity.Product{Name: "HAMMER ", CategoryID: category.ID})
	assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyExists))

	err = products.Create(ctx, &entity.Product{Name: "Saw", CategoryID: 404})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryReferenceInvalid))
}

func TestProductRepository_CreateRejectsNegativeStock(t *testing.T) {
	db := newTestDB(t)
	category := seedCategory(t, db, "Tools")

	err := NewProductRepository(db).Create(context.Background(), &entity.Product{
		Name: "Chisel", Stock: -1, CategoryID: category.ID,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductRepository_Listings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductRepository(db)
	tools := seedCategory(t, db, "Tools")
	garden := seedCategory(t, db, "Garden")

	seedProduct(t, db, &entity.Product{Name: "Wrench", Description: "adjustable", CategoryID: tools.ID})
	seedProduct(t, db, &entity.Product{Name: "Hose", Description: "50% longer garden hose", CategoryID: garden.ID})
	seedProduct(t, db, &entity.Product{Name: "anvil", Description: "heavy_duty", CategoryID: tools.ID})

	all, err := products.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"anvil", "Hose", "Wrench"}, productNames(all))

	byCategory, err := products.ListByCategory(ctx, tools.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"anvil", "Wrench"}, productNames(byCategory))

	none, err := products.ListByCategory(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	everything, err := products.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, productNames(all), productNames(everything))

	byDescription, err := products.Search(ctx, "ADJUST")
	require.NoError(t, err)
	assert.Equal(t, []string{"Wrench"}, productNames(byDescription))

	literalPercent, err := products.Search(ctx, "50%")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hose"}, productNames(literalPercent))

	literalUnderscore, err := products.Search(ctx, "y_d")
	require.NoError(t, err)
	assert.Equal(t, []string{"anvil"}, productNames(literalUnderscore))

	wildcardOnly, err := products.Search(ctx, "%")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hose"}, productNames(wildcardOnly))
}

func TestProductRepository_SearchFoldsNonASCIINames(t *testing.T) {
	db := newTestDB(t)
	category := seedCategory(t, db, "Drinks")
	seedProduct(t, db, &entity.Product{Name: "CAFÉ CON LECHE", CategoryID: category.ID})
	seedProduct(t, db, &entity.Product{Name: "Tea", CategoryID: category.ID})

	found, err := NewProductRepository(db).Search(context.Background(), "café")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAFÉ CON LECHE"}, productNames(found))
}

func TestProductRepository_PagesCoverAllRowsOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductRepository(db)
	category := seedCategory(t, db, "Bulk")

	for i := range 12 {
		seedProduct(t, db, &entity.Product{Name: fmt.Sprintf("item-%02d", 12-i), CategoryID: category.ID})
	}

	count, err := products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)

	var seen []int64
	for page := 1; page <= 3; page++ {
		items, err := products.Page(ctx, page, 5)
		require.NoError(t, err)
		for _, item := range items {
			seen = append(seen, item.ID)
		}
	}

	require.Len(t, seen, 12)
	for i := 1; i < len(seen); i++ {
		assert.Less(t, seen[i-1], seen[i])
	}

	beyond, err := products.Page(ctx, 4, 5)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	_, err = products.Page(ctx, 0, 5)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPagination))
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductRepository(db)
	tools := seedCategory(t, db, "Tools")
	garden := seedCategory(t, db, "Garden")
	product := seedProduct(t, db, &entity.Product{Name: "Rake", Stock: 1, CategoryID: tools.ID})

	product.CategoryID = garden.ID
	product.Stock = 7
	product.ImgURL = "http://img/rake.png"
	require.NoError(t, products.Update(ctx, product))
	assert.Equal(t, "Garden", product.CategoryName())

	stored, err := products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Stock)
	assert.Equal(t, "http://img/rake.png", stored.ImgURL)

	err = products.Update(ctx, &entity.Product{ID: 999, Name: "Ghost", CategoryID: tools.ID})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	require.NoError(t, products.Delete(ctx, product.ID))
	_, err = products.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.ErrorIs(t, products.Delete(ctx, product.ID), repository.ErrProductNotFound)
}

func TestProductRepository_FindByName(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductRepository(db)
	category := seedCategory(t, db, "Gadgets")
	seedProduct(t, db, &entity.Product{Name: "Widget", Stock: 5, CategoryID: category.ID})

	found, err := products.FindByName(ctx, "  WIDGET ")
	require.NoError(t, err)
	assert.Equal(t, "Widget", found.Name)
	assert.Equal(t, "Gadgets", found.CategoryName())

	_, err = products.FindByName(ctx, "Gizmo")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_TryDecrementStock(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductRepository(db)
	category := seedCategory(t, db, "Gadgets")
	product := seedProduct(t, db, &entity.Product{Name: "Widget", Stock: 5, CategoryID: category.ID})

	ok, err := products.TryDecrementStock(ctx, "widget", 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = products.TryDecrementStock(ctx, " Widget ", 3)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Stock)

	ok, err = products.TryDecrementStock(ctx, "missing", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProductRepository_TryDecrementStockConcurrent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductRepository(db)
	category := seedCategory(t, db, "Rare")
	product := seedProduct(t, db, &entity.Product{Name: "Last One", Stock: 1, CategoryID: category.ID})

	const buyers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := products.TryDecrementStock(ctx, "last one", 1)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)

	stored, err := products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)
}

func productNames(products []*entity.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	return names
}
