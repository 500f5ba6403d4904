package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecommerce/internal/domain/entity"
	"ecommerce/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with the catalog schema. A single
// connection keeps the database alive and serializes concurrent writers.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), nil),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()

	category := &entity.Category{Name: name}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))

	return category
}

func seedProduct(t *testing.T, db *gorm.DB, product *entity.Product) *entity.Product {
	t.Helper()

	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}
