package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// SQLite reports constraint failures as "<KIND> constraint failed". gorm's sqlite
// translator only maps unique violations, so the rest are matched on the message.
const (
	sqliteUniqueFailed     = "UNIQUE constraint failed"
	sqliteForeignKeyFailed = "FOREIGN KEY constraint failed"
	sqliteNotNullFailed    = "NOT NULL constraint failed"
	sqliteCheckFailed      = "CHECK constraint failed"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func sqliteConstraintFailed(err error, kind string) bool {
	return err != nil && strings.Contains(err.Error(), kind)
}

// Helper functions for constraint error checking. GORM's translated sentinels cover
// dialects with TranslateError enabled, the SQLSTATE covers raw pgx errors.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == pgUniqueViolation || sqliteConstraintFailed(err, sqliteUniqueFailed)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return pgErrorCode(err) == pgForeignKeyViolation || sqliteConstraintFailed(err, sqliteForeignKeyFailed)
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgNotNullViolation || sqliteConstraintFailed(err, sqliteNotNullFailed)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return pgErrorCode(err) == pgCheckViolation || sqliteConstraintFailed(err, sqliteCheckFailed)
}
