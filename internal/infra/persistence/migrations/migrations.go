// Package migrations embeds the versioned PostgreSQL schema and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"ecommerce/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// Source returns the embedded migration files as a golang-migrate source driver.
func Source() (source.Driver, error) {
	driver, err := iofs.New(files, ".")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	return driver, nil
}

// Migrator applies the embedded schema to an open PostgreSQL connection.
type Migrator struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// NewMigrator wraps db. Closing the migrator closes db.
func NewMigrator(db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}

	target, err := migratepostgres.WithInstance(db, &migratepostgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open migration target")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", target)
	if err != nil {
		return nil, errors.Wrap(err, "create migrator")
	}
	m.Log = &migrateLogger{logger: logger}

	return &Migrator{m: m, logger: logger}, nil
}

// Up applies all pending migrations. Being already current is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}

	return mg.logVersion()
}

// Down reverts the given number of migrations.
func (mg *Migrator) Down(steps int) error {
	if steps < 1 {
		return errors.Errorf("steps must be at least 1, got %d", steps)
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "revert migrations")
	}

	return mg.logVersion()
}

func (mg *Migrator) logVersion() error {
	version, dirty, err := mg.m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "read schema version")
	}
	mg.logger.Info("Schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

// Close releases the source and the database connection.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()

	return errors.Join(srcErr, dbErr)
}

type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Info("migrate: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
