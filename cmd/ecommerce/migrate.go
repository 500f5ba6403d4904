package main

import (
	"database/sql"
	"log/slog"
	"os"
	"strconv"

	"ecommerce/config"
	"ecommerce/internal/errors"
	logs "ecommerce/internal/infra/log"
	"ecommerce/internal/infra/persistence/migrations"

	_ "github.com/lib/pq"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

const databaseURLEnv = "DATABASE_URL"

func newMigrateCmd() *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL, defaults to $"+databaseURLEnv+" or the configured master")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all up migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(databaseURL, func(m *migrations.Migrator) error {
				return m.Up()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the given number of migrations, one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return errors.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}

			return withMigrator(databaseURL, func(m *migrations.Migrator) error {
				return m.Down(steps)
			})
		},
	})

	return cmd
}

func withMigrator(databaseURL string, fn func(*migrations.Migrator) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := openMigrationDB(cfg, databaseURL)
	if err != nil {
		return err
	}

	migrator, err := migrations.NewMigrator(db, logger)
	if err != nil {
		_ = db.Close()

		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			logger.Warn("Failed to close migrator", slog.Any("error", err))
		}
	}()

	return fn(migrator)
}

// openMigrationDB prefers an explicit URL and falls back to the configured master pool.
func openMigrationDB(cfg *config.Config, databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		databaseURL = os.Getenv(databaseURLEnv)
	}

	if databaseURL != "" {
		db, err := sql.Open("postgres", databaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "open migration database")
		}

		return db, nil
	}

	if cfg.Postgres == nil {
		return nil, errors.New("no database configured: set --database-url, " + databaseURLEnv + " or postgres settings")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres")
	}

	db, err := gormDB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB from gorm")
	}

	return db, nil
}
