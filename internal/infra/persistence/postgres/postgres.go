package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"ecommerce/config"
	"ecommerce/internal/domain/lifecycle"
	"ecommerce/internal/errors"
	"ecommerce/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval      = 5 * time.Second
	poolWaitWarnThreshold  = 50 * time.Millisecond
	missingSchemaRemediate = "run `ecommerce migrate up`"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the catalog database. On start it pings the primary, checks that the
// catalog tables exist and begins watching the connection pool.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Single statements run without an implicit transaction. Multi-step writes use TransactionManager.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := checkCatalogSchema(ctx, db); err != nil {
				return err
			}
			params.Logger.Info("Catalog database ready",
				slog.Int("replicas", len(params.Config.Postgres.Replicas)),
				slog.Int("maxOpenConns", sqlDB.Stats().MaxOpenConnections),
			)

			watcher := newPoolWatcher(params.Logger, sqlDB.Stats())
			go watcher.run(watchCtx, sqlDB, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// checkCatalogSchema fails when any catalog table has not been migrated yet.
func checkCatalogSchema(ctx context.Context, db *gorm.DB) error {
	migrator := db.WithContext(ctx).Migrator()

	var missing []string
	for _, m := range model.All() {
		if migrator.HasTable(m) {
			continue
		}
		if named, ok := m.(interface{ TableName() string }); ok {
			missing = append(missing, named.TableName())
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("catalog tables missing: %s; %s", strings.Join(missing, ", "), missingSchemaRemediate)
	}

	return nil
}

// poolWatcher reports callers that had to wait for a pooled connection.
type poolWatcher struct {
	logger *slog.Logger
	prev   sql.DBStats
}

func newPoolWatcher(logger *slog.Logger, initial sql.DBStats) *poolWatcher {
	return &poolWatcher{logger: logger, prev: initial}
}

func (w *poolWatcher) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	if w.logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.observe(ctx, sqlDB.Stats())
		}
	}
}

// observe logs the waits since the previous sample. Slow waits are warnings.
func (w *poolWatcher) observe(ctx context.Context, cur sql.DBStats) {
	waits := cur.WaitCount - w.prev.WaitCount
	waited := cur.WaitDuration - w.prev.WaitDuration
	w.prev = cur

	if waits <= 0 {
		return
	}

	level, msg := slog.LevelDebug, "Catalog database pool wait observed"
	if waited >= poolWaitWarnThreshold {
		level, msg = slog.LevelWarn, "Catalog database pool is saturated"
	}
	w.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
