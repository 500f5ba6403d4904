package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"ecommerce/config"
	deliverycontext "ecommerce/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const fallbackSlowQueryThreshold = 200 * time.Millisecond

// sqlTablePattern captures the table a statement reads or writes first.
var sqlTablePattern = regexp.MustCompile(`(?i)\b(?:from|into|update|join)\s+"?([a-z_][a-z0-9_]*)"?`)

// catalogSQLLogger writes gorm statements to slog. Each record is tagged with the
// catalog table it touched and uses the request logger when ctx carries one.
type catalogSQLLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	sqlLogger := &catalogSQLLogger{
		logger:        baseLogger,
		level:         logger.Warn,
		slowThreshold: fallbackSlowQueryThreshold,
	}
	if cfg == nil {
		return sqlLogger
	}
	if cfg.Env.Debug {
		sqlLogger.level = logger.Info
	}
	if cfg.Catalog != nil && cfg.Catalog.SlowQueryThreshold > 0 {
		sqlLogger.slowThreshold = cfg.Catalog.SlowQueryThreshold
	}

	return sqlLogger
}

func (l *catalogSQLLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *catalogSQLLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *catalogSQLLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *catalogSQLLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *catalogSQLLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.target(ctx).LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *catalogSQLLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(l.statementAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.target(ctx).LogAttrs(ctx, slog.LevelError, "Catalog query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(l.statementAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
		l.target(ctx).LogAttrs(ctx, slog.LevelWarn, "Catalog query slow", attrs...)
	case l.level >= logger.Info:
		l.target(ctx).LogAttrs(ctx, slog.LevelInfo, "Catalog query", l.statementAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *catalogSQLLogger) target(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func (l *catalogSQLLogger) statementAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	statement, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.String("table", statementTable(statement)),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", statement),
	}
}

// statementTable names the first table in statement, or "unknown".
func statementTable(statement string) string {
	match := sqlTablePattern.FindStringSubmatch(statement)
	if match == nil {
		return "unknown"
	}

	return strings.ToLower(match[1])
}
