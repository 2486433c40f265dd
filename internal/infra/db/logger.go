package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger sends gorm's output to slog. Failed queries log at error, slow
// ones at warn, and at Info level every statement logs at debug.
// ErrRecordNotFound is a normal lookup miss and is not logged.
type queryLogger struct {
	level logger.LogLevel
	slow  time.Duration
}

func newQueryLogger(level logger.LogLevel) logger.Interface {
	return queryLogger{level: level, slow: slowQueryThreshold}
}

func (l queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	l.level = level
	return l
}

func (l queryLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		slog.InfoContext(ctx, fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		slog.WarnContext(ctx, fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l queryLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		slog.ErrorContext(ctx, fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	var (
		lvl slog.Level
		msg string
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		lvl, msg = slog.LevelError, "query failed"
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		lvl, msg = slog.LevelWarn, "slow query"
	case l.level >= logger.Info:
		lvl, msg = slog.LevelDebug, "query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []any{"component", "gorm", "elapsed", elapsed, "rows", rows, "sql", sql}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	slog.Log(ctx, lvl, msg, attrs...)
}
