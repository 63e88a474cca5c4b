package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/redact"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SlowQueryThreshold is the duration above which queries are logged at WARN.
const SlowQueryThreshold = 200 * time.Millisecond

// GormLogger adapts gorm's logger interface to slog. The logger attached to
// the query context wins over the fallback so request attributes such as
// trace_id appear on query logs.
type GormLogger struct {
	fallback *slog.Logger
	level    gormlogger.LogLevel
	slow     time.Duration
}

var _ gormlogger.Interface = (*GormLogger)(nil)

// NewGormLogger creates a GormLogger that reports warnings and errors.
func NewGormLogger(fallback *slog.Logger) *GormLogger {
	if fallback == nil {
		fallback = slog.Default()
	}
	return &GormLogger{
		fallback: fallback.With(slog.String("component", "gorm")),
		level:    gormlogger.Warn,
		slow:     SlowQueryThreshold,
	}
}

// LogMode returns a copy of the logger at the given level.
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.from(ctx).Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.from(ctx).Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.from(ctx).Error(redact.String(fmt.Sprintf(msg, args...)))
	}
}

// Trace logs a finished query. Failed queries are logged at ERROR with the
// statement redacted; missing records are expected and never logged as errors.
func (l *GormLogger) Trace(
	ctx context.Context,
	begin time.Time,
	fc func() (sql string, rowsAffected int64),
	err error,
) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := l.from(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		stmt, rows := fc()
		log.Error("query failed",
			slog.String("error", redact.Error(err)),
			slog.String("sql", redact.String(stmt)),
			slog.Int64("rows", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()))
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		stmt, rows := fc()
		log.Warn("slow query",
			slog.String("sql", redact.String(stmt)),
			slog.Int64("rows", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()))
	case l.level >= gormlogger.Info:
		stmt, rows := fc()
		log.Debug("query",
			slog.String("sql", stmt),
			slog.Int64("rows", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()))
	}
}

func (l *GormLogger) from(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, l.fallback)
}
