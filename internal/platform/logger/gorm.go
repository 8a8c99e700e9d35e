package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gormlogger "gorm.io/gorm/logger"

	"github.com/phrazzld/blog-api/internal/redact"
)

// GormLogger adapts gorm's logger interface to slog. SQL text is only
// emitted at debug level and is passed through redact first.
type GormLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

var _ gormlogger.Interface = (*GormLogger)(nil)

// NewGormLogger creates a gorm logger writing to l.
func NewGormLogger(l *slog.Logger) *GormLogger {
	return &GormLogger{
		logger:        l.With("component", "gorm"),
		level:         gormlogger.Warn,
		slowThreshold: 200 * time.Millisecond,
	}
}

// LogMode implements gormlogger.Interface.
func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface.
func (g *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.logger.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Warn implements gormlogger.Interface.
func (g *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.logger.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Error implements gormlogger.Interface.
func (g *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.logger.ErrorContext(ctx, redact.String(fmt.Sprintf(msg, args...)))
	}
}

// Trace implements gormlogger.Interface. Record-not-found is expected
// control flow for lookups and is not logged as an error.
func (g *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		sql, rows := fc()
		g.logger.ErrorContext(ctx, "query failed",
			"error", redact.Error(err),
			"sql", redact.String(sql),
			"rows", rows,
			"elapsed_ms", elapsed.Milliseconds())
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.logger.WarnContext(ctx, "slow query",
			"sql", redact.String(sql),
			"rows", rows,
			"elapsed_ms", elapsed.Milliseconds(),
			"threshold_ms", g.slowThreshold.Milliseconds())
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.logger.DebugContext(ctx, "query",
			"sql", redact.String(sql),
			"rows", rows,
			"elapsed_ms", elapsed.Milliseconds())
	}
}
