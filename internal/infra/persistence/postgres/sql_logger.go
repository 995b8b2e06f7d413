package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campnav/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqlLogger routes gorm output into slog. Missing records are expected on
// get-by-id reads and are not reported.
type sqlLogger struct {
	base   *slog.Logger
	level  gormlogger.LogLevel
	slowAt time.Duration
}

func newSQLLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &sqlLogger{base: base, level: gormlogger.Warn}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = gormlogger.Info
	}
	if cfg.Database != nil {
		l.slowAt = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *sqlLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *sqlLogger) Info(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (l *sqlLogger) Warn(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (l *sqlLogger) Error(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (l *sqlLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.base.LogAttrs(ctx, level, "gorm", slog.String("detail", fmt.Sprintf(format, args...)))
}

func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level <= gormlogger.Silent {
		return
	}

	took := time.Since(begin)
	level, msg := slog.LevelInfo, "SQL executed"

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		level, msg = slog.LevelError, "SQL failed"
	case l.slowAt > 0 && took > l.slowAt && l.level >= gormlogger.Warn:
		level, msg = slog.LevelWarn, "SQL slow"
	case l.level < gormlogger.Info:
		return
	}

	query, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", query),
		slog.Int64("rows", rows),
		slog.Duration("took", took),
	}
	if level == slog.LevelError {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.base.LogAttrs(ctx, level, msg, attrs...)
}
