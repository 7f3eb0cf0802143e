package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"todo-api/pkg/log"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLog routes GORM output through pkg/log so SQL lines carry the request id.
type gormLog struct {
	l     log.Logger
	level gormLogger.LogLevel
}

// NewGormLogger adapts l to GORM's logger interface at the given level.
func NewGormLogger(l log.Logger, level gormLogger.LogLevel) gormLogger.Interface {
	if l == nil {
		l = log.NewNop()
	}
	return &gormLog{l: l, level: level}
}

func (g *gormLog) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	return &gormLog{l: g.l, level: level}
}

func (g *gormLog) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Info {
		g.l.Infof(ctx, "gorm: "+msg, args...)
	}
}

func (g *gormLog) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Warn {
		g.l.Warnf(ctx, "gorm: "+msg, args...)
	}
}

func (g *gormLog) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Error {
		g.l.Errorf(ctx, "gorm: "+msg, args...)
	}
}

func (g *gormLog) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormLogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && g.level >= gormLogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.l.Errorf(ctx, "gorm: %v [%s] rows=%d %s", err, elapsed, rows, sql)
	case elapsed > slowQueryThreshold && g.level >= gormLogger.Warn:
		sql, rows := fc()
		g.l.Warnf(ctx, "gorm: slow query [%s] rows=%d %s", elapsed, rows, sql)
	case g.level >= gormLogger.Info:
		sql, rows := fc()
		g.l.Infof(ctx, "gorm: [%s] rows=%d %s", elapsed, rows, sql)
	}
}
