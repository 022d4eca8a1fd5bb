package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	gormLogger := newGormSlogLogger(newBufferLogger(&buf), cfg)

	gormLogger.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`, 1), nil)
	assert.Empty(t, buf.String(), "plain queries are only logged in debug mode")

	gormLogger.Trace(context.Background(), time.Now(), sqlFn(`SELECT * FROM "users"`, 0), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "missing rows are not failures")

	gormLogger.Trace(context.Background(), time.Now(), sqlFn(`INSERT INTO "orders"`, 0), errors.New("duplicate key"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "duplicate key")

	buf.Reset()
	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn(`SELECT pg_sleep(1)`, 1), nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	gormLogger := newGormSlogLogger(newBufferLogger(&base), cfg)

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))
	gormLogger.Trace(ctx, time.Now(), sqlFn(`SELECT 1`, 1), nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "GORM query")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := newGormSlogLogger(newBufferLogger(&buf), nil).LogMode(logger.Silent)

	gormLogger.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`, 1), errors.New("boom"))
	gormLogger.Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}

func TestReportPoolWait(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)
	prev := sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond}

	reportPoolWait(context.Background(), log, prev, prev)
	assert.Empty(t, buf.String())

	reportPoolWait(context.Background(), log, prev, sql.DBStats{WaitCount: 3, WaitDuration: 20 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "pool wait observed")

	buf.Reset()
	reportPoolWait(context.Background(), log, prev, sql.DBStats{WaitCount: 4, WaitDuration: 110 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "avgWait=50ms")
}
