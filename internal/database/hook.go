package database

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// slowQueryThreshold is how long a query may run before it is logged at
// warn level even when it succeeds.
const slowQueryThreshold = 250 * time.Millisecond

// Hook implements bun.QueryHook, logging every query with zap.
type Hook struct {
	logger *zap.Logger
}

// NewHook creates a new query hook.
func NewHook(logger *zap.Logger) *Hook {
	return &Hook{logger: logger.Named("query")}
}

// BeforeQuery implements bun.QueryHook.
func (h *Hook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

// AfterQuery logs the query, escalating failures and slow queries.
func (h *Hook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	elapsed := time.Since(event.StartTime)
	fields := []zap.Field{
		zap.String("operation", event.Operation()),
		zap.String("query", event.Query),
		zap.Duration("elapsed", elapsed),
	}

	switch {
	case event.Err != nil:
		h.logger.Error("Query failed", append(fields, zap.Error(event.Err))...)
	case elapsed >= slowQueryThreshold:
		h.logger.Warn("Slow query", fields...)
	default:
		h.logger.Debug("Query executed", fields...)
	}
}
