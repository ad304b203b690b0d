package ratelimit

import (
	"context"
	"time"

	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Limiter enforces request rate limits backed by ulule/limiter's in-process
// store. A single store instance is shared so all middleware handlers see the
// same counters.
type Limiter struct {
	Store limiter.Store
}

// NewMemoryLimiter constructs a limiter over a fresh in-memory store.
func NewMemoryLimiter() Limiter {
	return Limiter{Store: memory.NewStore()}
}

// Allow consumes one unit for the key under the given window and maximum,
// reporting whether the request may proceed.
func (l Limiter) Allow(ctx context.Context, key string, window time.Duration, max int) (bool, int, time.Time, error) {
	if l.Store == nil {
		return true, max, time.Now().Add(window), nil
	}
	instance := limiter.New(l.Store, limiter.Rate{Period: window, Limit: int64(max)})
	lctx, err := instance.Get(ctx, key)
	if err != nil {
		return false, 0, time.Time{}, err
	}
	return !lctx.Reached, int(lctx.Remaining), time.Unix(lctx.Reset, 0), nil
}
