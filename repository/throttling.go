package repository

import (
	"context"
	"sync"
	"time"

	"agent-hub-service/domain"
	"agent-hub-service/state"
)

// Throttling keeps one sliding window limiter per tenant, created lazily on
// the first request. LoadOrStore makes the first touch atomic: two concurrent
// first requests end up sharing one limiter, neither admission is lost.
// Entries live for the process lifetime, the tenant set is bounded by config.
type Throttling struct {
	limiters sync.Map
}

func NewThrottling() *Throttling {
	return &Throttling{}
}

func (r *Throttling) IsAllowRequest(
	ctx context.Context,
	tenantId string,
	maxRequests int,
	window time.Duration,
	now time.Time,
) (*domain.RateLimitResult, error) {
	limiter, ok := r.limiters.Load(tenantId)
	if !ok {
		limiter, _ = r.limiters.LoadOrStore(tenantId, state.NewLimiter(maxRequests, window))
	}
	lim := limiter.(*state.Limiter)

	allow, retryAfter := lim.Allow(now)
	return &domain.RateLimitResult{
		Allow:      allow,
		Remaining:  lim.Remaining(now),
		RetryAfter: retryAfter,
	}, nil
}
