package service

import (
	"context"
	"time"

	"agent-hub-service/conf"
	"agent-hub-service/domain"

	"github.com/pkg/errors"
)

type ThrottlingRepo interface {
	IsAllowRequest(
		ctx context.Context,
		tenantId string,
		maxRequests int,
		window time.Duration,
		now time.Time,
	) (*domain.RateLimitResult, error)
}

type rate struct {
	maxRequests int
	window      time.Duration
}

type Throttling struct {
	repo        ThrottlingRepo
	defaultRate rate
	overrides   map[string]rate
}

func NewThrottling(repo ThrottlingRepo, config conf.RateLimit) Throttling {
	overrides := make(map[string]rate)
	for _, override := range config.PerTenant {
		overrides[override.TenantId] = rate{
			maxRequests: override.MaxRequests,
			window:      time.Duration(override.WindowInSec) * time.Second,
		}
	}
	return Throttling{
		repo: repo,
		defaultRate: rate{
			maxRequests: config.GetMaxRequests(),
			window:      config.GetWindow(),
		},
		overrides: overrides,
	}
}

// AllowRateLimit reads the clock once, the whole admission is judged against
// a single instant.
func (s Throttling) AllowRateLimit(ctx context.Context, tenantId string) (*domain.RateLimitResult, error) {
	tenantRate, ok := s.overrides[tenantId]
	if !ok {
		tenantRate = s.defaultRate
	}

	result, err := s.repo.IsAllowRequest(ctx, tenantId, tenantRate.maxRequests, tenantRate.window, time.Now())
	if err != nil {
		return nil, errors.WithMessage(err, "is allow request")
	}

	return result, nil
}
