package service

import (
	"context"
	"time"

	"agent-hub-service/conf"

	"github.com/pkg/errors"
)

type DailyLimitRepo interface {
	Increment(ctx context.Context, tenantId string, today time.Time) (int64, error)
}

type DailyLimit struct {
	repo   DailyLimitRepo
	limits map[string]int64
}

func NewDailyLimit(repo DailyLimitRepo, configs []conf.DailyLimit) DailyLimit {
	limits := make(map[string]int64)
	for _, config := range configs {
		limits[config.TenantId] = config.RequestsPerDay
	}
	return DailyLimit{
		repo:   repo,
		limits: limits,
	}
}

func (s DailyLimit) IncrementAndCheck(ctx context.Context, tenantId string) (bool, error) {
	max, ok := s.limits[tenantId]
	if !ok {
		return true, nil
	}

	newValue, err := s.repo.Increment(ctx, tenantId, time.Now())
	if err != nil {
		return false, errors.WithMessage(err, "increment")
	}

	return newValue <= max, nil
}
