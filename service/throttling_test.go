package service_test

import (
	"context"
	"testing"
	"time"

	"agent-hub-service/conf"
	"agent-hub-service/domain"
	"agent-hub-service/service"

	"github.com/stretchr/testify/require"
)

type throttlingRepoMock struct {
	lastTenantId    string
	lastMaxRequests int
	lastWindow      time.Duration
}

func (m *throttlingRepoMock) IsAllowRequest(
	_ context.Context,
	tenantId string,
	maxRequests int,
	window time.Duration,
	_ time.Time,
) (*domain.RateLimitResult, error) {
	m.lastTenantId = tenantId
	m.lastMaxRequests = maxRequests
	m.lastWindow = window
	return &domain.RateLimitResult{Allow: true}, nil
}

func TestDefaultRate(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	repo := &throttlingRepoMock{}
	throttling := service.NewThrottling(repo, conf.RateLimit{})

	result, err := throttling.AllowRateLimit(context.Background(), "tenant-1")
	require.NoError(err)
	require.True(result.Allow)
	require.EqualValues("tenant-1", repo.lastTenantId)
	require.EqualValues(5, repo.lastMaxRequests)
	require.EqualValues(60*time.Second, repo.lastWindow)
}

func TestPerTenantOverride(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	repo := &throttlingRepoMock{}
	throttling := service.NewThrottling(repo, conf.RateLimit{
		MaxRequests: 10,
		WindowInSec: 30,
		PerTenant: []conf.TenantRateLimit{
			{TenantId: "tenant-2", MaxRequests: 100, WindowInSec: 1},
		},
	})

	_, err := throttling.AllowRateLimit(context.Background(), "tenant-1")
	require.NoError(err)
	require.EqualValues(10, repo.lastMaxRequests)
	require.EqualValues(30*time.Second, repo.lastWindow)

	_, err = throttling.AllowRateLimit(context.Background(), "tenant-2")
	require.NoError(err)
	require.EqualValues(100, repo.lastMaxRequests)
	require.EqualValues(time.Second, repo.lastWindow)
}
