package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"agent-hub-service/repository"

	"github.com/stretchr/testify/require"
)

func TestLazyCreationRace(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	repo := repository.NewThrottling()
	now := time.Now()

	// first touch of an unseen tenant from many goroutines at once,
	// every admission must land in the same limiter
	start := make(chan struct{})
	results := make(chan bool, 10)
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			result, err := repo.IsAllowRequest(context.Background(), "tenant-1", 5, time.Minute, now)
			require.NoError(err)
			results <- result.Allow
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	admitted := 0
	for allowed := range results {
		if allowed {
			admitted++
		}
	}
	require.EqualValues(5, admitted)
}

func TestTenantIsolation(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	repo := repository.NewThrottling()
	now := time.Now()

	for i := 0; i < 5; i++ {
		result, err := repo.IsAllowRequest(context.Background(), "tenant-a", 5, time.Minute, now)
		require.NoError(err)
		require.True(result.Allow)
	}
	result, err := repo.IsAllowRequest(context.Background(), "tenant-a", 5, time.Minute, now)
	require.NoError(err)
	require.False(result.Allow)

	result, err = repo.IsAllowRequest(context.Background(), "tenant-b", 5, time.Minute, now)
	require.NoError(err)
	require.True(result.Allow)
	require.EqualValues(4, result.Remaining)
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	repo := repository.NewThrottling()
	begin := time.Now()

	for i := 0; i < 3; i++ {
		result, err := repo.IsAllowRequest(context.Background(), "tenant-1", 3, time.Minute, begin)
		require.NoError(err)
		require.True(result.Allow)
	}

	result, err := repo.IsAllowRequest(context.Background(), "tenant-1", 3, time.Minute, begin.Add(15*time.Second))
	require.NoError(err)
	require.False(result.Allow)
	require.EqualValues(45*time.Second, result.RetryAfter)

	result, err = repo.IsAllowRequest(context.Background(), "tenant-1", 3, time.Minute, begin.Add(61*time.Second))
	require.NoError(err)
	require.True(result.Allow)
}
