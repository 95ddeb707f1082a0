// nolint:canonicalheader
package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"agent-hub-service/assembly"
	"agent-hub-service/conf"
	"agent-hub-service/db"

	"github.com/txix-open/isp-kit/test"
)

func TestDailyLimit(t *testing.T) {
	t.Parallel()
	test, require := test.New(t)

	redisCli := NewRedis(test)
	ctx := context.Background()
	if !redisCli.Available(ctx) {
		t.Skip("redis is not available")
	}
	t.Cleanup(func() {
		_ = redisCli.FlushDB(ctx).Err()
	})

	config := defaultConfig()
	config.Redis = &conf.Redis{Address: redisCli.Address()}
	config.DailyLimits = []conf.DailyLimit{
		{TenantId: "tenant-1", RequestsPerDay: 3},
	}

	dbCli, err := db.Open(filepath.Join(t.TempDir(), "agents.db"))
	require.NoError(err)
	t.Cleanup(func() {
		_ = dbCli.Close()
	})

	locator := assembly.NewLocator(test.Logger())
	srv := httptest.NewServer(locator.Handler(config, dbCli, redisCli))
	t.Cleanup(srv.Close)

	listTools := func(apiKey string) int {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/tools", nil)
		require.NoError(err)
		req.Header.Set("x-api-key", apiKey)
		resp, err := srv.Client().Do(req)
		require.NoError(err)
		defer resp.Body.Close()
		return resp.StatusCode
	}

	for i := 0; i < 3; i++ {
		require.EqualValues(http.StatusOK, listTools("key-1"))
	}
	require.EqualValues(http.StatusTooManyRequests, listTools("key-1"))

	// tenant-2 has no daily limit configured
	require.EqualValues(http.StatusOK, listTools("key-2"))
}
