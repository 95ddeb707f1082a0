package conf_test

import (
	"testing"

	"agent-hub-service/conf"

	"github.com/stretchr/testify/require"
)

func validConfig() conf.Remote {
	return conf.Remote{
		Http: conf.Http{MaxRequestBodySizeInMb: 1},
		Tenants: []conf.Tenant{
			{Id: "tenant-1", ApiKey: "key-1"},
			{Id: "tenant-2", ApiKey: "key-2"},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.NoError(validConfig().Validate())

	config := validConfig()
	config.Tenants = nil
	require.Error(config.Validate())

	config = validConfig()
	config.Tenants[1].Id = "tenant-1"
	require.Error(config.Validate())

	config = validConfig()
	config.Tenants[1].ApiKey = "key-1"
	require.Error(config.Validate())

	config = validConfig()
	config.DailyLimits = []conf.DailyLimit{{TenantId: "tenant-1", RequestsPerDay: 100}}
	require.Error(config.Validate())
	config.Redis = &conf.Redis{Address: "localhost:6379"}
	require.NoError(config.Validate())
}

func TestValidateRateLimitOverrides(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	config := validConfig()
	config.RateLimit.PerTenant = []conf.TenantRateLimit{
		{TenantId: "tenant-1", MaxRequests: 10, WindowInSec: 30},
	}
	require.NoError(config.Validate())

	config.RateLimit.PerTenant[0].TenantId = "ghost"
	require.Error(config.Validate())

	// negative or zero values must be rejected here, the limiter sizes its
	// ring from the raw override
	config = validConfig()
	config.RateLimit.PerTenant = []conf.TenantRateLimit{
		{TenantId: "tenant-1", MaxRequests: -1, WindowInSec: 30},
	}
	require.Error(config.Validate())

	config.RateLimit.PerTenant[0] = conf.TenantRateLimit{TenantId: "tenant-1", MaxRequests: 10, WindowInSec: -30}
	require.Error(config.Validate())

	config.RateLimit.PerTenant[0] = conf.TenantRateLimit{TenantId: "tenant-1", MaxRequests: 10}
	require.Error(config.Validate())
}

func TestValidateDailyLimits(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	config := validConfig()
	config.Redis = &conf.Redis{Address: "localhost:6379"}
	config.DailyLimits = []conf.DailyLimit{{TenantId: "ghost", RequestsPerDay: 100}}
	require.Error(config.Validate())

	config.DailyLimits[0] = conf.DailyLimit{TenantId: "tenant-1", RequestsPerDay: -1}
	require.Error(config.Validate())
}
