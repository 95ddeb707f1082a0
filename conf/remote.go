package conf

import (
	"reflect"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/rc/schema"
	"github.com/txix-open/jsonschema"
)

const (
	defaultMaxRequests = 5
	defaultWindow      = 60 * time.Second
)

func init() {
	schema.CustomGenerators.Register("logLevel", func(field reflect.StructField, t *jsonschema.Schema) {
		t.Type = "string"
		t.Enum = []interface{}{"debug", "info", "error", "fatal"}
	})
}

type Remote struct {
	Redis       *Redis       `schema:"Redis settings,required if daily limits are configured"`
	Http        Http         `schema:"HTTP settings"`
	Logging     Logging      `schema:"Logging settings"`
	Database    Database     `schema:"Database settings"`
	Tenants     []Tenant     `valid:"required" schema:"Tenant registry,static list of api keys and tenant identities"`
	RateLimit   RateLimit    `schema:"Rate limit settings,sliding window per tenant"`
	DailyLimits []DailyLimit `schema:"Daily limit settings,reset at midnight"`
}

type Http struct {
	MaxRequestBodySizeInMb int64 `valid:"required" schema:"Maximum request body size,in megabytes"`
}

type Logging struct {
	LogLevel         log.Level `schemaGen:"logLevel" schema:"Log level,requests are logged at debug level"`
	RequestLogEnable bool      `schema:"Enable request logging"`
}

type Database struct {
	Filepath string `valid:"required" schema:"Path to the sqlite database file"`
}

type Tenant struct {
	Id          string `valid:"required" schema:"Tenant id"`
	ApiKey      string `valid:"required" schema:"Api key,expected in the x-api-key header"`
	DisplayName string `schema:"Human readable tenant name"`
}

type RateLimit struct {
	MaxRequests int               `schema:"Admitted requests per window,default 5"`
	WindowInSec int               `schema:"Window length in seconds,default 60"`
	PerTenant   []TenantRateLimit `schema:"Per tenant overrides"`
}

type TenantRateLimit struct {
	TenantId    string `valid:"required" schema:"Tenant id"`
	MaxRequests int    `valid:"required" schema:"Admitted requests per window"`
	WindowInSec int    `valid:"required" schema:"Window length in seconds"`
}

type DailyLimit struct {
	TenantId       string `valid:"required" schema:"Tenant id"`
	RequestsPerDay int64  `valid:"required" schema:"Requests per day"`
}

type Redis struct {
	Address  string         `schema:"Address,required if sentinel is not specified"`
	Username string         `schema:"Username"`
	Password string         `schema:"Password"`
	Sentinel *RedisSentinel `schema:"Sentinel settings,required if address is not specified"`
}

type RedisSentinel struct {
	Addresses  []string `valid:"required" schema:"Cluster node addresses"`
	MasterName string   `valid:"required" schema:"Master name"`
	Username   string   `schema:"Sentinel username"`
	Password   string   `schema:"Sentinel password"`
}

func (r RateLimit) GetMaxRequests() int {
	if r.MaxRequests <= 0 {
		return defaultMaxRequests
	}
	return r.MaxRequests
}

func (r RateLimit) GetWindow() time.Duration {
	if r.WindowInSec <= 0 {
		return defaultWindow
	}
	return time.Duration(r.WindowInSec) * time.Second
}

func (r Remote) Validate() error {
	if len(r.Tenants) == 0 {
		return errors.New("at least one tenant is required")
	}

	ids := make(map[string]bool)
	keys := make(map[string]bool)
	for _, tenant := range r.Tenants {
		if ids[tenant.Id] {
			return errors.Errorf("duplicated tenant id '%s'", tenant.Id)
		}
		if keys[tenant.ApiKey] {
			return errors.Errorf("duplicated api key for tenant '%s'", tenant.Id)
		}
		ids[tenant.Id] = true
		keys[tenant.ApiKey] = true
	}

	for _, limit := range r.RateLimit.PerTenant {
		if !ids[limit.TenantId] {
			return errors.Errorf("rate limit override for unknown tenant '%s'", limit.TenantId)
		}
		if limit.MaxRequests <= 0 {
			return errors.Errorf("invalid maxRequests for tenant '%s'", limit.TenantId)
		}
		if limit.WindowInSec <= 0 {
			return errors.Errorf("invalid windowInSec for tenant '%s'", limit.TenantId)
		}
	}

	if len(r.DailyLimits) > 0 && r.Redis == nil {
		return errors.New("redis is required if dailyLimits were specified")
	}
	for _, limit := range r.DailyLimits {
		if !ids[limit.TenantId] {
			return errors.Errorf("daily limit for unknown tenant '%s'", limit.TenantId)
		}
		if limit.RequestsPerDay <= 0 {
			return errors.Errorf("invalid requestsPerDay for tenant '%s'", limit.TenantId)
		}
	}
	if r.Redis != nil && r.Redis.Sentinel == nil && r.Redis.Address == "" {
		return errors.New("invalid redis config. sentinel or address are required")
	}

	return nil
}
