package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agent-hub-service/domain"
	"agent-hub-service/middleware"
	"agent-hub-service/request"

	"github.com/stretchr/testify/require"
	"github.com/txix-open/isp-kit/log"
)

type resolverMock struct {
	tenants map[string]domain.TenantIdentity
}

func (m resolverMock) Resolve(apiKey string) (domain.TenantIdentity, error) {
	identity, ok := m.tenants[apiKey]
	if !ok {
		return domain.TenantIdentity{}, domain.ErrUnknownApiKey
	}
	return identity, nil
}

type throttlerMock struct {
	calls  int
	result domain.RateLimitResult
}

func (m *throttlerMock) AllowRateLimit(_ context.Context, _ string) (*domain.RateLimitResult, error) {
	m.calls++
	result := m.result
	return &result, nil
}

func gate(t *testing.T, throttler middleware.Throttler, terminal middleware.Handler) middleware.Handler {
	t.Helper()
	logger, err := log.New(log.WithLevel(log.FatalLevel))
	require.NoError(t, err)

	resolver := resolverMock{tenants: map[string]domain.TenantIdentity{
		"sk-key-123": {Id: "tenant-1", DisplayName: "First"},
	}}
	return middleware.Chain(
		terminal,
		middleware.ErrorHandler(logger),
		middleware.Authenticate(resolver),
		middleware.Throttling(throttler),
	)
}

func do(handler middleware.Handler, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/agents", nil)
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}
	recorder := httptest.NewRecorder()
	_ = handler.Handle(request.NewContext(req, recorder, "GET /agents"))
	return recorder
}

func TestUnauthenticatedResponsesAreIndistinguishable(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	throttler := &throttlerMock{result: domain.RateLimitResult{Allow: true}}
	handler := gate(t, throttler, middleware.HandlerFunc(func(ctx *request.Context) error {
		ctx.ResponseWriter().WriteHeader(http.StatusOK)
		return nil
	}))

	missing := do(handler, "")
	unknown := do(handler, "sk-key-999")

	require.EqualValues(http.StatusUnauthorized, missing.Code)
	require.EqualValues(http.StatusUnauthorized, unknown.Code)
	require.EqualValues(missing.Body.Bytes(), unknown.Body.Bytes())
	require.EqualValues(missing.Header().Get("Content-Type"), unknown.Header().Get("Content-Type"))
}

func TestUnauthenticatedRequestNeverReachesThrottler(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	throttler := &throttlerMock{result: domain.RateLimitResult{Allow: true}}
	handler := gate(t, throttler, middleware.HandlerFunc(func(ctx *request.Context) error {
		return nil
	}))

	do(handler, "")
	do(handler, "sk-key-999")
	require.EqualValues(0, throttler.calls)

	do(handler, "sk-key-123")
	require.EqualValues(1, throttler.calls)
}

func TestApiKeyInQueryIsIgnored(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	throttler := &throttlerMock{result: domain.RateLimitResult{Allow: true}}
	handler := gate(t, throttler, middleware.HandlerFunc(func(ctx *request.Context) error {
		ctx.ResponseWriter().WriteHeader(http.StatusOK)
		return nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/agents?x-api-key=sk-key-123", nil)
	recorder := httptest.NewRecorder()
	_ = handler.Handle(request.NewContext(req, recorder, "GET /agents"))

	require.EqualValues(http.StatusUnauthorized, recorder.Code)
	require.EqualValues(0, throttler.calls)
}

func TestAuthDataReachesTerminalHandler(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	throttler := &throttlerMock{result: domain.RateLimitResult{Allow: true}}
	handler := gate(t, throttler, middleware.HandlerFunc(func(ctx *request.Context) error {
		authData, err := ctx.GetAuthData()
		require.NoError(err)
		require.EqualValues("tenant-1", authData.TenantId)

		fromContext, err := request.AuthDataFromContext(ctx.Context())
		require.NoError(err)
		require.EqualValues(authData, fromContext)

		ctx.ResponseWriter().WriteHeader(http.StatusOK)
		return nil
	}))

	recorder := do(handler, "sk-key-123")
	require.EqualValues(http.StatusOK, recorder.Code)
}

func TestThrottledResponse(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	throttler := &throttlerMock{result: domain.RateLimitResult{
		Allow:      false,
		RetryAfter: 59*time.Second + 300*time.Millisecond,
	}}
	called := false
	handler := gate(t, throttler, middleware.HandlerFunc(func(ctx *request.Context) error {
		called = true
		return nil
	}))

	recorder := do(handler, "sk-key-123")
	require.EqualValues(http.StatusTooManyRequests, recorder.Code)
	require.EqualValues("60", recorder.Header().Get("Retry-After"))
	require.False(called)
}
