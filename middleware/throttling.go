package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"agent-hub-service/domain"
	"agent-hub-service/httperrors"
	"agent-hub-service/request"

	"github.com/pkg/errors"
)

const (
	retryAfterHeader = "Retry-After"
)

type Throttler interface {
	AllowRateLimit(ctx context.Context, tenantId string) (*domain.RateLimitResult, error)
}

// Throttling runs strictly after Authenticate, an unauthenticated request
// never reaches the limiter and can't burn a tenant's quota.
func Throttling(throttler Throttler) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			authData, err := ctx.GetAuthData()
			if err != nil {
				return errors.WithMessage(err, "throttling: get auth data")
			}

			result, err := throttler.AllowRateLimit(ctx.Context(), authData.TenantId)
			if err != nil {
				return errors.WithMessage(err, "throttling: allow rate limit")
			}
			if !result.Allow {
				retryAfter := retryAfterSeconds(result.RetryAfter)
				ctx.ResponseWriter().Header().Set(retryAfterHeader, strconv.FormatInt(retryAfter, 10))
				return httperrors.New(
					http.StatusTooManyRequests,
					fmt.Sprintf("rate limit has been reached, try after %ds", retryAfter),
					errors.Errorf("throttling: rate limit has been reached for tenant '%s'", authData.TenantId),
				)
			}

			return next.Handle(ctx)
		})
	}
}

// retryAfterSeconds rounds up, a client sleeping exactly this long lands
// outside the window.
func retryAfterSeconds(retryAfter time.Duration) int64 {
	seconds := int64(retryAfter / time.Second)
	if retryAfter%time.Second > 0 {
		seconds++
	}
	return seconds
}
