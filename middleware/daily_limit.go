package middleware

import (
	"context"
	"net/http"

	"agent-hub-service/httperrors"
	"agent-hub-service/request"

	"github.com/pkg/errors"
)

type DailyLimitChecker interface {
	IncrementAndCheck(ctx context.Context, tenantId string) (bool, error)
}

func DailyLimit(checker DailyLimitChecker) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			authData, err := ctx.GetAuthData()
			if err != nil {
				return errors.WithMessage(err, "daily limit: get auth data")
			}

			ok, err := checker.IncrementAndCheck(ctx.Context(), authData.TenantId)
			if err != nil {
				return errors.WithMessage(err, "daily limit: increment and check")
			}
			if !ok {
				return httperrors.New(
					http.StatusTooManyRequests,
					"daily requests limit has been reached",
					errors.Errorf("daily limit: daily requests limit has been reached for tenant '%s'", authData.TenantId),
				)
			}

			return next.Handle(ctx)
		})
	}
}
