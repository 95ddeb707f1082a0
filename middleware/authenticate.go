package middleware

import (
	"net/http"
	"strings"

	"agent-hub-service/domain"
	"agent-hub-service/httperrors"
	"agent-hub-service/request"

	"github.com/pkg/errors"
)

const (
	apiKeyHeader = "x-api-key"
)

type TenantResolver interface {
	Resolve(apiKey string) (domain.TenantIdentity, error)
}

// Authenticate resolves the tenant before anything else may run. A missing
// key and an unknown key produce identical responses, the caller can't tell
// which keys exist.
func Authenticate(resolver TenantResolver) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			// header only, keys in query strings end up in access logs
			apiKey := strings.TrimSpace(ctx.Request().Header.Get(apiKeyHeader))
			if apiKey == "" {
				return httperrors.New(
					http.StatusUnauthorized,
					domain.InvalidApiKeyErrorMessage,
					errors.New("authenticate: api key required"),
				)
			}

			identity, err := resolver.Resolve(apiKey)
			if errors.Is(err, domain.ErrUnknownApiKey) {
				return httperrors.New(
					http.StatusUnauthorized,
					domain.InvalidApiKeyErrorMessage,
					errors.WithMessage(err, "authenticate: resolve tenant"),
				)
			}
			if err != nil {
				return errors.WithMessage(err, "authenticate: resolve tenant")
			}

			ctx.Authenticate(request.AuthData{
				TenantId:   identity.Id,
				TenantName: identity.DisplayName,
			})

			return next.Handle(ctx)
		})
	}
}
