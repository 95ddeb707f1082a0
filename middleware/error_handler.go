package middleware

import (
	"net/http"

	"agent-hub-service/httperrors"
	"agent-hub-service/request"

	"github.com/txix-open/isp-kit/log"
)

type HttpError interface {
	WriteError(w http.ResponseWriter) error
}

func ErrorHandler(logger log.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			err := next.Handle(ctx)
			if err == nil {
				return nil
			}

			httpErr, ok := err.(HttpError)
			if ok {
				// authentication and throttling rejections are routine
				// client behavior, not service faults
				logger.Debug(ctx.Context(), err)
				return httpErr.WriteError(ctx.ResponseWriter())
			}

			logger.Error(ctx.Context(), err)
			return httperrors.
				New(http.StatusInternalServerError, "internal service error", err).
				WriteError(ctx.ResponseWriter())
		})
	}
}
