package routes

import (
	"net/http"

	"agent-hub-service/controller"
	"agent-hub-service/httperrors"
	"agent-hub-service/middleware"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
)

type Controllers struct {
	Tool      controller.Tool
	Agent     controller.Agent
	Execution controller.Execution
}

func Handler(logger log.Logger, c Controllers) http.Handler {
	wrapper := errorWrapper{logger: logger}
	wrap := wrapper.wrap

	router := mux.NewRouter().StrictSlash(true)
	router.NotFoundHandler = wrap(notFound)
	router.MethodNotAllowedHandler = wrap(notFound)

	router.Handle("/tools", wrap(c.Tool.Create)).Methods(http.MethodPost)
	router.Handle("/tools", wrap(c.Tool.List)).Methods(http.MethodGet)
	router.Handle("/tools/{id}", wrap(c.Tool.Update)).Methods(http.MethodPut)
	router.Handle("/tools/{id}", wrap(c.Tool.Delete)).Methods(http.MethodDelete)

	router.Handle("/agents", wrap(c.Agent.Create)).Methods(http.MethodPost)
	router.Handle("/agents", wrap(c.Agent.List)).Methods(http.MethodGet)
	router.Handle("/agents/{id}", wrap(c.Agent.Get)).Methods(http.MethodGet)
	router.Handle("/agents/{id}", wrap(c.Agent.Update)).Methods(http.MethodPut)
	router.Handle("/agents/{id}", wrap(c.Agent.Delete)).Methods(http.MethodDelete)
	router.Handle("/agents/{id}/run", wrap(c.Execution.Run)).Methods(http.MethodPost)

	router.Handle("/executions", wrap(c.Execution.History)).Methods(http.MethodGet)

	return router
}

func notFound(_ http.ResponseWriter, r *http.Request) error {
	return httperrors.New(
		http.StatusNotFound,
		"not found",
		errors.Errorf("no route for %s %s", r.Method, r.URL.Path),
	)
}

type errorWrapper struct {
	logger log.Logger
}

// wrap mirrors the middleware error handling for route handlers. Client
// errors carry their own status, anything else becomes a 500.
func (s errorWrapper) wrap(handler func(w http.ResponseWriter, r *http.Request) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		if err == nil {
			return
		}

		httpErr, ok := err.(middleware.HttpError)
		if ok {
			s.logger.Debug(r.Context(), err)
			_ = httpErr.WriteError(w)
			return
		}

		s.logger.Error(r.Context(), err)
		_ = httperrors.
			New(http.StatusInternalServerError, "internal service error", err).
			WriteError(w)
	})
}
