package controller

import (
	"net/http"

	"agent-hub-service/httperrors"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
)

func readJson(r *http.Request, value any) error {
	err := json.NewDecoder(r.Body).Decode(value)
	if err != nil {
		return httperrors.New(
			http.StatusBadRequest,
			"invalid request body",
			errors.WithMessage(err, "decode request body"),
		)
	}
	return nil
}

func writeJson(w http.ResponseWriter, value any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(value)
}
