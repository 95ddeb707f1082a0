package domain

import (
	"github.com/pkg/errors"
)

const (
	// InvalidApiKeyErrorMessage is returned for both a missing and an
	// unknown api key, so callers can't probe which keys exist.
	InvalidApiKeyErrorMessage = "invalid api key"
)

var (
	ErrUnknownApiKey = errors.New("unknown api key")
	ErrAgentNotFound = errors.New("agent not found")
	ErrToolNotFound  = errors.New("tool not found")
	ErrToolsNotFound = errors.New("one or more tools not found")
)
