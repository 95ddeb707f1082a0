// Package llm abstracts the model call behind a client interface. The
// service ships with a deterministic simulator, a real provider client can
// be dropped in without touching the execution flow.
package llm

import (
	"context"
)

type Client interface {
	Complete(ctx context.Context, prompt string, model string) (string, error)
}
