package llm

import (
	"context"
	"time"
)

// Timeout bounds a single generation request. Past it the call is treated
// as a failure and the caller falls back to its deterministic draft.
const Timeout = 60 * time.Second

// Generator produces polished text for a composed prompt. Implementations
// return an error for every deviation (transport, status, malformed or
// incomplete response); absorbing failures is the caller's job.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
