package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when a completion client cannot be
// constructed, typically because the provider API key is missing from the
// environment. It is raised before any network attempt.
var ErrNotConfigured = errors.New("completion client is not configured")

// Request is a single chat-style completion request: one system message
// establishing the assistant's role, one user message, and a sampling
// temperature.
type Request struct {
	System      string
	User        string
	Temperature float64
}

// Completer submits a system/user message pair to a text-completion service
// and returns the trimmed response text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
