// Package provider is the model-client boundary: send a prompt to a named
// model, get a completion back, classify the failure otherwise. Retries,
// breakers, and fallback live a layer up in pkg/resilience.
package provider

import (
	"context"
	"errors"
	"time"
)

// Message is one chat message in a completion request.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// Request is a single completion request to a named model.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Completion is a successful model response.
type Completion struct {
	Text         string
	InputTokens  int
	OutputTokens int
	Latency      time.Duration
	FinishReason string
}

// Provider sends a completion request to the upstream. Implementations must
// honour the context deadline and return a *CallError on failure. No
// retries, no queueing.
type Provider interface {
	Invoke(ctx context.Context, req Request) (*Completion, error)
}

// ErrNoDeadline is returned when an invocation context carries no deadline.
// Every model call must be bounded.
var ErrNoDeadline = errors.New("model invocation requires a context deadline")
