// Package llm abstracts the language model providers the assistant and
// the interview engine can run on. All providers answer the same
// single-turn completion contract; callers that get a nil client fall
// back to keyword heuristics.
package llm

import "context"

// Request is one completion request. System carries the role prompt,
// User the actual question or utterance.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Client is a connection to a language model provider.
type Client interface {
	// Complete sends a single-turn request and returns the raw text
	// of the model's reply.
	Complete(ctx context.Context, req Request) (string, error)
	// Name returns a human-readable provider identifier for logs.
	Name() string
}
