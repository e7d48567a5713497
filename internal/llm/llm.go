package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for question answering.
type Client interface {
	Answer(ctx context.Context, input AnswerInput) (string, error)
}

// AnswerInput captures the inputs for one answer request.
type AnswerInput struct {
	Question string
	Context  string
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Answer returns ErrNotConfigured.
func (PlaceholderClient) Answer(ctx context.Context, input AnswerInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
