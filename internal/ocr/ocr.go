package ocr

import (
	"context"
	"errors"
)

// DefaultLanguage is the tesseract language code used when the caller
// does not configure one.
const DefaultLanguage = "eng"

// Client recognizes text in a rendered document buffer. Implementations
// are CPU-bound and slow relative to direct extraction; the ingestion
// pipeline only invokes them after confirming no text layer exists.
type Client interface {
	Recognize(ctx context.Context, data []byte, language string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("ocr engine not configured")

// PlaceholderClient is a stub implementation until engine wiring is added.
type PlaceholderClient struct{}

// Recognize returns ErrNotConfigured.
func (PlaceholderClient) Recognize(ctx context.Context, data []byte, language string) (string, error) {
	_ = ctx
	_ = data
	_ = language
	return "", ErrNotConfigured
}
