package qa

import "errors"

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoKnowledge indicates the store holds nothing to answer from.
	ErrNoKnowledge = errors.New("knowledge base is empty")
)
