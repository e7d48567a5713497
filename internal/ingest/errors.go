package ingest

import "errors"

var (
	// ErrUnsupportedFormat indicates the declared extension is not pdf or docx.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMalformedDocument indicates the extractor could not parse the buffer.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrEmptyDocument indicates a DOCX parsed cleanly but contained no text.
	ErrEmptyDocument = errors.New("empty document")

	// ErrNoRecoverableText indicates a PDF had no text layer and OCR
	// recognized nothing either.
	ErrNoRecoverableText = errors.New("no recoverable text")

	// ErrRecognitionFailure indicates the OCR engine itself failed, as
	// opposed to succeeding with an empty result.
	ErrRecognitionFailure = errors.New("recognition failure")
)

// Stable caller-facing codes for each failure. Callers report these
// verbatim rather than collapsing them into a generic error.
const (
	CodeUnsupportedFormat  = "unsupported_format"
	CodeMalformedDocument  = "malformed_document"
	CodeEmptyDocument      = "empty_document"
	CodeNoRecoverableText  = "no_recoverable_text"
	CodeRecognitionFailure = "recognition_failure"
)

// Code maps a pipeline error to its stable code, or empty string for
// errors outside the ingestion taxonomy.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return CodeUnsupportedFormat
	case errors.Is(err, ErrMalformedDocument):
		return CodeMalformedDocument
	case errors.Is(err, ErrEmptyDocument):
		return CodeEmptyDocument
	case errors.Is(err, ErrNoRecoverableText):
		return CodeNoRecoverableText
	case errors.Is(err, ErrRecognitionFailure):
		return CodeRecognitionFailure
	default:
		return ""
	}
}
