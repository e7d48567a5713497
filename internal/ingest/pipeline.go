package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"knowledge-backend/internal/ocr"
	"knowledge-backend/internal/shared/metrics"
	"knowledge-backend/internal/shared/telemetry"
)

// Extractor pulls the text layer out of a buffer of one document kind.
// Implementations return the trimmed text, empty when the document parses
// but carries no text, and an error only for structural failures.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// Pipeline sequences detection, primary extraction, the conditional OCR
// fallback and content validation for one uploaded document. All
// collaborators are injected; the pipeline holds no per-call state, so a
// single Pipeline serves concurrent ingestions.
type Pipeline struct {
	PDF         Extractor
	DOCX        Extractor
	OCR         ocr.Client
	OCRLanguage string
}

// NewPipeline wires the real extractors around the given OCR client.
func NewPipeline(ocrClient ocr.Client, ocrLanguage string) *Pipeline {
	if strings.TrimSpace(ocrLanguage) == "" {
		ocrLanguage = ocr.DefaultLanguage
	}
	return &Pipeline{
		PDF:         PDFExtractor{},
		DOCX:        DOCXExtractor{},
		OCR:         ocrClient,
		OCRLanguage: ocrLanguage,
	}
}

// Run executes the pipeline for one document and returns the normalized
// text artifact or one of the ingest sentinel errors. The document's
// bytes are not retained past the call.
func (p *Pipeline) Run(ctx context.Context, doc UploadedDocument) (Result, error) {
	metrics.IncIngestStarted()
	started := time.Now()

	res, err := p.run(ctx, doc)
	if err != nil {
		metrics.IncIngestFailed()
		telemetry.Error("ingest.failed", map[string]any{
			"file_name":   doc.DeclaredName,
			"size_bytes":  doc.DeclaredSize,
			"code":        Code(err),
			"err":         err.Error(),
			"duration_ms": float64(time.Since(started).Microseconds()) / 1000.0,
		})
		return Result{}, err
	}

	metrics.IncIngestCompleted()
	metrics.ObserveIngestDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	telemetry.Info("ingest.completed", map[string]any{
		"file_name":   doc.DeclaredName,
		"size_bytes":  doc.DeclaredSize,
		"method":      string(res.Method),
		"characters":  utf8.RuneCountInString(res.Text),
		"duration_ms": float64(time.Since(started).Microseconds()) / 1000.0,
	})
	return res, nil
}

func (p *Pipeline) run(ctx context.Context, doc UploadedDocument) (Result, error) {
	kind := DetectKind(doc.DeclaredName)
	if kind == KindUnsupported {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, doc.DeclaredName)
	}

	text, err := p.extractPrimary(ctx, kind, doc.Data)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	text = strings.TrimSpace(text)

	if text != "" {
		return Result{Text: text, Method: MethodDirectText}, nil
	}

	// The fallback applies to PDFs only; a parseable DOCX without text is
	// terminal.
	if kind != KindPDF {
		return Result{}, ErrEmptyDocument
	}
	return p.recognize(ctx, doc)
}

func (p *Pipeline) extractPrimary(ctx context.Context, kind Kind, data []byte) (string, error) {
	switch kind {
	case KindPDF:
		return p.PDF.Extract(ctx, data)
	case KindDOCX:
		return p.DOCX.Extract(ctx, data)
	default:
		return "", fmt.Errorf("no extractor for kind %s", kind)
	}
}

func (p *Pipeline) recognize(ctx context.Context, doc UploadedDocument) (Result, error) {
	if p.OCR == nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRecognitionFailure, ocr.ErrNotConfigured)
	}

	metrics.IncOCRFallback()
	started := time.Now()
	text, err := p.OCR.Recognize(ctx, doc.Data, p.OCRLanguage)
	metrics.ObserveOCRDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %v", ErrRecognitionFailure, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrNoRecoverableText
	}
	return Result{Text: text, Method: MethodOCR}, nil
}
