package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"

	"knowledge-backend/internal/ocr"
)

// Engine implements ocr.Client by rasterizing PDF pages with
// github.com/gen2brain/go-fitz and recognizing them with the tesseract
// bindings from github.com/otiai10/gosseract.
type Engine struct{}

// NewEngine constructs an Engine. Each Recognize call opens its own
// gosseract client, so one Engine is safe for concurrent calls.
func NewEngine() *Engine {
	return &Engine{}
}

// Recognize renders every page of the buffer and runs character
// recognition over each, joining page texts with newlines. It returns an
// empty string when the buffer renders to no pages or recognition finds
// nothing, and an error only when the tooling itself fails.
func (e *Engine) Recognize(ctx context.Context, data []byte, language string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", nil
	}
	if strings.TrimSpace(language) == "" {
		language = ocr.DefaultLanguage
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("rasterize document: %w", err)
	}
	defer doc.Close()

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("set ocr language %q: %w", language, err)
	}

	var out strings.Builder
	for page := 0; page < doc.NumPage(); page++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		img, err := doc.Image(page)
		if err != nil {
			return "", fmt.Errorf("render page %d: %w", page+1, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return "", fmt.Errorf("encode page %d: %w", page+1, err)
		}
		if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
			return "", fmt.Errorf("load page %d: %w", page+1, err)
		}
		text, err := client.Text()
		if err != nil {
			return "", fmt.Errorf("recognize page %d: %w", page+1, err)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			if out.Len() > 0 {
				out.WriteString("\n")
			}
			out.WriteString(trimmed)
		}
	}
	return out.String(), nil
}

var _ ocr.Client = (*Engine)(nil)
