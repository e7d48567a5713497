package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPageTreeNodes bounds the page tree walk in validatePageTree.
const maxPageTreeNodes = 1 << 16

// PDFExtractor pulls the embedded text layer out of a PDF using
// github.com/ledongthuc/pdf. A scanned-image-only PDF yields an empty
// string, which is a valid outcome that the pipeline resolves via OCR.
type PDFExtractor struct{}

// Extract concatenates the extractable text runs of every page in
// document order and returns the trimmed result.
func (PDFExtractor) Extract(ctx context.Context, data []byte) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// A zero-length buffer has no text layer by definition; let the
	// fallback decide whether anything is recoverable.
	if len(data) == 0 {
		return "", nil
	}
	// The pdf library reports some malformed inputs by panicking rather
	// than returning an error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	if err := validatePageTree(reader); err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// validatePageTree rejects documents whose page tree cannot be walked in
// a bounded number of steps. A Kids entry that references one of its own
// ancestors would otherwise send the per-page lookup into an endless
// descent.
func validatePageTree(r *pdf.Reader) error {
	stack := []pdf.Value{r.Trailer().Key("Root").Key("Pages")}
	seen := 0
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.IsNull() {
			continue
		}
		if seen++; seen > maxPageTreeNodes {
			return fmt.Errorf("page tree exceeds %d nodes", maxPageTreeNodes)
		}
		if node.Key("Type").Name() != "Pages" {
			continue
		}
		kids := node.Key("Kids")
		for i := 0; i < kids.Len(); i++ {
			stack = append(stack, kids.Index(i))
		}
	}
	return nil
}
