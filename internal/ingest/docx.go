package ingest

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCXExtractor unpacks the main document part of a DOCX archive using
// github.com/nguyenthenguyen/docx and flattens its XML to plain text.
type DOCXExtractor struct{}

// Extract returns the document's text trimmed of surrounding whitespace.
// A structurally broken archive or XML surfaces as an error; a clean
// document with no text returns an empty string.
func (DOCXExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer reader.Close()

	return flattenDocxXML(reader.Editable().GetContent())
}

// flattenDocxXML collects character data from word/document.xml, inserting
// a newline at each paragraph or line-break boundary.
func flattenDocxXML(raw string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}
