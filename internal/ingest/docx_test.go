package ingest

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"testing"
)

const docxRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

const docxContentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

// buildDocx assembles a minimal DOCX archive whose body holds the given
// paragraphs.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := map[string]string{
		"[Content_Types].xml":          docxContentTypesXML,
		"word/_rels/document.xml.rels": docxRelsXML,
		"word/document.xml":            body.String(),
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestDOCXExtractorReturnsText(t *testing.T) {
	data := buildDocx(t, "Alloy hardness depends on...")

	text, err := DOCXExtractor{}.Extract(context.Background(), data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "Alloy hardness depends on..." {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestDOCXExtractorJoinsParagraphs(t *testing.T) {
	data := buildDocx(t, "First paragraph.", "Second paragraph.")

	text, err := DOCXExtractor{}.Extract(context.Background(), data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "First paragraph.\nSecond paragraph." {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestDOCXExtractorWhitespaceOnlyIsEmpty(t *testing.T) {
	data := buildDocx(t, "   ")

	text, err := DOCXExtractor{}.Extract(context.Background(), data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestDOCXExtractorMalformedArchive(t *testing.T) {
	if _, err := (DOCXExtractor{}).Extract(context.Background(), []byte("not a zip archive")); err == nil {
		t.Fatal("expected error for malformed archive")
	}
}
