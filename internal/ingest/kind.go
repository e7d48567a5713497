package ingest

import (
	"path/filepath"
	"strings"
)

// Kind is the closed set of document formats the pipeline understands.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPDF
	KindDOCX
)

// String returns a stable lower-case name for logging and metrics labels.
func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindDOCX:
		return "docx"
	default:
		return "unsupported"
	}
}

// DetectKind classifies a document by its declared filename extension,
// case-insensitive. Buffer content is never inspected; a mislabeled file
// is routed by its name and fails downstream in the matching extractor.
func DetectKind(declaredName string) Kind {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(declaredName))) {
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindDOCX
	default:
		return KindUnsupported
	}
}
