package ingest

// UploadedDocument is one inbound buffer plus the metadata the caller
// declared for it. The pipeline owns it for the duration of a single Run
// call and does not retain the bytes afterwards.
type UploadedDocument struct {
	Data         []byte
	DeclaredName string
	DeclaredSize int64
}

// Method records which extraction strategy produced the final text.
type Method string

const (
	MethodDirectText Method = "direct_text"
	MethodOCR        Method = "ocr"
)

// Result is the normalized output of one successful pipeline run.
// Text is always non-empty after trimming; an extractor that produces
// only whitespace is treated as having produced nothing.
type Result struct {
	Text   string
	Method Method
}
