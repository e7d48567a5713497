package knowledge

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"knowledge-backend/internal/ingest"
)

// Service contains business logic for the knowledge store. It owns the
// persistence side of an ingestion: the pipeline produces the artifact,
// the service records it.
type Service struct {
	Pipeline *ingest.Pipeline
	Repo     Repo
}

// IngestUpload runs the extraction pipeline over an uploaded document and
// persists the resulting text under the original filename. The raw bytes
// are released when this call returns; on failure nothing is persisted.
func (s *Service) IngestUpload(ctx context.Context, doc ingest.UploadedDocument) (Record, ingest.Result, error) {
	res, err := s.Pipeline.Run(ctx, doc)
	if err != nil {
		return Record{}, ingest.Result{}, err
	}

	rec := Record{
		ID:        uuid.NewString(),
		Content:   res.Text,
		Source:    doc.DeclaredName,
		Method:    string(res.Method),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return Record{}, ingest.Result{}, err
	}
	return rec, res, nil
}

// AddManual persists manually typed knowledge under a caller-supplied
// source label.
func (s *Service) AddManual(ctx context.Context, content, source string) (Record, error) {
	content = strings.TrimSpace(content)
	source = strings.TrimSpace(source)
	if content == "" || source == "" {
		return Record{}, ErrInvalidInput
	}

	rec := Record{
		ID:        uuid.NewString(),
		Content:   content,
		Source:    source,
		Method:    "manual",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns every stored record.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.Repo.List(ctx)
}
