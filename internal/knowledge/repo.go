package knowledge

import "context"

// Repo defines persistence operations for knowledge records. Insert and
// List are the whole contract: the store is write-only from the ingestion
// side and read in full by the question-answering side.
type Repo interface {
	Insert(ctx context.Context, rec Record) error
	List(ctx context.Context) ([]Record, error)
}
