package knowledge

import "time"

// Record is one unit of stored knowledge. The store is append-only:
// records are never updated or deleted, and duplicates are permitted.
type Record struct {
	ID        string
	Content   string
	Source    string
	Method    string
	CreatedAt time.Time
}
