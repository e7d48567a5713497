package knowledge

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert appends a new knowledge record.
func (r *PGRepo) Insert(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO knowledge (id, content, source, method, created_at)
VALUES ($1, $2, $3, $4, $5)`

	method := rec.Method
	if method == "" {
		method = "manual"
	}

	_, err := r.DB.ExecContext(ctx, query, rec.ID, rec.Content, rec.Source, method, rec.CreatedAt)
	return err
}

// List returns every knowledge record, oldest first.
func (r *PGRepo) List(ctx context.Context) ([]Record, error) {
	const query = `
SELECT id, content, source, method, created_at
FROM knowledge
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var method sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Content, &rec.Source, &method, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if method.Valid {
			rec.Method = method.String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
