package knowledge

import (
	"time"
	"unicode/utf8"
)

// RecordResponse is the outward-facing representation of a knowledge record.
type RecordResponse struct {
	RecordID   string    `json:"recordId"`
	Source     string    `json:"source"`
	Method     string    `json:"method"`
	Characters int       `json:"characters"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toResponse(rec Record) RecordResponse {
	return RecordResponse{
		RecordID:   rec.ID,
		Source:     rec.Source,
		Method:     rec.Method,
		Characters: utf8.RuneCountInString(rec.Content),
		CreatedAt:  rec.CreatedAt,
	}
}
