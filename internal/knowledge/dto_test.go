package knowledge

import "testing"

func TestRecordResponseCountsCharactersNotBytes(t *testing.T) {
	// 6 characters, 18 bytes in UTF-8.
	resp := toResponse(Record{ID: "r1", Content: "日本語のメモ", Source: "notes.docx", Method: "manual"})

	if resp.Characters != 6 {
		t.Fatalf("characters = %d, want 6", resp.Characters)
	}
}
