package transcript_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"podium/internal/transcript"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadPlainDocument(t *testing.T) {
	path := writeFile(t, "standup-notes.json", `{
		"title": "Monday Standup",
		"duration_minutes": 2.5,
		"chunks": [
			{"text": "So yesterday I shipped the release.", "final": true},
			{"text": "still talking", "final": false}
		]
	}`)

	tr, err := transcript.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tr.Title != "Monday Standup" {
		t.Errorf("title = %q, want %q", tr.Title, "Monday Standup")
	}
	if tr.DurationMinutes != 2.5 {
		t.Errorf("duration = %v, want 2.5", tr.DurationMinutes)
	}
	if len(tr.Chunks) != 2 || tr.Chunks[1].Final {
		t.Errorf("chunks = %+v, want two chunks with the second non-final", tr.Chunks)
	}
	if tr.SourcePath != path {
		t.Errorf("source path = %q, want %q", tr.SourcePath, path)
	}
	if len(tr.Fingerprint) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(tr.Fingerprint))
	}
}

func TestLoadInfersTitleFromFileName(t *testing.T) {
	path := writeFile(t, "all-hands_q3-recap.json", `{"duration_minutes": 1, "chunks": []}`)

	tr, err := transcript.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tr.Title != "All Hands Q3 Recap" {
		t.Errorf("title = %q, want %q", tr.Title, "All Hands Q3 Recap")
	}
}

func TestLoadWhisperXDocument(t *testing.T) {
	path := writeFile(t, "keynote.json", `{
		"segments": [
			{"text": " Welcome everyone. ", "start": 0.0, "end": 12.48},
			{"text": "Let us get started.", "start": 12.48, "end": 30.0}
		]
	}`)

	tr, err := transcript.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tr.Chunks) != 2 {
		t.Fatalf("chunks = %d, want 2", len(tr.Chunks))
	}
	for i, chunk := range tr.Chunks {
		if !chunk.Final {
			t.Errorf("chunk %d not final; whisperx segments are always final", i)
		}
	}
	if tr.Chunks[0].Text != "Welcome everyone." {
		t.Errorf("chunk text = %q, want trimmed segment text", tr.Chunks[0].Text)
	}
	if tr.DurationMinutes != 0.5 {
		t.Errorf("duration = %v, want 0.5", tr.DurationMinutes)
	}
}

func TestParseUnknownFormat(t *testing.T) {
	_, err := transcript.Parse([]byte(`{"words": ["not", "a", "transcript"]}`))
	if !errors.Is(err, transcript.ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := transcript.Parse([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestFingerprintStable(t *testing.T) {
	first, err := transcript.Fingerprint(strings.NewReader("same bytes"))
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	second, err := transcript.Fingerprint(strings.NewReader("same bytes"))
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if first != second {
		t.Errorf("fingerprints differ: %s vs %s", first, second)
	}

	other, err := transcript.Fingerprint(strings.NewReader("different bytes"))
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if other == first {
		t.Error("different content produced identical fingerprints")
	}
}

func TestInferTitle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/weekly-review.json", "Weekly Review"},
		{"board_meeting.2026.json", "Board Meeting 2026"},
		{"....json", "Untitled"},
	}

	for _, tt := range tests {
		if got := transcript.InferTitle(tt.path); got != tt.want {
			t.Errorf("InferTitle(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
