package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"podium/internal/transcript"
)

// WriteTranscript writes a plain transcript document to the target path and
// returns the path. Every chunk is marked finalized.
func WriteTranscript(t testing.TB, path, title string, durationMinutes float64, lines ...string) string {
	t.Helper()

	chunks := make([]transcript.Chunk, 0, len(lines))
	for _, line := range lines {
		chunks = append(chunks, transcript.Chunk{Text: line, Final: true})
	}
	doc := struct {
		Title           string             `json:"title,omitempty"`
		DurationMinutes float64            `json:"duration_minutes"`
		Chunks          []transcript.Chunk `json:"chunks"`
	}{
		Title:           title,
		DurationMinutes: durationMinutes,
		Chunks:          chunks,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal transcript: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// LoadTranscript reads a transcript from disk, failing the test on error.
func LoadTranscript(t testing.TB, path string) *transcript.Transcript {
	t.Helper()

	tr, err := transcript.Load(path)
	if err != nil {
		t.Fatalf("transcript.Load(%s): %v", path, err)
	}
	return tr
}
