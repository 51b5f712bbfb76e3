package testsupport

import (
	"context"
	"testing"

	"podium/internal/analysis"
	"podium/internal/config"
	"podium/internal/reportstore"
	"podium/internal/transcript"
)

// MustOpenStore opens a reportstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *reportstore.Store {
	t.Helper()

	store, err := reportstore.Open(cfg)
	if err != nil {
		t.Fatalf("reportstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SaveReport analyzes a transcript and persists the result for tests.
func SaveReport(t testing.TB, store *reportstore.Store, tr *transcript.Transcript) *reportstore.Record {
	t.Helper()

	engine := analysis.NewEngine(analysis.DefaultLexicon())
	report := engine.Analyze(tr.Chunks, tr.DurationMinutes)
	if report == nil {
		t.Fatalf("transcript %q produced no report", tr.Title)
	}
	record, err := reportstore.NewRecord(tr, report)
	if err != nil {
		t.Fatalf("reportstore.NewRecord: %v", err)
	}
	saved, err := store.Save(context.Background(), record)
	if err != nil {
		t.Fatalf("store.Save: %v", err)
	}
	return saved
}
