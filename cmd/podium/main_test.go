package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestAnalyzeRendersReport(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscriptFile(t, filepath.Join(env.baseDir, "talk.json"), 1,
		"um so today i want to talk about the roadmap.",
		"basically we are going to ship the new ingest pipeline.",
	)

	out, _, err := runCLI(t, []string{"analyze", path}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Talk")
	requireContains(t, out, "Clarity")
	requireContains(t, out, "Filler words")
}

func TestAnalyzeJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscriptFile(t, filepath.Join(env.baseDir, "talk.json"), 1,
		"um so this is the transcript under test.",
	)

	out, _, err := runCLI(t, []string{"analyze", path, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze --json: %v", err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	for _, key := range []string{"filler_words", "pacing", "repetitions", "sentence_starters", "weak_words", "scores"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("JSON output missing %q: %s", key, out)
		}
	}
}

func TestAnalyzeEmptyTranscript(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscriptFile(t, filepath.Join(env.baseDir, "empty.json"), 1)

	out, _, err := runCLI(t, []string{"analyze", path}, env.configPath)
	if err != nil {
		t.Fatalf("analyze empty transcript: %v", err)
	}
	requireContains(t, out, "no analyzable speech")
}

func TestAnalyzeDurationOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscriptFile(t, filepath.Join(env.baseDir, "talk.json"), 10,
		"one two three four five six seven eight nine ten.",
	)

	out, _, err := runCLI(t, []string{"analyze", path, "--duration", "1", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze --duration: %v", err)
	}
	var report struct {
		Pacing struct {
			WordsPerMinute int `json:"words_per_minute"`
		} `json:"pacing"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Pacing.WordsPerMinute != 10 {
		t.Fatalf("expected 10 wpm with overridden duration, got %d", report.Pacing.WordsPerMinute)
	}
}

func TestAnalyzeSaveAndReportLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscriptFile(t, filepath.Join(env.baseDir, "saved-talk.json"), 1,
		"um so here is a talk worth keeping around.",
	)

	_, stderr, err := runCLI(t, []string{"analyze", path, "--save"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze --save: %v", err)
	}
	requireContains(t, stderr, "Saved report")

	out, _, err := runCLI(t, []string{"report", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("report list: %v", err)
	}
	requireContains(t, out, "Saved Talk")

	out, _, err = runCLI(t, []string{"report", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("report list --json: %v", err)
	}
	var rows []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode report list: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Saved Talk" {
		t.Fatalf("unexpected list rows: %#v", rows)
	}

	out, _, err = runCLI(t, []string{"report", "show", rows[0].ID}, env.configPath)
	if err != nil {
		t.Fatalf("report show: %v", err)
	}
	requireContains(t, out, "Saved Talk")
	requireContains(t, out, "Clarity")

	out, _, err = runCLI(t, []string{"report", "delete", rows[0].ID}, env.configPath)
	if err != nil {
		t.Fatalf("report delete: %v", err)
	}
	requireContains(t, out, "Deleted report")

	out, _, err = runCLI(t, []string{"report", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("report list after delete: %v", err)
	}
	requireContains(t, out, "No reports stored")
}

func TestReportShowUnknownID(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"report", "show", "missing"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "no report with id") {
		t.Fatalf("expected missing report error, got %v", err)
	}
}

func TestReportClearAndHealth(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscriptFile(t, filepath.Join(env.baseDir, "talk.json"), 1,
		"um so this transcript gets saved then cleared.",
	)
	if _, _, err := runCLI(t, []string{"analyze", path, "--save"}, env.configPath); err != nil {
		t.Fatalf("analyze --save: %v", err)
	}

	out, _, err := runCLI(t, []string{"report", "health"}, env.configPath)
	if err != nil {
		t.Fatalf("report health: %v", err)
	}
	requireContains(t, out, "Reports: 1")

	out, _, err = runCLI(t, []string{"report", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("report clear: %v", err)
	}
	requireContains(t, out, "Cleared 1 reports")
}
