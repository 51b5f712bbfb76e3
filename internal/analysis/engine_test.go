package analysis_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"podium/internal/analysis"
	"podium/internal/transcript"
)

func finalChunks(texts ...string) []transcript.Chunk {
	chunks := make([]transcript.Chunk, 0, len(texts))
	for _, text := range texts {
		chunks = append(chunks, transcript.Chunk{Text: text, Final: true})
	}
	return chunks
}

func TestAnalyzeBasicTranscript(t *testing.T) {
	engine := analysis.NewDefaultEngine()
	report := engine.Analyze(finalChunks("I think I think this is um really important um"), 1.0)
	if report == nil {
		t.Fatal("expected a report")
	}

	if report.FillerWords.Count != 2 {
		t.Errorf("filler count = %d, want 2", report.FillerWords.Count)
	}
	if report.FillerWords.RatePerMinute != 2.0 {
		t.Errorf("filler rate = %v, want 2.0", report.FillerWords.RatePerMinute)
	}
	if got := len(report.FillerWords.Instances); got != 2 {
		t.Fatalf("filler instances = %d, want 2", got)
	}
	if report.FillerWords.Instances[0].Word != "um" || report.FillerWords.Instances[0].Position != 6 {
		t.Errorf("first filler instance = %+v, want um at position 6", report.FillerWords.Instances[0])
	}

	if report.Pacing.WordsPerMinute != 10 {
		t.Errorf("words per minute = %d, want 10", report.Pacing.WordsPerMinute)
	}
	if report.Pacing.AveragePauseDuration != nil || report.Pacing.LongestPause != nil {
		t.Error("pause metrics should be absent for plain text chunks")
	}

	// "think" appears twice, below the repetition threshold of 3.
	if len(report.Repetitions.RepeatedWords) != 0 {
		t.Errorf("repeated words = %+v, want none", report.Repetitions.RepeatedWords)
	}

	if report.SentenceStarters.Total != 1 {
		t.Errorf("sentence total = %d, want 1", report.SentenceStarters.Total)
	}
	if len(report.SentenceStarters.Weak) != 0 {
		t.Errorf("weak starters = %+v, want none", report.SentenceStarters.Weak)
	}

	if len(report.WeakWords) != 1 || report.WeakWords[0].Word != "really" {
		t.Fatalf("weak words = %+v, want one instance of %q", report.WeakWords, "really")
	}
	if report.WeakWords[0].Suggestion != nil {
		t.Error("weak word suggestion should be absent")
	}

	// Two fillers over ten tokens overwhelm the clarity penalty entirely.
	if report.Scores.Clarity != 0 {
		t.Errorf("clarity = %d, want 0", report.Scores.Clarity)
	}
	if report.Scores.Conciseness != 100 {
		t.Errorf("conciseness = %d, want 100", report.Scores.Conciseness)
	}
	if report.Scores.Confidence != 100 {
		t.Errorf("confidence = %d, want 100", report.Scores.Confidence)
	}
}

func TestAnalyzeInsufficientData(t *testing.T) {
	engine := analysis.NewDefaultEngine()

	tests := []struct {
		name   string
		chunks []transcript.Chunk
	}{
		{"no chunks", nil},
		{"no final chunks", []transcript.Chunk{{Text: "still speaking", Final: false}}},
		{"only whitespace", finalChunks("   ", "\t")},
		{"empty strings", finalChunks("", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if report := engine.Analyze(tt.chunks, 1.0); report != nil {
				t.Errorf("expected nil report, got %+v", report)
			}
		})
	}
}

func TestAnalyzeSkipsNonFinalChunks(t *testing.T) {
	engine := analysis.NewDefaultEngine()
	chunks := []transcript.Chunk{
		{Text: "um this part is final", Final: true},
		{Text: "um um um um this part is not", Final: false},
	}

	report := engine.Analyze(chunks, 1.0)
	if report == nil {
		t.Fatal("expected a report")
	}
	if report.FillerWords.Count != 1 {
		t.Errorf("filler count = %d, want 1 (non-final chunk must be ignored)", report.FillerWords.Count)
	}
}

func TestAnalyzeDurationFloor(t *testing.T) {
	engine := analysis.NewDefaultEngine()

	for _, duration := range []float64{0, -3.5} {
		report := engine.Analyze(finalChunks("one two three four five"), duration)
		if report == nil {
			t.Fatal("expected a report")
		}
		// Five tokens over the 0.1 minute floor.
		if report.Pacing.WordsPerMinute != 50 {
			t.Errorf("duration %v: words per minute = %d, want 50", duration, report.Pacing.WordsPerMinute)
		}
		if report.FillerWords.RatePerMinute < 0 {
			t.Errorf("duration %v: negative filler rate %v", duration, report.FillerWords.RatePerMinute)
		}
	}
}

func TestAnalyzeScoresAlwaysInRange(t *testing.T) {
	engine := analysis.NewDefaultEngine()

	tests := []struct {
		name     string
		text     string
		duration float64
	}{
		{"clean speech", "The quarterly results exceeded expectations across every region.", 2},
		{"pure filler", "um um um um um um um um", 0.5},
		{"weak openers", "So we begin. Well we continue. So we end.", 1},
		{"repetitive", "metrics metrics metrics metrics pipeline pipeline pipeline pipeline", 1},
		{"single word", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := engine.Analyze(finalChunks(tt.text), tt.duration)
			if report == nil {
				t.Fatal("expected a report")
			}
			for name, score := range map[string]int{
				"clarity":     report.Scores.Clarity,
				"conciseness": report.Scores.Conciseness,
				"confidence":  report.Scores.Confidence,
			} {
				if score < 0 || score > 100 {
					t.Errorf("%s = %d, want within [0, 100]", name, score)
				}
			}
		})
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	engine := analysis.NewDefaultEngine()
	chunks := finalChunks(
		"So basically the pipeline keeps failing. The pipeline retries and the pipeline fails again.",
		"Well I think the fix is really just a timeout. Um maybe a longer timeout.",
	)

	first := engine.Analyze(chunks, 1.5)
	second := engine.Analyze(chunks, 1.5)
	if first == nil || second == nil {
		t.Fatal("expected reports")
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first report: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second report: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("reports differ:\n%s\n%s", a, b)
	}
}

func TestAnalyzeCustomLexicon(t *testing.T) {
	lexicon := analysis.Lexicon{
		FillerWords:  []string{"gadget"},
		WeakStarters: []string{"perhaps"},
		WeakWords:    []string{"widget"},
		StopWords:    []string{"the"},
	}
	engine := analysis.NewEngine(lexicon)

	report := engine.Analyze(finalChunks("Perhaps the gadget broke. The widget is fine."), 1)
	if report == nil {
		t.Fatal("expected a report")
	}
	if report.FillerWords.Count != 1 {
		t.Errorf("filler count = %d, want 1", report.FillerWords.Count)
	}
	if len(report.SentenceStarters.Weak) != 1 || report.SentenceStarters.Weak[0].Word != "perhaps" {
		t.Errorf("weak starters = %+v, want perhaps", report.SentenceStarters.Weak)
	}
	if len(report.WeakWords) != 1 || report.WeakWords[0].Word != "widget" {
		t.Errorf("weak words = %+v, want widget", report.WeakWords)
	}
}

func TestAnalyzeMultiWordFillerEntriesNeverMatch(t *testing.T) {
	// Lexicon entries containing spaces cannot equal a single
	// whitespace-delimited token, so they never produce instances.
	engine := analysis.NewDefaultEngine()
	report := engine.Analyze(finalChunks("you know it works sort of fine"), 1)
	if report == nil {
		t.Fatal("expected a report")
	}
	if report.FillerWords.Count != 0 {
		t.Errorf("filler count = %d, want 0", report.FillerWords.Count)
	}
}

func TestAnalyzeFillerInstancesCapped(t *testing.T) {
	engine := analysis.NewDefaultEngine()

	var text bytes.Buffer
	for i := 0; i < 30; i++ {
		text.WriteString("um word ")
	}

	report := engine.Analyze(finalChunks(text.String()), 1)
	if report == nil {
		t.Fatal("expected a report")
	}
	if report.FillerWords.Count != 30 {
		t.Errorf("filler count = %d, want 30", report.FillerWords.Count)
	}
	if len(report.FillerWords.Instances) != 20 {
		t.Errorf("filler instances = %d, want cap of 20", len(report.FillerWords.Instances))
	}
	for i := 1; i < len(report.FillerWords.Instances); i++ {
		if report.FillerWords.Instances[i].Position <= report.FillerWords.Instances[i-1].Position {
			t.Fatal("filler instances out of positional order")
		}
	}
}

func TestAnalyzeConfidenceWithWeakStarters(t *testing.T) {
	engine := analysis.NewDefaultEngine()
	// Two of four sentences open weakly: confidence = 100 - 2/4*100 = 50.
	report := engine.Analyze(finalChunks("So it begins. It continues. Well it wobbles. It ends."), 1)
	if report == nil {
		t.Fatal("expected a report")
	}
	if report.SentenceStarters.Total != 4 {
		t.Fatalf("sentence total = %d, want 4", report.SentenceStarters.Total)
	}
	if report.Scores.Confidence != 50 {
		t.Errorf("confidence = %d, want 50", report.Scores.Confidence)
	}
}
