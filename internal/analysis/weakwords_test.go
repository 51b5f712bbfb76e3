package analysis

import (
	"strings"
	"testing"

	"podium/internal/transcript"
)

func TestWeakWordsCapAndListOrder(t *testing.T) {
	engine := NewDefaultEngine()

	// Each sentence matches "just", "really", and "very" in weak-word list
	// order; six sentences produce 18 matches against the cap of 10.
	sentence := "It is just really very big"
	sentences := make([]string, 6)
	for i := range sentences {
		sentences[i] = sentence
	}

	instances := engine.detectWeakWords(sentences)
	if len(instances) != 10 {
		t.Fatalf("instances = %d, want cap of 10", len(instances))
	}

	wantOrder := []string{"just", "really", "very"}
	for i, inst := range instances {
		if want := wantOrder[i%3]; inst.Word != want {
			t.Errorf("instance %d word = %q, want %q (list order within a sentence)", i, inst.Word, want)
		}
		if inst.Sentence != sentence {
			t.Errorf("instance %d sentence = %q, want %q", i, inst.Sentence, sentence)
		}
	}
}

func TestWeakWordsMultiplePerSentence(t *testing.T) {
	engine := NewDefaultEngine()

	instances := engine.detectWeakWords([]string{"Maybe we just keep things"})
	if len(instances) != 3 {
		t.Fatalf("instances = %+v, want just, maybe, and things", instances)
	}
	// Detection order follows the weak-word list, not sentence position.
	for i, want := range []string{"just", "maybe", "things"} {
		if instances[i].Word != want {
			t.Errorf("instance %d = %q, want %q", i, instances[i].Word, want)
		}
	}
}

func TestWeakWordsMatchEmbeddedSubstrings(t *testing.T) {
	engine := NewDefaultEngine()

	report := engine.Analyze([]transcript.Chunk{
		{Text: "The justice system works.", Final: true},
	}, 1)
	if report == nil {
		t.Fatal("expected a report")
	}
	// "just" is contained in "justice"; substring matching reports it.
	if len(report.WeakWords) != 1 || report.WeakWords[0].Word != "just" {
		t.Fatalf("weak words = %+v, want the embedded %q match", report.WeakWords, "just")
	}
	if !strings.Contains(report.WeakWords[0].Sentence, "justice") {
		t.Errorf("sentence = %q, want the original sentence text", report.WeakWords[0].Sentence)
	}
}
