package analysis

import (
	"reflect"
	"testing"

	"podium/internal/transcript"
)

func TestJoinFinal(t *testing.T) {
	tests := []struct {
		name   string
		chunks []transcript.Chunk
		want   string
	}{
		{"empty", nil, ""},
		{
			"all final",
			[]transcript.Chunk{{Text: "hello", Final: true}, {Text: "world", Final: true}},
			"hello world",
		},
		{
			"mixed",
			[]transcript.Chunk{
				{Text: "keep", Final: true},
				{Text: "drop", Final: false},
				{Text: "keep too", Final: true},
			},
			"keep keep too",
		},
		{
			"none final",
			[]transcript.Chunk{{Text: "drop", Final: false}},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinFinal(tt.chunks); got != tt.want {
				t.Errorf("joinFinal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \t \n", nil},
		{"lowercases", "Hello WORLD", []string{"hello", "world"}},
		{"collapses runs", "a   b\t\tc", []string{"a", "b", "c"}},
		{"keeps punctuation attached", "done. next", []string{"done.", "next"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"no period", "one long thought", []string{"one long thought"}},
		{"simple", "First. Second.", []string{"First", "Second"}},
		{"preserves case", "It Works. REALLY.", []string{"It Works", "REALLY"}},
		{"drops empty pieces", "One.. Two. .", []string{"One", "Two"}},
		{"trims whitespace", "  padded  .  also padded .", []string{"padded", "also padded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitSentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
