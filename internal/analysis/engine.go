package analysis

import (
	"podium/internal/transcript"
)

// Engine runs the detectors and scoring stage against a fixed lexicon. It
// holds no per-call state and is safe for concurrent use.
type Engine struct {
	lexicon  Lexicon
	fillers  map[string]struct{}
	starters map[string]struct{}
	stop     map[string]struct{}
}

// NewEngine builds an engine for the given lexicon. Unset thresholds fall back
// to the repository defaults.
func NewEngine(lexicon Lexicon) *Engine {
	if lexicon.MinRepeatWordLength <= 0 {
		lexicon.MinRepeatWordLength = defaultMinRepeatWordLength
	}
	if lexicon.MinWordRepetitions <= 0 {
		lexicon.MinWordRepetitions = defaultMinWordRepetitions
	}
	if lexicon.MinPhraseRepetitions <= 0 {
		lexicon.MinPhraseRepetitions = defaultMinPhraseRepetitions
	}
	if lexicon.MinDurationMinutes <= 0 {
		lexicon.MinDurationMinutes = defaultMinDurationMinutes
	}
	return &Engine{
		lexicon:  lexicon,
		fillers:  wordSet(lexicon.FillerWords),
		starters: wordSet(lexicon.WeakStarters),
		stop:     wordSet(lexicon.StopWords),
	}
}

// NewDefaultEngine builds an engine with the built-in lexicon.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultLexicon())
}

// Analyze computes a full report for the finalized chunks spoken over
// durationMinutes. A duration at or below zero is coerced to the configured
// floor. Analyze returns nil when no chunk is final or the finalized text
// normalizes to zero tokens; that is the "insufficient data" outcome, not an
// error.
func (e *Engine) Analyze(chunks []transcript.Chunk, durationMinutes float64) *Report {
	text := joinFinal(chunks)
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	minutes := durationMinutes
	if minutes < e.lexicon.MinDurationMinutes {
		minutes = e.lexicon.MinDurationMinutes
	}

	sentences := splitSentences(text)
	fillerWords := e.detectFillers(tokens, minutes)
	starters := e.analyzeStarters(sentences)

	report := &Report{
		FillerWords:      fillerWords,
		Pacing:           pacing(len(tokens), minutes),
		Repetitions:      e.detectRepetitions(tokens),
		SentenceStarters: starters,
		WeakWords:        e.detectWeakWords(sentences),
	}
	report.Scores = e.score(report, len(tokens))
	return report
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
