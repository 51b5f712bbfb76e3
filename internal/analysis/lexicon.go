package analysis

// Threshold defaults applied by NewEngine when the lexicon leaves them unset.
const (
	defaultMinRepeatWordLength  = 3
	defaultMinWordRepetitions   = 3
	defaultMinPhraseRepetitions = 2
	defaultMinDurationMinutes   = 0.1
)

// Lexicon holds the word lists and thresholds the detectors run against. It is
// immutable for the lifetime of an engine; tests and configuration inject
// custom lists through it.
type Lexicon struct {
	// FillerWords are matched by exact token comparison. Entries containing
	// spaces never match a single whitespace-delimited token and therefore
	// never fire.
	FillerWords []string
	// WeakStarters are matched against the lowercased first token of each
	// sentence.
	WeakStarters []string
	// WeakWords are matched by substring containment in the lowercased
	// sentence, so an entry embedded inside a longer word also matches.
	WeakWords []string
	// StopWords are excluded from repetition frequency counting.
	StopWords []string

	// MinRepeatWordLength is the minimum token length considered for word
	// repetition counting.
	MinRepeatWordLength int
	// MinWordRepetitions is the minimum frequency for a word to be reported.
	MinWordRepetitions int
	// MinPhraseRepetitions is the minimum frequency for a two-word phrase to
	// be reported.
	MinPhraseRepetitions int
	// MinDurationMinutes is the pacing floor: durations at or below zero are
	// coerced to it so rates stay finite and non-negative.
	MinDurationMinutes float64
}

// DefaultLexicon returns the built-in English word lists and thresholds.
func DefaultLexicon() Lexicon {
	return Lexicon{
		FillerWords: []string{
			"um", "uh", "er", "ah", "hmm",
			"like", "okay", "right", "so",
			"actually", "basically", "literally", "totally",
			"you know", "sort of", "kind of", "i mean",
		},
		WeakStarters: []string{
			"so", "well", "um", "uh", "like",
			"okay", "basically", "actually", "anyway", "maybe",
		},
		WeakWords: []string{
			"just", "really", "very", "quite",
			"maybe", "perhaps", "probably", "somewhat",
			"stuff", "things", "basically", "literally",
		},
		StopWords: []string{
			"the", "a", "an", "and", "or", "but", "if",
			"of", "at", "by", "for", "with", "about", "to", "from",
			"in", "on", "is", "are", "was", "were", "be", "been", "being",
			"have", "has", "had", "do", "does", "did",
			"will", "would", "should", "could", "can",
			"i", "you", "he", "she", "it", "we", "they",
			"this", "that", "these", "those",
			"my", "your", "his", "her", "its", "our", "their",
			"not", "no", "yes", "than", "then", "too",
		},
		MinRepeatWordLength:  defaultMinRepeatWordLength,
		MinWordRepetitions:   defaultMinWordRepetitions,
		MinPhraseRepetitions: defaultMinPhraseRepetitions,
		MinDurationMinutes:   defaultMinDurationMinutes,
	}
}
