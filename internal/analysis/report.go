package analysis

// Report aggregates every detector result plus the derived scores for one
// analyzed transcript. It is a plain value: built once per Analyze call and
// never mutated afterwards.
type Report struct {
	FillerWords      FillerWords        `json:"filler_words"`
	Pacing           PacingMetrics      `json:"pacing"`
	Repetitions      Repetitions        `json:"repetitions"`
	SentenceStarters SentenceStarters   `json:"sentence_starters"`
	WeakWords        []WeakWordInstance `json:"weak_words"`
	Scores           Scores             `json:"scores"`
}

// FillerWords summarizes filler usage. Count covers the entire text while
// Instances is capped, so Count can exceed len(Instances).
type FillerWords struct {
	Count         int                  `json:"count"`
	RatePerMinute float64              `json:"rate_per_minute"`
	Instances     []FillerWordInstance `json:"instances"`
}

// FillerWordInstance records one filler occurrence. Position is the 0-based
// index into the tokenized word sequence.
type FillerWordInstance struct {
	Word     string `json:"word"`
	Position int    `json:"position"`
}

// PacingMetrics reports speaking speed. The pause fields are reserved for a
// timestamped-chunk extension; plain text chunks carry no timing data, so both
// stay absent.
type PacingMetrics struct {
	WordsPerMinute       int      `json:"words_per_minute"`
	AveragePauseDuration *float64 `json:"average_pause_duration,omitempty"`
	LongestPause         *float64 `json:"longest_pause,omitempty"`
}

// RepeatedWord is a non-stop-word token repeated at or above the word
// repetition threshold.
type RepeatedWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// RepeatedPhrase is an adjacent token pair, joined by a single space, repeated
// at or above the phrase repetition threshold.
type RepeatedPhrase struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// Repetitions carries the top repeated words and phrases, each sorted by
// descending count.
type Repetitions struct {
	RepeatedWords   []RepeatedWord   `json:"repeated_words"`
	RepeatedPhrases []RepeatedPhrase `json:"repeated_phrases"`
}

// WeakStarter tallies one weak sentence-opening word.
type WeakStarter struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SentenceStarters reports sentence-opening quality. Total is the sentence
// count, not the weak-starter count.
type SentenceStarters struct {
	Total int           `json:"total"`
	Weak  []WeakStarter `json:"weak"`
}

// WeakWordInstance records one weak-vocabulary match inside a sentence.
// Suggestion is reserved for a rewrite feature and stays absent.
type WeakWordInstance struct {
	Word       string  `json:"word"`
	Sentence   string  `json:"sentence"`
	Suggestion *string `json:"suggestion,omitempty"`
}

// Scores are the three derived delivery scores, each clamped to [0, 100].
type Scores struct {
	Clarity     int `json:"clarity"`
	Conciseness int `json:"conciseness"`
	Confidence  int `json:"confidence"`
}
