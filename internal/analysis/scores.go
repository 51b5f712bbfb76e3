package analysis

import "math"

// Score weights: each score starts at 100 and loses a penalty proportional to
// a usage rate before clamping.
const (
	clarityPenaltyWeight    = 10
	concisenessPenalty      = 50
	confidencePenaltyWeight = 100
)

func (e *Engine) score(report *Report, tokenCount int) Scores {
	fillerRate := float64(report.FillerWords.Count) / float64(tokenCount) * 100

	repeated := 0
	for _, word := range report.Repetitions.RepeatedWords {
		repeated += word.Count
	}

	confidence := 100
	if report.SentenceStarters.Total > 0 {
		weakTotal := 0
		for _, starter := range report.SentenceStarters.Weak {
			weakTotal += starter.Count
		}
		confidence = clampScore(100 - float64(weakTotal)/float64(report.SentenceStarters.Total)*confidencePenaltyWeight)
	}

	return Scores{
		Clarity:     clampScore(100 - fillerRate*clarityPenaltyWeight),
		Conciseness: clampScore(100 - float64(repeated)/float64(tokenCount)*concisenessPenalty),
		Confidence:  confidence,
	}
}

func clampScore(value float64) int {
	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
