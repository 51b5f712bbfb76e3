package analysis

import "sort"

const (
	maxRepeatedWords   = 10
	maxRepeatedPhrases = 5
)

func (e *Engine) detectRepetitions(tokens []string) Repetitions {
	return Repetitions{
		RepeatedWords:   e.repeatedWords(tokens),
		RepeatedPhrases: e.repeatedPhrases(tokens),
	}
}

func (e *Engine) repeatedWords(tokens []string) []RepeatedWord {
	counts := make(map[string]int)
	for _, token := range tokens {
		if len(token) < e.lexicon.MinRepeatWordLength {
			continue
		}
		if _, ok := e.stop[token]; ok {
			continue
		}
		counts[token]++
	}

	words := make([]RepeatedWord, 0, len(counts))
	for word, count := range counts {
		if count < e.lexicon.MinWordRepetitions {
			continue
		}
		words = append(words, RepeatedWord{Word: word, Count: count})
	}
	// Ties break lexicographically so identical input yields identical output.
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > maxRepeatedWords {
		words = words[:maxRepeatedWords]
	}
	return words
}

func (e *Engine) repeatedPhrases(tokens []string) []RepeatedPhrase {
	counts := make(map[string]int)
	for i := 0; i+1 < len(tokens); i++ {
		_, firstStop := e.stop[tokens[i]]
		_, secondStop := e.stop[tokens[i+1]]
		if firstStop && secondStop {
			continue
		}
		counts[tokens[i]+" "+tokens[i+1]]++
	}

	phrases := make([]RepeatedPhrase, 0, len(counts))
	for phrase, count := range counts {
		if count < e.lexicon.MinPhraseRepetitions {
			continue
		}
		phrases = append(phrases, RepeatedPhrase{Phrase: phrase, Count: count})
	}
	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Count != phrases[j].Count {
			return phrases[i].Count > phrases[j].Count
		}
		return phrases[i].Phrase < phrases[j].Phrase
	})
	if len(phrases) > maxRepeatedPhrases {
		phrases = phrases[:maxRepeatedPhrases]
	}
	return phrases
}
