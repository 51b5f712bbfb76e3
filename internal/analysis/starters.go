package analysis

import (
	"sort"
	"strings"
)

func (e *Engine) analyzeStarters(sentences []string) SentenceStarters {
	counts := make(map[string]int)
	for _, sentence := range sentences {
		fields := strings.Fields(sentence)
		if len(fields) == 0 {
			continue
		}
		first := strings.ToLower(fields[0])
		if _, ok := e.starters[first]; ok {
			counts[first]++
		}
	}

	weak := make([]WeakStarter, 0, len(counts))
	for word, count := range counts {
		weak = append(weak, WeakStarter{Word: word, Count: count})
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Count != weak[j].Count {
			return weak[i].Count > weak[j].Count
		}
		return weak[i].Word < weak[j].Word
	})

	return SentenceStarters{
		Total: len(sentences),
		Weak:  weak,
	}
}
