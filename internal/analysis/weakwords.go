package analysis

import "strings"

// maxWeakWordInstances caps the reported instances in detection order:
// sentence order first, weak-word list order within a sentence.
const maxWeakWordInstances = 10

func (e *Engine) detectWeakWords(sentences []string) []WeakWordInstance {
	instances := []WeakWordInstance{}
	for _, sentence := range sentences {
		lowered := strings.ToLower(sentence)
		for _, weak := range e.lexicon.WeakWords {
			if !strings.Contains(lowered, weak) {
				continue
			}
			instances = append(instances, WeakWordInstance{
				Word:     weak,
				Sentence: sentence,
			})
			if len(instances) == maxWeakWordInstances {
				return instances
			}
		}
	}
	return instances
}
