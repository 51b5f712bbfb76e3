package analysis

// maxFillerInstances caps the instances exposed to callers. The count keeps
// covering the entire text.
const maxFillerInstances = 20

func (e *Engine) detectFillers(tokens []string, minutes float64) FillerWords {
	result := FillerWords{Instances: []FillerWordInstance{}}
	for i, token := range tokens {
		if _, ok := e.fillers[token]; !ok {
			continue
		}
		result.Count++
		if len(result.Instances) < maxFillerInstances {
			result.Instances = append(result.Instances, FillerWordInstance{
				Word:     token,
				Position: i,
			})
		}
	}
	result.RatePerMinute = float64(result.Count) / minutes
	return result
}
