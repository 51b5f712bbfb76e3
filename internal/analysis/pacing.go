package analysis

import "math"

// pacing derives words per minute from the token count. Pause metrics require
// per-chunk timing that plain text chunks do not carry, so both pause fields
// stay nil.
func pacing(tokenCount int, minutes float64) PacingMetrics {
	return PacingMetrics{
		WordsPerMinute: int(math.Floor(float64(tokenCount) / minutes)),
	}
}
