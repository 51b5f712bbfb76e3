package transcript

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type whisperxDocument struct {
	Segments []whisperxSegment `json:"segments"`
}

type whisperxSegment struct {
	Text  string          `json:"text"`
	Start decimal.Decimal `json:"start"`
	End   decimal.Decimal `json:"end"`
}

var secondsPerMinute = decimal.NewFromInt(60)

// parseWhisperX converts WhisperX transcription output into a transcript.
// Every segment is already final; the duration derives from the largest
// segment end time.
func parseWhisperX(data []byte) (*Transcript, error) {
	var doc whisperxDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode whisperx document: %w", err)
	}

	chunks := make([]Chunk, 0, len(doc.Segments))
	end := decimal.Zero
	for _, segment := range doc.Segments {
		chunks = append(chunks, Chunk{
			Text:  strings.TrimSpace(segment.Text),
			Final: true,
		})
		if segment.End.GreaterThan(end) {
			end = segment.End
		}
	}

	return &Transcript{
		DurationMinutes: end.Div(secondsPerMinute).InexactFloat64(),
		Chunks:          chunks,
	}, nil
}
