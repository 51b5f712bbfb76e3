package transcript

// Chunk is a single piece of transcript text as emitted by an upstream
// transcription process. Only chunks marked Final are stable; the rest may
// still be revised and are skipped by analysis.
type Chunk struct {
	Text  string `json:"text"`
	Final bool   `json:"final"`
}

// Transcript bundles an ordered chunk sequence with the spoken duration and
// the provenance details the report store records.
type Transcript struct {
	Title           string
	SourcePath      string
	Fingerprint     string
	DurationMinutes float64
	Chunks          []Chunk
}
