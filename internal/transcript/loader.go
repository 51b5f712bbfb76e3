package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnknownFormat indicates the document matched neither supported JSON shape.
var ErrUnknownFormat = errors.New("unrecognized transcript format")

// document mirrors the plain podium transcript JSON shape.
type document struct {
	Title           string  `json:"title"`
	DurationMinutes float64 `json:"duration_minutes"`
	Chunks          []Chunk `json:"chunks"`
}

// Load reads and parses a transcript file. The returned transcript carries the
// source path, a content fingerprint, and a title inferred from the file name
// when the document does not name one.
func Load(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse transcript %s: %w", path, err)
	}

	fingerprint, err := Fingerprint(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fingerprint transcript %s: %w", path, err)
	}

	t.SourcePath = path
	t.Fingerprint = fingerprint
	if strings.TrimSpace(t.Title) == "" {
		t.Title = InferTitle(path)
	}
	return t, nil
}

// Parse decodes transcript JSON, sniffing the document shape by its top-level
// keys: "chunks" selects the plain format, "segments" the WhisperX format.
func Parse(data []byte) (*Transcript, error) {
	var probe struct {
		Chunks   json.RawMessage `json:"chunks"`
		Segments json.RawMessage `json:"segments"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}

	switch {
	case probe.Chunks != nil:
		return parsePlain(data)
	case probe.Segments != nil:
		return parseWhisperX(data)
	default:
		return nil, ErrUnknownFormat
	}
}

func parsePlain(data []byte) (*Transcript, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode transcript document: %w", err)
	}
	return &Transcript{
		Title:           strings.TrimSpace(doc.Title),
		DurationMinutes: doc.DurationMinutes,
		Chunks:          doc.Chunks,
	}, nil
}
