package reportstore

import (
	"encoding/json"
	"fmt"
	"time"

	"podium/internal/analysis"
	"podium/internal/transcript"
)

// Record is a persisted analysis report with its provenance.
type Record struct {
	ID              int64
	UUID            string
	Title           string
	SourcePath      string
	Fingerprint     string
	DurationMinutes float64
	WordsPerMinute  int
	FillerCount     int
	Clarity         int
	Conciseness     int
	Confidence      int
	ReportJSON      string
	CreatedAt       time.Time
}

// Report decodes the stored report payload.
func (r *Record) Report() (*analysis.Report, error) {
	if r == nil || r.ReportJSON == "" {
		return nil, fmt.Errorf("record has no report payload")
	}
	var report analysis.Report
	if err := json.Unmarshal([]byte(r.ReportJSON), &report); err != nil {
		return nil, fmt.Errorf("decode report payload: %w", err)
	}
	return &report, nil
}

// NewRecord builds an unsaved record from a transcript and its report.
func NewRecord(t *transcript.Transcript, report *analysis.Report) (Record, error) {
	if t == nil {
		return Record{}, fmt.Errorf("transcript is nil")
	}
	if report == nil {
		return Record{}, fmt.Errorf("report is nil")
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return Record{}, fmt.Errorf("marshal report: %w", err)
	}
	return Record{
		Title:           t.Title,
		SourcePath:      t.SourcePath,
		Fingerprint:     t.Fingerprint,
		DurationMinutes: t.DurationMinutes,
		WordsPerMinute:  report.Pacing.WordsPerMinute,
		FillerCount:     report.FillerWords.Count,
		Clarity:         report.Scores.Clarity,
		Conciseness:     report.Scores.Conciseness,
		Confidence:      report.Scores.Confidence,
		ReportJSON:      string(payload),
	}, nil
}

// HealthSummary aggregates store contents for diagnostic output.
type HealthSummary struct {
	Total              int
	AverageClarity     float64
	AverageConciseness float64
	AverageConfidence  float64
}
