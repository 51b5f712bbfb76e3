package main

import (
	"time"

	"podium/internal/reportstore"
)

// reportListModel is the JSON projection of a stored report row.
type reportListModel struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	SourcePath      string    `json:"source_path,omitempty"`
	DurationMinutes float64   `json:"duration_minutes"`
	WordsPerMinute  int       `json:"words_per_minute"`
	FillerCount     int       `json:"filler_count"`
	Clarity         int       `json:"clarity"`
	Conciseness     int       `json:"conciseness"`
	Confidence      int       `json:"confidence"`
	CreatedAt       time.Time `json:"created_at"`
}

func buildReportListModels(records []*reportstore.Record) []reportListModel {
	models := make([]reportListModel, 0, len(records))
	for _, record := range records {
		models = append(models, reportListModel{
			ID:              record.UUID,
			Title:           record.Title,
			SourcePath:      record.SourcePath,
			DurationMinutes: record.DurationMinutes,
			WordsPerMinute:  record.WordsPerMinute,
			FillerCount:     record.FillerCount,
			Clarity:         record.Clarity,
			Conciseness:     record.Conciseness,
			Confidence:      record.Confidence,
			CreatedAt:       record.CreatedAt,
		})
	}
	return models
}
