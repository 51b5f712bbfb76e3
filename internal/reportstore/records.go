package reportstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const recordColumns = "id, uuid, title, source_path, fingerprint, duration_minutes, words_per_minute, filler_count, clarity, conciseness, confidence, report_json, created_at"

// Save inserts a new record and returns the stored row.
func (s *Store) Save(ctx context.Context, record Record) (*Record, error) {
	if record.ReportJSON == "" {
		return nil, errors.New("record has no report payload")
	}
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)
	id := record.UUID
	if id == "" {
		id = uuid.NewString()
	}

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO reports (
            uuid, title, source_path, fingerprint, duration_minutes,
            words_per_minute, filler_count, clarity, conciseness, confidence,
            report_json, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		record.Title,
		nullableString(record.SourcePath),
		nullableString(record.Fingerprint),
		record.DurationMinutes,
		record.WordsPerMinute,
		record.FillerCount,
		record.Clarity,
		record.Conciseness,
		record.Confidence,
		record.ReportJSON,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}

	rowID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(ctx, rowID)
}

// GetByID fetches a record by row identifier.
func (s *Store) GetByID(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM reports WHERE id = ?`, id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return record, nil
}

// GetByUUID fetches a record by its stable identifier.
func (s *Store) GetByUUID(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM reports WHERE uuid = ?`, id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get report by uuid: %w", err)
	}
	return record, nil
}

// FindByFingerprint returns the most recent record matching a content fingerprint.
func (s *Store) FindByFingerprint(ctx context.Context, fingerprint string) (*Record, error) {
	if fingerprint == "" {
		return nil, nil
	}
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+recordColumns+` FROM reports WHERE fingerprint = ? ORDER BY id DESC LIMIT 1`,
		fingerprint,
	)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by fingerprint: %w", err)
	}
	return record, nil
}

// List returns records ordered newest first. A limit of zero or less returns all rows.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM reports ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Delete removes a record by its stable identifier.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM reports WHERE uuid = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete report: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Clear removes every record and returns the number deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM reports`)
	if err != nil {
		return 0, fmt.Errorf("clear reports: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

// Health aggregates store contents for diagnostic output.
func (s *Store) Health(ctx context.Context) (HealthSummary, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COALESCE(AVG(clarity), 0), COALESCE(AVG(conciseness), 0), COALESCE(AVG(confidence), 0) FROM reports`,
	)
	var health HealthSummary
	if err := row.Scan(&health.Total, &health.AverageClarity, &health.AverageConciseness, &health.AverageConfidence); err != nil {
		return HealthSummary{}, fmt.Errorf("report stats: %w", err)
	}
	return health, nil
}

func scanRecord(scanner interface{ Scan(dest ...any) error }) (*Record, error) {
	var (
		id          int64
		rowUUID     string
		title       string
		sourcePath  sql.NullString
		fingerprint sql.NullString
		duration    float64
		wpm         int
		fillers     int
		clarity     int
		conciseness int
		confidence  int
		reportJSON  string
		createdRaw  sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&rowUUID,
		&title,
		&sourcePath,
		&fingerprint,
		&duration,
		&wpm,
		&fillers,
		&clarity,
		&conciseness,
		&confidence,
		&reportJSON,
		&createdRaw,
	); err != nil {
		return nil, err
	}

	record := &Record{
		ID:              id,
		UUID:            rowUUID,
		Title:           title,
		SourcePath:      sourcePath.String,
		Fingerprint:     fingerprint.String,
		DurationMinutes: duration,
		WordsPerMinute:  wpm,
		FillerCount:     fillers,
		Clarity:         clarity,
		Conciseness:     conciseness,
		Confidence:      confidence,
		ReportJSON:      reportJSON,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		record.CreatedAt = created
	}
	return record, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
