// Package history records searches and exports in Postgres for audit.
// It is write-mostly: nothing in the search path reads it, so a down
// database degrades auditing, never results.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Service provides search and export auditing backed by Postgres.
type Service struct {
	db *sql.DB
}

// SearchRecord is one audited search.
type SearchRecord struct {
	ID         string
	Term       string
	EntryCount int
	TopScore   float64
	Degraded   bool
	DurationMs int
	CreatedAt  time.Time
}

// ExportRecord is one stored ranking export.
type ExportRecord struct {
	ID         string
	Term       string
	RankingID  string
	DeltaID    *string
	Backend    string
	EntryCount int
	CreatedAt  time.Time
}

// NewService creates a new history Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// RecordSearch inserts a search audit row. ID and CreatedAt on the
// input are ignored; the database assigns both.
func (s *Service) RecordSearch(ctx context.Context, rec SearchRecord) (*SearchRecord, error) {
	out := &SearchRecord{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO searches (term, entry_count, top_score, degraded, duration_ms)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, term, entry_count, top_score, degraded, duration_ms, created_at`,
		rec.Term, rec.EntryCount, rec.TopScore, rec.Degraded, rec.DurationMs,
	).Scan(&out.ID, &out.Term, &out.EntryCount, &out.TopScore, &out.Degraded, &out.DurationMs, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record search: %w", err)
	}
	return out, nil
}

// GetSearch retrieves a search audit row by ID.
func (s *Service) GetSearch(ctx context.Context, id string) (*SearchRecord, error) {
	out := &SearchRecord{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, term, entry_count, top_score, degraded, duration_ms, created_at
		 FROM searches WHERE id = $1`,
		id,
	).Scan(&out.ID, &out.Term, &out.EntryCount, &out.TopScore, &out.Degraded, &out.DurationMs, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get search %s: %w", id, err)
	}
	return out, nil
}

// ListSearches returns recent searches, newest first. A term narrows
// the listing; limit <= 0 falls back to 50.
func (s *Service) ListSearches(ctx context.Context, term string, limit int) ([]SearchRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, term, entry_count, top_score, degraded, duration_ms, created_at
	          FROM searches ORDER BY created_at DESC LIMIT $1`
	args := []interface{}{limit}
	if term != "" {
		query = `SELECT id, term, entry_count, top_score, degraded, duration_ms, created_at
		         FROM searches WHERE term = $1 ORDER BY created_at DESC LIMIT $2`
		args = []interface{}{term, limit}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list searches: %w", err)
	}
	defer rows.Close()

	var records []SearchRecord
	for rows.Next() {
		var rec SearchRecord
		if err := rows.Scan(&rec.ID, &rec.Term, &rec.EntryCount, &rec.TopScore, &rec.Degraded, &rec.DurationMs, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan search: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// RecordExport inserts an export audit row. ID and CreatedAt on the
// input are ignored; the database assigns both.
func (s *Service) RecordExport(ctx context.Context, rec ExportRecord) (*ExportRecord, error) {
	out := &ExportRecord{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO exports (term, ranking_id, delta_id, backend, entry_count)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, term, ranking_id, delta_id, backend, entry_count, created_at`,
		rec.Term, rec.RankingID, rec.DeltaID, rec.Backend, rec.EntryCount,
	).Scan(&out.ID, &out.Term, &out.RankingID, &out.DeltaID, &out.Backend, &out.EntryCount, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record export: %w", err)
	}
	return out, nil
}

// GetExport retrieves an export audit row by ID.
func (s *Service) GetExport(ctx context.Context, id string) (*ExportRecord, error) {
	out := &ExportRecord{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, term, ranking_id, delta_id, backend, entry_count, created_at
		 FROM exports WHERE id = $1`,
		id,
	).Scan(&out.ID, &out.Term, &out.RankingID, &out.DeltaID, &out.Backend, &out.EntryCount, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get export %s: %w", id, err)
	}
	return out, nil
}

// ListExports returns recent exports, newest first. limit <= 0 falls
// back to 50.
func (s *Service) ListExports(ctx context.Context, limit int) ([]ExportRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, term, ranking_id, delta_id, backend, entry_count, created_at
		 FROM exports ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	var records []ExportRecord
	for rows.Next() {
		var rec ExportRecord
		if err := rows.Scan(&rec.ID, &rec.Term, &rec.RankingID, &rec.DeltaID, &rec.Backend, &rec.EntryCount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
