package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/beltools/radseek"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ radseek.HistoryService = (*HistoryService)(nil)

// HistoryService implements radseek.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// CreateQueryRecord stores a new history entry.
func (s *HistoryService) CreateQueryRecord(ctx context.Context, record *radseek.QueryRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	if record.ExecutedAt.IsZero() {
		record.ExecutedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO queries (id, query, num_results, duration_ms, executed_at)
		VALUES (?, ?, ?, ?, ?)
	`, record.ID, record.Query, record.NumResults, record.Duration.Milliseconds(),
		record.ExecutedAt.Format(time.RFC3339))

	return err
}

// FindQueryRecords retrieves history entries matching the filter,
// most recent first.
func (s *HistoryService) FindQueryRecords(ctx context.Context, filter radseek.QueryRecordFilter) ([]*radseek.QueryRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, query, num_results, duration_ms, executed_at FROM queries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY executed_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*radseek.QueryRecord
	for rows.Next() {
		var record radseek.QueryRecord
		var durationMS int64
		var executedAt string

		if err := rows.Scan(&record.ID, &record.Query, &record.NumResults, &durationMS, &executedAt); err != nil {
			return nil, err
		}

		record.Duration = time.Duration(durationMS) * time.Millisecond
		record.ExecutedAt, err = time.Parse(time.RFC3339, executedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse executed_at: %w", err)
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

// DeleteQueryRecords removes all history entries.
func (s *HistoryService) DeleteQueryRecords(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM queries")
	return err
}
