package radseek

import (
	"context"
	"time"
)

// QueryRecord is one entry in the persisted query history. Only the query
// and its outcome are recorded, never corpus state.
type QueryRecord struct {
	ID         string        `json:"id"`
	Query      string        `json:"query"`
	NumResults int           `json:"numResults"`
	Duration   time.Duration `json:"duration"`
	ExecutedAt time.Time     `json:"executedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *QueryRecord) Validate() error {
	if r.Query == "" {
		return Errorf(EINVALID, "query record query required")
	}
	return nil
}

// QueryRecordFilter represents a filter for FindQueryRecords.
type QueryRecordFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HistoryService persists and retrieves query history.
type HistoryService interface {
	// CreateQueryRecord stores a new history entry.
	CreateQueryRecord(ctx context.Context, record *QueryRecord) error

	// FindQueryRecords retrieves history entries matching the filter,
	// most recent first.
	FindQueryRecords(ctx context.Context, filter QueryRecordFilter) ([]*QueryRecord, error)

	// DeleteQueryRecords removes all history entries.
	DeleteQueryRecords(ctx context.Context) error
}
