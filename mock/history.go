package mock

import (
	"context"

	"github.com/beltools/radseek"
)

var _ radseek.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of radseek.HistoryService.
type HistoryService struct {
	CreateQueryRecordFn  func(ctx context.Context, record *radseek.QueryRecord) error
	FindQueryRecordsFn   func(ctx context.Context, filter radseek.QueryRecordFilter) ([]*radseek.QueryRecord, error)
	DeleteQueryRecordsFn func(ctx context.Context) error
}

func (s *HistoryService) CreateQueryRecord(ctx context.Context, record *radseek.QueryRecord) error {
	return s.CreateQueryRecordFn(ctx, record)
}

func (s *HistoryService) FindQueryRecords(ctx context.Context, filter radseek.QueryRecordFilter) ([]*radseek.QueryRecord, error) {
	return s.FindQueryRecordsFn(ctx, filter)
}

func (s *HistoryService) DeleteQueryRecords(ctx context.Context) error {
	return s.DeleteQueryRecordsFn(ctx)
}
