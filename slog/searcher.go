// Package slog provides logging decorators for radseek collaborators.
// The retrieval engine itself stays logger-free; observability is added
// by wrapping.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/beltools/radseek"
)

// Ensure LoggingSearcher implements radseek.Searcher.
var _ radseek.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with per-query logging.
type LoggingSearcher struct {
	next   radseek.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next radseek.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (*radseek.Summary, error) {
	begin := time.Now()

	summary, err := s.next.Search(ctx, query)
	if err != nil {
		s.logger.Error("search failed",
			"query", query,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	s.logger.Info("search",
		"query", summary.Query,
		"results", len(summary.Results),
		"searched", summary.Searched,
		"skipped", summary.Skipped,
		"duration", summary.Duration,
	)
	return summary, nil
}
