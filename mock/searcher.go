package mock

import (
	"context"

	"github.com/beltools/radseek"
)

var _ radseek.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of radseek.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) (*radseek.Summary, error)
}

func (s *Searcher) Search(ctx context.Context, query string) (*radseek.Summary, error) {
	return s.SearchFn(ctx, query)
}
