package mock

import (
	"context"

	"github.com/beltools/radseek"
)

var _ radseek.Walker = (*Walker)(nil)

// Walker is a mock implementation of radseek.Walker.
type Walker struct {
	WalkFn func(ctx context.Context) ([]radseek.CandidateFile, error)
}

func (w *Walker) Walk(ctx context.Context) ([]radseek.CandidateFile, error) {
	return w.WalkFn(ctx)
}
