package mock

import (
	"context"

	"github.com/beltools/radseek"
)

var _ radseek.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of radseek.Decoder.
type Decoder struct {
	DecodeFn func(ctx context.Context, file radseek.CandidateFile) (*radseek.Document, error)
}

func (d *Decoder) Decode(ctx context.Context, file radseek.CandidateFile) (*radseek.Document, error) {
	return d.DecodeFn(ctx, file)
}
