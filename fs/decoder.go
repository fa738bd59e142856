package fs

import (
	"bytes"
	"context"
	"os"
	"unicode/utf8"

	"github.com/beltools/radseek"
	"github.com/cespare/xxhash/v2"
)

// Ensure Decoder implements radseek.Decoder at compile time.
var _ radseek.Decoder = (*Decoder)(nil)

// Decoder reads candidate files and decodes them as strict UTF-8 text.
type Decoder struct {
	maxFileSize int64
}

// NewDecoder creates a Decoder. Files larger than maxFileSize bytes are
// classified undecodable without being read; zero means no limit.
func NewDecoder(maxFileSize int64) *Decoder {
	return &Decoder{maxFileSize: maxFileSize}
}

// Decode reads the file fully and validates it as UTF-8 text.
//
// All failure modes return an EUNDECODABLE error whose message states the
// reason (oversize, read failure, binary content) so callers can log it.
// A zero-byte file decodes to empty content. Decode never panics for any
// byte sequence.
func (d *Decoder) Decode(ctx context.Context, file radseek.CandidateFile) (*radseek.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(file.Path)
	if err != nil {
		return nil, radseek.Errorf(radseek.EUNDECODABLE, "%s: cannot read: %s", file.Path, err)
	}
	if d.maxFileSize > 0 && info.Size() > d.maxFileSize {
		return nil, radseek.Errorf(radseek.EUNDECODABLE, "%s: file too large (%d bytes)", file.Path, info.Size())
	}

	b, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, radseek.Errorf(radseek.EUNDECODABLE, "%s: read failed: %s", file.Path, err)
	}

	// NUL bytes are valid UTF-8 but never appear in radar log text.
	if !utf8.Valid(b) || bytes.IndexByte(b, 0) >= 0 {
		return nil, radseek.Errorf(radseek.EUNDECODABLE, "%s: binary or invalid encoding", file.Path)
	}

	return &radseek.Document{
		Path:        file.Path,
		Depth:       file.Depth,
		Content:     string(b),
		Size:        int64(len(b)),
		ContentHash: xxhash.Sum64(b),
	}, nil
}
