package slog

import (
	"context"
	"log/slog"

	"github.com/beltools/radseek"
)

// Ensure LoggingDecoder implements radseek.Decoder.
var _ radseek.Decoder = (*LoggingDecoder)(nil)

// LoggingDecoder wraps a Decoder and reports skipped files. Undecodable
// files are a normal part of a scan, so they log at debug level; the
// error still propagates for the engine to handle.
type LoggingDecoder struct {
	next   radseek.Decoder
	logger *slog.Logger
}

// NewLoggingDecoder creates a new LoggingDecoder.
func NewLoggingDecoder(next radseek.Decoder, logger *slog.Logger) *LoggingDecoder {
	return &LoggingDecoder{next: next, logger: logger}
}

// Decode delegates to the wrapped decoder, logging any undecodable file.
func (d *LoggingDecoder) Decode(ctx context.Context, file radseek.CandidateFile) (*radseek.Document, error) {
	doc, err := d.next.Decode(ctx, file)
	if err != nil {
		if radseek.ErrorCode(err) == radseek.EUNDECODABLE {
			d.logger.Debug("file skipped",
				"path", file.Path,
				"reason", radseek.ErrorMessage(err),
			)
		}
		return nil, err
	}
	return doc, nil
}
