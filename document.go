package radseek

import "context"

// CandidateFile identifies a file discovered during a corpus walk.
type CandidateFile struct {
	// Path is the path to the file, rooted at the corpus root.
	Path string `json:"path"`

	// Depth is the number of directories between the corpus root and the
	// file. A file directly under the root has depth 0.
	Depth int `json:"depth"`
}

// Document is the decoded text content of a candidate file. Documents are
// transient: they live for the duration of a single query and are never
// persisted.
type Document struct {
	Path    string `json:"path"`
	Depth   int    `json:"depth"`
	Content string `json:"content"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// ContentHash is the xxhash64 of the raw bytes, used to skip duplicate
	// copies of the same log within a query.
	ContentHash uint64 `json:"contentHash"`
}

// Walker enumerates candidate files under a corpus root.
// Implementations must be deterministic: the same tree yields the same
// sequence in the same order on every call.
type Walker interface {
	// Walk returns all candidate files under the root, bounded by the
	// configured maximum depth and filtered by allowed extensions.
	// Unreadable directories are skipped, not fatal.
	Walk(ctx context.Context) ([]CandidateFile, error)
}

// Decoder reads a candidate file and decodes it as text.
//
// Decode returns an EUNDECODABLE error when the file cannot be used:
// invalid UTF-8, an I/O failure, or an oversize file. The message states
// the reason so callers can log it. Decoders never panic for any byte
// sequence.
type Decoder interface {
	Decode(ctx context.Context, file CandidateFile) (*Document, error)
}
