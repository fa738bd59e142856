package radseek

import (
	"context"
	"strings"
	"time"
)

// Default configuration values. The extensions and limits follow the radar
// log collection conventions: plain text, logs, and generic data files.
const (
	DefaultRoot          = "radar_data"
	DefaultMaxDepth      = 10
	DefaultTopN          = 8
	DefaultSnippetWindow = 80
	DefaultMaxFileSize   = 10 * 1024 * 1024 // 10MB per file
	DefaultMaxFiles      = 10000
)

// DefaultExtensions are the file extensions searched when none are
// configured.
func DefaultExtensions() []string {
	return []string{".txt", ".log", ".dat", ".csv"}
}

// Config holds all settings for a query session. It is passed explicitly
// at construction; there is no process-wide mutable configuration.
type Config struct {
	// Root is the corpus root directory. It must exist and be a directory;
	// the corpus is read-only for this system.
	Root string `json:"root"`

	// MaxDepth bounds directory nesting below Root. Entries deeper than
	// MaxDepth are pruned without being visited.
	MaxDepth int `json:"maxDepth"`

	// Extensions lists the file extensions considered part of the corpus
	// (with or without a leading dot, case-insensitive).
	Extensions []string `json:"extensions"`

	// TopN is the maximum number of results returned per query.
	TopN int `json:"topN"`

	// SnippetWindow is the preview size in bytes around a match.
	SnippetWindow int `json:"snippetWindow"`

	// MaxFileSize excludes files larger than this many bytes.
	MaxFileSize int64 `json:"maxFileSize"`

	// MaxFiles caps how many candidates a single query will decode.
	MaxFiles int `json:"maxFiles"`

	// Concurrency bounds the decode and score fan-out within one query.
	// Values below 1 mean sequential processing. Results are identical at
	// any concurrency.
	Concurrency int `json:"concurrency"`

	// ReadsPerSecond throttles file reads. Zero means unlimited.
	ReadsPerSecond float64 `json:"readsPerSecond"`

	// KeepDuplicates disables the duplicate-content skip, returning every
	// path even when file bodies are byte-identical.
	KeepDuplicates bool `json:"keepDuplicates"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		Root:          DefaultRoot,
		MaxDepth:      DefaultMaxDepth,
		Extensions:    DefaultExtensions(),
		TopN:          DefaultTopN,
		SnippetWindow: DefaultSnippetWindow,
		MaxFileSize:   DefaultMaxFileSize,
		MaxFiles:      DefaultMaxFiles,
		Concurrency:   1,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if c.Root == "" {
		return Errorf(EINVALID, "corpus root required")
	}
	if c.MaxDepth < 0 {
		return Errorf(EINVALID, "max depth must not be negative")
	}
	if len(c.Extensions) == 0 {
		return Errorf(EINVALID, "at least one file extension required")
	}
	if c.TopN <= 0 {
		return Errorf(EINVALID, "top-N must be positive")
	}
	if c.SnippetWindow <= 0 {
		return Errorf(EINVALID, "snippet window must be positive")
	}
	return nil
}

// Query is a tokenized user request. It is immutable after construction.
type Query struct {
	// Raw is the query string as entered.
	Raw string `json:"raw"`

	// Terms are the normalized query tokens, in input order.
	Terms []string `json:"terms"`
}

// NewQuery tokenizes a raw query string. The same normalization is applied
// to queries and corpus text; matching is not correct otherwise.
func NewQuery(raw string) Query {
	tokens := Tokenize(raw)
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		terms = append(terms, tok.Text)
	}
	return Query{Raw: strings.TrimSpace(raw), Terms: terms}
}

// Empty reports whether the query contains no searchable terms.
func (q Query) Empty() bool {
	return len(q.Terms) == 0
}

// Match is a scored file. Matches exist only for files containing at least
// one query term; a zero score is never emitted.
type Match struct {
	Path string `json:"path"`

	// Score is the frequency-weighted count of query terms in the file.
	Score int `json:"score"`

	// Offsets are the byte offsets of every occurrence of the first query
	// term present in the file, ascending. Never empty.
	Offsets []int `json:"offsets"`
}

// Snippet is a bounded preview of the text surrounding a match.
type Snippet struct {
	// Text is the preview, at most the configured window in length.
	Text string `json:"text"`

	// Start is the byte offset in the original text where Text begins.
	Start int `json:"start"`

	// MatchOffset is the byte offset of the highlighted match in the
	// original text.
	MatchOffset int `json:"matchOffset"`
}

// Result is one ranked search hit.
type Result struct {
	Path    string  `json:"path"`
	Score   int     `json:"score"`
	Snippet Snippet `json:"snippet"`
}

// Summary is the full response to one query.
type Summary struct {
	Query    string        `json:"query"`
	Results  []Result      `json:"results"`
	Searched int           `json:"searched"` // files decoded and scored
	Skipped  int           `json:"skipped"`  // undecodable, oversize, or duplicate files
	Duration time.Duration `json:"duration"`
}

// Searcher resolves one query against the corpus. Implementations process
// exactly one query to completion before accepting the next; no state is
// shared between queries.
type Searcher interface {
	// Search runs the full walk-decode-match-rank-extract pipeline.
	// An empty or whitespace-only query returns an empty Summary without
	// walking the corpus.
	Search(ctx context.Context, query string) (*Summary, error)
}
