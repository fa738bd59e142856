// Package search implements the per-query retrieval pipeline:
// walk, decode, match, rank, and snippet extraction.
package search

import (
	"context"
	"time"

	"github.com/beltools/radseek"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Ensure Engine implements radseek.Searcher at compile time.
var _ radseek.Searcher = (*Engine)(nil)

// Engine orchestrates one query at a time over a read-only corpus. No
// state survives a query; every search re-walks and re-scans the tree.
//
// Decode and scoring may fan out over Config.Concurrency goroutines, but
// results are always collected completely and ranked deterministically
// before truncation, so output is identical at any concurrency.
type Engine struct {
	config  radseek.Config
	walker  radseek.Walker
	decoder radseek.Decoder
	limiter *rate.Limiter
}

// NewEngine creates an Engine. The configuration is validated up front;
// an invalid configuration is fatal to the session, not a per-query error.
func NewEngine(config radseek.Config, walker radseek.Walker, decoder radseek.Decoder) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{config: config, walker: walker, decoder: decoder}
	if config.ReadsPerSecond > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(config.ReadsPerSecond), 1)
	}
	return e, nil
}

// outcome is the per-candidate result of the decode and match stage.
// Outcomes are indexed by walk position so concurrent processing cannot
// perturb ordering.
type outcome struct {
	doc     *radseek.Document
	match   *radseek.Match
	skipped bool
}

// Search runs the full pipeline for one query.
//
// An empty or whitespace-only query returns an empty summary without
// walking the corpus. Undecodable files are skipped and never abort the
// query; processing one file cannot fail the rest of the corpus.
func (e *Engine) Search(ctx context.Context, query string) (*radseek.Summary, error) {
	begin := time.Now()

	q := radseek.NewQuery(query)
	summary := &radseek.Summary{Query: q.Raw, Results: []radseek.Result{}}
	if q.Empty() {
		summary.Duration = time.Since(begin)
		return summary, nil
	}

	candidates, err := e.walker.Walk(ctx)
	if err != nil {
		return nil, err
	}
	if e.config.MaxFiles > 0 && len(candidates) > e.config.MaxFiles {
		candidates = candidates[:e.config.MaxFiles]
	}

	outcomes, err := e.processCandidates(ctx, q, candidates)
	if err != nil {
		return nil, err
	}

	// Collect in walk order: count scans, skip duplicate content, and
	// accumulate the complete match set before ranking.
	var matches []radseek.Match
	contents := make(map[string]string)
	seen := make(map[uint64]struct{})

	for _, out := range outcomes {
		if out.skipped {
			summary.Skipped++
			continue
		}
		if !e.config.KeepDuplicates {
			if _, dup := seen[out.doc.ContentHash]; dup {
				summary.Skipped++
				continue
			}
			seen[out.doc.ContentHash] = struct{}{}
		}
		summary.Searched++
		if out.match != nil {
			matches = append(matches, *out.match)
			contents[out.doc.Path] = out.doc.Content
		}
	}

	for _, m := range radseek.Rank(matches, e.config.TopN) {
		sn := radseek.ExtractSnippet(contents[m.Path], m.Offsets[0], e.config.SnippetWindow)
		summary.Results = append(summary.Results, radseek.Result{
			Path:    m.Path,
			Score:   m.Score,
			Snippet: sn,
		})
	}

	summary.Duration = time.Since(begin)
	return summary, nil
}

// processCandidates decodes and scores every candidate, bounded by the
// configured concurrency and read throttle.
func (e *Engine) processCandidates(ctx context.Context, q radseek.Query, candidates []radseek.CandidateFile) ([]outcome, error) {
	outcomes := make([]outcome, len(candidates))

	concurrency := e.config.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if e.limiter != nil {
				if err := e.limiter.Wait(gctx); err != nil {
					return err
				}
			}

			doc, err := e.decoder.Decode(gctx, candidate)
			if err != nil {
				if radseek.ErrorCode(err) == radseek.EUNDECODABLE {
					outcomes[i].skipped = true
					return nil
				}
				return err
			}

			outcomes[i].doc = doc
			outcomes[i].match = radseek.MatchDocument(q, doc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
