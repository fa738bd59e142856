package main

import (
	"fmt"
	"strings"

	"github.com/beltools/radseek"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	searcher, err := deps.NewSearcher(c.config())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radseek.ErrorMessage(err))
		return err
	}

	query := strings.Join(c.Query, " ")
	summary, err := searcher.Search(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radseek.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, radseek.FormatSummary(summary))
	recordQuery(deps, summary)
	return nil
}

// recordQuery appends the executed query to the history service. History
// is best-effort; a storage failure never fails the search.
func recordQuery(deps *Dependencies, summary *radseek.Summary) {
	if deps.History == nil || summary.Query == "" {
		return
	}
	record := &radseek.QueryRecord{
		Query:      summary.Query,
		NumResults: len(summary.Results),
		Duration:   summary.Duration,
	}
	if err := deps.History.CreateQueryRecord(deps.Ctx, record); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to record query history: %s\n", radseek.ErrorMessage(err))
	}
}
