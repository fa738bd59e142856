package main

import (
	"fmt"

	"github.com/beltools/radseek"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Clear {
		if err := deps.History.DeleteQueryRecords(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", radseek.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "History cleared.")
		return nil
	}

	records, err := deps.History.FindQueryRecords(deps.Ctx, radseek.QueryRecordFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radseek.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No queries recorded yet.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %-30q  %d results  %s\n",
			r.ExecutedAt.Format("2006-01-02 15:04:05"), r.Query, r.NumResults, r.Duration)
	}

	return nil
}
