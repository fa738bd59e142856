package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/beltools/radseek"
)

// Run executes the repl command: a read-query-print loop over stdin.
// Each query runs to completion before the next line is read; an empty
// line does nothing, and "exit", "quit", or EOF end the session.
func (c *ReplCmd) Run(deps *Dependencies) error {
	searcher, err := deps.NewSearcher(c.config())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radseek.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "radseek ready. Corpus: %s. Type a query, or 'exit' to quit.\n", c.Root)

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		summary, err := searcher.Search(deps.Ctx, line)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", radseek.ErrorMessage(err))
			continue
		}

		fmt.Fprint(deps.Stdout, radseek.FormatSummary(summary))
		recordQuery(deps, summary)
	}

	fmt.Fprintln(deps.Stdout, "bye")
	return scanner.Err()
}
