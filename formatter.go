package radseek

import (
	"fmt"
	"strings"
)

// FormatSummary formats a query summary for terminal display: a header
// with the query and scan counts, then one block per result with path,
// score, and snippet.
func FormatSummary(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Query: %q\n", s.Query)
	fmt.Fprintf(&b, "Files searched: %d", s.Searched)
	if s.Skipped > 0 {
		fmt.Fprintf(&b, " (skipped %d)", s.Skipped)
	}
	fmt.Fprintf(&b, "\nMatches: %d\n", len(s.Results))

	if len(s.Results) == 0 {
		b.WriteString("\nNo files matched. Try different or fewer keywords.\n")
		return b.String()
	}

	for i, r := range s.Results {
		fmt.Fprintf(&b, "\n[%d] %s  (score %d)\n", i+1, r.Path, r.Score)
		fmt.Fprintf(&b, "    %s\n", formatPreview(r.Snippet))
	}

	return b.String()
}

// formatPreview collapses whitespace in the snippet and marks clipped
// edges with ellipses, matching how the snippet relates to the full text.
func formatPreview(sn Snippet) string {
	preview := strings.Join(strings.Fields(sn.Text), " ")
	if sn.Start > 0 {
		preview = "..." + preview
	}
	return preview
}
