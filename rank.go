package radseek

import "sort"

// Rank orders matches by score descending, breaking ties by path in
// ascending byte order, and truncates to topN. The ordering is total, so
// output is reproducible across runs and platforms. Rank sees the complete
// candidate set; it is not a streaming operation.
//
// The input slice is not modified. A topN of zero or less means no
// truncation.
func Rank(matches []Match, topN int) []Match {
	ranked := make([]Match, len(matches))
	copy(ranked, matches)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Path < ranked[j].Path
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
