package radseek

import "github.com/beltools/radseek/bloom"

// Bloom prefilter sizing. A false positive only costs an exact recount;
// it never changes results.
const (
	filterMinTokens         = 64
	filterFalsePositiveRate = 0.01
)

// TokenFilter builds a Bloom filter over a document's token set.
func TokenFilter(tokens []Token) *bloom.Filter {
	n := uint(len(tokens))
	if n < filterMinTokens {
		n = filterMinTokens
	}
	f := bloom.NewFilter(n, filterFalsePositiveRate)
	for _, tok := range tokens {
		f.Add(tok.Text)
	}
	return f
}

// PossibleMatch reports whether any query term might appear in the filter.
// A false return is definitive: no term is present.
func PossibleMatch(terms []string, f *bloom.Filter) bool {
	for _, term := range terms {
		if f.Test(term) {
			return true
		}
	}
	return false
}

// Score computes the relevance of a document's token sequence against
// query terms. The score is frequency-weighted: each occurrence of each
// query term in the document counts once. Matching is exact token
// equality after normalization; there is no partial or substring credit.
//
// Offsets are the byte offsets of every occurrence of the first query
// term (in query order) that appears in the document, ascending. A zero
// score returns nil offsets; callers must not emit a Match for it.
//
// Score is deterministic: identical inputs always produce identical
// output.
func Score(terms []string, tokens []Token) (int, []int) {
	if len(terms) == 0 || len(tokens) == 0 {
		return 0, nil
	}

	want := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		want[term] = struct{}{}
	}

	score := 0
	occurrences := make(map[string][]int)
	for _, tok := range tokens {
		if _, ok := want[tok.Text]; !ok {
			continue
		}
		score++
		occurrences[tok.Text] = append(occurrences[tok.Text], tok.Offset)
	}
	if score == 0 {
		return 0, nil
	}

	// Snippets center on the first query term present in the document.
	for _, term := range terms {
		if offsets, ok := occurrences[term]; ok {
			return score, offsets
		}
	}
	return 0, nil
}

// MatchDocument scores a document and returns a Match, or nil when no
// query term is present.
func MatchDocument(q Query, doc *Document) *Match {
	tokens := Tokenize(doc.Content)
	if !PossibleMatch(q.Terms, TokenFilter(tokens)) {
		return nil
	}
	score, offsets := Score(q.Terms, tokens)
	if score == 0 {
		return nil
	}
	return &Match{Path: doc.Path, Score: score, Offsets: offsets}
}
