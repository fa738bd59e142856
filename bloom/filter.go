// Package bloom provides a token-presence filter used to cheaply rule out
// files that cannot contain any query term.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter over normalized token strings.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected tokens
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a token to the filter.
func (f *Filter) Add(token string) {
	f.f.AddString(token)
}

// Test returns true if the token might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(token string) bool {
	return f.f.TestString(token)
}

// EstimatedCount returns the approximate number of tokens in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
