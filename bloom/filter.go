// Package bloom provides probabilistic link deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for remembering links across documents.
// It is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected links
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a link to the filter.
func (f *Filter) Add(link string) {
	f.f.AddString(link)
}

// Test returns true if the link might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(link string) bool {
	return f.f.TestString(link)
}

// TestAndAdd adds the link and reports whether it might have been
// present before.
func (f *Filter) TestAndAdd(link string) bool {
	return f.f.TestAndAddString(link)
}

// EstimatedCount returns the approximate number of links in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
