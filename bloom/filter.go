// Package bloom provides a probabilistic prefilter for gazetteer lookups.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// WordFilter answers whether a word might start a known place name. Words
// are compared case-insensitively.
type WordFilter struct {
	f *bloom.BloomFilter
}

// NewWordFilter creates a filter sized for n expected words with the given
// false positive rate.
func NewWordFilter(n uint, fpRate float64) *WordFilter {
	if n == 0 {
		n = 1
	}
	return &WordFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a word.
func (f *WordFilter) Add(word string) {
	f.f.AddString(strings.ToLower(word))
}

// MayContain returns true if the word might have been added.
// False positives are possible; false negatives are not.
func (f *WordFilter) MayContain(word string) bool {
	return f.f.TestString(strings.ToLower(word))
}

// EstimatedCount returns the approximate number of distinct words added.
func (f *WordFilter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
