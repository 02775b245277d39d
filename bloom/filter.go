// Package bloom provides slug deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter records which dictionary pages a lookup has already visited.
// The Bloom filter answers "never seen" without touching the exact set;
// its positives are confirmed against the set, so a collision never
// hides an unvisited slug.
type Filter struct {
	f    *bloom.BloomFilter
	seen map[string]struct{}
}

// NewFilter creates a new Bloom filter sized for n expected slugs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f:    bloom.NewWithEstimates(n, fpRate),
		seen: make(map[string]struct{}, n),
	}
}

// Visit marks a slug as visited and reports whether it was new.
func (f *Filter) Visit(slug string) bool {
	if !f.f.TestOrAddString(slug) {
		f.seen[slug] = struct{}{}
		return true
	}
	if _, ok := f.seen[slug]; ok {
		return false
	}
	f.seen[slug] = struct{}{}
	return true
}
