package dictscrape

import "context"

// LookupResult is the outcome of a lookup: entries for a word page, or the
// site's suggestions when no exact match exists. Exactly one of Entries
// and Error is set.
type LookupResult struct {
	// Entries holds the primary entry first, then expanded related entries
	// in the order their links appear on the page.
	Entries []*Entry

	Error *ErrorResult

	// Failures lists related entries that could not be expanded.
	// The lookup still succeeds when only related entries fail.
	Failures []RelatedFailure
}

// IsError reports whether the lookup landed on the site's error page.
func (r *LookupResult) IsError() bool {
	return r.Error != nil
}

// RelatedFailure records a related entry that was skipped.
type RelatedFailure struct {
	Slug string
	Err  error
}

// Dictionary looks up words.
type Dictionary interface {
	// Lookup fetches and parses the page for q and expands related entries
	// up to q.Depth levels.
	// Returns EINVALID for a bad query, ENETWORK or EPARSE if the primary page
	// cannot be fetched or parsed.
	Lookup(ctx context.Context, q Query) (*LookupResult, error)
}
