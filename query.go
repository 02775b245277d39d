package dictscrape

import (
	"net/url"
	"strings"
)

// Dialect selects a regional edition of the dictionary.
type Dialect string

// Supported dialects. DialectAmerican is the primary edition.
const (
	DialectAmerican Dialect = "american"
	DialectBritish  Dialect = "british"
)

// ParseDialect maps s to a supported dialect.
// Unrecognized values fall back to DialectAmerican.
func ParseDialect(s string) Dialect {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case DialectBritish:
		return DialectBritish
	default:
		return DialectAmerican
	}
}

// MaxDepth caps related-entry expansion: a related entry's own related
// links are never followed.
const MaxDepth = 1

// Query identifies a page to look up.
type Query struct {
	// Word is a free-text search term. Exactly one of Word and Slug is set.
	Word string

	// Slug is the canonical page path segment, e.g. "run_1".
	Slug string

	Dialect Dialect

	// Depth is how many levels of related entries to expand.
	// Zero disables expansion; values above MaxDepth are clamped.
	Depth int
}

// Validate returns an error if the query contains invalid fields.
func (q *Query) Validate() error {
	if q.Word == "" && q.Slug == "" {
		return Errorf(EINVALID, "query word or slug required")
	}
	if q.Word != "" && q.Slug != "" {
		return Errorf(EINVALID, "query cannot set both word and slug")
	}
	if q.Depth < 0 {
		return Errorf(EINVALID, "query depth must not be negative")
	}
	return nil
}

// Normalize returns a copy with a supported dialect and a clamped depth.
func (q Query) Normalize() Query {
	q.Dialect = ParseDialect(string(q.Dialect))
	if q.Depth > MaxDepth {
		q.Depth = MaxDepth
	}
	return q
}

// Default site settings.
const (
	DefaultBaseURL = "https://www.macmillandictionary.com"
	DefaultRegion  = "us"
)

// Site builds page URLs for the dictionary.
type Site struct {
	BaseURL string
	Region  string
}

// NewSite returns a Site with default settings.
func NewSite() Site {
	return Site{BaseURL: DefaultBaseURL, Region: DefaultRegion}
}

// URL returns the page address for q: the direct page for a slug, the
// search redirect for a word. Unsupported dialects use DialectAmerican.
func (s Site) URL(q Query) string {
	base := strings.TrimSuffix(s.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	region := s.Region
	if region == "" {
		region = DefaultRegion
	}
	dialect := ParseDialect(string(q.Dialect))

	if q.Slug != "" {
		return base + "/dictionary/" + string(dialect) + "/" + url.PathEscape(q.Slug)
	}
	return base + "/" + region + "/search/" + string(dialect) + "/direct/?q=" + url.QueryEscape(q.Word)
}

// SlugFromHref returns the last path segment of a dictionary link.
func SlugFromHref(href string) string {
	if u, err := url.Parse(href); err == nil {
		href = u.Path
	}
	href = strings.TrimSuffix(href, "/")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		href = href[i+1:]
	}
	if s, err := url.PathUnescape(href); err == nil {
		return s
	}
	return href
}
