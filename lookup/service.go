// Package lookup orchestrates dictionary lookups: it builds the page URL,
// fetches and parses the page, and expands same-word related entries.
package lookup

import (
	"context"

	"github.com/fwojciec/dictscrape"
	"github.com/fwojciec/dictscrape/bloom"
)

// Visited-slug filter sizing. A word page links to a handful of related
// entries, so a small filter rarely needs its exact set.
const (
	visitedCapacity = 256
	visitedFPRate   = 0.0001
)

// Ensure Service implements dictscrape.Dictionary at compile time.
var _ dictscrape.Dictionary = (*Service)(nil)

// Service looks up words by fetching and parsing dictionary pages.
// Pages are fetched one at a time, in the order their links appear.
type Service struct {
	Fetcher dictscrape.Fetcher
	Parser  dictscrape.Parser
	Site    dictscrape.Site
}

// NewService creates a new Service.
func NewService(fetcher dictscrape.Fetcher, parser dictscrape.Parser, site dictscrape.Site) *Service {
	return &Service{Fetcher: fetcher, Parser: parser, Site: site}
}

// Lookup fetches the page for q and, while depth remains, the pages of
// related entries whose base word equals the primary entry's word.
//
// Failures on the primary page abort the lookup. A related entry that
// cannot be fetched or parsed is recorded in LookupResult.Failures and the
// remaining related entries are still expanded. Cancelling ctx aborts.
func (s *Service) Lookup(ctx context.Context, q dictscrape.Query) (*dictscrape.LookupResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	q = q.Normalize()

	visited := bloom.NewFilter(visitedCapacity, visitedFPRate)
	if q.Slug != "" {
		visited.Visit(q.Slug)
	}

	return s.lookup(ctx, q, visited)
}

func (s *Service) lookup(ctx context.Context, q dictscrape.Query, visited *bloom.Filter) (*dictscrape.LookupResult, error) {
	page, err := s.fetchPage(ctx, q)
	if err != nil {
		return nil, err
	}

	if page.Kind == dictscrape.PageError {
		return &dictscrape.LookupResult{Error: page.Error}, nil
	}

	// A word search lands on a page whose slug is only known once parsed.
	if page.Slug != "" {
		visited.Visit(page.Slug)
	}

	result := &dictscrape.LookupResult{Entries: []*dictscrape.Entry{page.Entry}}
	if q.Depth == 0 {
		return result, nil
	}

	for _, link := range page.Related {
		if link.Word != page.Entry.Word || link.Slug == "" {
			continue
		}
		if !visited.Visit(link.Slug) {
			continue
		}

		related, err := s.lookup(ctx, dictscrape.Query{
			Slug:    link.Slug,
			Dialect: q.Dialect,
			Depth:   q.Depth - 1,
		}, visited)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			result.Failures = append(result.Failures, dictscrape.RelatedFailure{Slug: link.Slug, Err: err})
			continue
		}
		if related.IsError() {
			result.Failures = append(result.Failures, dictscrape.RelatedFailure{
				Slug: link.Slug,
				Err:  dictscrape.Errorf(dictscrape.ENOTFOUND, "related entry %q has no exact match", link.Slug),
			})
			continue
		}

		result.Entries = append(result.Entries, related.Entries...)
		result.Failures = append(result.Failures, related.Failures...)
	}

	return result, nil
}

// fetchPage fetches and parses a single page. A word page must carry a
// valid entry.
func (s *Service) fetchPage(ctx context.Context, q dictscrape.Query) (*dictscrape.Page, error) {
	html, err := s.Fetcher.Fetch(ctx, s.Site.URL(q))
	if err != nil {
		return nil, err
	}

	page, err := s.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	switch page.Kind {
	case dictscrape.PageError:
		if page.Error == nil {
			return nil, dictscrape.Errorf(dictscrape.EPARSE, "error page without messages")
		}
	default:
		if page.Entry == nil {
			return nil, dictscrape.Errorf(dictscrape.EPARSE, "word page without entry")
		}
		if err := page.Entry.Validate(); err != nil {
			return nil, dictscrape.Errorf(dictscrape.EPARSE, "word page: %s", dictscrape.ErrorMessage(err))
		}
	}

	return page, nil
}
