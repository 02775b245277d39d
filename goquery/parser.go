// Package goquery implements dictscrape.Parser for Macmillan Dictionary
// pages using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dictscrape"
)

// Ensure Parser implements dictscrape.Parser at compile time.
var _ dictscrape.Parser = (*Parser)(nil)

// Page markers.
const (
	searchResultsSelector = "#search-results"
	relatedLinkSelector   = "#innerleftcol .related-entries-item a"
	canonicalSelector     = `link[rel="canonical"]`
	ogURLSelector         = `meta[property="og:url"]`
	zeroWidthSpace        = "\u200b"
)

// Parser extracts entries and error results from dictionary HTML.
// It encodes one site's layout and is safe for concurrent use.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse classifies the page and extracts its content. Pages containing a
// search-results region are error pages; everything else is a word page.
func (p *Parser) Parse(html string) (*dictscrape.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, dictscrape.Errorf(dictscrape.EPARSE, "failed to parse HTML: %v", err)
	}

	// Zero-width-space spans break words apart inside labels.
	doc.Find("span.zwsp").Remove()

	if IsErrorPage(doc) {
		result, err := parseErrorPage(doc)
		if err != nil {
			return nil, err
		}
		return &dictscrape.Page{Kind: dictscrape.PageError, Error: result}, nil
	}

	entry, anomalies, err := parseEntry(doc)
	if err != nil {
		return nil, err
	}

	return &dictscrape.Page{
		Kind:      dictscrape.PageWord,
		Entry:     entry,
		Related:   parseRelated(doc),
		Slug:      parseSlug(doc),
		Anomalies: anomalies,
	}, nil
}

// IsErrorPage reports whether doc is the site's "no exact match" page.
func IsErrorPage(doc *goquery.Document) bool {
	return doc.Find(searchResultsSelector).Length() > 0
}

// parseSlug returns the page's own slug from its canonical URL, falling back
// to the Open Graph URL.
func parseSlug(doc *goquery.Document) string {
	for _, m := range []struct{ sel, attr string }{
		{canonicalSelector, "href"},
		{ogURLSelector, "content"},
	} {
		href, ok := doc.Find(m.sel).First().Attr(m.attr)
		if href = strings.TrimSpace(href); ok && href != "" {
			return dictscrape.SlugFromHref(href)
		}
	}
	return ""
}

// parseRelated returns links from the related-entries region that carry a
// base-word label. Matching against the primary word is left to the caller.
func parseRelated(doc *goquery.Document) []dictscrape.RelatedLink {
	var links []dictscrape.RelatedLink
	doc.Find(relatedLinkSelector).Each(func(_ int, a *goquery.Selection) {
		base := a.Find(".BASE").First()
		if base.Length() == 0 {
			return
		}
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		links = append(links, dictscrape.RelatedLink{
			Word: text(base),
			Slug: dictscrape.SlugFromHref(strings.TrimSpace(href)),
			URL:  href,
		})
	})
	return links
}

// text returns the selection's text with zero-width spaces removed and
// whitespace collapsed.
func text(s *goquery.Selection) string {
	t := strings.ReplaceAll(s.Text(), zeroWidthSpace, "")
	return strings.Join(strings.Fields(t), " ")
}
