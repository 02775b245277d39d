package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dictscrape"
)

// Error page markers.
const (
	errorTitleSelector    = "#search-results h1"
	errorSubtitleSelector = ".entry-bold"
	suggestionSelector    = ".display-list li"
)

// parseErrorPage extracts the messages and suggested words of an error page.
// Both title and subtitle are required.
func parseErrorPage(doc *goquery.Document) (*dictscrape.ErrorResult, error) {
	title := doc.Find(errorTitleSelector).First()
	if title.Length() == 0 {
		return nil, dictscrape.Errorf(dictscrape.EPARSE, "error page title %q not found", errorTitleSelector)
	}
	subtitle := doc.Find(errorSubtitleSelector).First()
	if subtitle.Length() == 0 {
		return nil, dictscrape.Errorf(dictscrape.EPARSE, "error page subtitle %q not found", errorSubtitleSelector)
	}

	suggestions := []string{}
	doc.Find(suggestionSelector).Each(func(_ int, li *goquery.Selection) {
		if s := text(li); s != "" {
			suggestions = append(suggestions, s)
		}
	})

	return &dictscrape.ErrorResult{
		Messages:    []string{text(title), text(subtitle)},
		Suggestions: suggestions,
	}, nil
}
