package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dictscrape"
)

// Word page markers.
const (
	wordSelector          = ".big-title > .BASE"
	pronunciationSelector = "div.PRONS"
	entryLabelsSelector   = ".entry-labels"
	partOfSpeechSelector  = ".entry-labels > .PART-OF-SPEECH"
	frequencySelector     = ".entry-red-star"
	senseSelector         = ".SENSE-BODY, .SUB-SENSE-BODY"
	frequencyStar         = "★"
)

// keywordSelector matches every recognized keyword category.
var keywordSelector = func() string {
	sels := make([]string, len(dictscrape.KeywordCategories))
	for i, c := range dictscrape.KeywordCategories {
		sels[i] = "." + string(c)
	}
	return strings.Join(sels, ", ")
}()

// parseEntry extracts the primary entry of a word page.
// Anomalies are returned for non-fatal gaps worth logging.
func parseEntry(doc *goquery.Document) (*dictscrape.Entry, []string, error) {
	var anomalies []string

	word := text(doc.Find(wordSelector).First())
	if word == "" {
		return nil, nil, dictscrape.Errorf(dictscrape.EPARSE, "word title %q not found", wordSelector)
	}

	var keywords dictscrape.Keywords
	if labels := doc.Find(entryLabelsSelector).First(); labels.Length() > 0 {
		keywords = dictscrape.ClassifyKeywords(keywordTags(labels))
	} else {
		anomalies = append(anomalies, "word page has no entry labels")
	}

	senses := doc.Find(senseSelector)
	if senses.Length() == 0 {
		anomalies = append(anomalies, "word page has no sense blocks")
	}
	defs, err := parseDefinitions(senses)
	if err != nil {
		return nil, nil, err
	}

	return &dictscrape.Entry{
		Word:           word,
		PartsOfSpeech:  parsePartsOfSpeech(doc),
		Pronunciations: parsePronunciations(doc),
		Keywords:       keywords,
		Definitions:    defs,
		Frequency:      strings.Repeat(frequencyStar, doc.Find(frequencySelector).Length()),
		Source:         dictscrape.DefaultSource,
	}, anomalies, nil
}

// parsePronunciations reads each pronunciation block that has a spelling.
func parsePronunciations(doc *goquery.Document) []dictscrape.Pronunciation {
	var prons []dictscrape.Pronunciation
	doc.Find(pronunciationSelector).Each(func(_ int, s *goquery.Selection) {
		spelling := s.Find(".PRON").First()
		if spelling.Length() == 0 {
			return
		}
		prons = append(prons, dictscrape.Pronunciation{
			Spelling:  text(spelling),
			Dialect:   text(s.Find(".pron_resource").First()),
			Qualifier: text(s.Find(".QUALIFIER").First()),
		})
	})
	return prons
}

// parsePartsOfSpeech splits the comma-separated part-of-speech label.
func parsePartsOfSpeech(doc *goquery.Document) []string {
	sel := doc.Find(partOfSpeechSelector).First()
	if sel.Length() == 0 {
		return nil
	}

	var pos []string
	for _, p := range strings.Split(text(sel), ",") {
		if p = strings.TrimSpace(p); p != "" {
			pos = append(pos, p)
		}
	}
	return pos
}

// keywordTags reads the keyword labels that are direct children of parent.
// Labels nested deeper belong to other senses.
func keywordTags(parent *goquery.Selection) []dictscrape.KeywordTag {
	var tags []dictscrape.KeywordTag
	parent.ChildrenFiltered(keywordSelector).Each(func(_ int, s *goquery.Selection) {
		tags = append(tags, dictscrape.KeywordTag{
			Category: keywordCategory(s),
			Text:     text(s),
		})
	})
	return tags
}

// keywordCategory returns the first recognized category class of s.
func keywordCategory(s *goquery.Selection) dictscrape.KeywordCategory {
	class, _ := s.Attr("class")
	for _, c := range strings.Fields(class) {
		for _, known := range dictscrape.KeywordCategories {
			if dictscrape.KeywordCategory(c) == known {
				return known
			}
		}
	}
	return ""
}
