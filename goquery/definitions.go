package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dictscrape"
)

// Sense markers.
const (
	subSenseClass           = "SUB-SENSE-BODY"
	senseNumberSelector     = ".SENSE-NUM"
	senseContentSelector    = ".SENSE-CONTENT, .SUB-SENSE-CONTENT"
	examplesSelector        = "div.EXAMPLES"
	patternSelector         = ".PATTERNS-COLLOCATIONS"
	exampleSentenceSelector = "p.EXAMPLE"
)

// meaningSelectors are tried in order; the first with text wins.
var meaningSelectors = []string{".DEFINITION", ".SAMEAS", ".QUICK-DEFINITION"}

// parseDefinitions reads sense and sub-sense blocks in document order and
// nests them into a definition tree.
func parseDefinitions(senses *goquery.Selection) ([]dictscrape.Definition, error) {
	blocks := make([]dictscrape.SenseBlock, 0, senses.Length())

	var err error
	senses.EachWithBreak(func(i int, s *goquery.Selection) bool {
		var b dictscrape.SenseBlock
		if b, err = parseSenseBlock(s, i); err != nil {
			return false
		}
		blocks = append(blocks, b)
		return true
	})
	if err != nil {
		return nil, err
	}

	return dictscrape.BuildDefinitions(blocks)
}

// parseSenseBlock reads one sense or sub-sense block. Only markup owned by
// the block itself is read; nested sub-sense blocks are read separately.
func parseSenseBlock(s *goquery.Selection, pos int) (dictscrape.SenseBlock, error) {
	kind := dictscrape.SenseTop
	if s.HasClass(subSenseClass) {
		kind = dictscrape.SenseSub
	}

	content := owned(s, s.Find(senseContentSelector)).First()
	if content.Length() == 0 {
		return dictscrape.SenseBlock{}, dictscrape.Errorf(dictscrape.EPARSE, "%s at position %d has no content", kind, pos)
	}

	var meaning string
	for _, sel := range meaningSelectors {
		if meaning = text(owned(s, content.Find(sel)).First()); meaning != "" {
			break
		}
	}
	if meaning == "" {
		return dictscrape.SenseBlock{}, dictscrape.Errorf(dictscrape.EPARSE, "%s at position %d has no definition", kind, pos)
	}

	return dictscrape.SenseBlock{
		Kind:     kind,
		Number:   text(owned(s, s.Find(senseNumberSelector)).First()),
		Meaning:  meaning,
		Keywords: dictscrape.ClassifyKeywords(keywordTags(content)),
		Examples: dictscrape.GroupExamples(exampleFragments(owned(s, content.Find(examplesSelector)))),
	}, nil
}

// exampleFragments reads each examples block's optional pattern and sentence.
func exampleFragments(examples *goquery.Selection) []dictscrape.ExampleFragment {
	var frags []dictscrape.ExampleFragment
	examples.Each(func(_ int, ex *goquery.Selection) {
		frags = append(frags, dictscrape.ExampleFragment{
			Pattern: text(ex.Find(patternSelector).First()),
			Example: text(ex.Find(exampleSentenceSelector).First()),
		})
	})
	return frags
}

// owned filters sel to elements whose nearest enclosing sense block is block.
func owned(block, sel *goquery.Selection) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Closest(senseSelector).IsSelection(block)
	})
}
