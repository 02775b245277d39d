// Package etree encodes dictionary entries as XML documents using
// github.com/beevik/etree.
package etree

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/dictscrape"
)

// Ensure Encoder implements dictscrape.Encoder at compile time.
var _ dictscrape.Encoder = (*Encoder)(nil)

// Encoder writes entries as an <entries> XML document.
type Encoder struct {
	indent int
}

// NewEncoder creates a new Encoder that indents with two spaces.
func NewEncoder() *Encoder {
	return &Encoder{indent: 2}
}

// EncodeEntries returns the XML document for entries.
func (e *Encoder) EncodeEntries(entries []*dictscrape.Entry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("entries")

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		encodeEntry(root.CreateElement("entry"), entry)
	}

	doc.Indent(e.indent)
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, dictscrape.Errorf(dictscrape.EINTERNAL, "write xml: %v", err)
	}
	return b, nil
}

func encodeEntry(el *etree.Element, entry *dictscrape.Entry) {
	el.CreateAttr("word", entry.Word)
	if entry.Source != "" {
		el.CreateAttr("source", entry.Source)
	}
	if entry.Frequency != "" {
		el.CreateAttr("frequency", entry.Frequency)
	}

	if len(entry.PartsOfSpeech) > 0 {
		pos := el.CreateElement("partsOfSpeech")
		for _, p := range entry.PartsOfSpeech {
			pos.CreateElement("pos").SetText(p)
		}
	}

	if len(entry.Pronunciations) > 0 {
		prons := el.CreateElement("pronunciations")
		for _, p := range entry.Pronunciations {
			pron := prons.CreateElement("pronunciation")
			pron.CreateAttr("dialect", p.Dialect)
			if p.Qualifier != "" {
				pron.CreateAttr("qualifier", p.Qualifier)
			}
			pron.SetText(p.Spelling)
		}
	}

	encodeKeywords(el, entry.Keywords)

	if len(entry.Definitions) > 0 {
		defs := el.CreateElement("definitions")
		for _, d := range entry.Definitions {
			encodeDefinition(defs.CreateElement("definition"), d)
		}
	}
}

func encodeDefinition(el *etree.Element, d dictscrape.Definition) {
	if d.Number != "" {
		el.CreateAttr("number", d.Number)
	}
	el.CreateElement("meaning").SetText(d.Meaning)
	encodeKeywords(el, d.Keywords)

	if len(d.Examples) > 0 {
		examples := el.CreateElement("examples")
		for _, g := range d.Examples {
			group := examples.CreateElement("group")
			if g.Pattern != "" {
				group.CreateAttr("pattern", g.Pattern)
			}
			for _, ex := range g.Examples {
				group.CreateElement("example").SetText(ex)
			}
		}
	}

	if len(d.SubDefinitions) > 0 {
		subs := el.CreateElement("subDefinitions")
		for _, sub := range d.SubDefinitions {
			encodeDefinition(subs.CreateElement("definition"), sub)
		}
	}
}

// keywordBuckets names the XML elements of each keyword bucket.
var keywordBuckets = []struct {
	name string
	get  func(k dictscrape.Keywords) []string
}{
	{"grammar", func(k dictscrape.Keywords) []string { return k.Grammar }},
	{"style", func(k dictscrape.Keywords) []string { return k.Style }},
	{"dialect", func(k dictscrape.Keywords) []string { return k.Dialect }},
	{"warning", func(k dictscrape.Keywords) []string { return k.Warnings }},
}

func encodeKeywords(parent *etree.Element, k dictscrape.Keywords) {
	if k.IsZero() {
		return
	}
	el := parent.CreateElement("keywords")
	for _, b := range keywordBuckets {
		for _, kw := range b.get(k) {
			el.CreateElement(b.name).SetText(kw)
		}
	}
}
