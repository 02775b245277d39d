package etree

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/dictscrape"
)

// Ensure Decoder implements dictscrape.Decoder at compile time.
var _ dictscrape.Decoder = (*Decoder)(nil)

// Decoder reads <entries> documents written by Encoder.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodeEntries returns EPARSE if the document is not well-formed or has
// another root.
func (d *Decoder) DecodeEntries(data []byte) ([]*dictscrape.Entry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, dictscrape.Errorf(dictscrape.EPARSE, "read xml: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "entries" {
		return nil, dictscrape.Errorf(dictscrape.EPARSE, "missing <entries> root element")
	}

	entries := []*dictscrape.Entry{}
	for _, el := range root.SelectElements("entry") {
		entry := decodeEntry(el)
		if err := entry.Validate(); err != nil {
			return nil, dictscrape.Errorf(dictscrape.EPARSE, "entry: %s", dictscrape.ErrorMessage(err))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func decodeEntry(el *etree.Element) *dictscrape.Entry {
	entry := &dictscrape.Entry{
		Word:      el.SelectAttrValue("word", ""),
		Source:    el.SelectAttrValue("source", ""),
		Frequency: el.SelectAttrValue("frequency", ""),
		Keywords:  decodeKeywords(el),
	}

	if pos := el.SelectElement("partsOfSpeech"); pos != nil {
		for _, p := range pos.SelectElements("pos") {
			entry.PartsOfSpeech = append(entry.PartsOfSpeech, p.Text())
		}
	}

	if prons := el.SelectElement("pronunciations"); prons != nil {
		for _, p := range prons.SelectElements("pronunciation") {
			entry.Pronunciations = append(entry.Pronunciations, dictscrape.Pronunciation{
				Spelling:  p.Text(),
				Dialect:   p.SelectAttrValue("dialect", ""),
				Qualifier: p.SelectAttrValue("qualifier", ""),
			})
		}
	}

	if defs := el.SelectElement("definitions"); defs != nil {
		entry.Definitions = decodeDefinitions(defs)
	}
	return entry
}

func decodeDefinitions(el *etree.Element) []dictscrape.Definition {
	var defs []dictscrape.Definition
	for _, d := range el.SelectElements("definition") {
		def := dictscrape.Definition{
			Number:   d.SelectAttrValue("number", ""),
			Keywords: decodeKeywords(d),
		}
		if m := d.SelectElement("meaning"); m != nil {
			def.Meaning = m.Text()
		}
		if examples := d.SelectElement("examples"); examples != nil {
			for _, g := range examples.SelectElements("group") {
				group := dictscrape.ExampleGroup{Pattern: g.SelectAttrValue("pattern", "")}
				for _, ex := range g.SelectElements("example") {
					group.Examples = append(group.Examples, ex.Text())
				}
				def.Examples = append(def.Examples, group)
			}
		}
		if subs := d.SelectElement("subDefinitions"); subs != nil {
			def.SubDefinitions = decodeDefinitions(subs)
		}
		defs = append(defs, def)
	}
	return defs
}

func decodeKeywords(parent *etree.Element) dictscrape.Keywords {
	var k dictscrape.Keywords
	el := parent.SelectElement("keywords")
	if el == nil {
		return k
	}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "grammar":
			k.Grammar = append(k.Grammar, child.Text())
		case "style":
			k.Style = append(k.Style, child.Text())
		case "dialect":
			k.Dialect = append(k.Dialect, child.Text())
		case "warning":
			k.Warnings = append(k.Warnings, child.Text())
		}
	}
	return k
}
