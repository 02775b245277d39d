// Package htmlrender renders dictionary entries back into HTML fragments
// built with golang.org/x/net/html.
package htmlrender

import (
	"bytes"

	"github.com/fwojciec/dictscrape"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names of the rendered fragments.
const (
	ClassEntry          = "dict-entry-container"
	ClassWord           = "word"
	ClassPartOfSpeech   = "part-of-speech"
	ClassPhonetics      = "phonetics"
	ClassPhonetic       = "phonetics-container"
	ClassSpelling       = "spelling"
	ClassDialect        = "dialect"
	ClassQualifier      = "qualifier"
	ClassKeywords       = "keywords"
	ClassKeywordList    = "keywords-container"
	ClassDefinitions    = "definitions"
	ClassDefinition     = "word-definition-container"
	ClassNumber         = "number"
	ClassMeaning        = "definition"
	ClassExamples       = "examples"
	ClassExampleGroup   = "example-group-container"
	ClassPattern        = "pattern"
	ClassSubDefinitions = "sub-definitions"
	ClassFrequency      = "frequency"
	ClassError          = "dict-error-container"
	ClassMessages       = "messages"
	ClassSuggestions    = "suggestions"
)

// Ensure Renderer implements dictscrape.Renderer at compile time.
var _ dictscrape.Renderer = (*Renderer)(nil)

// Renderer builds HTML fragments for entries and error results.
// Every container is emitted even when empty, so consumers can rely on
// the structure.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderEntry renders entry as a div.dict-entry-container fragment.
func (r *Renderer) RenderEntry(entry *dictscrape.Entry) (string, error) {
	if entry == nil {
		return "", dictscrape.Errorf(dictscrape.EINVALID, "entry required")
	}
	if err := entry.Validate(); err != nil {
		return "", err
	}

	root := div(ClassEntry)
	root.AppendChild(textElem(atom.Div, ClassWord, entry.Word))

	pos := elem(atom.Ul, ClassPartOfSpeech)
	for _, p := range entry.PartsOfSpeech {
		pos.AppendChild(textElem(atom.Li, "", p))
	}
	root.AppendChild(pos)

	phonetics := div(ClassPhonetics)
	for _, p := range entry.Pronunciations {
		phonetics.AppendChild(pronunciation(p))
	}
	root.AppendChild(phonetics)

	root.AppendChild(keywords(entry.Keywords))

	defs := div(ClassDefinitions)
	for _, d := range entry.Definitions {
		defs.AppendChild(definition(d))
	}
	root.AppendChild(defs)

	root.AppendChild(textElem(atom.Div, ClassFrequency, entry.Frequency))

	return render(root)
}

// RenderError renders result as a div.dict-error-container fragment.
func (r *Renderer) RenderError(result *dictscrape.ErrorResult) (string, error) {
	if result == nil {
		return "", dictscrape.Errorf(dictscrape.EINVALID, "error result required")
	}

	root := div(ClassError)

	messages := div(ClassMessages)
	for _, m := range result.Messages {
		messages.AppendChild(textElem(atom.P, "", m))
	}
	root.AppendChild(messages)

	suggestions := elem(atom.Ul, ClassSuggestions)
	for _, s := range result.Suggestions {
		suggestions.AppendChild(textElem(atom.Li, "", s))
	}
	root.AppendChild(suggestions)

	return render(root)
}

func pronunciation(p dictscrape.Pronunciation) *html.Node {
	n := div(ClassPhonetic)
	n.AppendChild(textElem(atom.Div, ClassSpelling, p.Spelling))
	n.AppendChild(textElem(atom.Div, ClassDialect, p.Dialect))
	n.AppendChild(textElem(atom.Div, ClassQualifier, p.Qualifier))
	return n
}

func keywords(k dictscrape.Keywords) *html.Node {
	n := div(ClassKeywords)
	list := div(ClassKeywordList)
	for _, kw := range k.All() {
		list.AppendChild(textElem(atom.Span, "", kw))
	}
	n.AppendChild(list)
	return n
}

func definition(d dictscrape.Definition) *html.Node {
	n := div(ClassDefinition)
	n.AppendChild(textElem(atom.Div, ClassNumber, d.Number))
	n.AppendChild(textElem(atom.Div, ClassMeaning, d.Meaning))
	n.AppendChild(keywords(d.Keywords))

	examples := div(ClassExamples)
	for _, g := range d.Examples {
		examples.AppendChild(exampleGroup(g))
	}
	n.AppendChild(examples)

	subs := div(ClassSubDefinitions)
	for _, sub := range d.SubDefinitions {
		subs.AppendChild(definition(sub))
	}
	n.AppendChild(subs)
	return n
}

func exampleGroup(g dictscrape.ExampleGroup) *html.Node {
	n := div(ClassExampleGroup)
	n.AppendChild(textElem(atom.Div, ClassPattern, g.Pattern))
	list := elem(atom.Ul, ClassExamples)
	for _, e := range g.Examples {
		list.AppendChild(textElem(atom.Li, "", e))
	}
	n.AppendChild(list)
	return n
}

func elem(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func div(class string) *html.Node {
	return elem(atom.Div, class)
}

func textElem(a atom.Atom, class, text string) *html.Node {
	n := elem(a, class)
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}

func render(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", dictscrape.Errorf(dictscrape.EINTERNAL, "render html: %v", err)
	}
	return buf.String(), nil
}
