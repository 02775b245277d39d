package dictscrape

// DefaultSource labels entries extracted from Macmillan Dictionary pages.
const DefaultSource = "Macmillan Dictionary"

// Entry represents one fully parsed dictionary word page.
type Entry struct {
	Word           string          `json:"word"`
	PartsOfSpeech  []string        `json:"partsOfSpeech,omitempty"`
	Pronunciations []Pronunciation `json:"pronunciations,omitempty"`
	Keywords       Keywords        `json:"keywords"`
	Definitions    []Definition    `json:"definitions,omitempty"`
	Frequency      string          `json:"frequency,omitempty"` // one ★ per frequency star
	Source         string          `json:"source"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Word == "" {
		return Errorf(EINVALID, "entry word required")
	}
	return nil
}

// CountExampleGroups returns the number of example groups across all
// definitions and sub-definitions.
func (e *Entry) CountExampleGroups() int {
	var n int
	var walk func(defs []Definition)
	walk = func(defs []Definition) {
		for _, d := range defs {
			n += len(d.Examples)
			walk(d.SubDefinitions)
		}
	}
	walk(e.Definitions)
	return n
}

// Pronunciation is an IPA spelling for one regional variant.
type Pronunciation struct {
	Spelling  string `json:"spelling"`
	Dialect   string `json:"dialect"`
	Qualifier string `json:"qualifier,omitempty"` // e.g. "strong", "weak"
}

// Keywords holds usage labels bucketed by the markup category they came from.
type Keywords struct {
	Grammar  []string `json:"grammar,omitempty"`
	Style    []string `json:"style,omitempty"`
	Dialect  []string `json:"dialect,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// IsZero reports whether no bucket holds a label.
func (k Keywords) IsZero() bool {
	return len(k.Grammar) == 0 && len(k.Style) == 0 && len(k.Dialect) == 0 && len(k.Warnings) == 0
}

// All returns every label in bucket order: grammar, style, dialect, warnings.
func (k Keywords) All() []string {
	all := make([]string, 0, len(k.Grammar)+len(k.Style)+len(k.Dialect)+len(k.Warnings))
	all = append(all, k.Grammar...)
	all = append(all, k.Style...)
	all = append(all, k.Dialect...)
	all = append(all, k.Warnings...)
	return all
}

// Definition is one sense of a word. Sub-senses are nested Definitions
// with an empty Number.
type Definition struct {
	Number         string         `json:"number,omitempty"`
	Meaning        string         `json:"meaning"`
	Keywords       Keywords       `json:"keywords"`
	Examples       []ExampleGroup `json:"examples,omitempty"`
	SubDefinitions []Definition   `json:"subDefinitions,omitempty"`
}

// ExampleGroup groups example sentences sharing a collocation pattern.
// Pattern is empty for examples that precede the first pattern.
type ExampleGroup struct {
	Pattern  string   `json:"pattern,omitempty"`
	Examples []string `json:"examples"`
}

// ErrorResult is the content of the dictionary's "no exact match" page.
type ErrorResult struct {
	Messages    []string `json:"messages"`    // title, then subtitle
	Suggestions []string `json:"suggestions"` // alternative words offered by the site
}
