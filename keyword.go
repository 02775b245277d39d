package dictscrape

// KeywordCategory is the markup class a usage label was found under.
type KeywordCategory string

// Recognized keyword categories.
const (
	CategorySyntaxCoding     KeywordCategory = "SYNTAX-CODING"
	CategoryStyleLevel       KeywordCategory = "STYLE-LEVEL"
	CategoryDialect          KeywordCategory = "DIALECT"
	CategoryRestrictionClass KeywordCategory = "RESTRICTION-CLASS"
	CategoryGrammarText      KeywordCategory = "GRAMMAR-TEXT" // informational, never bucketed
)

// KeywordCategories lists every recognized category. Parsers use it to
// select label elements.
var KeywordCategories = []KeywordCategory{
	CategorySyntaxCoding,
	CategoryRestrictionClass,
	CategoryStyleLevel,
	CategoryGrammarText,
	CategoryDialect,
}

// KeywordTag is a single usage label with its category.
type KeywordTag struct {
	Category KeywordCategory
	Text     string
}

// ClassifyKeywords buckets tags by category, preserving encounter order
// within each bucket. Grammar-text and unrecognized categories are dropped.
func ClassifyKeywords(tags []KeywordTag) Keywords {
	var k Keywords
	for _, tag := range tags {
		switch tag.Category {
		case CategorySyntaxCoding:
			k.Grammar = append(k.Grammar, tag.Text)
		case CategoryStyleLevel:
			k.Style = append(k.Style, tag.Text)
		case CategoryDialect:
			k.Dialect = append(k.Dialect, tag.Text)
		case CategoryRestrictionClass:
			k.Warnings = append(k.Warnings, tag.Text)
		}
	}
	return k
}
