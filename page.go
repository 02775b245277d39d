package dictscrape

// PageKind classifies a fetched dictionary page.
type PageKind int

// Page kinds.
const (
	PageWord PageKind = iota
	PageError
)

// String returns a short label for logging.
func (k PageKind) String() string {
	if k == PageError {
		return "error"
	}
	return "word"
}

// RelatedLink is a link from the "related entries" region of a word page.
type RelatedLink struct {
	Word string // visible base-word text
	Slug string
	URL  string // href as found on the page
}

// Page is the parsed content of a single dictionary document.
// Entry is set for word pages, Error for error pages.
type Page struct {
	Kind    PageKind
	Entry   *Entry
	Related []RelatedLink
	Error   *ErrorResult

	// Slug is the page's own slug taken from its canonical link, or empty
	// when the page does not declare one.
	Slug string

	// Anomalies lists non-fatal oddities, such as a word page without senses.
	Anomalies []string
}

// Parser extracts structured content from dictionary HTML.
type Parser interface {
	// Parse classifies the page and extracts its content.
	// Returns EPARSE if expected markup is missing; no partial page is returned.
	Parse(html string) (*Page, error)
}
