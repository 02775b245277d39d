package dictscrape

// Renderer converts structured results back into HTML fragments.
type Renderer interface {
	// RenderEntry returns an HTML fragment rooted at div.dict-entry-container.
	RenderEntry(entry *Entry) (string, error)

	// RenderError returns an HTML fragment rooted at div.dict-error-container.
	RenderError(result *ErrorResult) (string, error)
}

// Encoder serializes entries into a standalone document format.
type Encoder interface {
	EncodeEntries(entries []*Entry) ([]byte, error)
}

// Decoder reads entries back from a document written by an Encoder.
type Decoder interface {
	// DecodeEntries returns EPARSE if data is not a valid entries document.
	DecodeEntries(data []byte) ([]*Entry, error)
}
