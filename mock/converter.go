package mock

import "github.com/fwojciec/dictscrape"

// Compile-time interface verification.
var (
	_ dictscrape.Converter = (*Converter)(nil)
	_ dictscrape.Renderer  = (*Renderer)(nil)
	_ dictscrape.Encoder   = (*Encoder)(nil)
	_ dictscrape.Decoder   = (*Decoder)(nil)
)

// Converter is a mock implementation of dictscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Renderer is a mock implementation of dictscrape.Renderer.
type Renderer struct {
	RenderEntryFn func(entry *dictscrape.Entry) (string, error)
	RenderErrorFn func(result *dictscrape.ErrorResult) (string, error)
}

func (r *Renderer) RenderEntry(entry *dictscrape.Entry) (string, error) {
	return r.RenderEntryFn(entry)
}

func (r *Renderer) RenderError(result *dictscrape.ErrorResult) (string, error) {
	return r.RenderErrorFn(result)
}

// Encoder is a mock implementation of dictscrape.Encoder.
type Encoder struct {
	EncodeEntriesFn func(entries []*dictscrape.Entry) ([]byte, error)
}

func (e *Encoder) EncodeEntries(entries []*dictscrape.Entry) ([]byte, error) {
	return e.EncodeEntriesFn(entries)
}

// Decoder is a mock implementation of dictscrape.Decoder.
type Decoder struct {
	DecodeEntriesFn func(data []byte) ([]*dictscrape.Entry, error)
}

func (d *Decoder) DecodeEntries(data []byte) ([]*dictscrape.Entry, error) {
	return d.DecodeEntriesFn(data)
}
