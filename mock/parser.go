package mock

import "github.com/fwojciec/dictscrape"

var _ dictscrape.Parser = (*Parser)(nil)

// Parser is a mock implementation of dictscrape.Parser.
type Parser struct {
	ParseFn func(html string) (*dictscrape.Page, error)
}

func (p *Parser) Parse(html string) (*dictscrape.Page, error) {
	return p.ParseFn(html)
}
