package mock

import (
	"context"

	"github.com/fwojciec/dictscrape"
)

var _ dictscrape.Dictionary = (*Dictionary)(nil)

// Dictionary is a mock implementation of dictscrape.Dictionary.
type Dictionary struct {
	LookupFn func(ctx context.Context, q dictscrape.Query) (*dictscrape.LookupResult, error)
}

func (d *Dictionary) Lookup(ctx context.Context, q dictscrape.Query) (*dictscrape.LookupResult, error) {
	return d.LookupFn(ctx, q)
}
