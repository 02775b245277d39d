package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dictscrape"
)

// Ensure LoggingDictionary implements dictscrape.Dictionary.
var _ dictscrape.Dictionary = (*LoggingDictionary)(nil)

// LoggingDictionary wraps a Dictionary with logging of every lookup.
// Skipped related entries are logged at debug level; callers report them.
type LoggingDictionary struct {
	next   dictscrape.Dictionary
	logger *slog.Logger
}

// NewLoggingDictionary creates a new LoggingDictionary.
func NewLoggingDictionary(next dictscrape.Dictionary, logger *slog.Logger) *LoggingDictionary {
	return &LoggingDictionary{next: next, logger: logger}
}

// Lookup delegates to the wrapped dictionary and logs the operation.
func (d *LoggingDictionary) Lookup(ctx context.Context, q dictscrape.Query) (result *dictscrape.LookupResult, err error) {
	defer func(begin time.Time) {
		var entries, failures int
		var notFound bool
		if result != nil {
			entries, failures, notFound = len(result.Entries), len(result.Failures), result.IsError()
			for _, f := range result.Failures {
				d.logger.Debug("related entry skipped", "slug", f.Slug, "err", f.Err)
			}
		}
		d.logger.Info("lookup",
			"word", q.Word,
			"slug", q.Slug,
			"dialect", q.Dialect,
			"depth", q.Depth,
			"entries", entries,
			"failures", failures,
			"no_match", notFound,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Lookup(ctx, q)
}
