package slog

import (
	"log/slog"

	"github.com/fwojciec/dictscrape"
)

// Ensure LoggingParser implements dictscrape.Parser.
var _ dictscrape.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser, logging the page kind at debug level and
// each anomaly as a warning.
type LoggingParser struct {
	next   dictscrape.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next dictscrape.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser.
func (p *LoggingParser) Parse(html string) (*dictscrape.Page, error) {
	page, err := p.next.Parse(html)
	if err != nil {
		p.logger.Error("parse", "bytes", len(html), "err", err)
		return nil, err
	}

	var word string
	if page.Entry != nil {
		word = page.Entry.Word
	}
	p.logger.Debug("parse",
		"kind", page.Kind,
		"word", word,
		"related", len(page.Related),
	)
	for _, a := range page.Anomalies {
		p.logger.Warn("page anomaly", "word", word, "anomaly", a)
	}
	return page, nil
}
