package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dictscrape"
)

// Ensure LoggingSavedEntryService implements dictscrape.SavedEntryService.
var _ dictscrape.SavedEntryService = (*LoggingSavedEntryService)(nil)

// LoggingSavedEntryService wraps a SavedEntryService with debug logging.
type LoggingSavedEntryService struct {
	next   dictscrape.SavedEntryService
	logger *slog.Logger
}

// NewLoggingSavedEntryService creates a new LoggingSavedEntryService.
func NewLoggingSavedEntryService(next dictscrape.SavedEntryService, logger *slog.Logger) *LoggingSavedEntryService {
	return &LoggingSavedEntryService{next: next, logger: logger}
}

func (s *LoggingSavedEntryService) SaveEntry(ctx context.Context, saved *dictscrape.SavedEntry) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save entry",
			"word", saved.Word,
			"dialect", saved.Dialect,
			"id", saved.ID,
			"hash", saved.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveEntry(ctx, saved)
}

func (s *LoggingSavedEntryService) FindSavedEntries(ctx context.Context, filter dictscrape.SavedEntryFilter) (entries []*dictscrape.SavedEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find saved entries",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSavedEntries(ctx, filter)
}

func (s *LoggingSavedEntryService) DeleteSavedEntries(ctx context.Context, word string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete saved entries",
			"word", word,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSavedEntries(ctx, word)
}
