package mock

import (
	"context"

	"github.com/fwojciec/dictscrape"
)

// Compile-time interface verification.
var (
	_ dictscrape.SavedEntryService = (*SavedEntryService)(nil)
	_ dictscrape.EntryStore        = (*EntryStore)(nil)
)

// SavedEntryService is a mock implementation of dictscrape.SavedEntryService.
type SavedEntryService struct {
	SaveEntryFn          func(ctx context.Context, saved *dictscrape.SavedEntry) error
	FindSavedEntriesFn   func(ctx context.Context, filter dictscrape.SavedEntryFilter) ([]*dictscrape.SavedEntry, error)
	DeleteSavedEntriesFn func(ctx context.Context, word string) error
}

func (s *SavedEntryService) SaveEntry(ctx context.Context, saved *dictscrape.SavedEntry) error {
	return s.SaveEntryFn(ctx, saved)
}

func (s *SavedEntryService) FindSavedEntries(ctx context.Context, filter dictscrape.SavedEntryFilter) ([]*dictscrape.SavedEntry, error) {
	return s.FindSavedEntriesFn(ctx, filter)
}

func (s *SavedEntryService) DeleteSavedEntries(ctx context.Context, word string) error {
	return s.DeleteSavedEntriesFn(ctx, word)
}

// EntryStore is a mock implementation of dictscrape.EntryStore.
type EntryStore struct {
	SaveFn   func(ctx context.Context, name string, content []byte) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *EntryStore) Save(ctx context.Context, name string, content []byte) error {
	return s.SaveFn(ctx, name, content)
}

func (s *EntryStore) Commit() error {
	return s.CommitFn()
}

func (s *EntryStore) Abort() error {
	return s.AbortFn()
}
