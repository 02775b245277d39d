package dictscrape

import (
	"context"
	"time"
)

// SavedEntry is an entry kept in the user's word list.
type SavedEntry struct {
	ID          string    `json:"id"`
	Word        string    `json:"word"`
	Dialect     Dialect   `json:"dialect"`
	Entry       *Entry    `json:"entry"`
	ContentHash string    `json:"contentHash"`
	SavedAt     time.Time `json:"savedAt"`
}

// Validate returns an error if the saved entry contains invalid fields.
func (s *SavedEntry) Validate() error {
	if s.Entry == nil {
		return Errorf(EINVALID, "saved entry content required")
	}
	if err := s.Entry.Validate(); err != nil {
		return err
	}
	if s.Word == "" {
		return Errorf(EINVALID, "saved entry word required")
	}
	return nil
}

// SavedEntryService represents a service for managing the word list.
// It is never consulted by lookups.
type SavedEntryService interface {
	// SaveEntry stores an entry. An entry with the same word, dialect and
	// content is stored only once; changed content is stored as a new row.
	SaveEntry(ctx context.Context, saved *SavedEntry) error

	// FindSavedEntries retrieves saved entries matching the filter,
	// oldest first.
	FindSavedEntries(ctx context.Context, filter SavedEntryFilter) ([]*SavedEntry, error)

	// DeleteSavedEntries removes every saved entry for a word.
	// Returns ENOTFOUND if nothing was saved for the word.
	DeleteSavedEntries(ctx context.Context, word string) error
}

// SavedEntryFilter represents a filter for FindSavedEntries.
type SavedEntryFilter struct {
	Word    *string  `json:"word"`
	Dialect *Dialect `json:"dialect"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// EntryStore persists rendered entries with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type EntryStore interface {
	Save(ctx context.Context, name string, content []byte) error
	Commit() error
	Abort() error
}
