package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/dictscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ dictscrape.SavedEntryService = (*SavedEntryService)(nil)

// SavedEntryService implements dictscrape.SavedEntryService using SQLite.
// Entries are stored as JSON; the content hash covers that JSON.
type SavedEntryService struct {
	db  *DB
	now func() time.Time
}

// NewSavedEntryService creates a new SavedEntryService.
func NewSavedEntryService(db *DB) *SavedEntryService {
	return &SavedEntryService{db: db, now: time.Now}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content []byte) string {
	var b [8]byte
	h := xxhash.Sum64(content)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// SaveEntry stores saved. When the same word, dialect and content is
// already stored, saved is filled from the existing row instead.
func (s *SavedEntryService) SaveEntry(ctx context.Context, saved *dictscrape.SavedEntry) error {
	if saved.Word == "" && saved.Entry != nil {
		saved.Word = saved.Entry.Word
	}
	saved.Dialect = dictscrape.ParseDialect(string(saved.Dialect))
	if err := saved.Validate(); err != nil {
		return err
	}

	content, err := json.Marshal(saved.Entry)
	if err != nil {
		return dictscrape.Errorf(dictscrape.EINTERNAL, "encode entry: %v", err)
	}
	hash := hashContent(content)

	var id, savedAt string
	err = s.db.QueryRowContext(ctx, `
		SELECT id, saved_at FROM entries
		WHERE word = ? AND dialect = ? AND content_hash = ?
	`, saved.Word, string(saved.Dialect), hash).Scan(&id, &savedAt)
	switch {
	case err == nil:
		t, err := parseTime(savedAt, "saved_at")
		if err != nil {
			return err
		}
		saved.ID, saved.ContentHash, saved.SavedAt = id, hash, t
		return nil
	case err != sql.ErrNoRows:
		return err
	}

	saved.ID = uuid.New().String()
	saved.ContentHash = hash
	saved.SavedAt = s.now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (id, word, dialect, source, content, content_hash, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, saved.ID, saved.Word, string(saved.Dialect), saved.Entry.Source, string(content), hash,
		saved.SavedAt.Format(time.RFC3339Nano))

	return err
}

// FindSavedEntries retrieves saved entries matching the filter, oldest first.
func (s *SavedEntryService) FindSavedEntries(ctx context.Context, filter dictscrape.SavedEntryFilter) ([]*dictscrape.SavedEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, word, dialect, content, content_hash, saved_at FROM entries WHERE 1=1")

	if filter.Word != nil {
		query.WriteString(" AND word = ?")
		args = append(args, *filter.Word)
	}
	if filter.Dialect != nil {
		query.WriteString(" AND dialect = ?")
		args = append(args, string(*filter.Dialect))
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*dictscrape.SavedEntry
	for rows.Next() {
		var saved dictscrape.SavedEntry
		var dialect, content, savedAt string

		if err := rows.Scan(&saved.ID, &saved.Word, &dialect, &content, &saved.ContentHash, &savedAt); err != nil {
			return nil, err
		}

		saved.Dialect = dictscrape.Dialect(dialect)
		saved.Entry = &dictscrape.Entry{}
		if err := json.Unmarshal([]byte(content), saved.Entry); err != nil {
			return nil, dictscrape.Errorf(dictscrape.EINTERNAL, "decode entry %s: %v", saved.ID, err)
		}
		if saved.SavedAt, err = parseTime(savedAt, "saved_at"); err != nil {
			return nil, err
		}

		entries = append(entries, &saved)
	}

	return entries, rows.Err()
}

// DeleteSavedEntries permanently removes every saved entry for word.
func (s *SavedEntryService) DeleteSavedEntries(ctx context.Context, word string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE word = ?", word)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return dictscrape.Errorf(dictscrape.ENOTFOUND, "no saved entries for %q", word)
	}

	return nil
}
