// Package fs provides file-based export of saved dictionary entries.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/dictscrape"
)

// Ensure FileStore implements dictscrape.EntryStore at compile time.
var _ dictscrape.EntryStore = (*FileStore)(nil)

// FileStore implements dictscrape.EntryStore with atomic update semantics.
// Entries are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes content to name inside the temporary directory.
// Returns EINVALID if name is not a plain file name.
func (s *FileStore) Save(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return dictscrape.Errorf(dictscrape.EINVALID, "invalid file name %q: path traversal not allowed", name)
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), name), content, 0644)
}

func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// FileStem returns the file-name stem for word: lower-cased letters and
// digits, with any other run of characters collapsed to a single "-".
// Different words may share a stem.
func FileStem(word string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteRune('-')
			dash = true
		}
	}
	stem := strings.Trim(b.String(), "-")
	if stem == "" {
		stem = "entry"
	}
	return stem
}

// FileName returns a file name for a saved entry: the stem of its word,
// then the dialect and extension. n > 1 disambiguates entries that share
// a stem and dialect.
func FileName(saved *dictscrape.SavedEntry, n int, ext string) string {
	stem := FileStem(saved.Word)
	if n > 1 {
		stem = fmt.Sprintf("%s-%d", stem, n)
	}
	return stem + "." + string(dictscrape.ParseDialect(string(saved.Dialect))) + "." + strings.TrimPrefix(ext, ".")
}

// FormatMarkdown prefixes a Markdown rendering with YAML frontmatter.
func FormatMarkdown(saved *dictscrape.SavedEntry, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("word: ")
	b.WriteString(saved.Word)
	b.WriteString("\ndialect: ")
	b.WriteString(string(saved.Dialect))
	if saved.Entry != nil && saved.Entry.Source != "" {
		b.WriteString("\nsource: ")
		b.WriteString(saved.Entry.Source)
	}
	b.WriteString("\nsaved: ")
	b.WriteString(saved.SavedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}
