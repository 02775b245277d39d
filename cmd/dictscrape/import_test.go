package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/dictscrape"
	main "github.com/fwojciec/dictscrape/cmd/dictscrape"
	"github.com/fwojciec/dictscrape/etree"
	"github.com/fwojciec/dictscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves every entry of every file", func(t *testing.T) {
		t.Parallel()

		entries := runEntries()
		first, err := etree.NewEncoder().EncodeEntries(entries[:1])
		require.NoError(t, err)
		second, err := etree.NewEncoder().EncodeEntries(entries[1:])
		require.NoError(t, err)

		var saved []*dictscrape.SavedEntry
		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Saved = &mock.SavedEntryService{
			SaveEntryFn: func(_ context.Context, s *dictscrape.SavedEntry) error {
				s.ID = "id-" + s.Entry.PartsOfSpeech[0]
				saved = append(saved, s)
				return nil
			},
		}

		err = (&main.ImportCmd{Files: []string{
			writeFile(t, "run.american.xml", first),
			writeFile(t, "run-2.american.xml", second),
		}}).Run(deps)

		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Equal(t, entries[0], saved[0].Entry)
		assert.Equal(t, entries[1], saved[1].Entry)
		assert.Equal(t, "run", saved[1].Word)
		assert.Equal(t, dictscrape.DialectAmerican, saved[0].Dialect)
		assert.Contains(t, stdout.String(), "Imported 2 entries")
	})

	t.Run("saves under the requested dialect", func(t *testing.T) {
		t.Parallel()

		data, err := etree.NewEncoder().EncodeEntries(runEntries()[:1])
		require.NoError(t, err)

		var dialect dictscrape.Dialect
		deps := newDeps(&bytes.Buffer{}, &bytes.Buffer{})
		deps.Saved = &mock.SavedEntryService{
			SaveEntryFn: func(_ context.Context, s *dictscrape.SavedEntry) error {
				dialect = s.Dialect
				return nil
			},
		}

		err = (&main.ImportCmd{Files: []string{writeFile(t, "run.xml", data)}, Dialect: "british"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, dictscrape.DialectBritish, dialect)
	})

	t.Run("saves nothing when a file is malformed", func(t *testing.T) {
		t.Parallel()

		good, err := etree.NewEncoder().EncodeEntries(runEntries())
		require.NoError(t, err)

		stderr := &bytes.Buffer{}
		deps := newDeps(&bytes.Buffer{}, stderr)
		deps.Saved = &mock.SavedEntryService{
			SaveEntryFn: func(_ context.Context, _ *dictscrape.SavedEntry) error {
				t.Fatal("SaveEntry should not be called")
				return nil
			},
		}

		err = (&main.ImportCmd{Files: []string{
			writeFile(t, "good.xml", good),
			writeFile(t, "bad.xml", []byte("<entries><entry")),
		}}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, dictscrape.EPARSE, dictscrape.ErrorCode(err))
		assert.Contains(t, stderr.String(), "bad.xml")
	})
}
