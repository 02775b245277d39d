package etree_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/dictscrape"
	"github.com/fwojciec/dictscrape/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEntry() *dictscrape.Entry {
	return &dictscrape.Entry{
		Word:           "run",
		PartsOfSpeech:  []string{"verb"},
		Pronunciations: []dictscrape.Pronunciation{{Spelling: "/rʌn/", Dialect: "British", Qualifier: "strong"}},
		Keywords:       dictscrape.Keywords{Grammar: []string{"intransitive"}, Warnings: []string{"never progressive"}},
		Definitions: []dictscrape.Definition{{
			Number:  "1",
			Meaning: "to move quickly & lightly",
			Examples: []dictscrape.ExampleGroup{
				{Examples: []string{"I ran home."}},
				{Pattern: "run after", Examples: []string{"The dog ran after the ball."}},
			},
			SubDefinitions: []dictscrape.Definition{{
				Meaning:  "to run as a sport",
				Keywords: dictscrape.Keywords{Dialect: []string{"British"}},
			}},
		}},
		Frequency: "★★",
		Source:    dictscrape.DefaultSource,
	}
}

func TestEncoder_EncodeEntries(t *testing.T) {
	t.Parallel()

	t.Run("writes an entries document", func(t *testing.T) {
		t.Parallel()

		b, err := etree.NewEncoder().EncodeEntries([]*dictscrape.Entry{runEntry()})

		require.NoError(t, err)
		xml := string(b)
		assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, xml, `<entry word="run" source="Macmillan Dictionary" frequency="★★">`)
		assert.Contains(t, xml, `<pronunciation dialect="British" qualifier="strong">/rʌn/</pronunciation>`)
		assert.Contains(t, xml, `<definition number="1">`)
		assert.Contains(t, xml, `<meaning>to move quickly &amp; lightly</meaning>`)
		assert.Contains(t, xml, `<group pattern="run after">`)
		assert.Contains(t, xml, `<warning>never progressive</warning>`)
	})

	t.Run("writes an empty document without entries", func(t *testing.T) {
		t.Parallel()

		b, err := etree.NewEncoder().EncodeEntries(nil)

		require.NoError(t, err)
		assert.Contains(t, string(b), "<entries/>")
	})

	t.Run("returns EINVALID for an entry without a word", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewEncoder().EncodeEntries([]*dictscrape.Entry{{Source: "x"}})

		assert.Equal(t, dictscrape.EINVALID, dictscrape.ErrorCode(err))
	})
}

func TestDecoder_DecodeEntries(t *testing.T) {
	t.Parallel()

	t.Run("reads back an encoded entry", func(t *testing.T) {
		t.Parallel()

		entry := runEntry()
		b, err := etree.NewEncoder().EncodeEntries([]*dictscrape.Entry{entry})
		require.NoError(t, err)

		entries, err := etree.NewDecoder().DecodeEntries(b)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entry, entries[0])
	})

	t.Run("returns EPARSE for malformed xml", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewDecoder().DecodeEntries([]byte("<entries><entry"))

		assert.Equal(t, dictscrape.EPARSE, dictscrape.ErrorCode(err))
	})

	t.Run("returns EPARSE for a foreign root element", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewDecoder().DecodeEntries([]byte(`<urlset><url/></urlset>`))

		assert.Equal(t, dictscrape.EPARSE, dictscrape.ErrorCode(err))
	})

	t.Run("returns EPARSE for an entry without a word", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewDecoder().DecodeEntries([]byte(`<entries><entry source="x"/></entries>`))

		assert.Equal(t, dictscrape.EPARSE, dictscrape.ErrorCode(err))
	})
}
