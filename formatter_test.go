package dictscrape_test

import (
	"testing"

	"github.com/fwojciec/dictscrape"
	"github.com/stretchr/testify/assert"
)

func TestFormatEntries(t *testing.T) {
	t.Parallel()

	t.Run("formats header, pronunciations and keywords", func(t *testing.T) {
		t.Parallel()

		entries := []*dictscrape.Entry{{
			Word:           "run",
			PartsOfSpeech:  []string{"verb", "noun"},
			Frequency:      "★★★",
			Pronunciations: []dictscrape.Pronunciation{{Spelling: "/rʌn/", Dialect: "British", Qualifier: "strong"}},
			Keywords:       dictscrape.Keywords{Grammar: []string{"intransitive"}, Style: []string{"informal"}},
		}}

		result := dictscrape.FormatEntries(entries)

		expected := "run  verb, noun  ★★★\n  /rʌn/ (British, strong)\n  [intransitive, informal]"
		assert.Equal(t, expected, result)
	})

	t.Run("nests sub-definitions and example groups", func(t *testing.T) {
		t.Parallel()

		entries := []*dictscrape.Entry{{
			Word: "run",
			Definitions: []dictscrape.Definition{{
				Number:  "1",
				Meaning: "to move quickly",
				Examples: []dictscrape.ExampleGroup{
					{Examples: []string{"I ran home."}},
					{Pattern: "run after", Examples: []string{"The dog ran after the ball."}},
				},
				SubDefinitions: []dictscrape.Definition{{
					Meaning:  "to run as a sport",
					Keywords: dictscrape.Keywords{Dialect: []string{"British"}},
				}},
			}},
		}}

		result := dictscrape.FormatEntries(entries)

		expected := "run\n" +
			"1. to move quickly\n" +
			"     I ran home.\n" +
			"   run after\n" +
			"     The dog ran after the ball.\n" +
			"   - to run as a sport [British]"
		assert.Equal(t, expected, result)
	})

	t.Run("formats multiple entries with blank line separator", func(t *testing.T) {
		t.Parallel()

		result := dictscrape.FormatEntries([]*dictscrape.Entry{{Word: "run"}, {Word: "run", PartsOfSpeech: []string{"noun"}}})

		assert.Equal(t, "run\n\nrun  noun", result)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, dictscrape.FormatEntries([]*dictscrape.Entry{}))
	})
}

func TestFormatErrorResult(t *testing.T) {
	t.Parallel()

	result := dictscrape.FormatErrorResult(&dictscrape.ErrorResult{
		Messages:    []string{"Sorry, no search result for runx", "Did you mean:"},
		Suggestions: []string{"run", "rune"},
	})

	assert.Equal(t, "Sorry, no search result for runx\nDid you mean:\n  run\n  rune", result)
}
