package dictscrape_test

import (
	"testing"

	"github.com/fwojciec/dictscrape"
	"github.com/stretchr/testify/assert"
)

func TestClassifyKeywords(t *testing.T) {
	t.Parallel()

	t.Run("puts each recognized category in its own bucket", func(t *testing.T) {
		t.Parallel()

		tags := []dictscrape.KeywordTag{
			{Category: dictscrape.CategorySyntaxCoding, Text: "transitive"},
			{Category: dictscrape.CategoryStyleLevel, Text: "informal"},
			{Category: dictscrape.CategoryDialect, Text: "British"},
			{Category: dictscrape.CategoryRestrictionClass, Text: "never progressive"},
			{Category: dictscrape.CategoryGrammarText, Text: "usually passive"},
		}

		k := dictscrape.ClassifyKeywords(tags)

		assert.Equal(t, []string{"transitive"}, k.Grammar)
		assert.Equal(t, []string{"informal"}, k.Style)
		assert.Equal(t, []string{"British"}, k.Dialect)
		assert.Equal(t, []string{"never progressive"}, k.Warnings)
		assert.NotContains(t, k.All(), "usually passive")
	})

	t.Run("preserves order within a bucket", func(t *testing.T) {
		t.Parallel()

		k := dictscrape.ClassifyKeywords([]dictscrape.KeywordTag{
			{Category: dictscrape.CategorySyntaxCoding, Text: "intransitive"},
			{Category: dictscrape.CategorySyntaxCoding, Text: "countable"},
		})

		assert.Equal(t, []string{"intransitive", "countable"}, k.Grammar)
	})

	t.Run("ignores unrecognized categories", func(t *testing.T) {
		t.Parallel()

		k := dictscrape.ClassifyKeywords([]dictscrape.KeywordTag{
			{Category: "REGISTER-NOTE", Text: "literary"},
		})

		assert.True(t, k.IsZero())
	})

	t.Run("returns zero keywords for no tags", func(t *testing.T) {
		t.Parallel()

		assert.True(t, dictscrape.ClassifyKeywords(nil).IsZero())
	})
}

func TestKeywords_All(t *testing.T) {
	t.Parallel()

	k := dictscrape.Keywords{
		Warnings: []string{"w"},
		Grammar:  []string{"g"},
		Dialect:  []string{"d"},
		Style:    []string{"s"},
	}

	assert.Equal(t, []string{"g", "s", "d", "w"}, k.All())
}
