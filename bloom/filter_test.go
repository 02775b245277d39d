package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/dictscrape/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Visit(t *testing.T) {
	t.Parallel()

	t.Run("reports first visit as new", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(64, 0.001)

		assert.True(t, f.Visit("run_1"))
		assert.True(t, f.Visit("run_2"))
	})

	t.Run("reports repeat visit as seen", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(64, 0.001)

		f.Visit("run_1")

		assert.False(t, f.Visit("run_1"))
		assert.True(t, f.Visit("run_2"))
	})

	t.Run("never drops a new slug on a filter collision", func(t *testing.T) {
		t.Parallel()

		// A one-bit filter reports every slug after the first as present.
		f := bloom.NewFilter(1, 0.99)

		for i := 1; i <= 20; i++ {
			assert.True(t, f.Visit(fmt.Sprintf("run_%d", i)))
		}
		assert.False(t, f.Visit("run_7"))
	})
}
