package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/dictscrape"
	"github.com/fwojciec/dictscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedEntryService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where SavedEntryService is expected
	var _ dictscrape.SavedEntryService = &mock.SavedEntryService{}
}

func TestSavedEntryService_SaveEntry(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveEntryFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *dictscrape.SavedEntry
		s := &mock.SavedEntryService{
			SaveEntryFn: func(_ context.Context, saved *dictscrape.SavedEntry) error {
				calledWith = saved
				return nil
			},
		}

		saved := &dictscrape.SavedEntry{
			Word:    "run",
			Dialect: dictscrape.DialectAmerican,
			Entry:   &dictscrape.Entry{Word: "run"},
		}

		err := s.SaveEntry(context.Background(), saved)

		require.NoError(t, err)
		assert.Equal(t, saved, calledWith)
	})
}
