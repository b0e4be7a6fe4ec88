package session

import (
	"Cocktail-Companion/domain"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordView_CapsHistory(t *testing.T) {
	s := New()

	for i := 1; i <= 6; i++ {
		s.RecordView(domain.Cocktail{ID: fmt.Sprintf("%d", i), Name: fmt.Sprintf("Drink %d", i)})
	}

	recents := s.RecentlyViewed()
	require.Len(t, recents, RecentLimit)

	// newest first, the oldest view fell off
	assert.Equal(t, "6", recents[0].ID)
	assert.Equal(t, "2", recents[len(recents)-1].ID)
	for _, c := range recents {
		assert.NotEqual(t, "1", c.ID)
	}
}

func TestRecordView_ReviewMovesToFront(t *testing.T) {
	s := New()

	s.RecordView(domain.Cocktail{ID: "11", Name: "Margarita"})
	s.RecordView(domain.Cocktail{ID: "12", Name: "Mojito"})
	s.RecordView(domain.Cocktail{ID: "11", Name: "Margarita (updated)"})

	recents := s.RecentlyViewed()
	require.Len(t, recents, 2)
	assert.Equal(t, "11", recents[0].ID)
	assert.Equal(t, "Margarita (updated)", recents[0].Name)
	assert.Equal(t, "12", recents[1].ID)
}

func TestRecentlyViewed_ReturnsCopy(t *testing.T) {
	s := New()
	s.RecordView(domain.Cocktail{ID: "11", Name: "Margarita"})

	recents := s.RecentlyViewed()
	recents[0].Name = "mutated"

	assert.Equal(t, "Margarita", s.RecentlyViewed()[0].Name)
}

func TestDailySuggestion_FetchesOnce(t *testing.T) {
	s := New()
	calls := 0
	fetch := func(ctx context.Context) (domain.Cocktail, error) {
		calls++
		return domain.Cocktail{ID: "11", Name: "Margarita"}, nil
	}

	first, err := s.DailySuggestion(context.Background(), fetch)
	require.NoError(t, err)
	second, err := s.DailySuggestion(context.Background(), fetch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestDailySuggestion_RetriesAfterFailure(t *testing.T) {
	s := New()
	calls := 0
	fetch := func(ctx context.Context) (domain.Cocktail, error) {
		calls++
		if calls == 1 {
			return domain.Cocktail{}, errors.New("upstream down")
		}
		return domain.Cocktail{ID: "11", Name: "Margarita"}, nil
	}

	_, err := s.DailySuggestion(context.Background(), fetch)
	require.Error(t, err)

	// a failed fetch never poisons the cache
	cocktail, err := s.DailySuggestion(context.Background(), fetch)
	require.NoError(t, err)
	assert.Equal(t, "11", cocktail.ID)
	assert.Equal(t, 2, calls)
}

func TestShouldShowMoodPopup_OneShot(t *testing.T) {
	s := New()

	assert.True(t, s.ShouldShowMoodPopup())
	assert.False(t, s.ShouldShowMoodPopup())
	assert.False(t, s.ShouldShowMoodPopup())
}
