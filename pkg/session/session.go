// Package session holds process-lifetime state shared across screens: the
// daily suggestion memo, the recently-viewed history and the one-shot mood
// popup gate. Nothing here is persisted; a restart resets it all.
package session

import (
	"Cocktail-Companion/domain"
	"context"
	"sync"
)

// RecentLimit caps the recently-viewed history; the oldest entry is evicted
// silently on overflow.
const RecentLimit = 5

type Session struct {
	mu sync.Mutex

	dailySuggestion *domain.Cocktail
	recents         []domain.Cocktail
	moodPopupShown  bool

	// fetchMu serializes suggestion fetches so concurrent first visits to the
	// home screen trigger a single upstream call.
	fetchMu sync.Mutex
}

func New() *Session {
	return &Session{}
}

// RecordView puts a viewed cocktail at the front of the history. Re-viewing a
// drink moves its entry to the front with the latest snapshot content rather
// than growing the list.
func (s *Session) RecordView(cocktail domain.Cocktail) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.recents[:0]
	for _, c := range s.recents {
		if c.ID != cocktail.ID {
			kept = append(kept, c)
		}
	}
	s.recents = append([]domain.Cocktail{cocktail}, kept...)
	if len(s.recents) > RecentLimit {
		s.recents = s.recents[:RecentLimit]
	}
}

// RecentlyViewed returns the history, most recent first.
func (s *Session) RecentlyViewed() []domain.Cocktail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Cocktail, len(s.recents))
	copy(out, s.recents)
	return out
}

// DailySuggestion returns the cached suggestion, fetching it through fetch on
// the first call. Only success populates the cache: a failed fetch leaves it
// empty so the next home visit retries.
func (s *Session) DailySuggestion(ctx context.Context, fetch func(ctx context.Context) (domain.Cocktail, error)) (domain.Cocktail, error) {
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()

	s.mu.Lock()
	cached := s.dailySuggestion
	s.mu.Unlock()
	if cached != nil {
		return *cached, nil
	}

	cocktail, err := fetch(ctx)
	if err != nil {
		return domain.Cocktail{}, err
	}

	s.mu.Lock()
	s.dailySuggestion = &cocktail
	s.mu.Unlock()
	return cocktail, nil
}

// ShouldShowMoodPopup reports whether the one-time barman popup should be
// shown, and consumes the gate: it returns true at most once per process.
func (s *Session) ShouldShowMoodPopup() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.moodPopupShown {
		return false
	}
	s.moodPopupShown = true
	return true
}
