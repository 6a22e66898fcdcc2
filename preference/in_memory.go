package preference

import (
	"context"
	"sync"
	"time"

	"github.com/wayfarer-ai/wayfarer/core"
)

// InMemoryStore is a volatile PreferenceStore keeping facts in a process
// local map. Suited for tests and demos; it does not survive restarts.
type InMemoryStore struct {
	mu    sync.RWMutex
	prefs map[string][]core.Preference
}

// NewInMemoryStore constructs an empty in-memory preference store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{prefs: make(map[string][]core.Preference)}
}

// Save appends a preference fact for the user.
func (s *InMemoryStore) Save(_ context.Context, userID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[userID] = append(s.prefs[userID], core.Preference{
		ID:      core.NewID(),
		UserID:  userID,
		Text:    text,
		Created: time.Now().UTC(),
	})
	return nil
}

// List returns all preference texts for the user in insertion order. An
// unknown user yields an empty slice.
func (s *InMemoryStore) List(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.prefs[userID]
	texts := make([]string, 0, len(stored))
	for _, p := range stored {
		texts = append(texts, p.Text)
	}
	return texts, nil
}
