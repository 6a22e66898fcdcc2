package core

import (
	"sync"
	"time"
)

// Session is the per-user conversation state held for the lifetime of the
// serving process. It owns an append-only, ordered turn sequence.
//
// Contract:
//   - The turn sequence always begins with the fixed system-policy pair,
//     optionally followed by one preference-seed pair, before any real
//     user message.
//   - Append mutations update the Updated timestamp.
//   - Turns returns a defensive copy to avoid external mutation.
//   - Lock/Unlock serialize whole conversational exchanges: concurrent
//     requests for the same user must not interleave appends.
type Session struct {
	UserID  string
	Created time.Time
	Updated time.Time

	mu    sync.RWMutex // guards turns
	turns []Turn

	exchangeMu sync.Mutex // held for the duration of one full exchange
}

// NewSession creates an empty session for the given user.
func NewSession(userID string) *Session {
	now := time.Now().UTC()
	return &Session{UserID: userID, Created: now, Updated: now}
}

// Append adds turns to the history. Appended turns are treated as immutable.
func (s *Session) Append(turns ...Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turns...)
	s.Updated = time.Now().UTC()
}

// Turns returns a defensive copy of the full turn sequence.
func (s *Session) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := make([]Turn, len(s.turns))
	copy(turns, s.turns)
	return turns
}

// Len returns the number of turns in the history.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Lock acquires the exchange lock. The dispatch loop holds it from the first
// gateway call until the final answer so same-user requests serialize while
// different users run fully concurrent.
func (s *Session) Lock() { s.exchangeMu.Lock() }

// Unlock releases the exchange lock.
func (s *Session) Unlock() { s.exchangeMu.Unlock() }
