package core

import (
	"context"
	"time"
)

// Preference is a persisted long-term fact about a user, independent of any
// single session. Preferences form an append-only log: there is no update or
// delete operation.
type Preference struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}

// PreferenceStore persists user preferences across process restarts.
// Implementations must be safe for concurrent use; each Save is atomic and
// scoped to a single user, so no cross-user coordination is required.
type PreferenceStore interface {
	// Save appends a preference fact for the user.
	Save(ctx context.Context, userID, text string) error

	// List returns all preference texts stored for the user in insertion
	// order. An unknown user yields an empty slice, never an error.
	List(ctx context.Context, userID string) ([]string, error)
}
