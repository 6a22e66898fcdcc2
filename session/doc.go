// Package session owns the in-memory conversation map. Sessions are created
// lazily per user, seeded with the fixed policy exchange and, when the user
// has stored preferences, a one-time preference summary exchange. A session
// lives for the process lifetime; stored preferences saved mid-conversation
// become visible to new sessions only.
package session
