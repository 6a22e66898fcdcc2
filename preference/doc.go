// Package preference implements the long-term preference store: an
// append-only log of user facts that survives process restarts. The SQLite
// store is the production backend; the in-memory store backs tests. Loads
// filter by exact user id, never by similarity.
package preference
