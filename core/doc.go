// Package core provides the foundational domain types used by Wayfarer. It
// defines the core abstractions for:
//
//   - Turns (role-tagged conversation entries carrying text or tool data)
//   - Sessions (per-user conversational containers with append-only history)
//   - Tool calls / tool results exchanged with the model gateway
//   - The pluggable preference store for long-term user facts
//
// The package intentionally keeps implementation concerns (persistence,
// gateway adapters, concrete tools) out of scope, exposing small interfaces
// to enable custom backends.
package core
