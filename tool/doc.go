// Package tool implements the capability subsystem that lets the agent
// invoke structured tools (APIs, lookups, side effects) with schema
// validated arguments, consistent error handling and metadata for model
// guidance. The Registry is built once at startup and immutable thereafter.
package tool
