// Package model defines the vendor-neutral gateway interface the dispatch
// loop drives, plus the normalized request/response shapes adapters map to
// their provider SDKs. Concrete adapters live in subpackages (gemini, openai,
// anthropic); ScriptedModel provides deterministic responses for tests.
package model
