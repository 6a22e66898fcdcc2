// Package knowledge holds the static travel-planning corpus queried by the
// search_knowledge tool: generic planning strategies and advice, not
// destination facts. Retrieval is a lexical token-overlap scan; the corpus
// is small and loaded once at startup.
package knowledge
