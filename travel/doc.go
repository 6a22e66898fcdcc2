// Package travel implements the concrete tool capabilities exposed to the
// model: weather forecasts, web search, hotel and flight lookup (both
// specialized searches), knowledge-base retrieval, and long-term preference
// save/load. Network-bound tools share short-timeout HTTP clients; failures
// are returned as errors for the dispatch loop to report back into the
// conversation.
package travel
