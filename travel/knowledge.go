package travel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wayfarer-ai/wayfarer/knowledge"
)

// knowledgeResultLimit caps the number of advice entries returned per query.
const knowledgeResultLimit = 2

// noAdviceFound is returned verbatim when no corpus entry matches.
const noAdviceFound = "No relevant planning advice found in the knowledge base."

// SearchKnowledgeTool retrieves trip-planning strategies from the static
// knowledge corpus.
type SearchKnowledgeTool struct {
	corpus *knowledge.Corpus
}

// NewSearchKnowledgeTool wraps a corpus.
func NewSearchKnowledgeTool(corpus *knowledge.Corpus) *SearchKnowledgeTool {
	return &SearchKnowledgeTool{corpus: corpus}
}

// Name implements tool.Tool.
func (t *SearchKnowledgeTool) Name() string { return "search_knowledge" }

// Description implements tool.Tool.
func (t *SearchKnowledgeTool) Description() string {
	return "Searches the internal knowledge base for general travel-planning strategies and advice. Not for destination facts."
}

// Parameters implements tool.Tool.
func (t *SearchKnowledgeTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "What planning advice to look for, e.g. 'how to structure a week-long itinerary'",
			},
		},
		"required": []string{"query"},
	}
}

// Call implements tool.Tool.
func (t *SearchKnowledgeTool) Call(_ context.Context, args map[string]any) (any, error) {
	query, _ := args["query"].(string)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	entries := t.corpus.Search(query, knowledgeResultLimit)
	if len(entries) == 0 {
		return noAdviceFound, nil
	}
	out, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode knowledge results: %w", err)
	}
	return string(out), nil
}
