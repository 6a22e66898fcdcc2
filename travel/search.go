package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const customSearchURL = "https://www.googleapis.com/customsearch/v1"

// searchResultCount is the number of results requested per query.
const searchResultCount = 3

// SearchClient queries the Google Programmable Search (Custom Search) API.
type SearchClient struct {
	apiKey     string
	cx         string
	baseURL    string
	httpClient *http.Client
}

// SearchClientOptions configure the search client.
type SearchClientOptions struct {
	BaseURL string
	Timeout time.Duration
}

// NewSearchClient constructs a client for the given API key and engine ID.
func NewSearchClient(apiKey, cx string, optFns ...func(o *SearchClientOptions)) *SearchClient {
	opts := SearchClientOptions{BaseURL: customSearchURL, Timeout: 5 * time.Second}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &SearchClient{
		apiKey:     apiKey,
		cx:         cx,
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// SearchResult is one web search hit in the shape handed back to the model.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

type customSearchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"items"`
}

// Search runs the query and returns up to three results.
func (c *SearchClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("cx", c.cx)
	q.Set("q", query)
	q.Set("num", fmt.Sprintf("%d", searchResultCount))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connecting to search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var body customSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]SearchResult, 0, len(body.Items))
	for _, item := range body.Items {
		results = append(results, SearchResult{
			Title:   item.Title,
			Snippet: item.Snippet,
			Source:  item.Link,
		})
	}
	return results, nil
}

// searchToolResult runs a query and formats the outcome the way every
// search-backed tool reports it: a JSON result list, or a fixed no-results
// sentence the model can relay verbatim.
func searchToolResult(ctx context.Context, client *SearchClient, query string) (any, error) {
	results, err := client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return fmt.Sprintf("No web search results found for query: '%s'", query), nil
	}
	out, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("encode search results: %w", err)
	}
	return string(out), nil
}

// WebSearchTool exposes the search client as the web_search tool.
type WebSearchTool struct {
	client *SearchClient
}

// NewWebSearchTool wraps a search client.
func NewWebSearchTool(client *SearchClient) *WebSearchTool {
	return &WebSearchTool{client: client}
}

// Name implements tool.Tool.
func (t *WebSearchTool) Name() string { return "web_search" }

// Description implements tool.Tool.
func (t *WebSearchTool) Description() string {
	return "Performs a web search for current events, opening hours, or any other up-to-date information."
}

// Parameters implements tool.Tool.
func (t *WebSearchTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The search query",
			},
		},
		"required": []string{"query"},
	}
}

// Call implements tool.Tool.
func (t *WebSearchTool) Call(ctx context.Context, args map[string]any) (any, error) {
	query, _ := args["query"].(string)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	return searchToolResult(ctx, t.client, query)
}
