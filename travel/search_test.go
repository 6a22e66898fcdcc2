package travel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSearchServer records the last "q" parameter and serves canned items.
func newSearchServer(t *testing.T, items []map[string]string, lastQuery *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*lastQuery = r.URL.Query().Get("q")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"items": items}))
	}))
}

func TestWebSearchTool(t *testing.T) {
	var lastQuery string
	srv := newSearchServer(t, []map[string]string{
		{"title": "Lisbon guide", "snippet": "what to see", "link": "https://example.com/lisbon"},
		{"title": "Lisbon food", "snippet": "where to eat", "link": "https://example.com/food"},
	}, &lastQuery)
	defer srv.Close()

	client := NewSearchClient("key", "cx", func(o *SearchClientOptions) { o.BaseURL = srv.URL })
	result, err := NewWebSearchTool(client).Call(context.Background(), map[string]any{"query": "things to do in Lisbon"})
	require.NoError(t, err)
	assert.Equal(t, "things to do in Lisbon", lastQuery)

	var results []SearchResult
	require.NoError(t, json.Unmarshal([]byte(result.(string)), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Lisbon guide", results[0].Title)
	assert.Equal(t, "https://example.com/lisbon", results[0].Source)
}

func TestWebSearchTool_NoResults(t *testing.T) {
	var lastQuery string
	srv := newSearchServer(t, nil, &lastQuery)
	defer srv.Close()

	client := NewSearchClient("key", "cx", func(o *SearchClientOptions) { o.BaseURL = srv.URL })
	result, err := NewWebSearchTool(client).Call(context.Background(), map[string]any{"query": "nothing at all"})
	require.NoError(t, err)
	assert.Equal(t, "No web search results found for query: 'nothing at all'", result)
}

func TestWebSearchTool_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewSearchClient("key", "cx", func(o *SearchClientOptions) { o.BaseURL = srv.URL })
	_, err := NewWebSearchTool(client).Call(context.Background(), map[string]any{"query": "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFindHotelsTool_QuerySynthesis(t *testing.T) {
	var lastQuery string
	srv := newSearchServer(t, []map[string]string{{"title": "h", "snippet": "s", "link": "l"}}, &lastQuery)
	defer srv.Close()
	client := NewSearchClient("key", "cx", func(o *SearchClientOptions) { o.BaseURL = srv.URL })
	hotels := NewFindHotelsTool(client)

	_, err := hotels.Call(context.Background(), map[string]any{"city": "Lisbon", "preferences": "boutique"})
	require.NoError(t, err)
	assert.Equal(t, "boutique hotels in Lisbon", lastQuery)

	// preferences are optional and default to "best rated"
	_, err = hotels.Call(context.Background(), map[string]any{"city": "Paris"})
	require.NoError(t, err)
	assert.Equal(t, "best rated hotels in Paris", lastQuery)
}

func TestFindHotelsTool_MissingCity(t *testing.T) {
	client := NewSearchClient("key", "cx")
	_, err := NewFindHotelsTool(client).Call(context.Background(), map[string]any{})
	assert.Error(t, err)
}

func TestFindFlightsTool_QuerySynthesis(t *testing.T) {
	var lastQuery string
	srv := newSearchServer(t, []map[string]string{{"title": "f", "snippet": "s", "link": "l"}}, &lastQuery)
	defer srv.Close()
	client := NewSearchClient("key", "cx", func(o *SearchClientOptions) { o.BaseURL = srv.URL })

	_, err := NewFindFlightsTool(client).Call(context.Background(), map[string]any{
		"origin_city":      "Berlin",
		"destination_city": "Lisbon",
		"travel_date":      "2026-09-14",
	})
	require.NoError(t, err)
	assert.Equal(t, "flights from Berlin to Lisbon on 2026-09-14", lastQuery)
}
