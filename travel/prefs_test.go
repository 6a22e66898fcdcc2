package travel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-ai/wayfarer/knowledge"
	"github.com/wayfarer-ai/wayfarer/preference"
)

func TestSavePreferenceTool(t *testing.T) {
	store := preference.NewInMemoryStore()
	save := NewSavePreferenceTool(store)

	result, err := save.Call(context.Background(), map[string]any{
		"preference": "User is vegetarian",
		"user_id":    "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "Successfully saved preference: 'User is vegetarian'", result)

	prefs, err := store.List(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"User is vegetarian"}, prefs)
}

func TestSavePreferenceTool_MissingUserID(t *testing.T) {
	save := NewSavePreferenceTool(preference.NewInMemoryStore())
	_, err := save.Call(context.Background(), map[string]any{"preference": "User is vegetarian"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_id was not provided")
}

func TestSavePreferenceTool_SchemaHidesUserID(t *testing.T) {
	params := NewSavePreferenceTool(preference.NewInMemoryStore()).Parameters()
	props, ok := params["properties"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, props, "user_id")
}

func TestLoadPreferencesTool(t *testing.T) {
	store := preference.NewInMemoryStore()
	require.NoError(t, store.Save(context.Background(), "alice", "User is vegetarian"))
	require.NoError(t, store.Save(context.Background(), "alice", "User prefers window seats"))

	load := NewLoadPreferencesTool(store)
	result, err := load.Call(context.Background(), map[string]any{"user_id": "alice"})
	require.NoError(t, err)
	assert.JSONEq(t, `["User is vegetarian","User prefers window seats"]`, result.(string))
}

func TestLoadPreferencesTool_EmptyIsJSONList(t *testing.T) {
	load := NewLoadPreferencesTool(preference.NewInMemoryStore())
	result, err := load.Call(context.Background(), map[string]any{"user_id": "nobody"})
	require.NoError(t, err)
	assert.Equal(t, "[]", result)
}

func TestSearchKnowledgeTool(t *testing.T) {
	searchTool := NewSearchKnowledgeTool(knowledge.Default())

	result, err := searchTool.Call(context.Background(), map[string]any{"query": "weather forecast itinerary"})
	require.NoError(t, err)
	assert.Contains(t, result.(string), "forecast")

	result, err = searchTool.Call(context.Background(), map[string]any{"query": "zzzqqqxxx"})
	require.NoError(t, err)
	assert.Equal(t, "No relevant planning advice found in the knowledge base.", result)
}

func TestToolset_NamesAndOrder(t *testing.T) {
	tools := Toolset(NewWeatherClient("k"), NewSearchClient("k", "cx"), knowledge.Default(), preference.NewInMemoryStore())
	names := make([]string, 0, len(tools))
	for _, tl := range tools {
		names = append(names, tl.Name())
	}
	assert.Equal(t, []string{
		"get_weather", "web_search", "find_hotels", "find_flights",
		"search_knowledge", "save_preference", "load_preferences",
	}, names)
}
