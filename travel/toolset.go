package travel

import (
	"github.com/wayfarer-ai/wayfarer/core"
	"github.com/wayfarer-ai/wayfarer/knowledge"
	"github.com/wayfarer-ai/wayfarer/tool"
)

// Toolset assembles the full travel tool suite in declaration order.
func Toolset(weather *WeatherClient, search *SearchClient, corpus *knowledge.Corpus, store core.PreferenceStore) []tool.Tool {
	return []tool.Tool{
		NewWeatherTool(weather),
		NewWebSearchTool(search),
		NewFindHotelsTool(search),
		NewFindFlightsTool(search),
		NewSearchKnowledgeTool(corpus),
		NewSavePreferenceTool(store),
		NewLoadPreferencesTool(store),
	}
}
