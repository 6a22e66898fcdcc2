package travel

import (
	"context"
	"fmt"

	"github.com/wayfarer-ai/wayfarer/tool"
)

// defaultHotelPreferences is used when the model supplies none.
const defaultHotelPreferences = "best rated"

type findHotelsArgs struct {
	City        string  `json:"city" description:"City to find hotels in"`
	Preferences *string `json:"preferences,omitempty" description:"Optional preferences such as 'boutique', 'cheap', 'near the beach'"`
}

// NewFindHotelsTool builds the find_hotels tool, a specialized web search.
func NewFindHotelsTool(client *SearchClient) *tool.FunctionTool {
	return tool.NewFunctionToolFromStruct(
		"find_hotels",
		"Finds hotels in a city, optionally matching stated preferences.",
		findHotelsArgs{},
		func(ctx context.Context, args map[string]any) (any, error) {
			city, _ := args["city"].(string)
			preferences := defaultHotelPreferences
			if p, ok := args["preferences"].(string); ok && p != "" {
				preferences = p
			}
			query := fmt.Sprintf("%s hotels in %s", preferences, city)
			return searchToolResult(ctx, client, query)
		},
	)
}
