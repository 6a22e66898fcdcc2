package travel

import (
	"context"
	"fmt"

	"github.com/wayfarer-ai/wayfarer/tool"
)

type findFlightsArgs struct {
	OriginCity      string `json:"origin_city" description:"Departure city"`
	DestinationCity string `json:"destination_city" description:"Arrival city"`
	TravelDate      string `json:"travel_date" description:"Travel date, e.g. '2026-09-14' or 'next Friday'"`
}

// NewFindFlightsTool builds the find_flights tool, a specialized web search.
func NewFindFlightsTool(client *SearchClient) *tool.FunctionTool {
	return tool.NewFunctionToolFromStruct(
		"find_flights",
		"Finds flights between two cities on a given date.",
		findFlightsArgs{},
		func(ctx context.Context, args map[string]any) (any, error) {
			origin, _ := args["origin_city"].(string)
			destination, _ := args["destination_city"].(string)
			date, _ := args["travel_date"].(string)
			query := fmt.Sprintf("flights from %s to %s on %s", origin, destination, date)
			return searchToolResult(ctx, client, query)
		},
	)
}
