package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const openWeatherForecastURL = "http://api.openweathermap.org/data/2.5/forecast"

// WeatherClient queries the OpenWeather 5-day/3-hour forecast API.
type WeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// WeatherClientOptions configure the weather client.
type WeatherClientOptions struct {
	BaseURL string
	Timeout time.Duration
}

// NewWeatherClient constructs a client for the given API key.
func NewWeatherClient(apiKey string, optFns ...func(o *WeatherClientOptions)) *WeatherClient {
	opts := WeatherClientOptions{BaseURL: openWeatherForecastURL, Timeout: 5 * time.Second}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &WeatherClient{
		apiKey:     apiKey,
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// forecastSummary is the simplified shape handed back to the model.
type forecastSummary struct {
	Day     string  `json:"day"`
	Summary string  `json:"summary"`
	Temp    float64 `json:"temp"`
}

type forecastResponse struct {
	List []struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
	Message any `json:"message"`
}

// Forecast returns a 2-entry forecast summary (tomorrow and the day after)
// for the city, serialized as JSON.
func (c *WeatherClient) Forecast(ctx context.Context, city string) (string, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("cnt", "16") // 16 x 3h slots cover the next two days

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("connecting to forecast API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", fmt.Errorf("unauthorized: check the OpenWeather API key")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	var forecast forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return "", fmt.Errorf("decode forecast response: %w", err)
	}
	if len(forecast.List) < 16 {
		return "", fmt.Errorf("no forecast data found for city %q", city)
	}

	summaries := []forecastSummary{
		summarize("Tomorrow", forecast, 7),
		summarize("The Day After Tomorrow", forecast, 15),
	}
	out, err := json.Marshal(summaries)
	if err != nil {
		return "", fmt.Errorf("encode forecast summary: %w", err)
	}
	return string(out), nil
}

func summarize(day string, forecast forecastResponse, idx int) forecastSummary {
	entry := forecast.List[idx]
	s := forecastSummary{Day: day, Temp: entry.Main.Temp}
	if len(entry.Weather) > 0 {
		s.Summary = entry.Weather[0].Description
	}
	return s
}

// WeatherTool exposes the forecast client as the get_weather tool.
type WeatherTool struct {
	client *WeatherClient
}

// NewWeatherTool wraps a weather client.
func NewWeatherTool(client *WeatherClient) *WeatherTool {
	return &WeatherTool{client: client}
}

// Name implements tool.Tool.
func (t *WeatherTool) Name() string { return "get_weather" }

// Description implements tool.Tool.
func (t *WeatherTool) Description() string {
	return "Gets the 2-day weather forecast for a specific city."
}

// Parameters implements tool.Tool.
func (t *WeatherTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "City to forecast, e.g. 'Lisbon'",
			},
		},
		"required": []string{"city"},
	}
}

// Call implements tool.Tool.
func (t *WeatherTool) Call(ctx context.Context, args map[string]any) (any, error) {
	city, _ := args["city"].(string)
	if city == "" {
		return nil, fmt.Errorf("city is required")
	}
	return t.client.Forecast(ctx, city)
}
