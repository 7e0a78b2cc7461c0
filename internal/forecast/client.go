package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	owmForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
	httpTimeout    = 10 * time.Second
)

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// Client fetches the 5-day/3-hour forecast from OpenWeatherMap.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: owmForecastURL, client: newHTTPClient()}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, client: newHTTPClient()}
}

// Entry is one timestamped slot of the 5-day/3-hour forecast list.
type Entry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s
	} `json:"wind"`
}

type owmForecastResponse struct {
	List []Entry `json:"list"`
}

// Forecast retrieves all forecast slots for the given coordinates.
// Non-200 responses and malformed bodies are returned as errors.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]Entry, error) {
	endpoint := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=metric&lang=es",
		c.baseURL, lat, lon, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating forecast request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	var raw owmForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding forecast response: %w", err)
	}

	return raw.List, nil
}
