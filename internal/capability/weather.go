package capability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// OpenWeatherClient reports current conditions via the OpenWeatherMap API.
type OpenWeatherClient struct {
	key     string
	baseURL string
	client  *http.Client
}

// NewOpenWeatherClient creates a weather client.
func NewOpenWeatherClient(key string) *OpenWeatherClient {
	return &OpenWeatherClient{
		key:     key,
		baseURL: "https://api.openweathermap.org",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current fetches conditions for the location and renders a spoken summary.
func (c *OpenWeatherClient) Current(ctx context.Context, location string) (string, error) {
	if c.key == "" {
		return "", fmt.Errorf("weather: missing OpenWeatherMap API key")
	}

	endpoint := fmt.Sprintf(
		"%s/data/2.5/weather?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(location), c.key,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("weather: failed to read response: %w", err)
	}

	doc := gjson.ParseBytes(body)
	switch doc.Get("cod").String() {
	case "200":
	case "401":
		return "", fmt.Errorf("weather: OpenWeatherMap rejected the API key")
	default:
		return fmt.Sprintf("I couldn't find weather data for %s.", location), nil
	}

	desc := doc.Get("weather.0.description").String()
	temp := doc.Get("main.temp").Float()
	feels := doc.Get("main.feels_like").Float()
	humidity := doc.Get("main.humidity").Int()

	return fmt.Sprintf(
		"The weather in %s is %s with a temperature of %.1f°C, feels like %.1f°C, and humidity at %d%%.",
		location, desc, temp, feels, humidity,
	), nil
}
