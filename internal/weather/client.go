package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"shorecrew/internal/models"
	"shorecrew/internal/providers"
	"shorecrew/internal/services"
	"shorecrew/internal/structures"
	"strconv"

	json "github.com/goccy/go-json"
)

// Client fetches current conditions from an open-meteo compatible forecast
// endpoint. One request per call, no retry, no backoff.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) services.WeatherClient {
	return &Client{
		httpClient: &http.Client{
			Timeout: conf.Weather.Timeout,
		},
		baseURL: conf.Weather.BaseURL,
		logger:  logger,
		metrics: metrics,
	}
}

func (c *Client) FetchCurrent(ctx context.Context, lat, lon float64) (models.WeatherSnapshot, error) {
	params := url.Values{
		"latitude":         {strconv.FormatFloat(lat, 'f', 4, 64)},
		"longitude":        {strconv.FormatFloat(lon, 'f', 4, 64)},
		"current":          {"temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m"},
		"temperature_unit": {"celsius"},
		"wind_speed_unit":  {"kmh"},
	}
	fullURL := c.baseURL + "/v1/forecast?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncWeatherFetches("error")
		return models.WeatherSnapshot{}, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.IncWeatherFetches("error")
		return models.WeatherSnapshot{}, fmt.Errorf("forecast API error: status %d: %s", resp.StatusCode, body)
	}

	var forecast response
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		c.metrics.IncWeatherFetches("error")
		return models.WeatherSnapshot{}, fmt.Errorf("decode response: %w", err)
	}

	c.metrics.IncWeatherFetches("success")
	return models.WeatherSnapshot{
		TemperatureC: forecast.Current.Temperature,
		WindSpeedKmh: forecast.Current.WindSpeed,
		HumidityPct:  forecast.Current.Humidity,
		Code:         forecast.Current.WeatherCode,
		Condition:    ConditionLabel(forecast.Current.WeatherCode),
	}, nil
}

// Forecast API response types.

type response struct {
	Current current `json:"current"`
}

type current struct {
	Temperature float64 `json:"temperature_2m"`
	Humidity    float64 `json:"relative_humidity_2m"`
	WeatherCode int     `json:"weather_code"`
	WindSpeed   float64 `json:"wind_speed_10m"`
}
