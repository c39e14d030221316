package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"shorecrew/internal/models"
	"shorecrew/internal/services"
	"shorecrew/internal/structures"
	"shorecrew/internal/testutil"
	"shorecrew/internal/view"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeatherController(client *testutil.MockWeatherClient) (*WeatherController, services.WeatherServiceInterface) {
	conf := &structures.Config{
		Weather: structures.WeatherConfig{BaseURL: "http://forecast.test", Timeout: time.Second},
	}
	svc := services.NewWeatherService(conf, client)
	return NewWeatherController(&testutil.MockLogger{}, svc), svc
}

func TestGetWeather_IdleBeforeAnyFetch(t *testing.T) {
	wc, _ := newWeatherController(&testutil.MockWeatherClient{})

	rr := httptest.NewRecorder()
	wc.GetWeather(rr, httptest.NewRequest(http.MethodGet, "/weather", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var panel view.WeatherPanel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &panel))
	assert.Equal(t, "idle", panel.Status)
}

func TestRefreshWeather_Success(t *testing.T) {
	client := &testutil.MockWeatherClient{
		FetchFn: func(_ context.Context, _, _ float64) (models.WeatherSnapshot, error) {
			return models.WeatherSnapshot{TemperatureC: 19.9, WindSpeedKmh: 8.1, HumidityPct: 70, Condition: "Clear"}, nil
		},
	}
	wc, svc := newWeatherController(client)
	svc.SetLocation(models.Location{Latitude: 34.0195, Longitude: -118.4912, Label: "Santa Monica"})

	rr := httptest.NewRecorder()
	wc.RefreshWeather(rr, httptest.NewRequest(http.MethodPost, "/weather/refresh", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var panel view.WeatherPanel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &panel))
	assert.Equal(t, "loaded", panel.Status)
	assert.Equal(t, "19.9°C", panel.Temperature)
	assert.Equal(t, "Santa Monica", panel.Location)
}

func TestRefreshWeather_FailureDegradesToFallbacks(t *testing.T) {
	client := &testutil.MockWeatherClient{
		FetchFn: func(_ context.Context, _, _ float64) (models.WeatherSnapshot, error) {
			return models.WeatherSnapshot{}, assert.AnError
		},
	}
	wc, _ := newWeatherController(client)

	rr := httptest.NewRecorder()
	wc.RefreshWeather(rr, httptest.NewRequest(http.MethodPost, "/weather/refresh", nil))

	// Weather failures are not HTTP failures: the panel degrades instead.
	assert.Equal(t, http.StatusOK, rr.Code)

	var panel view.WeatherPanel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &panel))
	assert.Equal(t, "error", panel.Status)
	assert.Equal(t, view.FallbackValue, panel.Temperature)
	assert.Equal(t, view.FallbackValue, panel.Wind)
	assert.Equal(t, view.FallbackCondition, panel.Condition)
}
