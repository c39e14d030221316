package controllers

import (
	"errors"
	"net/http"
	"shorecrew/internal/providers"
	"shorecrew/internal/services"
	"shorecrew/internal/view"
)

type WeatherController struct {
	logger  providers.Logger
	service services.WeatherServiceInterface
}

func NewWeatherController(logger providers.Logger, service services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		logger:  logger,
		service: service,
	}
}

func (wc *WeatherController) GetWeather(w http.ResponseWriter, r *http.Request) {
	status, snapshot, loc := wc.service.State()
	writeJSON(w, http.StatusOK, view.ProjectWeather(status, snapshot, loc))
}

// RefreshWeather performs one explicit fetch and returns the resulting
// panel. A fetch failure is not an HTTP error: the panel degrades to its
// fallback values.
func (wc *WeatherController) RefreshWeather(w http.ResponseWriter, r *http.Request) {
	if err := wc.service.Refresh(r.Context()); err != nil {
		if errors.Is(err, services.ErrRefreshInFlight) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		wc.logger.Warnf(providers.TypeApp, "Weather refresh failed: %s", err)
	}

	status, snapshot, loc := wc.service.State()
	writeJSON(w, http.StatusOK, view.ProjectWeather(status, snapshot, loc))
}
