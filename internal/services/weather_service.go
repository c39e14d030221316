package services

import (
	"context"
	"errors"
	"shorecrew/internal/models"
	"shorecrew/internal/structures"
	"sync"
)

type WeatherStatus int

const (
	WeatherIdle WeatherStatus = iota
	WeatherPending
	WeatherLoaded
	WeatherError
)

func (s WeatherStatus) String() string {
	switch s {
	case WeatherPending:
		return "pending"
	case WeatherLoaded:
		return "loaded"
	case WeatherError:
		return "error"
	default:
		return "idle"
	}
}

// ErrRefreshInFlight is returned when a refresh is requested while an
// earlier fetch is still pending.
var ErrRefreshInFlight = errors.New("weather refresh already in flight")

// WeatherClient is the outbound forecast dependency. The HTTP implementation
// lives in internal/weather.
type WeatherClient interface {
	FetchCurrent(ctx context.Context, lat, lon float64) (models.WeatherSnapshot, error)
}

type WeatherServiceInterface interface {
	SetLocation(loc models.Location)
	Refresh(ctx context.Context) error
	State() (WeatherStatus, *models.WeatherSnapshot, models.Location)
}

// WeatherService owns the {idle, pending, loaded, error} fetch state machine.
// There is no periodic refresh: only an explicit Refresh call re-enters
// pending, and the fetch is bounded by the configured timeout.
type WeatherService struct {
	mu       sync.Mutex
	client   WeatherClient
	conf     structures.WeatherConfig
	status   WeatherStatus
	snapshot *models.WeatherSnapshot
	location models.Location
}

func NewWeatherService(conf *structures.Config, client WeatherClient) WeatherServiceInterface {
	return &WeatherService{
		client: client,
		conf:   conf.Weather,
	}
}

// SetLocation pins the resolved location. Called once at startup, before the
// initial refresh.
func (ws *WeatherService) SetLocation(loc models.Location) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.location = loc
}

func (ws *WeatherService) Refresh(ctx context.Context) error {
	ws.mu.Lock()
	if ws.status == WeatherPending {
		ws.mu.Unlock()
		return ErrRefreshInFlight
	}
	ws.status = WeatherPending
	loc := ws.location
	ws.mu.Unlock()

	fetchCtx, cancel := context.WithTimeout(ctx, ws.conf.Timeout)
	defer cancel()

	snapshot, err := ws.client.FetchCurrent(fetchCtx, loc.Latitude, loc.Longitude)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if err != nil {
		ws.status = WeatherError
		ws.snapshot = nil
		return err
	}
	ws.status = WeatherLoaded
	ws.snapshot = &snapshot
	return nil
}

func (ws *WeatherService) State() (WeatherStatus, *models.WeatherSnapshot, models.Location) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.snapshot == nil {
		return ws.status, nil, ws.location
	}
	snapshot := *ws.snapshot
	return ws.status, &snapshot, ws.location
}
