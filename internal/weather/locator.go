package weather

import (
	"context"
	"fmt"
	"net/http"
	"shorecrew/internal/models"
	"shorecrew/internal/providers"
	"shorecrew/internal/structures"
	"time"

	json "github.com/goccy/go-json"
)

// DefaultLocation is the fallback coordinate pair when no location can be
// resolved. The weather fetch must never be skipped because resolution
// failed, so Resolve substitutes this instead of returning an error.
var DefaultLocation = models.Location{
	Latitude:  34.0195,
	Longitude: -118.4912,
	Label:     "Santa Monica",
}

const defaultLookupTimeout = 5 * time.Second

type ResolverInterface interface {
	Resolve(ctx context.Context) models.Location
}

// Resolver picks the session location, once, at startup: pinned coordinates
// from config win, then an IP geolocation lookup, then the fixed default.
type Resolver struct {
	conf       structures.LocationConfig
	httpClient *http.Client
	logger     providers.Logger
}

func NewResolver(conf *structures.Config, logger providers.Logger) ResolverInterface {
	timeout := conf.Location.Timeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &Resolver{
		conf: conf.Location,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context) models.Location {
	if r.conf.Latitude != 0 || r.conf.Longitude != 0 {
		label := r.conf.Label
		if label == "" {
			label = fmt.Sprintf("%.4f, %.4f", r.conf.Latitude, r.conf.Longitude)
		}
		return models.Location{
			Latitude:  r.conf.Latitude,
			Longitude: r.conf.Longitude,
			Label:     label,
		}
	}

	if r.conf.LookupURL == "" {
		return DefaultLocation
	}

	loc, err := r.lookup(ctx)
	if err != nil {
		r.logger.Warnf(providers.TypeApp, "Location lookup failed, using %s: %s", DefaultLocation.Label, err)
		return DefaultLocation
	}
	return loc
}

func (r *Resolver) lookup(ctx context.Context) (models.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.conf.LookupURL, nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return models.Location{}, fmt.Errorf("geolocation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, fmt.Errorf("geolocation API error: status %d", resp.StatusCode)
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return models.Location{}, fmt.Errorf("decode response: %w", err)
	}
	if lookup.Latitude == 0 && lookup.Longitude == 0 {
		return models.Location{}, fmt.Errorf("geolocation response carries no coordinates")
	}

	return models.Location{
		Latitude:  lookup.Latitude,
		Longitude: lookup.Longitude,
		Label:     lookup.City,
	}, nil
}

type lookupResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
}
