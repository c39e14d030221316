package models

// WeatherSnapshot is the most recently fetched current-conditions reading.
// It is replaced wholesale on every successful fetch and never persisted.
type WeatherSnapshot struct {
	TemperatureC float64 `json:"temperature_c"`
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
	HumidityPct  float64 `json:"humidity_pct"`
	Code         int     `json:"code"`
	Condition    string  `json:"condition"`
}

// Location is the coordinate pair the weather fetch targets. It is resolved
// once at startup and not re-resolved during the session.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label"`
}
