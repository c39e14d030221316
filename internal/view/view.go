// Package view projects the roster and weather state into the list shapes
// the UI consumes. Projections are pure: state in, view out.
package view

import (
	"fmt"
	"shorecrew/internal/models"
	"shorecrew/internal/services"
)

const (
	CrewPlaceholder  = "No crew members yet. Add your first volunteer!"
	EventPlaceholder = "No cleanups on the calendar. Schedule one!"

	// Literal fallbacks shown when the weather fetch failed.
	FallbackValue     = "N/A"
	FallbackCondition = "Unable to load"
)

type CrewItem struct {
	ID       int64  `json:"id"`
	Avatar   string `json:"avatar"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

type EventItem struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Participants int    `json:"participants"`
}

// CrewList carries either the items or, for an empty roster, exactly one
// placeholder message, never both.
type CrewList struct {
	Items       []CrewItem `json:"items"`
	Placeholder string     `json:"placeholder,omitempty"`
}

type EventList struct {
	Items       []EventItem `json:"items"`
	Placeholder string      `json:"placeholder,omitempty"`
}

func ProjectCrew(members []models.CrewMember) CrewList {
	if len(members) == 0 {
		return CrewList{Items: []CrewItem{}, Placeholder: CrewPlaceholder}
	}

	items := make([]CrewItem, 0, len(members))
	for _, m := range members {
		items = append(items, CrewItem{
			ID:       m.ID,
			Avatar:   m.Avatar,
			Name:     m.Name,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		})
	}
	return CrewList{Items: items}
}

func ProjectEvents(events []models.Event) EventList {
	if len(events) == 0 {
		return EventList{Items: []EventItem{}, Placeholder: EventPlaceholder}
	}

	items := make([]EventItem, 0, len(events))
	for _, e := range events {
		items = append(items, EventItem{
			ID:           e.ID,
			Title:        e.Title,
			Date:         e.Date,
			Location:     e.Location,
			Description:  e.Description,
			Participants: e.Participants,
		})
	}
	return EventList{Items: items}
}

// WeatherPanel is the weather display: formatted values when loaded, the
// literal fallbacks on error, loading markers while a fetch is pending.
type WeatherPanel struct {
	Status      string `json:"status"`
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
	Humidity    string `json:"humidity"`
	Condition   string `json:"condition"`
	Location    string `json:"location"`
}

func ProjectWeather(status services.WeatherStatus, snapshot *models.WeatherSnapshot, loc models.Location) WeatherPanel {
	panel := WeatherPanel{
		Status:   status.String(),
		Location: loc.Label,
	}

	switch {
	case status == services.WeatherLoaded && snapshot != nil:
		panel.Temperature = fmt.Sprintf("%.1f°C", snapshot.TemperatureC)
		panel.Wind = fmt.Sprintf("%.1f km/h", snapshot.WindSpeedKmh)
		panel.Humidity = fmt.Sprintf("%.0f%%", snapshot.HumidityPct)
		panel.Condition = snapshot.Condition
	case status == services.WeatherError:
		panel.Temperature = FallbackValue
		panel.Wind = FallbackValue
		panel.Humidity = FallbackValue
		panel.Condition = FallbackCondition
	default:
		panel.Temperature = "--"
		panel.Wind = "--"
		panel.Humidity = "--"
		panel.Condition = "Loading…"
	}
	return panel
}
