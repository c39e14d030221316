package controllers

import (
	"fmt"
	json "github.com/goccy/go-json"
	"net/http"
	"shorecrew/internal/services"
	"shorecrew/internal/storage/interfaces"
	"time"
)

type HealthController struct {
	service   services.RosterServiceInterface
	keeper    interfaces.KeeperInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	CrewMembers   int     `json:"crew_members"`
	Events        int     `json:"events"`
	LastPersist   string  `json:"last_persist"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	crew, events := hc.service.Counts()
	lastPersist := "never"
	if ts := hc.keeper.LastPersist(); !ts.IsZero() {
		lastPersist = ts.Format(time.RFC3339)
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		CrewMembers:   crew,
		Events:        events,
		LastPersist:   lastPersist,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.RosterServiceInterface, keeper interfaces.KeeperInterface) *HealthController {
	return &HealthController{
		service:   service,
		keeper:    keeper,
		startTime: time.Now(),
	}
}
