package controllers

import (
	json "github.com/goccy/go-json"
	"net/http"
	"shorecrew/internal/providers"
	"shorecrew/internal/services"
	"shorecrew/internal/storage"
	"shorecrew/internal/view"
	"strconv"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.RosterServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.RosterServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	gson, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func idFromQuery(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	return id, err == nil
}

func (ac *ApiController) GetCrew(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, storage.CacheKeyCrew, func() (any, error) {
		return view.ProjectCrew(ac.service.Crew()), nil
	})
}

type addCrewRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// AddCrew accepts any text for name and role, empty included; the persisted
// write happens synchronously before the response.
func (ac *ApiController) AddCrew(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload addCrewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	member, err := ac.service.AddCrewMember(payload.Name, payload.Role, payload.Avatar)
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Add crew member failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.metrics.IncMutationsTotal("crew_add")
	writeJSON(w, http.StatusCreated, member)
}

// RemoveCrew returns 204 whether or not the id was present; an absent id is
// a silent no-op.
func (ac *ApiController) RemoveCrew(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromQuery(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := ac.service.RemoveCrewMember(id); err != nil {
		ac.logger.Errorf(providers.TypeDelete, "Remove crew member failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.metrics.IncMutationsTotal("crew_remove")
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetEvents(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, storage.CacheKeyEvents, func() (any, error) {
		return view.ProjectEvents(ac.service.Events()), nil
	})
}

type addEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (ac *ApiController) AddEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload addEventRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	event, err := ac.service.AddEvent(payload.Title, payload.Date, payload.Location, payload.Description)
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Add event failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.metrics.IncMutationsTotal("event_add")
	writeJSON(w, http.StatusCreated, event)
}

func (ac *ApiController) RemoveEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromQuery(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := ac.service.RemoveEvent(id); err != nil {
		ac.logger.Errorf(providers.TypeDelete, "Remove event failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.metrics.IncMutationsTotal("event_remove")
	w.WriteHeader(http.StatusNoContent)
}

type seedResponse struct {
	Crew   int `json:"crew"`
	Events int `json:"events"`
}

// SeedDemo loads the fixed sample roster.
func (ac *ApiController) SeedDemo(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.SeedDemo(); err != nil {
		ac.logger.Errorf(providers.TypePost, "Demo seed failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.metrics.IncMutationsTotal("demo_seed")

	crew, events := ac.service.Counts()
	writeJSON(w, http.StatusCreated, seedResponse{Crew: crew, Events: events})
}
