package controllers

import (
	"net/http"
	"net/http/httptest"
	"shorecrew/internal/services"
	"shorecrew/internal/storage"
	"shorecrew/internal/testutil"
	"shorecrew/internal/view"
	"strconv"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newTestService() services.RosterServiceInterface {
	return services.NewRosterService(clockwork.NewFakeClockAt(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)))
}

func newTestController(svc services.RosterServiceInterface, cache *testutil.MockCache) *ApiController {
	return NewApiController(&testutil.MockLogger{}, svc, cache, testutil.NewMockMetrics())
}

// --- AddCrew tests ---

func TestAddCrew_ValidPayload(t *testing.T) {
	svc := newTestService()
	ac := newTestController(svc, testutil.NewMockCache())

	payload := `{"name":"Maya Torres","role":"Crew Lead","avatar":"🐬"}`
	req := httptest.NewRequest(http.MethodPost, "/crew", strings.NewReader(payload))
	rr := httptest.NewRecorder()

	ac.AddCrew(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	crew := svc.Crew()
	require.Len(t, crew, 1)
	assert.Equal(t, "Maya Torres", crew[0].Name)
	assert.Equal(t, "🐬", crew[0].Avatar)
}

func TestAddCrew_EmptyFieldsAccepted(t *testing.T) {
	svc := newTestService()
	ac := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodPost, "/crew", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	ac.AddCrew(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	crew := svc.Crew()
	require.Len(t, crew, 1)
	assert.Empty(t, crew[0].Name)
	assert.Equal(t, services.DefaultAvatar, crew[0].Avatar)
}

func TestAddCrew_InvalidJSON(t *testing.T) {
	svc := newTestService()
	ac := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodPost, "/crew", strings.NewReader(`{bad`))
	rr := httptest.NewRecorder()

	ac.AddCrew(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, svc.Crew())
}

func TestAddCrew_PersistFailureIs500(t *testing.T) {
	svc := newTestService()
	svc.SetMutationHook(&testutil.MockHook{Err: assert.AnError})
	ac := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodPost, "/crew", strings.NewReader(`{"name":"Maya"}`))
	rr := httptest.NewRecorder()

	ac.AddCrew(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// --- RemoveCrew tests ---

func TestRemoveCrew_ExistingID(t *testing.T) {
	svc := newTestService()
	m, err := svc.AddCrewMember("Maya", "Lead", "")
	require.NoError(t, err)
	ac := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodDelete, "/crew?id="+strconv.FormatInt(m.ID, 10), nil)
	rr := httptest.NewRecorder()

	ac.RemoveCrew(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, svc.Crew())
}

func TestRemoveCrew_AbsentID_SilentNoop(t *testing.T) {
	svc := newTestService()
	_, err := svc.AddCrewMember("Maya", "Lead", "")
	require.NoError(t, err)
	ac := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodDelete, "/crew?id=42", nil)
	rr := httptest.NewRecorder()

	ac.RemoveCrew(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Len(t, svc.Crew(), 1)
}

func TestRemoveCrew_MissingID(t *testing.T) {
	ac := newTestController(newTestService(), testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodDelete, "/crew", nil)
	rr := httptest.NewRecorder()

	ac.RemoveCrew(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// --- list view tests ---

func TestGetCrew_EmptyStatePlaceholder(t *testing.T) {
	ac := newTestController(newTestService(), testutil.NewMockCache())

	rr := httptest.NewRecorder()
	ac.GetCrew(rr, httptest.NewRequest(http.MethodGet, "/crew", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var list view.CrewList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list.Items, 0)
	assert.Equal(t, view.CrewPlaceholder, list.Placeholder)
}

func TestGetCrew_ServesFromCache(t *testing.T) {
	cache := testutil.NewMockCache()
	cache.Set(storage.CacheKeyCrew, []byte(`{"items":[],"placeholder":"cached"}`))
	ac := newTestController(newTestService(), cache)

	rr := httptest.NewRecorder()
	ac.GetCrew(rr, httptest.NewRequest(http.MethodGet, "/crew", nil))

	assert.Contains(t, rr.Body.String(), "cached")
}

func TestGetCrew_PopulatesCache(t *testing.T) {
	cache := testutil.NewMockCache()
	svc := newTestService()
	_, err := svc.AddCrewMember("Maya", "Lead", "")
	require.NoError(t, err)
	ac := newTestController(svc, cache)

	rr := httptest.NewRecorder()
	ac.GetCrew(rr, httptest.NewRequest(http.MethodGet, "/crew", nil))

	cached, ok := cache.Get(storage.CacheKeyCrew)
	require.True(t, ok)
	assert.Equal(t, rr.Body.Bytes(), cached)
}

func TestGetEvents_EmptyStatePlaceholder(t *testing.T) {
	ac := newTestController(newTestService(), testutil.NewMockCache())

	rr := httptest.NewRecorder()
	ac.GetEvents(rr, httptest.NewRequest(http.MethodGet, "/events", nil))

	var list view.EventList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list.Items, 0)
	assert.Equal(t, view.EventPlaceholder, list.Placeholder)
}

// --- event mutation tests ---

func TestAddEvent_ParticipantSnapshot(t *testing.T) {
	svc := newTestService()
	for i := 0; i < 3; i++ {
		_, err := svc.AddCrewMember("v", "r", "")
		require.NoError(t, err)
	}
	ac := newTestController(svc, testutil.NewMockCache())

	payload := `{"title":"Sunrise Sweep","date":"2026-09-12","location":"North Pier","description":"Bring water."}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(payload))
	rr := httptest.NewRecorder()

	ac.AddEvent(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	events := svc.Events()
	require.Len(t, events, 1)
	assert.Equal(t, 3, events[0].Participants)
}

func TestRemoveEvent_AbsentID_SilentNoop(t *testing.T) {
	svc := newTestService()
	ac := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodDelete, "/events?id=7", nil)
	rr := httptest.NewRecorder()

	ac.RemoveEvent(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

// --- demo seed ---

func TestSeedDemo_LoadsSampleRoster(t *testing.T) {
	svc := newTestService()
	ac := newTestController(svc, testutil.NewMockCache())

	rr := httptest.NewRecorder()
	ac.SeedDemo(rr, httptest.NewRequest(http.MethodPost, "/demo", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	crew, events := svc.Counts()
	assert.Equal(t, 3, crew)
	assert.Equal(t, 2, events)
}
