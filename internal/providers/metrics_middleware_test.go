package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
}

func (m *mockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration) { m.durationCalls++ }
func (m *mockMetrics) IncCacheHits()                                    {}
func (m *mockMetrics) IncCacheMisses()                                  {}
func (m *mockMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (m *mockMetrics) IncMutationsTotal(_ string)                       {}
func (m *mockMetrics) IncWeatherFetches(_ string)                       {}

type middlewareTestLogger struct {
	debugCalls int
	lastType   TypeEnum
}

func (m *middlewareTestLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *middlewareTestLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *middlewareTestLogger) Debugf(t TypeEnum, _ string, _ ...interface{}) {
	m.debugCalls++
	m.lastType = t
}
func (m *middlewareTestLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *middlewareTestLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *middlewareTestLogger) Close()                                        {}

func TestMetricsMiddleware_CapturesStatusAndEndpoint(t *testing.T) {
	metrics := &mockMetrics{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	mw := MetricsMiddleware(metrics, &middlewareTestLogger{}, handler)

	req := httptest.NewRequest(http.MethodPost, "/crew", nil)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, 1, metrics.requestCalls)
	assert.Equal(t, "/crew", metrics.requestEndpoint)
	assert.Equal(t, http.StatusCreated, metrics.requestStatus)
	assert.Equal(t, 1, metrics.durationCalls)
}

func TestMetricsMiddleware_DefaultStatus200(t *testing.T) {
	metrics := &mockMetrics{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mw := MetricsMiddleware(metrics, &middlewareTestLogger{}, handler)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, metrics.requestStatus)
}

func TestMetricsMiddleware_LogsToAccessStream(t *testing.T) {
	logger := &middlewareTestLogger{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	mw := MetricsMiddleware(&mockMetrics{}, logger, handler)

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/crew", nil))

	assert.Equal(t, 1, logger.debugCalls)
	assert.Equal(t, TypeEnum(TypeDelete), logger.lastType)
}

func TestStatusWriter_WriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rr, status: http.StatusOK}

	sw.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, sw.status)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
