package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HospitalBookingService/pkg/logger"
)

type observation struct {
	method string
	route  string
	status int
}

type spyMetrics struct{ observed []observation }

func (m *spyMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.observed = append(m.observed, observation{method: method, route: route, status: status})
}

func TestRequestID_Generated(t *testing.T) {
	var fromCtx string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx, _ = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, fromCtx, 36)
	assert.Equal(t, fromCtx, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	spy := &spyMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(spy))
	r.HandleFunc("/api/v1/hospitals/{hospitalId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/hospitals/404", nil))

	require.Len(t, spy.observed, 1)
	assert.Equal(t, observation{method: http.MethodGet, route: "/api/v1/hospitals/{hospitalId}", status: http.StatusNotFound}, spy.observed[0])
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetricsMiddleware_CountsRecoveredPanic(t *testing.T) {
	spy := &spyMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(spy), Recovery(logger.Nop()))
	r.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, spy.observed, 1)
	assert.Equal(t, observation{method: http.MethodGet, route: "/boom", status: http.StatusInternalServerError}, spy.observed[0])
}

func TestMetricsMiddleware_CountsUnrecoveredPanic(t *testing.T) {
	spy := &spyMetrics{}
	h := MetricsMiddleware(spy)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	assert.Panics(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Len(t, spy.observed, 1)
	assert.Equal(t, http.StatusInternalServerError, spy.observed[0].status)
	assert.Equal(t, "unknown", spy.observed[0].route)
}
