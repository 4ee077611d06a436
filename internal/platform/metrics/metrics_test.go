package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CaptureCounters(t *testing.T) {
	m := New()

	m.CaptureSaved("new")
	m.CaptureSaved("new")
	m.CaptureSaved("edit")
	m.CaptureDeleted()
	m.PositionResolved("stale")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.capturesSaved.WithLabelValues("new")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.capturesSaved.WithLabelValues("edit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.capturesDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.positionRequests.WithLabelValues("stale")))
}

func TestMetrics_MiddlewareUsesRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/captures/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Handle("/metrics", m.Handler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/captures/abc", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/captures/{id}", "404")))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "fauna_http_requests_total"))
}
