package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	b, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(b)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/medications/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/medications/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/medications/xyz", nil))

	out := scrape(t, m)
	assert.Contains(t, out, `medtracker_http_requests_total{method="GET",route="/medications/{id}",status="404"} 2`)
	assert.NotContains(t, out, "abc")
}

func TestDoseWritten(t *testing.T) {
	m := New()
	m.DoseWritten("taken")
	m.DoseWritten("taken")
	m.DoseWritten("missed")

	out := scrape(t, m)
	assert.Contains(t, out, `medtracker_doses_written_total{status="taken"} 2`)
	assert.Contains(t, out, `medtracker_doses_written_total{status="missed"} 1`)
}
