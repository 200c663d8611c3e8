package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/vcdoor/internal/door/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.ShareIssued(metrics.IssueRequested)
		m.ShareValidated()
		m.ShareBlacklisted()
		m.DoorCreated()
		m.Verification(metrics.VerifyGranted)
		m.ShareCollision()
	})

	h := m.Instrument("GET /x")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestCounters(t *testing.T) {
	m := metrics.New()

	m.ShareIssued(metrics.IssueRequested)
	m.ShareIssued(metrics.IssueRequested)
	m.ShareIssued(metrics.IssueBlacklist)
	m.Verification(metrics.VerifyDenied)

	require.Equal(t, 2.0, testutil.ToFloat64(m.SharesIssued.WithLabelValues(metrics.IssueRequested)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SharesIssued.WithLabelValues(metrics.IssueBlacklist)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Verifications.WithLabelValues(metrics.VerifyDenied)))
	require.Equal(t, 0.0, testutil.ToFloat64(m.DoorsCreated))
}

func TestInstrumentAndHandler(t *testing.T) {
	m := metrics.New()

	h := m.Instrument("GET /v1/doors/{name}")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/doors/front", nil))
	}
	require.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "GET /v1/doors/{name}", "404")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "vcdoor_http_requests_total")
	require.Contains(t, string(body), "go_goroutines")
}
