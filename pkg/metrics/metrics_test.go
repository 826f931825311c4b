package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("/api/v1/overview", "GET", 200, 15*time.Millisecond)
	m.ObserveRequest("/api/v1/overview", "GET", 200, 5*time.Millisecond)
	m.ObserveRequest("/api/v1/overview", "GET", 503, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/v1/overview", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/v1/overview", "GET", "503")))
}

func TestObserveLoad(t *testing.T) {
	m := New()

	m.ObserveLoad(nil, map[string]int{"total": 10, "eligible": 7})
	m.ObserveLoad(errors.New("dataset unavailable"), nil)

	assert.Equal(t, 10.0, testutil.ToFloat64(m.datasetRows.WithLabelValues("total")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.datasetRows.WithLabelValues("eligible")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.datasetLoads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.datasetLoads.WithLabelValues("error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("/health", "GET", 200, time.Millisecond)
	m.ObserveLoad(nil, map[string]int{"total": 1})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest("/health", "GET", 200, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "scout_http_requests_total")
}
