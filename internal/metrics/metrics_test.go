package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := New()
	m.ObserveRequest("ok")
	m.ObserveRequest("ok")
	m.ObserveRequest("invalid")
	m.ObserveClimateLookup("city", false)
	m.ObserveRateLimited()
	m.ObserveCalculation(2 * time.Millisecond)
	m.SetDatasetRows(1232)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.climateLookups.WithLabelValues("city", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rateLimited))
	assert.Equal(t, 1232.0, testutil.ToFloat64(m.datasetRows))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `savings_requests_total{outcome="ok"} 2`)
	assert.Contains(t, rec.Body.String(), "savings_calculation_seconds_count 1")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("ok")
		m.ObserveCalculation(time.Second)
		m.ObserveClimateLookup("county", true)
		m.ObserveRateLimited()
		m.SetDatasetRows(1)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
