package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so several instances can coexist in tests.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	calcDuration   prometheus.Histogram
	climateLookups *prometheus.CounterVec
	rateLimited    prometheus.Counter
	datasetRows    prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savings_requests_total",
				Help: "Savings requests by outcome.",
			},
			[]string{"outcome"},
		),
		calcDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "savings_calculation_seconds",
				Help:    "Time spent computing heating and cooling savings for one request.",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
			},
		),
		climateLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "climate_lookups_total",
				Help: "Climate zone lookups by strategy and whether the location resolved.",
			},
			[]string{"strategy", "valid"},
		),
		rateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_limited_requests_total",
				Help: "Requests rejected by the per-IP rate limiter.",
			},
		),
		datasetRows: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dataset_rows",
				Help: "Rows in the loaded simulation dataset.",
			},
		),
	}
	reg.MustRegister(
		m.requests, m.calcDuration, m.climateLookups, m.rateLimited, m.datasetRows,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Outcome is one of "ok", "invalid" or "error".
func (m *Metrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveCalculation(d time.Duration) {
	if m == nil {
		return
	}
	m.calcDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveClimateLookup(strategy string, valid bool) {
	if m == nil {
		return
	}
	v := "false"
	if valid {
		v = "true"
	}
	m.climateLookups.WithLabelValues(strategy, v).Inc()
}

func (m *Metrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

func (m *Metrics) SetDatasetRows(n int) {
	if m == nil {
		return
	}
	m.datasetRows.Set(float64(n))
}
