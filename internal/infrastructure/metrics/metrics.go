package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus registry and the service's collectors.
//
// Thread Safety: all methods are safe for concurrent use; the underlying
// Prometheus types do their own synchronisation.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with a private registry holding the HTTP
// collectors plus the standard Go runtime and process collectors.
//
// The entityCounts callback is polled at scrape time and reported as the
// teapot_store_entities gauge, one series per entity kind.
func New(entityCounts func() map[string]int) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "teapot_http_requests_total",
			Help: "Total HTTP requests processed, by method, route pattern, and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "teapot_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if entityCounts != nil {
		m.registry.MustRegister(newEntityCollector(entityCounts))
	}

	return m
}

// Handler returns the HTTP handler serving the registry in Prometheus text
// format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// entityCollector reports store collection sizes at scrape time, so gauge
// values never go stale between mutations.
type entityCollector struct {
	desc   *prometheus.Desc
	counts func() map[string]int
}

func newEntityCollector(counts func() map[string]int) *entityCollector {
	return &entityCollector{
		desc: prometheus.NewDesc(
			"teapot_store_entities",
			"Number of entities currently held in the in-memory store, by kind.",
			[]string{"entity"},
			nil,
		),
		counts: counts,
	}
}

func (c *entityCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *entityCollector) Collect(ch chan<- prometheus.Metric) {
	for entity, n := range c.counts() {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(n), entity)
	}
}
