package observability

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AntonStoeckl/library-books-go/eventstore"
)

const (
	httpRequestsMetric = "library_http_requests_total"
	httpDurationMetric = "library_http_request_duration_seconds"
	httpInFlightMetric = "library_http_requests_in_flight"
)

// PrometheusCollector implements eventstore.MetricsCollector on its own Prometheus registry.
// Instruments are created on first use. The label names of the first call define the instrument;
// later calls fill missing labels with "" and drop unknown ones.
type PrometheusCollector struct {
	registry *prometheus.Registry

	mu         sync.Mutex
	counters   map[string]*labeledCounter
	histograms map[string]*labeledHistogram
	gauges     map[string]*labeledGauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpInFlight prometheus.Gauge
}

type labeledCounter struct {
	vec    *prometheus.CounterVec
	labels []string
}

type labeledHistogram struct {
	vec    *prometheus.HistogramVec
	labels []string
}

type labeledGauge struct {
	vec    *prometheus.GaugeVec
	labels []string
}

// NewPrometheusCollector creates a collector with a fresh registry that also carries the Go and process collectors.
func NewPrometheusCollector() *PrometheusCollector {
	c := &PrometheusCollector{
		registry:   prometheus.NewRegistry(),
		counters:   make(map[string]*labeledCounter),
		histograms: make(map[string]*labeledHistogram),
		gauges:     make(map[string]*labeledGauge),
	}

	c.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: httpRequestsMetric, Help: "Total number of HTTP requests."},
		[]string{"method", "route", "code"},
	)
	c.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: httpDurationMetric, Help: "Duration of HTTP requests.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	c.httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: httpInFlightMetric, Help: "Number of HTTP requests being served."},
	)

	c.registry.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
		c.httpRequests,
		c.httpDuration,
		c.httpInFlight,
	)

	return c
}

// Registry exposes the underlying registry, mainly for tests.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns the /metrics exposition handler.
func (c *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordDuration observes the duration in seconds on a histogram.
func (c *PrometheusCollector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	h := c.histogram(metric, labels)
	if h == nil {
		return
	}

	h.vec.WithLabelValues(labelValues(h.labels, labels)...).Observe(duration.Seconds())
}

// IncrementCounter adds one to a counter.
func (c *PrometheusCollector) IncrementCounter(metric string, labels map[string]string) {
	counter := c.counter(metric, labels)
	if counter == nil {
		return
	}

	counter.vec.WithLabelValues(labelValues(counter.labels, labels)...).Inc()
}

// RecordValue sets a gauge.
func (c *PrometheusCollector) RecordValue(metric string, value float64, labels map[string]string) {
	g := c.gauge(metric, labels)
	if g == nil {
		return
	}

	g.vec.WithLabelValues(labelValues(g.labels, labels)...).Set(value)
}

func (c *PrometheusCollector) counter(metric string, labels map[string]string) *labeledCounter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.counters[metric]; ok {
		return existing
	}

	names := labelNames(labels)
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: metric, Help: helpFor(metric)}, names)
	if err := c.registry.Register(vec); err != nil {
		return nil
	}

	c.counters[metric] = &labeledCounter{vec: vec, labels: names}

	return c.counters[metric]
}

func (c *PrometheusCollector) histogram(metric string, labels map[string]string) *labeledHistogram {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.histograms[metric]; ok {
		return existing
	}

	names := labelNames(labels)
	vec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: metric, Help: helpFor(metric), Buckets: prometheus.DefBuckets},
		names,
	)
	if err := c.registry.Register(vec); err != nil {
		return nil
	}

	c.histograms[metric] = &labeledHistogram{vec: vec, labels: names}

	return c.histograms[metric]
}

func (c *PrometheusCollector) gauge(metric string, labels map[string]string) *labeledGauge {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.gauges[metric]; ok {
		return existing
	}

	names := labelNames(labels)
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: metric, Help: helpFor(metric)}, names)
	if err := c.registry.Register(vec); err != nil {
		return nil
	}

	c.gauges[metric] = &labeledGauge{vec: vec, labels: names}

	return c.gauges[metric]
}

// InstrumentHTTP wraps a handler with request counting, latency and in-flight metrics.
// routeOf maps a request to a low-cardinality route label; nil uses the first path segment.
func (c *PrometheusCollector) InstrumentHTTP(routeOf func(*http.Request) string) func(http.Handler) http.Handler {
	if routeOf == nil {
		routeOf = firstPathSegment
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			c.httpInFlight.Inc()
			defer c.httpInFlight.Dec()

			next.ServeHTTP(rec, r)

			route := routeOf(r)
			method := strings.ToUpper(r.Method)

			c.httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
			c.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func firstPathSegment(r *http.Request) string {
	trimmed := strings.Trim(r.URL.Path, "/")
	if trimmed == "" {
		return "/"
	}

	return "/" + strings.SplitN(trimmed, "/", 2)[0]
}

func labelNames(labels map[string]string) []string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func labelValues(names []string, labels map[string]string) []string {
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = labels[name]
	}

	return values
}

func helpFor(metric string) string {
	return strings.ReplaceAll(metric, "_", " ")
}

var _ eventstore.MetricsCollector = (*PrometheusCollector)(nil)
