package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServerMetrics collects request-level and domain-level metrics on a
// private registry, exposed via Handler.
type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	analysisTotal    *prometheus.CounterVec
	seevScore        *prometheus.HistogramVec
	extractionTotal  *prometheus.CounterVec
	batchSize        prometheus.Histogram
	rewriteTotal     *prometheus.CounterVec
	variantsPerSet   prometheus.Histogram
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seev",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "seev",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "seev",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	analysisTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seev",
			Subsystem: "analysis",
			Name:      "requests_total",
			Help:      "Total bias analysis requests by outcome.",
		},
		[]string{"service", "outcome"},
	)
	seevScore := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "seev",
			Subsystem: "analysis",
			Name:      "score",
			Help:      "Distribution of overall SEEV scores on successful analyses.",
			Buckets:   []float64{0, 10, 20, 33, 50, 66, 80, 90, 100},
		},
		[]string{"service"},
	)
	extractionTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seev",
			Subsystem: "extraction",
			Name:      "requests_total",
			Help:      "Total extraction requests by file kind and outcome.",
		},
		[]string{"service", "kind", "outcome"},
	)
	batchSize := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "seev",
			Subsystem: "analysis",
			Name:      "batch_size",
			Help:      "Distribution of documents per batch request.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34},
		},
	)
	rewriteTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seev",
			Subsystem: "rewrite",
			Name:      "requests_total",
			Help:      "Total bias removal requests by wire shape and outcome.",
		},
		[]string{"service", "shape", "outcome"},
	)
	variantsPerSet := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "seev",
			Subsystem: "variants",
			Name:      "per_set",
			Help:      "Distribution of generated variants per request.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 7},
		},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		analysisTotal,
		seevScore,
		extractionTotal,
		batchSize,
		rewriteTotal,
		variantsPerSet,
	)

	return &HTTPServerMetrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestInFlight: requestInFlight,
		analysisTotal:   analysisTotal,
		seevScore:       seevScore,
		extractionTotal: extractionTotal,
		batchSize:       batchSize,
		rewriteTotal:    rewriteTotal,
		variantsPerSet:  variantsPerSet,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			r.URL.Path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

func (m *HTTPServerMetrics) RecordAnalysis(service, outcome string, score int) {
	m.analysisTotal.WithLabelValues(service, outcome).Inc()
	if outcome == "ok" {
		m.seevScore.WithLabelValues(service).Observe(float64(score))
	}
}

func (m *HTTPServerMetrics) RecordExtraction(service, kind, outcome string) {
	if kind == "" {
		kind = "unknown"
	}
	m.extractionTotal.WithLabelValues(service, kind, outcome).Inc()
}

func (m *HTTPServerMetrics) RecordBatch(service string, size int) {
	m.batchSize.Observe(float64(size))
}

func (m *HTTPServerMetrics) RecordRewrite(service, shape, outcome string) {
	m.rewriteTotal.WithLabelValues(service, shape, outcome).Inc()
}

func (m *HTTPServerMetrics) RecordVariants(service string, count int) {
	m.variantsPerSet.Observe(float64(count))
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
