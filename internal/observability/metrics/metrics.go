package metrics

import "github.com/prometheus/client_golang/prometheus"

// SummaryLatencyMetric is the histogram family name the dashboard reads
// back to build its latency snapshot.
const SummaryLatencyMetric = "vedacare_summary_generation_seconds"

// HTTPMetrics exposes counters/histograms for the HTTP surface.
type HTTPMetrics struct {
	requestsTotal *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vedacare",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests served",
		}, []string{"method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vedacare",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP request handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.latency)
	return m
}

func (m *HTTPMetrics) ObserveRequest(method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, status).Inc()
	m.latency.WithLabelValues(method).Observe(seconds)
}

// SummaryMetrics tracks AI summary generations and their latency.
type SummaryMetrics struct {
	generationsTotal *prometheus.CounterVec
	latency          *prometheus.HistogramVec
}

func NewSummaryMetrics(reg prometheus.Registerer) *SummaryMetrics {
	m := &SummaryMetrics{
		generationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vedacare",
			Subsystem: "summary",
			Name:      "generations_total",
			Help:      "Total AI summary generations by outcome",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    SummaryLatencyMetric,
			Help:    "Latency of AI summary generation",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.generationsTotal, m.latency)
	return m
}

func (m *SummaryMetrics) ObserveGeneration(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.generationsTotal.WithLabelValues(outcome).Inc()
	m.latency.WithLabelValues(outcome).Observe(seconds)
}
