package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "200", 0.01)
	m.ObserveRequest("GET", "200", 0.02)
	m.ObserveRequest("POST", "404", 0.01)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("POST", "404")))
}

func TestSummaryMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSummaryMetrics(reg)

	m.ObserveGeneration("ok", 1.2)
	m.ObserveGeneration("fallback", 0.1)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.generationsTotal.WithLabelValues("ok")))

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() == SummaryLatencyMetric {
			found = true
		}
	}
	assert.True(t, found, "summary latency histogram must be registered under its published name")
}

func TestNilReceiversAreSafe(t *testing.T) {
	var h *HTTPMetrics
	var s *SummaryMetrics
	h.ObserveRequest("GET", "200", 0.1)
	s.ObserveGeneration("ok", 0.1)
}
