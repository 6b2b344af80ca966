package dashboard

import (
	"context"
	"math"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/vedicure/vedacare/internal/observability/metrics"
	"github.com/vedicure/vedacare/internal/patients"
	"github.com/vedicure/vedacare/internal/schedule"
)

// Snapshot is the clinic overview painted on the landing view.
type Snapshot struct {
	TotalPatients       int             `json:"total_patients"`
	OngoingTherapies    int             `json:"ongoing_therapies"`
	UpcomingSessions    int             `json:"upcoming_sessions"`
	BookedAppointments  int             `json:"booked_appointments"`
	TherapyDistribution map[string]int  `json:"therapy_distribution"`
	SummaryLatency      LatencySnapshot `json:"summary_latency"`
}

// LatencySnapshot summarizes the AI summary generation histogram.
type LatencySnapshot struct {
	Total   int64           `json:"total"`
	P90Ms   float64         `json:"p90_ms"`
	P95Ms   float64         `json:"p95_ms"`
	Buckets []LatencyBucket `json:"buckets"`
}

// LatencyBucket is one finite histogram bucket with its non-cumulative count.
type LatencyBucket struct {
	LeSeconds float64 `json:"le_seconds"`
	Count     int64   `json:"count"`
}

// Service assembles the overview from the stores and the metrics registry.
type Service struct {
	store    *patients.Store
	book     *schedule.Book
	gatherer prometheus.Gatherer
}

// NewService creates a dashboard service. A nil gatherer falls back to the
// default prometheus gatherer.
func NewService(store *patients.Store, book *schedule.Book, gatherer prometheus.Gatherer) *Service {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Service{store: store, book: book, gatherer: gatherer}
}

// Overview builds the current dashboard snapshot.
func (s *Service) Overview(ctx context.Context) Snapshot {
	return Snapshot{
		TotalPatients:       s.store.Count(ctx),
		OngoingTherapies:    s.store.CountByStatus(ctx, patients.StatusOngoing),
		UpcomingSessions:    s.store.CountByStatus(ctx, patients.StatusFuture),
		BookedAppointments:  s.book.Count(ctx),
		TherapyDistribution: s.book.CountByTherapy(ctx),
		SummaryLatency:      snapshotSummaryLatency(s.gatherer),
	}
}

// snapshotSummaryLatency reads the generation histogram back out of the
// registry, keeping only successful generations.
func snapshotSummaryLatency(gatherer prometheus.Gatherer) LatencySnapshot {
	mfs, err := gatherer.Gather()
	if err != nil {
		return LatencySnapshot{}
	}

	var family *dto.MetricFamily
	for _, mf := range mfs {
		if mf != nil && mf.GetName() == metrics.SummaryLatencyMetric {
			family = mf
			break
		}
	}
	if family == nil {
		return LatencySnapshot{}
	}

	cumulativeByUpper := map[float64]uint64{}
	var sampleCount uint64
	for _, metric := range family.Metric {
		if metric == nil || !hasLabel(metric, "outcome", "ok") {
			continue
		}
		h := metric.GetHistogram()
		if h == nil {
			continue
		}
		sampleCount += h.GetSampleCount()
		for _, b := range h.Bucket {
			if b == nil {
				continue
			}
			cumulativeByUpper[b.GetUpperBound()] += b.GetCumulativeCount()
		}
	}
	if sampleCount == 0 || len(cumulativeByUpper) == 0 {
		return LatencySnapshot{}
	}

	uppers := make([]float64, 0, len(cumulativeByUpper))
	for upper := range cumulativeByUpper {
		uppers = append(uppers, upper)
	}
	sort.Float64s(uppers)

	buckets := make([]LatencyBucket, 0, len(uppers))
	var prev uint64
	for _, upper := range uppers {
		if math.IsInf(upper, 1) {
			continue
		}
		cum := cumulativeByUpper[upper]
		count := int64(0)
		if cum >= prev {
			count = int64(cum - prev)
		}
		buckets = append(buckets, LatencyBucket{LeSeconds: upper, Count: count})
		prev = cum
	}

	return LatencySnapshot{
		Total:   int64(sampleCount),
		P90Ms:   percentileMs(uppers, cumulativeByUpper, sampleCount, 0.90),
		P95Ms:   percentileMs(uppers, cumulativeByUpper, sampleCount, 0.95),
		Buckets: buckets,
	}
}

// percentileMs returns the upper bound of the first bucket covering the
// requested quantile, in milliseconds. A coarse estimate, but stable.
func percentileMs(uppers []float64, cumulative map[float64]uint64, total uint64, q float64) float64 {
	threshold := uint64(math.Ceil(q * float64(total)))
	for _, upper := range uppers {
		if math.IsInf(upper, 1) {
			continue
		}
		if cumulative[upper] >= threshold {
			return upper * 1000
		}
	}
	if n := len(uppers); n > 0 && math.IsInf(uppers[n-1], 1) && n > 1 {
		return uppers[n-2] * 1000
	}
	return 0
}

func hasLabel(metric *dto.Metric, name, value string) bool {
	for _, lp := range metric.GetLabel() {
		if lp.GetName() == name && lp.GetValue() == value {
			return true
		}
	}
	return false
}
