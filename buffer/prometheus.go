package buffer

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	splitterPrometheusMetrics sync.Once

	splitterGroupsProducedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "splitbatch",
			Subsystem: "buffer",
			Name:      "groups_produced_total",
			Help:      "Number of groups returned by TryAdvance().",
		})
	splitterGroupSizeElements = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "splitbatch",
			Subsystem: "buffer",
			Name:      "group_size_elements",
			Help:      "Number of elements in groups returned by TryAdvance().",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		})
	splitterElementsAbsorbedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "splitbatch",
			Subsystem: "buffer",
			Name:      "elements_absorbed_total",
			Help:      "Number of trailing elements that were added to the final group of a partition, instead of forming a group that is smaller than the minimum size.",
		})
	splitterSplitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "splitbatch",
			Subsystem: "buffer",
			Name:      "splits_total",
			Help:      "Number of TrySplit() calls, and whether a new partition was created.",
		},
		[]string{"outcome"})
	splitterSplitsAccepted = splitterSplitsTotal.WithLabelValues("Accepted")
	splitterSplitsRefused  = splitterSplitsTotal.WithLabelValues("Refused")
)

// PrometheusStatsCollector is a StatsCollector that exports its events as
// Prometheus metrics, in addition to keeping the in-memory statistics of a
// BasicStatsCollector.
type PrometheusStatsCollector struct {
	*BasicStatsCollector
}

// NewPrometheusStatsCollector creates a PrometheusStatsCollector. The
// underlying metrics are registered with the default registry the first
// time this function is called, and are shared by all collectors.
func NewPrometheusStatsCollector() *PrometheusStatsCollector {
	splitterPrometheusMetrics.Do(func() {
		prometheus.MustRegister(splitterGroupsProducedTotal)
		prometheus.MustRegister(splitterGroupSizeElements)
		prometheus.MustRegister(splitterElementsAbsorbedTotal)
		prometheus.MustRegister(splitterSplitsTotal)
	})

	return &PrometheusStatsCollector{
		BasicStatsCollector: NewBasicStatsCollector(),
	}
}

// RecordGroup implements the StatsCollector interface.
func (p *PrometheusStatsCollector) RecordGroup(size int) {
	p.BasicStatsCollector.RecordGroup(size)
	splitterGroupsProducedTotal.Inc()
	splitterGroupSizeElements.Observe(float64(size))
}

// RecordAbsorption implements the StatsCollector interface.
func (p *PrometheusStatsCollector) RecordAbsorption(count int) {
	p.BasicStatsCollector.RecordAbsorption(count)
	splitterElementsAbsorbedTotal.Add(float64(count))
}

// RecordSplit implements the StatsCollector interface.
func (p *PrometheusStatsCollector) RecordSplit(accepted bool) {
	p.BasicStatsCollector.RecordSplit(accepted)
	if accepted {
		splitterSplitsAccepted.Inc()
	} else {
		splitterSplitsRefused.Inc()
	}
}
