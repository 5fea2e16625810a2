package buffer

import (
	"sync"
	"sync/atomic"
	"time"
)

// StatsCollector defines the interface for collecting metrics about the
// groups a Splitter produces. A StatsCollector is shared by a Splitter and
// every Splitter split off from it, so implementations must be safe for
// concurrent use.
// The StatsCollector is optional - if not provided, no statistics are collected.
type StatsCollector interface {
	// RecordGroup is called for every group that is returned.
	RecordGroup(size int)

	// RecordAbsorption is called when a remainder of count elements is
	// added to the final group of a partition instead of forming its own
	// group.
	RecordAbsorption(count int)

	// RecordSplit is called for every call to TrySplit that doesn't fail.
	// accepted is true if a new partition was created.
	RecordSplit(accepted bool)

	// GetStats returns a snapshot of the current statistics.
	GetStats() Stats
}

// Stats holds aggregated statistics about produced groups.
type Stats struct {
	// GroupsProduced is the total number of groups returned.
	GroupsProduced uint64

	// ElementsProduced is the total number of elements across all groups.
	ElementsProduced uint64

	// Absorptions is the number of times a remainder was absorbed.
	Absorptions uint64

	// ElementsAbsorbed is the total number of elements absorbed.
	ElementsAbsorbed uint64

	// SplitsAccepted is the number of partitions created by TrySplit.
	SplitsAccepted uint64

	// SplitsRefused is the number of TrySplit calls that didn't split.
	SplitsRefused uint64

	// MinGroupSize is the smallest group returned.
	MinGroupSize int

	// MaxGroupSize is the largest group returned.
	MaxGroupSize int

	// StartTime is when statistics collection began.
	StartTime time.Time

	// LastUpdateTime is when statistics were last updated.
	LastUpdateTime time.Time
}

// NoOpStatsCollector is a stats collector that discards all metrics.
// This is the default stats collector when none is specified.
type NoOpStatsCollector struct{}

// RecordGroup implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordGroup(size int) {}

// RecordAbsorption implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordAbsorption(count int) {}

// RecordSplit implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordSplit(accepted bool) {}

// GetStats implements the StatsCollector interface.
func (n *NoOpStatsCollector) GetStats() Stats {
	return Stats{}
}

// BasicStatsCollector is a simple in-memory implementation of
// StatsCollector. All operations are thread-safe.
type BasicStatsCollector struct {
	mu    sync.RWMutex
	stats Stats

	// Atomic counters for lock-free updates
	groupsProduced   uint64
	elementsProduced uint64
	absorptions      uint64
	elementsAbsorbed uint64
	splitsAccepted   uint64
	splitsRefused    uint64
}

// NewBasicStatsCollector creates a new BasicStatsCollector.
func NewBasicStatsCollector() *BasicStatsCollector {
	now := time.Now()
	return &BasicStatsCollector{
		stats: Stats{
			StartTime:      now,
			LastUpdateTime: now,
		},
	}
}

// RecordGroup implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordGroup(size int) {
	atomic.AddUint64(&b.groupsProduced, 1)
	atomic.AddUint64(&b.elementsProduced, uint64(size))

	b.mu.Lock()
	defer b.mu.Unlock()

	b.stats.LastUpdateTime = time.Now()

	if size < b.stats.MinGroupSize || b.stats.MinGroupSize == 0 {
		b.stats.MinGroupSize = size
	}
	if size > b.stats.MaxGroupSize {
		b.stats.MaxGroupSize = size
	}
}

// RecordAbsorption implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordAbsorption(count int) {
	atomic.AddUint64(&b.absorptions, 1)
	atomic.AddUint64(&b.elementsAbsorbed, uint64(count))
}

// RecordSplit implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordSplit(accepted bool) {
	if accepted {
		atomic.AddUint64(&b.splitsAccepted, 1)
	} else {
		atomic.AddUint64(&b.splitsRefused, 1)
	}
}

// GetStats implements the StatsCollector interface.
// It returns a snapshot of the current statistics.
func (b *BasicStatsCollector) GetStats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := b.stats
	stats.GroupsProduced = atomic.LoadUint64(&b.groupsProduced)
	stats.ElementsProduced = atomic.LoadUint64(&b.elementsProduced)
	stats.Absorptions = atomic.LoadUint64(&b.absorptions)
	stats.ElementsAbsorbed = atomic.LoadUint64(&b.elementsAbsorbed)
	stats.SplitsAccepted = atomic.LoadUint64(&b.splitsAccepted)
	stats.SplitsRefused = atomic.LoadUint64(&b.splitsRefused)
	return stats
}

// AverageGroupSize returns the average number of elements per group.
// Returns 0 if no groups have been produced.
func (s *Stats) AverageGroupSize() float64 {
	if s.GroupsProduced == 0 {
		return 0
	}
	return float64(s.ElementsProduced) / float64(s.GroupsProduced)
}

// SplitAcceptanceRate returns the percentage of split attempts that
// created a new partition. Returns 0 if splitting was never attempted.
func (s *Stats) SplitAcceptanceRate() float64 {
	total := s.SplitsAccepted + s.SplitsRefused
	if total == 0 {
		return 0
	}
	return float64(s.SplitsAccepted) / float64(total) * 100
}

// Duration returns the total duration since statistics collection started.
func (s *Stats) Duration() time.Duration {
	return s.LastUpdateTime.Sub(s.StartTime)
}
