package frozenidx

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called once after index construction.
	// n is the number of objects, err is nil if successful.
	RecordBuild(n int, duration time.Duration, err error)

	// RecordGet is called after each Get operation.
	// found reports whether any identifiers matched.
	RecordGet(found bool, duration time.Duration)

	// RecordGetAll is called after each GetAll operation.
	RecordGetAll(duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordGet(bool, time.Duration)        {}
func (NoopMetricsCollector) RecordGetAll(time.Duration)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	GetCount        atomic.Int64
	GetMisses       atomic.Int64
	GetTotalNanos   atomic.Int64
	GetAllCount     atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(n int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(found bool, duration time.Duration) {
	b.GetCount.Add(1)
	b.GetTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.GetMisses.Add(1)
	}
}

// RecordGetAll implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGetAll(duration time.Duration) {
	b.GetAllCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:  b.BuildCount.Load(),
		BuildErrors: b.BuildErrors.Load(),
		GetCount:    b.GetCount.Load(),
		GetMisses:   b.GetMisses.Load(),
		GetAvgNanos: b.getAvgGetNanos(),
		GetAllCount: b.GetAllCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgGetNanos() int64 {
	count := b.GetCount.Load()
	if count == 0 {
		return 0
	}
	return b.GetTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount  int64
	BuildErrors int64
	GetCount    int64
	GetMisses   int64
	GetAvgNanos int64
	GetAllCount int64
}
