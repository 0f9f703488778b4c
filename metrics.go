package densebit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    growCounter prometheus.Counter
//	    parseHist   prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordGrow(fromWords, toWords int) {
//	    p.growCounter.Inc()
//	}
//
// Collectors may be shared by many vectors and must be safe for concurrent use.
type MetricsCollector interface {
	// RecordGrow is called whenever a vector's backing store is extended.
	RecordGrow(fromWords, toWords int)

	// RecordCapacityExceeded is called when op is rejected because it would
	// grow a vector to bits, above the configured ceiling.
	RecordCapacityExceeded(op string, bits int)

	// RecordParse is called after each Parse. digits is the input length,
	// err is nil if successful.
	RecordParse(digits int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)                   {}
func (NoopMetricsCollector) RecordCapacityExceeded(string, int)    {}
func (NoopMetricsCollector) RecordParse(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount        atomic.Int64
	GrowWords        atomic.Int64
	CapacityExceeded atomic.Int64
	ParseCount       atomic.Int64
	ParseErrors      atomic.Int64
	ParseDigits      atomic.Int64
	ParseTotalNanos  atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(fromWords, toWords int) {
	b.GrowCount.Add(1)
	b.GrowWords.Add(int64(toWords - fromWords))
}

// RecordCapacityExceeded implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCapacityExceeded(string, int) {
	b.CapacityExceeded.Add(1)
}

// RecordParse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParse(digits int, duration time.Duration, err error) {
	b.ParseCount.Add(1)
	b.ParseTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ParseErrors.Add(1)
		return
	}
	b.ParseDigits.Add(int64(digits))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:        b.GrowCount.Load(),
		GrowWords:        b.GrowWords.Load(),
		CapacityExceeded: b.CapacityExceeded.Load(),
		ParseCount:       b.ParseCount.Load(),
		ParseErrors:      b.ParseErrors.Load(),
		ParseDigits:      b.ParseDigits.Load(),
		ParseAvgNanos:    b.getAvgParseNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgParseNanos() int64 {
	count := b.ParseCount.Load()
	if count == 0 {
		return 0
	}
	return b.ParseTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount        int64
	GrowWords        int64
	CapacityExceeded int64
	ParseCount       int64
	ParseErrors      int64
	ParseDigits      int64
	ParseAvgNanos    int64
}
