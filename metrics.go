package pulseauth

import (
	"sync/atomic"
	"time"
)

// MetricID identifies a counter or histogram maintained by the engine.
type MetricID uint16

const (
	// MetricLoginSuccess counts successful logins.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts rejected logins, whatever the reason.
	MetricLoginFailure
	// MetricSignupSuccess counts successful signups.
	MetricSignupSuccess
	// MetricSignupFailure counts rejected signups other than duplicates.
	MetricSignupFailure
	// MetricSignupDuplicate counts signups rejected for an existing email.
	MetricSignupDuplicate
	// MetricLogout counts logout calls that cleared a live session.
	MetricLogout
	// MetricSessionCreated counts tokens minted by login and signup.
	MetricSessionCreated
	// MetricSessionInvalidated counts sessions cleared by logout or expiry.
	MetricSessionInvalidated
	// MetricSessionRestored counts successful startup restores.
	MetricSessionRestored
	// MetricSessionExpired counts restores that found an expired token.
	MetricSessionExpired
	// MetricProfileUpdated counts applied profile updates.
	MetricProfileUpdated
	// MetricStorageError counts swallowed persistence failures.
	MetricStorageError
	// MetricLoginLatency is the login duration histogram bucket id.
	MetricLoginLatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds atomic counters and an optional login latency histogram.
// When disabled, all operations are no-ops.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [metricIDCount]paddedCounter
	histograms    [metricIDCount]metricHistogram
}

// MetricsSnapshot is a point-in-time copy of all metrics.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// NewMetrics creates a Metrics instance from cfg.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

// Enabled reports whether counting is active.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// LatencyEnabled reports whether the login latency histogram is active.
func (m *Metrics) LatencyEnabled() bool {
	return m != nil && m.enableLatency
}

// Inc adds one to the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records d in the login latency histogram.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enableLatency || id != MetricLoginLatency {
		return
	}
	atomic.AddUint64(&m.histograms[id].buckets[bucketIndex(d)], 1)
}

// Value returns the current count for id.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot deep-copies all counters and histograms.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, metricIDCount),
		Histograms: map[MetricID][]uint64{},
	}
	if m == nil {
		return snap
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	if m.enableLatency {
		buckets := make([]uint64, histBucketCount)
		for i := range buckets {
			buckets[i] = atomic.LoadUint64(&m.histograms[MetricLoginLatency].buckets[i])
		}
		snap.Histograms[MetricLoginLatency] = buckets
	}
	return snap
}

// Bucket boundaries double from 1ms: <1ms, <2ms, <4ms, ... last is overflow.
func bucketIndex(d time.Duration) int {
	bound := time.Millisecond
	for i := 0; i < histBucketCount-1; i++ {
		if d < bound {
			return i
		}
		bound *= 2
	}
	return histBucketCount - 1
}
