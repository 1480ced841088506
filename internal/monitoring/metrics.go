package monitoring

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds in-process application metrics. Counters use atomics; the
// response-time sample and status map take a lock.
type Metrics struct {
	RequestCount  int64
	ErrorCount    int64
	AnalysisCount int64
	CacheHits     int64
	CacheMisses   int64
	RateLimited   int64
	StartTime     time.Time

	responseTimes []time.Duration
	responseMu    sync.RWMutex

	requestsByStatus map[int]int64
	statusMu         sync.RWMutex
}

// maxResponseTimeSamples bounds the percentile sample window.
const maxResponseTimeSamples = 1000

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime:        time.Now(),
		responseTimes:    make([]time.Duration, 0, maxResponseTimeSamples),
		requestsByStatus: make(map[int]int64),
	}
}

// IncrementRequest increments the total request counter
func (m *Metrics) IncrementRequest() {
	atomic.AddInt64(&m.RequestCount, 1)
}

// IncrementError increments the error counter
func (m *Metrics) IncrementError() {
	atomic.AddInt64(&m.ErrorCount, 1)
}

// IncrementAnalysis increments the completed analysis counter
func (m *Metrics) IncrementAnalysis() {
	atomic.AddInt64(&m.AnalysisCount, 1)
}

// IncrementCacheHit increments the cache hit counter
func (m *Metrics) IncrementCacheHit() {
	atomic.AddInt64(&m.CacheHits, 1)
}

// IncrementCacheMiss increments the cache miss counter
func (m *Metrics) IncrementCacheMiss() {
	atomic.AddInt64(&m.CacheMisses, 1)
}

// IncrementRateLimited increments the rate-limited request counter
func (m *Metrics) IncrementRateLimited() {
	atomic.AddInt64(&m.RateLimited, 1)
}

// RecordResponseTime stores a response time sample for percentile reporting
func (m *Metrics) RecordResponseTime(d time.Duration) {
	m.responseMu.Lock()
	defer m.responseMu.Unlock()

	if len(m.responseTimes) >= maxResponseTimeSamples {
		m.responseTimes = m.responseTimes[1:]
	}
	m.responseTimes = append(m.responseTimes, d)
}

// RecordRequestByStatus tracks request counts per HTTP status code
func (m *Metrics) RecordRequestByStatus(status int) {
	m.statusMu.Lock()
	defer m.statusMu.Unlock()
	m.requestsByStatus[status]++
}

// Percentile returns the given response-time percentile in milliseconds.
func (m *Metrics) Percentile(p float64) float64 {
	m.responseMu.RLock()
	defer m.responseMu.RUnlock()

	if len(m.responseTimes) == 0 {
		return 0
	}

	sorted := make([]time.Duration, len(m.responseTimes))
	copy(sorted, m.responseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := int(float64(len(sorted)-1) * p / 100)
	return float64(sorted[idx].Microseconds()) / 1000
}

// Snapshot returns the current metrics as a flat map for the /metrics endpoint
func (m *Metrics) Snapshot() map[string]interface{} {
	m.statusMu.RLock()
	byStatus := make(map[int]int64, len(m.requestsByStatus))
	for k, v := range m.requestsByStatus {
		byStatus[k] = v
	}
	m.statusMu.RUnlock()

	return map[string]interface{}{
		"request_count":      atomic.LoadInt64(&m.RequestCount),
		"error_count":        atomic.LoadInt64(&m.ErrorCount),
		"analysis_count":     atomic.LoadInt64(&m.AnalysisCount),
		"cache_hits":         atomic.LoadInt64(&m.CacheHits),
		"cache_misses":       atomic.LoadInt64(&m.CacheMisses),
		"rate_limited":       atomic.LoadInt64(&m.RateLimited),
		"requests_by_status": byStatus,
		"p50_ms":             m.Percentile(50),
		"p95_ms":             m.Percentile(95),
		"p99_ms":             m.Percentile(99),
		"uptime_seconds":     time.Since(m.StartTime).Seconds(),
	}
}
