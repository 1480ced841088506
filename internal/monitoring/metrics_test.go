package monitoring

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.IncrementRequest()
	m.IncrementRequest()
	m.IncrementError()
	m.IncrementAnalysis()
	m.IncrementCacheHit()
	m.IncrementCacheMiss()
	m.IncrementRateLimited()
	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(400)

	snapshot := m.Snapshot()
	assert.Equal(t, int64(2), snapshot["request_count"])
	assert.Equal(t, int64(1), snapshot["error_count"])
	assert.Equal(t, int64(1), snapshot["analysis_count"])
	assert.Equal(t, int64(1), snapshot["cache_hits"])
	assert.Equal(t, int64(1), snapshot["rate_limited"])

	byStatus := snapshot["requests_by_status"].(map[int]int64)
	assert.Equal(t, int64(2), byStatus[200])
	assert.Equal(t, int64(1), byStatus[400])
}

func TestMetricsPercentiles(t *testing.T) {
	m := NewMetrics()

	assert.Zero(t, m.Percentile(95))

	for i := 1; i <= 100; i++ {
		m.RecordResponseTime(time.Duration(i) * time.Millisecond)
	}

	assert.InDelta(t, 50, m.Percentile(50), 2)
	assert.InDelta(t, 95, m.Percentile(95), 2)
}

func TestMetricsConcurrentAccess(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.IncrementRequest()
				m.RecordResponseTime(time.Millisecond)
				m.RecordRequestByStatus(200)
			}
		}()
	}
	wg.Wait()

	snapshot := m.Snapshot()
	assert.Equal(t, int64(800), snapshot["request_count"])
}
