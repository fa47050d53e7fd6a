package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks job throughput and memory statistics for hot-loop monitoring.
// Callers record each batch of jobs as it completes; stats are written to the log
// once per configured interval. The profiler has no internal goroutines and is meant
// to be driven from a single loop, like the per-frame loop that owns the batches.
type Profiler struct {
	jobCount       int
	batchCount     int
	batchTime      time.Duration
	maxBatchTime   time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// ProfilerOption is a functional option for configuring a Profiler during construction.
type ProfilerOption func(*Profiler)

// WithUpdateInterval is an option builder that sets how often accumulated stats are
// logged. Defaults to 1 second.
//
// Parameters:
//   - d: the logging interval
//
// Returns:
//   - ProfilerOption: a function that applies the interval option to a profiler
func WithUpdateInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to further configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// TickBatch records one completed batch of jobs and its wall time. When the update
// interval has elapsed it logs throughput and memory statistics: jobs/sec, batch
// latency (avg and max), heap usage, allocation rate, GC count/pause times, and
// total memory.
//
// Parameters:
//   - jobs: the number of jobs the batch ran
//   - elapsed: the wall time the batch took
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) TickBatch(jobs int, elapsed time.Duration) bool {
	p.jobCount += jobs
	p.batchCount++
	p.batchTime += elapsed
	if elapsed > p.maxBatchTime {
		p.maxBatchTime = elapsed
	}

	currentTime := time.Now()
	window := currentTime.Sub(p.lastTime)
	if window < p.updateInterval {
		return false
	}

	jps := float64(p.jobCount) / window.Seconds()
	avgBatchUs := int64(0)
	if p.batchCount > 0 {
		avgBatchUs = p.batchTime.Microseconds() / int64(p.batchCount)
	}

	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	// Calculate allocation rate (MB/sec)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / window.Seconds()

	// Calculate GC pause stats (last pause and max recent pause)
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		// Find max pause since last tick
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] Jobs/s: %.0f | Batch: avg %d µs, max %d µs | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		jps, avgBatchUs, p.maxBatchTime.Microseconds(), allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.jobCount = 0
	p.batchCount = 0
	p.batchTime = 0
	p.maxBatchTime = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
