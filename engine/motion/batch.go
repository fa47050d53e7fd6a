package motion

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Runner fans independent jobs out across a bounded pool of reusable goroutines.
// Workers persist across batches, avoiding per-batch goroutine spawn/teardown
// overhead in per-frame workloads; call Close when the runner is no longer needed
// to release them. Distinct job instances share no state, so no coordination beyond
// the per-batch barrier is needed; it is the caller's job to ensure no two submitted
// jobs reference the same output.
type Runner struct {
	pool      worker.DynamicWorkerPool
	workers   int
	queueSize int
	idleAfter time.Duration
	closeOnce sync.Once
}

// RunnerOption is a functional option for configuring a Runner during construction.
type RunnerOption func(*Runner)

// WithQueueSize is an option builder that sets the task queue capacity of the
// Runner's worker pool. The default of 256 accommodates typical per-frame batch
// sizes with headroom.
//
// Parameters:
//   - size: the task queue capacity
//
// Returns:
//   - RunnerOption: a function that applies the queue size option to a runner
func WithQueueSize(size int) RunnerOption {
	return func(r *Runner) {
		if size > 0 {
			r.queueSize = size
		}
	}
}

// WithIdleTimeout is an option builder that sets the idle timeout handed to the
// worker pool. Defaults to one second. This is a pass-through pool setting, not a
// teardown guarantee — workers are only released by Close.
//
// Parameters:
//   - d: the idle timeout for pool workers
//
// Returns:
//   - RunnerOption: a function that applies the idle timeout option to a runner
func WithIdleTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.idleAfter = d
		}
	}
}

// NewRunner creates a Runner backed by a dynamic worker pool.
//
// Parameters:
//   - workers: the number of pool workers; values <= 0 default to runtime.NumCPU()
//   - options: functional options to further configure the runner
//
// Returns:
//   - *Runner: the newly created runner
func NewRunner(workers int, options ...RunnerOption) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	r := &Runner{
		workers:   workers,
		queueSize: 256,
		idleAfter: 1 * time.Second,
	}
	for _, opt := range options {
		opt(r)
	}
	r.pool = worker.NewDynamicWorkerPool(r.workers, r.queueSize, r.idleAfter)
	return r
}

// Workers returns the configured worker count.
//
// Returns:
//   - int: the number of pool workers
func (r *Runner) Workers() int {
	return r.workers
}

// Close stops the worker pool and releases its goroutines. A Runner must not be
// used after Close; calling Close more than once is a no-op.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		r.pool.Stop()
	})
}

// RunAll submits every non-nil job to the pool and blocks until all of them have
// completed. A WaitGroup provides the per-batch barrier; the pool itself only
// signals completion at shutdown, which is unsuitable for frame-rate workloads.
//
// Jobs that fail validation simply count as failures; a malformed job never blocks
// or aborts the rest of the batch.
//
// Parameters:
//   - jobs: the jobs to run; nil entries are skipped
//
// Returns:
//   - int: the number of jobs whose Run returned true
func (r *Runner) RunAll(jobs []Job) int {
	var wg sync.WaitGroup
	var succeeded atomic.Int64

	taskID := 0
	for _, job := range jobs {
		if job == nil {
			continue
		}
		wg.Add(1)
		jCap := job // capture for closure
		r.pool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				if jCap.Run() {
					succeeded.Add(1)
				}
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()

	return int(succeeded.Load())
}
