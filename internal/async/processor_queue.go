package async

import (
	"context"
	"sync"
	"time"

	"log/slog"
)

// ProcessFunc runs one attempt of a job. attempt is 1-based.
type ProcessFunc func(ctx context.Context, job Job, attempt int) error

// FailFunc is invoked once per job after every attempt has failed.
type FailFunc func(ctx context.Context, job Job, err error)

// ProcessorQueue is a bounded in-process work queue with a fixed worker pool.
// Each worker retries a failed job in place with exponential backoff before
// surrendering it to the fail callback, so a unit is delivered at least once
// and attempted at most maxAttempts times.
type ProcessorQueue struct {
	process     ProcessFunc
	onFail      FailFunc
	logger      *slog.Logger
	workers     int
	timeout     time.Duration
	maxAttempts int
	baseBackoff time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool

	sleep func(time.Duration) // test hook
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}
func WithMaxAttempts(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}
func WithBaseBackoff(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.baseBackoff = d
		}
	}
}

// WithSleep replaces the backoff sleeper (tests).
func WithSleep(fn func(time.Duration)) Option {
	return func(q *ProcessorQueue) { q.sleep = fn }
}

func NewProcessorQueue(process ProcessFunc, onFail FailFunc, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		process:     process,
		onFail:      onFail,
		logger:      logger,
		workers:     4,
		timeout:     3 * time.Minute,
		maxAttempts: 3,
		baseBackoff: 500 * time.Millisecond,
		ch:          make(chan Job, 256),
		sleep:       time.Sleep,
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					q.run(workerID, job)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// run attempts a job up to maxAttempts times with exponential backoff.
func (q *ProcessorQueue) run(workerID int, job Job) {
	var lastErr error
	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		err := q.process(ctx, job, attempt)
		cancel()

		if err == nil {
			q.logger.Info("processed job successfully",
				"worker_id", workerID, "job_id", job.JobID, "file_id", job.FileID, "attempt", attempt)
			return
		}
		lastErr = err
		q.logger.Error("processing attempt failed",
			"worker_id", workerID, "job_id", job.JobID, "attempt", attempt,
			"max_attempts", q.maxAttempts, "error", err)

		if attempt < q.maxAttempts {
			q.sleep(q.baseBackoff << (attempt - 1))
		}
	}

	q.logger.Error("job exhausted all attempts",
		"worker_id", workerID, "job_id", job.JobID, "file_id", job.FileID, "error", lastErr)
	if q.onFail != nil {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		q.onFail(ctx, job, lastErr)
		cancel()
	}
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.JobID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued job for processing", "job_id", job.JobID, "file_id", job.FileID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.JobID)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
