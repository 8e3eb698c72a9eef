package async

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessorQueueDeliversEveryJob(t *testing.T) {
	var mu sync.Mutex
	seen := map[uuid.UUID]int{}

	q := NewProcessorQueue(
		func(_ context.Context, job Job, _ int) error {
			mu.Lock()
			seen[job.JobID]++
			mu.Unlock()
			return nil
		},
		nil, nil,
		WithWorkers(3), WithQueueSize(16), WithSleep(func(time.Duration) {}),
	)

	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, q.Enqueue(context.Background(), Job{JobID: ids[i]}))
	}
	q.Shutdown(context.Background())

	for _, id := range ids {
		assert.Equal(t, 1, seen[id], "job %s", id)
	}
}

func TestProcessorQueueRetriesWithBackoffThenFails(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	var backoffs []time.Duration
	var failedJob Job
	var failedErr error

	q := NewProcessorQueue(
		func(_ context.Context, _ Job, attempt int) error {
			mu.Lock()
			attempts++
			mu.Unlock()
			return fmt.Errorf("attempt %d failed", attempt)
		},
		func(_ context.Context, job Job, err error) {
			mu.Lock()
			failedJob = job
			failedErr = err
			mu.Unlock()
		},
		nil,
		WithWorkers(1),
		WithMaxAttempts(3),
		WithBaseBackoff(100*time.Millisecond),
		WithSleep(func(d time.Duration) {
			mu.Lock()
			backoffs = append(backoffs, d)
			mu.Unlock()
		}),
	)

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: id}))
	q.Shutdown(context.Background())

	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, backoffs)
	assert.Equal(t, id, failedJob.JobID)
	require.Error(t, failedErr)
	assert.Contains(t, failedErr.Error(), "attempt 3")
}

func TestProcessorQueueRecoversMidway(t *testing.T) {
	var mu sync.Mutex
	failCalled := false

	q := NewProcessorQueue(
		func(_ context.Context, _ Job, attempt int) error {
			if attempt < 2 {
				return fmt.Errorf("transient")
			}
			return nil
		},
		func(context.Context, Job, error) {
			mu.Lock()
			failCalled = true
			mu.Unlock()
		},
		nil,
		WithWorkers(1), WithMaxAttempts(3), WithSleep(func(time.Duration) {}),
	)

	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))
	q.Shutdown(context.Background())

	assert.False(t, failCalled)
}

func TestProcessorQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	var mu sync.Mutex
	processed := 0

	q := NewProcessorQueue(
		func(context.Context, Job, int) error {
			mu.Lock()
			processed++
			mu.Unlock()
			return nil
		},
		nil, nil, WithWorkers(1), WithSleep(func(time.Duration) {}),
	)
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))
	assert.Equal(t, 0, processed)
}

func TestProcessorQueueShutdownIdempotent(t *testing.T) {
	q := NewProcessorQueue(
		func(context.Context, Job, int) error { return nil },
		nil, nil, WithWorkers(1),
	)
	q.Shutdown(context.Background())
	q.Shutdown(context.Background()) // must not panic or block
}
