package memory

import (
	"context"
	"sync"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/port"
)

// Queue is an unbounded FIFO of pending jobs held in process memory.
type Queue struct {
	mu    sync.Mutex
	jobs  []domain.Job
	ready chan struct{}
}

func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Enqueue never blocks.
func (q *Queue) Enqueue(job domain.Job) error {
	q.mu.Lock()
	q.jobs = append(q.jobs, job)
	q.mu.Unlock()
	q.signal()
	return nil
}

func (q *Queue) Claim(ctx context.Context) (domain.Job, error) {
	for {
		q.mu.Lock()
		if len(q.jobs) > 0 {
			job := q.jobs[0]
			q.jobs[0] = domain.Job{}
			q.jobs = q.jobs[1:]
			more := len(q.jobs) > 0
			q.mu.Unlock()
			if more {
				// wake the next waiting worker
				q.signal()
			}
			return job, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return domain.Job{}, ctx.Err()
		case <-q.ready:
		}
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

func (q *Queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

var _ port.JobQueue = (*Queue)(nil)
