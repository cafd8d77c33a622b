package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/infrastructure/logger"
	"github.com/bnema/vidsum/internal/port"
)

const claimRetryDelay = 2 * time.Second

// JobRunner executes one claimed job.
type JobRunner interface {
	Run(ctx context.Context, job domain.Job) error
}

// Launcher admits jobs and feeds them to a pool of workers. Admission is
// idempotent per job id: while a job is active, further requests are
// refused.
type Launcher struct {
	registry *StatusRegistry
	queue    port.JobQueue
	runner   JobRunner
	workers  int
	wg       sync.WaitGroup
}

func NewLauncher(registry *StatusRegistry, queue port.JobQueue, runner JobRunner, workers int) *Launcher {
	if workers < 1 {
		workers = 1
	}
	return &Launcher{
		registry: registry,
		queue:    queue,
		runner:   runner,
		workers:  workers,
	}
}

// Queue admits a full pipeline run. It reports false when the job is already
// active.
func (l *Launcher) Queue(jobID int64, url string) bool {
	return l.admit(jobID, url, domain.JobKindPipeline)
}

// QueueDownload admits a download-only run.
func (l *Launcher) QueueDownload(jobID int64, url string) bool {
	return l.admit(jobID, url, domain.JobKindDownload)
}

func (l *Launcher) admit(jobID int64, url string, kind domain.JobKind) bool {
	if !l.registry.Admit(jobID) {
		logger.Debug.Printf("job already active video_id=%d", jobID)
		return false
	}

	job := domain.NewJob(jobID, url, kind)
	if err := l.queue.Enqueue(job); err != nil {
		logger.Error.Printf("enqueue failed video_id=%d: %v", jobID, err)
		l.registry.Set(jobID, domain.JobState{Status: domain.JobStatusError, Error: err.Error()})
		return false
	}
	logger.Info.Printf("job queued video_id=%d kind=%s run_id=%s pending=%d", jobID, kind, job.RunID, l.queue.Len())
	return true
}

// Start launches the workers. They stop claiming new jobs once ctx is done;
// a job already claimed runs to completion.
func (l *Launcher) Start(ctx context.Context) {
	for i := range l.workers {
		l.wg.Add(1)
		go l.runWorker(ctx, i)
	}
	logger.Info.Printf("started %d workers", l.workers)
}

// Wait blocks until every worker has returned.
func (l *Launcher) Wait() {
	l.wg.Wait()
}

func (l *Launcher) runWorker(ctx context.Context, id int) {
	defer l.wg.Done()
	for {
		job, err := l.queue.Claim(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				logger.Info.Printf("worker %d shutting down", id)
				return
			}
			logger.Error.Printf("worker %d: failed to claim job: %v", id, err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(claimRetryDelay):
			}
			continue
		}

		logger.Info.Printf("worker %d: processing video_id=%d kind=%s", id, job.ID, job.Kind)
		l.run(context.WithoutCancel(ctx), job)
	}
}

func (l *Launcher) run(ctx context.Context, job domain.Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error.Printf("job panicked video_id=%d: %v", job.ID, r)
			l.registry.Update(job.ID, func(st *domain.JobState) {
				st.Status = domain.JobStatusError
				st.Error = fmt.Sprintf("internal error: %v", r)
			})
		}
	}()

	if err := l.runner.Run(ctx, job); err != nil {
		logger.Warn.Printf("job ended with error video_id=%d run_id=%s: %v", job.ID, job.RunID, err)
	}
}
