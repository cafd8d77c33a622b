package service

import (
	"sync"

	"github.com/bnema/vidsum/internal/domain"
)

// StatusRegistry holds the in-memory progress record of every job the process
// has touched. Records are created lazily and never removed.
type StatusRegistry struct {
	mu     sync.Mutex
	jobs   map[int64]domain.JobState
	events EventPublisher
}

// NewStatusRegistry creates an empty registry. events may be nil.
func NewStatusRegistry(events EventPublisher) *StatusRegistry {
	return &StatusRegistry{
		jobs:   make(map[int64]domain.JobState),
		events: events,
	}
}

// Get returns a copy of the job record, or the idle record for unknown ids.
func (r *StatusRegistry) Get(jobID int64) domain.JobState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current(jobID)
}

// Update applies fn to a copy of the current record and stores the result as
// a whole. Readers observe the record before or after fn, never in between.
func (r *StatusRegistry) Update(jobID int64, fn func(*domain.JobState)) domain.JobState {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.current(jobID)
	fn(&st)
	r.jobs[jobID] = st
	r.publish(jobID, st)
	return st
}

// Set replaces the record.
func (r *StatusRegistry) Set(jobID int64, st domain.JobState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[jobID] = st
	r.publish(jobID, st)
}

// Admit marks the job queued unless it is already active. It reports whether
// the caller now owns the job.
func (r *StatusRegistry) Admit(jobID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current(jobID).Status.IsActive() {
		return false
	}
	st := domain.JobState{Status: domain.JobStatusQueued, Progress: 0}
	r.jobs[jobID] = st
	r.publish(jobID, st)
	return true
}

// current must be called with mu held.
func (r *StatusRegistry) current(jobID int64) domain.JobState {
	if st, ok := r.jobs[jobID]; ok {
		return st
	}
	return domain.IdleState()
}

// publish must be called with mu held so subscribers see updates in the order
// they were stored. EventPublisher implementations must not block.
func (r *StatusRegistry) publish(jobID int64, st domain.JobState) {
	if r.events != nil {
		r.events.Publish(jobID, Event{JobID: jobID, State: st})
	}
}
