package port

import (
	"context"

	"github.com/bnema/vidsum/internal/domain"
)

type JobQueue interface {
	Enqueue(job domain.Job) error
	// Claim blocks until a job is available or ctx is done.
	Claim(ctx context.Context) (domain.Job, error)
	Len() int
}
