package domain

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusIdle         JobStatus = "idle"
	JobStatusQueued       JobStatus = "queued"
	JobStatusStarting     JobStatus = "starting"
	JobStatusDownloading  JobStatus = "downloading"
	JobStatusProcessing   JobStatus = "processing"
	JobStatusTranscribing JobStatus = "transcribing"
	JobStatusSummarizing  JobStatus = "summarizing"
	JobStatusCleanup      JobStatus = "cleanup"
	JobStatusFinished     JobStatus = "finished"
	JobStatusError        JobStatus = "error"
)

// IsActive reports whether a worker currently owns the job. Admission is
// refused while a job is active.
func (s JobStatus) IsActive() bool {
	switch s {
	case JobStatusQueued, JobStatusStarting, JobStatusDownloading, JobStatusProcessing,
		JobStatusTranscribing, JobStatusSummarizing, JobStatusCleanup:
		return true
	default:
		return false
	}
}

func (s JobStatus) IsTerminal() bool {
	return s == JobStatusFinished || s == JobStatusError
}

// JobState is the in-memory progress record of one job. It is always handled
// by value so callers never share it with the registry.
type JobState struct {
	Status        JobStatus `json:"status"`
	Progress      int       `json:"progress"`
	Error         string    `json:"error,omitempty"`
	FilePath      string    `json:"file_path,omitempty"`
	FragmentIndex int       `json:"fragment_index,omitempty"`
	FragmentCount int       `json:"fragment_count,omitempty"`
}

func IdleState() JobState {
	return JobState{Status: JobStatusIdle, Progress: 0}
}

type JobKind string

const (
	JobKindPipeline JobKind = "pipeline"
	JobKindDownload JobKind = "download"
)

// Job is the descriptor handed from the launcher to a worker.
type Job struct {
	ID         int64
	URL        string
	Kind       JobKind
	RunID      string
	EnqueuedAt time.Time
}

func NewJob(id int64, url string, kind JobKind) Job {
	if kind == "" {
		kind = JobKindPipeline
	}
	return Job{
		ID:         id,
		URL:        url,
		Kind:       kind,
		RunID:      uuid.NewString(),
		EnqueuedAt: time.Now(),
	}
}

// DownloadProgress is one progress event emitted by the fetch engine. Zero
// values mean "unknown".
type DownloadProgress struct {
	Status          string
	DownloadedBytes int64
	TotalBytes      int64
	FragmentIndex   int
	FragmentCount   int
	TmpFilename     string
}

const (
	DownloadEventDownloading = "downloading"
	DownloadEventFinished    = "finished"
	DownloadEventError       = "error"
)

// ProgressFunc receives fetch engine progress events.
type ProgressFunc func(DownloadProgress)
