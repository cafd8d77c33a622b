package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/infrastructure/logger"
	"github.com/bnema/vidsum/internal/port"
)

// JobLauncher is the admission side of Launcher.
type JobLauncher interface {
	Queue(jobID int64, url string) bool
	QueueDownload(jobID int64, url string) bool
}

// VideoService is the entry point used by the request layer.
type VideoService struct {
	store      port.VideoStore
	launcher   JobLauncher
	registry   *StatusRegistry
	summarizer port.Summarizer
	metadata   port.MetadataLookup
}

// NewVideoService wires the service. metadata may be nil, in which case new
// videos keep the submitted title or their URL.
func NewVideoService(
	store port.VideoStore,
	launcher JobLauncher,
	registry *StatusRegistry,
	summarizer port.Summarizer,
	metadata port.MetadataLookup,
) *VideoService {
	return &VideoService{
		store:      store,
		launcher:   launcher,
		registry:   registry,
		summarizer: summarizer,
		metadata:   metadata,
	}
}

// Create stores a new video and queues its pipeline. A URL that is already
// stored yields domain.ErrAlreadyExists. Platform metadata is looked up on a
// best-effort basis; a submitted title is kept over the platform's.
func (s *VideoService) Create(ctx context.Context, url, title string) (*domain.Video, error) {
	v := domain.NewVideo(url, title)
	if v.URL == "" {
		return nil, fmt.Errorf("url is required")
	}

	if _, err := s.store.GetByURL(ctx, v.URL); err == nil {
		return nil, fmt.Errorf("video %s: %w", v.URL, domain.ErrAlreadyExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup video: %w", err)
	}

	s.enrich(ctx, v, strings.TrimSpace(title) != "")

	if err := s.store.Create(ctx, v); err != nil {
		return nil, err
	}
	logger.Info.Printf("video created video_id=%d url=%s", v.ID, logger.SanitizeForLog(v.URL))

	s.launcher.Queue(v.ID, v.URL)
	return v, nil
}

func (s *VideoService) enrich(ctx context.Context, v *domain.Video, keepTitle bool) {
	if s.metadata == nil {
		return
	}
	meta, err := s.metadata.Lookup(ctx, v.URL)
	if err != nil {
		if !errors.Is(err, domain.ErrNoMetadata) {
			logger.Warn.Printf("metadata lookup failed url=%s: %v", logger.SanitizeForLog(v.URL), err)
		}
		return
	}
	v.ApplyMetadata(meta, keepTitle)
}

func (s *VideoService) Get(ctx context.Context, id int64) (*domain.Video, error) {
	return s.store.Get(ctx, id)
}

func (s *VideoService) List(ctx context.Context) ([]*domain.Video, error) {
	return s.store.List(ctx)
}

// Status returns the job snapshot for a video.
func (s *VideoService) Status(id int64) domain.JobState {
	return s.registry.Get(id)
}

// StartPipeline queues a full run for an existing video. It reports false
// when a run is already active.
func (s *VideoService) StartPipeline(ctx context.Context, id int64) (bool, error) {
	v, err := s.store.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return s.launcher.Queue(v.ID, v.URL), nil
}

// StartDownload queues a download-only run for an existing video.
func (s *VideoService) StartDownload(ctx context.Context, id int64) (bool, error) {
	v, err := s.store.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return s.launcher.QueueDownload(v.ID, v.URL), nil
}

// Summarize regenerates the summary of a stored transcript with optional
// extra instructions.
func (s *VideoService) Summarize(ctx context.Context, id int64, instructions string) (string, error) {
	v, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !v.HasTranscript() {
		return "", domain.ErrTranscriptEmpty
	}

	summary, err := s.summarizer.Summarize(ctx, v.Transcript, strings.TrimSpace(instructions))
	if err != nil {
		logger.Warn.Printf("summarize failed video_id=%d: %v", id, err)
		return "", fmt.Errorf("%w: %v", domain.ErrSummaryEmpty, err)
	}
	if strings.TrimSpace(summary) == "" {
		return "", domain.ErrSummaryEmpty
	}
	if err := s.store.UpdateSummary(ctx, id, summary); err != nil {
		return "", fmt.Errorf("persist summary: %w", err)
	}
	return summary, nil
}
