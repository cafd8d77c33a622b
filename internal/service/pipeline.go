package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/infrastructure/logger"
	"github.com/bnema/vidsum/internal/port"
)

// Pipeline runs one job through download, transcription, summarization and
// cleanup. Stages run strictly in order and each commits its record changes
// before the next one starts.
type Pipeline struct {
	download     *DownloadStage
	segmenter    port.AudioSegmenter
	transcriber  port.Transcriber
	summarizer   port.Summarizer
	store        port.VideoStore
	registry     *StatusRegistry
	projectRoot  string
	instructions string
}

type PipelineConfig struct {
	ProjectRoot string
	// SummaryInstructions are appended to every summarization prompt.
	SummaryInstructions string
}

func NewPipeline(
	download *DownloadStage,
	segmenter port.AudioSegmenter,
	transcriber port.Transcriber,
	summarizer port.Summarizer,
	store port.VideoStore,
	registry *StatusRegistry,
	cfg PipelineConfig,
) *Pipeline {
	return &Pipeline{
		download:     download,
		segmenter:    segmenter,
		transcriber:  transcriber,
		summarizer:   summarizer,
		store:        store,
		registry:     registry,
		projectRoot:  cfg.ProjectRoot,
		instructions: cfg.SummaryInstructions,
	}
}

// CleanupResult lists what cleanup removed and what it could not.
type CleanupResult struct {
	Removed []string
	Failed  map[string]error
}

func (r CleanupResult) OK() bool {
	return len(r.Failed) == 0
}

// Run executes job to a terminal registry state and returns the error that
// stopped it, if any. The error is informational: it has already been
// recorded on the video record and in the registry.
func (p *Pipeline) Run(ctx context.Context, job domain.Job) error {
	logger.Info.Printf("pipeline start video_id=%d kind=%s run_id=%s", job.ID, job.Kind, job.RunID)

	if _, err := p.store.Get(ctx, job.ID); err != nil {
		p.fail(job.ID, fmt.Errorf("load video: %w", err))
		return err
	}

	audioPath, err := p.download.Fetch(ctx, job.ID, job.URL)
	if err != nil {
		logger.Error.Printf("download failed video_id=%d: %v", job.ID, err)
		if uerr := p.store.UpdateAudioStatus(ctx, job.ID, domain.AssetStatusFailed); uerr != nil {
			logger.Error.Printf("mark audio failed video_id=%d: %v", job.ID, uerr)
		}
		p.fail(job.ID, err)
		return err
	}

	rel := domain.RelativeAudioPath(p.projectRoot, audioPath)
	if err := p.store.UpdateAudio(ctx, job.ID, domain.AssetStatusReady, rel); err != nil {
		logger.Error.Printf("persist audio path failed video_id=%d: %v", job.ID, err)
		if uerr := p.store.UpdateAudioStatus(ctx, job.ID, domain.AssetStatusFailed); uerr != nil {
			logger.Error.Printf("mark audio failed video_id=%d: %v", job.ID, uerr)
		}
		p.fail(job.ID, fmt.Errorf("persist audio path: %w", err))
		return err
	}

	if job.Kind == domain.JobKindDownload {
		p.registry.Set(job.ID, domain.JobState{Status: domain.JobStatusFinished, Progress: 100, FilePath: audioPath})
		logger.Info.Printf("download job finished video_id=%d path=%s", job.ID, rel)
		return nil
	}

	p.registry.Update(job.ID, func(st *domain.JobState) {
		*st = domain.JobState{Status: domain.JobStatusProcessing, Progress: 100, FilePath: audioPath}
	})

	transcript, err := p.transcribe(ctx, job.ID, audioPath)
	if err != nil {
		logger.Error.Printf("transcribe failed video_id=%d: %v", job.ID, err)
		if uerr := p.store.UpdateTranscribeStatus(ctx, job.ID, domain.AssetStatusFailed); uerr != nil {
			logger.Error.Printf("mark transcript failed video_id=%d: %v", job.ID, uerr)
		}
		// Audio is kept on disk so the job can be retried without downloading.
		p.fail(job.ID, err)
		return err
	}
	if err := p.store.UpdateTranscript(ctx, job.ID, domain.AssetStatusReady, transcript); err != nil {
		p.fail(job.ID, fmt.Errorf("persist transcript: %w", err))
		return err
	}
	logger.Info.Printf("transcribe finished video_id=%d chars=%d", job.ID, len(transcript))

	p.summarize(ctx, job.ID, transcript)

	p.registry.Update(job.ID, func(st *domain.JobState) {
		st.Status = domain.JobStatusCleanup
		st.FragmentIndex, st.FragmentCount = 0, 0
	})
	res := p.Cleanup(ctx, job.ID, audioPath)
	if !res.OK() {
		logger.Warn.Printf("cleanup incomplete video_id=%d removed=%d failed=%d", job.ID, len(res.Removed), len(res.Failed))
	}

	p.registry.Set(job.ID, domain.JobState{Status: domain.JobStatusFinished, Progress: 100})
	logger.Info.Printf("pipeline finished video_id=%d run_id=%s", job.ID, job.RunID)
	return nil
}

// transcribe prepares chunks and transcribes them in order. Chunks that fail
// or come back empty are skipped; only an empty overall result is an error.
func (p *Pipeline) transcribe(ctx context.Context, jobID int64, audioPath string) (string, error) {
	if err := p.store.UpdateTranscribeStatus(ctx, jobID, domain.AssetStatusPending); err != nil {
		return "", fmt.Errorf("mark transcript pending: %w", err)
	}
	p.registry.Update(jobID, func(st *domain.JobState) {
		st.Status = domain.JobStatusTranscribing
		st.Progress = 0
	})

	chunks := p.segmenter.Prepare(ctx, audioPath)
	texts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		logger.Info.Printf("transcribe chunk %d/%d video_id=%d", i+1, len(chunks), jobID)
		text, err := p.transcriber.Transcribe(ctx, chunk)
		if err != nil {
			logger.Warn.Printf("chunk transcription failed %d/%d video_id=%d: %v", i+1, len(chunks), jobID, err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			logger.Warn.Printf("empty chunk transcription %d/%d video_id=%d", i+1, len(chunks), jobID)
		} else {
			texts = append(texts, text)
		}

		done := i + 1
		p.registry.Update(jobID, func(st *domain.JobState) {
			st.Progress = done * 100 / len(chunks)
			st.FragmentIndex = done
			st.FragmentCount = len(chunks)
		})
	}

	transcript := strings.TrimSpace(strings.Join(texts, "\n\n"))
	if transcript == "" {
		return "", domain.ErrTranscriptionEmpty
	}
	return transcript, nil
}

// summarize never stops the pipeline. Whatever comes back, empty included,
// is stored.
func (p *Pipeline) summarize(ctx context.Context, jobID int64, transcript string) {
	p.registry.Update(jobID, func(st *domain.JobState) {
		st.Status = domain.JobStatusSummarizing
		st.Progress = 0
	})

	summary, err := p.summarizer.Summarize(ctx, transcript, p.instructions)
	if err != nil {
		logger.Warn.Printf("summarize failed video_id=%d: %v", jobID, err)
		summary = ""
	}
	if err := p.store.UpdateSummary(ctx, jobID, summary); err != nil {
		logger.Error.Printf("persist summary failed video_id=%d: %v", jobID, err)
		return
	}
	logger.Info.Printf("summarize finished video_id=%d chars=%d", jobID, len(summary))
}

// Cleanup deletes every file in the audio file's directory whose name is the
// audio base name or starts with "<base>.", removes that directory when it is
// the job's own and now empty, then clears audio_path and audio_status in one
// write. The record is cleared even if some deletions fail.
func (p *Pipeline) Cleanup(ctx context.Context, jobID int64, audioPath string) CleanupResult {
	res := CleanupResult{Failed: map[string]error{}}
	dir := filepath.Dir(audioPath)
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	entries, err := os.ReadDir(dir)
	if err != nil {
		res.Failed[dir] = err
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || (name != base && !strings.HasPrefix(name, base+".")) {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn.Printf("cleanup remove failed video_id=%d file=%s: %v", jobID, name, err)
			res.Failed[path] = err
			continue
		}
		res.Removed = append(res.Removed, path)
	}
	if filepath.Base(dir) == strconv.FormatInt(jobID, 10) {
		// Fails while other files remain, which leaves them alone.
		_ = os.Remove(dir)
	}

	if err := p.store.UpdateAudio(ctx, jobID, domain.AssetStatusNone, ""); err != nil {
		logger.Error.Printf("reset audio fields failed video_id=%d: %v", jobID, err)
	}
	logger.Info.Printf("cleanup finished video_id=%d removed=%d", jobID, len(res.Removed))
	return res
}

func (p *Pipeline) fail(jobID int64, err error) {
	p.registry.Update(jobID, func(st *domain.JobState) {
		st.Status = domain.JobStatusError
		st.Error = err.Error()
	})
}
