package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/infrastructure/logger"
	"github.com/bnema/vidsum/internal/port"
)

// heuristicCap is the highest percentage reported when neither sizes nor
// fragments are known.
const heuristicCap = 95

// DownloadStage fetches the audio track of a job into the audio directory and
// mirrors fetch progress into the status registry.
type DownloadStage struct {
	fetcher     port.AudioFetcher
	probe       port.DecoderProbe
	store       port.VideoStore
	registry    *StatusRegistry
	audioDir    string
	projectRoot string
}

func NewDownloadStage(
	fetcher port.AudioFetcher,
	probe port.DecoderProbe,
	store port.VideoStore,
	registry *StatusRegistry,
	audioDir string,
	projectRoot string,
) *DownloadStage {
	return &DownloadStage{
		fetcher:     fetcher,
		probe:       probe,
		store:       store,
		registry:    registry,
		audioDir:    audioDir,
		projectRoot: projectRoot,
	}
}

// Fetch returns the absolute path of the job's audio file. Every error is a
// *domain.DownloadError.
func (d *DownloadStage) Fetch(ctx context.Context, jobID int64, url string) (string, error) {
	d.registry.Update(jobID, func(st *domain.JobState) {
		*st = domain.JobState{Status: domain.JobStatusStarting, Progress: 0}
	})

	if path := d.reusable(ctx, jobID); path != "" {
		logger.Info.Printf("reusing downloaded audio video_id=%d path=%s", jobID, path)
		d.registry.Update(jobID, func(st *domain.JobState) {
			st.Status = domain.JobStatusProcessing
			st.Progress = 100
			st.FilePath = path
		})
		return path, nil
	}

	if err := d.store.UpdateAudioStatus(ctx, jobID, domain.AssetStatusPending); err != nil {
		logger.Warn.Printf("mark audio pending failed video_id=%d: %v", jobID, err)
	}

	if err := d.probe.Available(); err != nil {
		return "", domain.NewDownloadError(url, err)
	}
	outDir := d.jobDir(jobID)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", domain.NewDownloadError(url, fmt.Errorf("create audio dir: %w", err))
	}

	canonical := domain.CanonicalURL(url)
	logger.Info.Printf("download start video_id=%d url=%s", jobID, logger.SanitizeForLog(canonical))

	path, err := d.fetcher.FetchAudio(ctx, canonical, outDir, d.progressFunc(jobID))
	if err != nil {
		return "", domain.NewDownloadError(canonical, err)
	}
	if path == "" {
		return "", domain.NewDownloadError(canonical, domain.ErrAudioNotProduced)
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", domain.NewDownloadError(canonical, fmt.Errorf("%w: %s", domain.ErrAudioNotProduced, filepath.Base(path)))
	}

	logger.Info.Printf("download finished video_id=%d file=%s size=%s", jobID, filepath.Base(path), humanize.IBytes(uint64(info.Size())))
	return path, nil
}

// jobDir is the directory a job downloads into. Files are named after the
// upstream id, so two records for the same video need separate directories.
func (d *DownloadStage) jobDir(jobID int64) string {
	return filepath.Join(d.audioDir, strconv.FormatInt(jobID, 10))
}

// reusable returns the stored audio path when the record says it is ready and
// the file is still on disk.
func (d *DownloadStage) reusable(ctx context.Context, jobID int64) string {
	v, err := d.store.Get(ctx, jobID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn.Printf("load video for reuse check failed video_id=%d: %v", jobID, err)
		}
		return ""
	}
	if v.AudioStatus != domain.AssetStatusReady || v.AudioPath == "" {
		return ""
	}
	abs := domain.ResolveAudioPath(d.projectRoot, v.AudioPath)
	if info, err := os.Stat(abs); err != nil || info.IsDir() {
		return ""
	}
	return abs
}

func (d *DownloadStage) progressFunc(jobID int64) domain.ProgressFunc {
	return func(ev domain.DownloadProgress) {
		switch ev.Status {
		case domain.DownloadEventDownloading:
			d.registry.Update(jobID, func(st *domain.JobState) {
				prev := 0
				if st.Status == domain.JobStatusDownloading {
					prev = st.Progress
				}
				st.Status = domain.JobStatusDownloading
				st.Progress = max(prev, computePercent(ev, prev))
				st.FragmentIndex = ev.FragmentIndex
				st.FragmentCount = ev.FragmentCount
			})
		case domain.DownloadEventFinished:
			d.registry.Update(jobID, func(st *domain.JobState) {
				st.Status = domain.JobStatusProcessing
				st.Progress = 100
			})
		}
	}
}

// computePercent derives a percentage from one progress event. Byte counts
// win over fragment counts; without either, it creeps up by one from current
// but never past heuristicCap.
func computePercent(ev domain.DownloadProgress, current int) int {
	switch {
	case ev.TotalBytes > 0:
		return clampPercent(math.Round(float64(ev.DownloadedBytes) * 100 / float64(ev.TotalBytes)))
	case ev.FragmentIndex > 0 && ev.FragmentCount > 0:
		return clampPercent(math.Round(float64(ev.FragmentIndex) * 100 / float64(ev.FragmentCount)))
	case ev.DownloadedBytes > 0:
		return min(heuristicCap, current+1)
	default:
		return 0
	}
}

func clampPercent(v float64) int {
	return int(math.Min(100, math.Max(0, v)))
}
