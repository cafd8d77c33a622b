package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/vidsum/config"
	"github.com/bnema/vidsum/internal/adapter/converter/ffmpeg"
	"github.com/bnema/vidsum/internal/adapter/downloader/ytdlp"
	HTTPAdapter "github.com/bnema/vidsum/internal/adapter/http"
	"github.com/bnema/vidsum/internal/adapter/openai"
	"github.com/bnema/vidsum/internal/adapter/queue/memory"
	"github.com/bnema/vidsum/internal/adapter/storage/jsonfile"
	sqlitestore "github.com/bnema/vidsum/internal/adapter/storage/sqlite"
	"github.com/bnema/vidsum/internal/adapter/youtube"
	"github.com/bnema/vidsum/internal/infrastructure/logger"
	"github.com/bnema/vidsum/internal/port"
	"github.com/bnema/vidsum/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Error.Printf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Configure(cfg.LogLevel)
	for _, w := range cfg.Validate() {
		logger.Warn.Printf("config: %v", w)
	}

	logger.Info.Printf("starting vidsum on port %d, backend=%s workers=%d", cfg.Port, cfg.StorageBackend, cfg.PipelineWorkers)

	for _, dir := range []string{cfg.DataDir, cfg.AudioDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	if c, ok := store.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	fetcher := ytdlp.NewClient(ytdlp.WithBinary(cfg.YtDlpPath))
	if err := fetcher.Available(); err != nil {
		logger.Warn.Printf("%v", err)
	}
	segmenter := ffmpeg.NewSegmenter(
		ffmpeg.WithFFmpegPath(cfg.FFmpegPath),
		ffmpeg.WithChunkLimit(cfg.ChunkLimitBytes()),
		ffmpeg.WithSegmentSeconds(cfg.SegmentSeconds),
	)
	aiCfg := openai.Config{APIKey: cfg.OpenAI.APIKey, BaseURL: cfg.OpenAI.BaseURL}
	transcriber := openai.NewTranscriber(aiCfg, cfg.OpenAI.TranscribeModel, cfg.TranscribeLanguage)
	summarizer := openai.NewSummarizer(aiCfg, cfg.OpenAI.Model)

	eventBus := service.NewEventBus()
	registry := service.NewStatusRegistry(eventBus)
	queue := memory.NewQueue()

	stage := service.NewDownloadStage(fetcher, segmenter, store, registry, cfg.AudioDir, cfg.ProjectRoot)
	pipeline := service.NewPipeline(stage, segmenter, transcriber, summarizer, store, registry, service.PipelineConfig{
		ProjectRoot:         cfg.ProjectRoot,
		SummaryInstructions: cfg.SummaryInstructions,
	})
	launcher := service.NewLauncher(registry, queue, pipeline, cfg.PipelineWorkers)
	var metadata port.MetadataLookup
	if cfg.YouTubeAPIKey != "" {
		metadata = youtube.NewClient(youtube.Config{APIKey: cfg.YouTubeAPIKey})
	} else {
		logger.Info.Printf("YOUTUBE_API_KEY not set, new videos are stored without metadata")
	}
	videoSvc := service.NewVideoService(store, launcher, registry, summarizer, metadata)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	launcher.Start(ctx)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           HTTPAdapter.NewServer(videoSvc, eventBus),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info.Printf("server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info.Printf("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error.Printf("http shutdown error: %v", err)
		}
		return nil
	})

	err = g.Wait()
	stop()
	// Workers stop claiming once ctx is done; running jobs finish first.
	launcher.Wait()
	logger.Info.Printf("shutdown complete")
	return err
}

func openStore(cfg *config.Config) (port.VideoStore, error) {
	switch cfg.StorageBackend {
	case config.BackendJSONFile:
		return jsonfile.NewStore(cfg.DataDir)
	default:
		return sqlitestore.NewStore(cfg.DataDir)
	}
}
