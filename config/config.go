package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	BackendSQLite   = "sqlite"
	BackendJSONFile = "jsonfile"
)

type OpenAI struct {
	APIKey          string `toml:"api_key"`
	BaseURL         string `toml:"base_url"`
	Model           string `toml:"model"`
	TranscribeModel string `toml:"transcribe_model"`
}

type Config struct {
	Port            int    `toml:"port"`
	DataDir         string `toml:"data_dir"`
	AudioDir        string `toml:"audio_dir"`
	ProjectRoot     string `toml:"project_root"`
	StorageBackend  string `toml:"storage_backend"`
	PipelineWorkers int    `toml:"pipeline_workers"`

	OpenAI              OpenAI `toml:"openai"`
	YouTubeAPIKey       string `toml:"youtube_api_key"`
	TranscribeLanguage  string `toml:"transcribe_language"`
	SummaryInstructions string `toml:"summary_instructions"`

	YtDlpPath      string `toml:"ytdlp_path"`
	FFmpegPath     string `toml:"ffmpeg_path"`
	ChunkLimitMB   int    `toml:"chunk_limit_mb"`
	SegmentSeconds int    `toml:"segment_seconds"`

	LogLevel string `toml:"log_level"`
}

func defaults() *Config {
	return &Config{
		Port:            8080,
		DataDir:         "data",
		ProjectRoot:     ".",
		StorageBackend:  BackendSQLite,
		PipelineWorkers: 4,
		OpenAI: OpenAI{
			BaseURL:         "https://api.openai.com/v1",
			Model:           "gpt-4o-mini",
			TranscribeModel: "whisper-1",
		},
		YtDlpPath:      "yt-dlp",
		ChunkLimitMB:   24,
		SegmentSeconds: 600,
		LogLevel:       "info",
	}
}

// Load builds the configuration from defaults, then the optional TOML file
// named by CONFIG_FILE, then environment variables.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.Port, err = getEnvInt("PORT", c.Port); err != nil {
		return err
	}
	if c.PipelineWorkers, err = getEnvInt("PIPELINE_WORKERS", c.PipelineWorkers); err != nil {
		return err
	}
	if c.ChunkLimitMB, err = getEnvInt("CHUNK_LIMIT_MB", c.ChunkLimitMB); err != nil {
		return err
	}
	if c.SegmentSeconds, err = getEnvInt("SEGMENT_SECONDS", c.SegmentSeconds); err != nil {
		return err
	}

	c.DataDir = getEnv("DATA_DIR", c.DataDir)
	c.AudioDir = getEnv("AUDIO_DIR", c.AudioDir)
	c.ProjectRoot = getEnv("PROJECT_ROOT", c.ProjectRoot)
	c.StorageBackend = getEnv("STORAGE_BACKEND", c.StorageBackend)
	c.OpenAI.APIKey = getEnv("OPENAI_API_KEY", c.OpenAI.APIKey)
	c.OpenAI.BaseURL = getEnv("OPENAI_BASE_URL", c.OpenAI.BaseURL)
	c.OpenAI.Model = getEnv("OPENAI_MODEL", c.OpenAI.Model)
	c.OpenAI.TranscribeModel = getEnv("OPENAI_TRANSCRIBE_MODEL", c.OpenAI.TranscribeModel)
	c.YouTubeAPIKey = getEnv("YOUTUBE_API_KEY", c.YouTubeAPIKey)
	c.TranscribeLanguage = getEnv("TRANSCRIBE_LANGUAGE", c.TranscribeLanguage)
	c.SummaryInstructions = getEnv("SUMMARY_INSTRUCTIONS", c.SummaryInstructions)
	c.YtDlpPath = getEnv("YTDLP_PATH", c.YtDlpPath)
	c.FFmpegPath = getEnv("FFMPEG_PATH", c.FFmpegPath)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	return nil
}

// finalize resolves directories to absolute paths and validates ranges. The
// audio directory must live under the project root so stored paths can be
// kept root-relative.
func (c *Config) finalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.PipelineWorkers < 1 {
		return fmt.Errorf("invalid PIPELINE_WORKERS: %d", c.PipelineWorkers)
	}
	if c.ChunkLimitMB < 1 {
		return fmt.Errorf("invalid CHUNK_LIMIT_MB: %d", c.ChunkLimitMB)
	}
	if c.SegmentSeconds < 1 {
		return fmt.Errorf("invalid SEGMENT_SECONDS: %d", c.SegmentSeconds)
	}

	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case BackendSQLite, BackendJSONFile:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND: %q", c.StorageBackend)
	}

	root, err := filepath.Abs(c.ProjectRoot)
	if err != nil {
		return fmt.Errorf("invalid PROJECT_ROOT: %w", err)
	}
	c.ProjectRoot = root

	if c.AudioDir == "" {
		c.AudioDir = filepath.Join(root, "audio")
	} else if !filepath.IsAbs(c.AudioDir) {
		c.AudioDir = filepath.Join(root, c.AudioDir)
	}
	c.AudioDir = filepath.Clean(c.AudioDir)
	rel, err := filepath.Rel(root, c.AudioDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("invalid AUDIO_DIR: %s is outside PROJECT_ROOT %s", c.AudioDir, root)
	}

	if c.DataDir, err = filepath.Abs(c.DataDir); err != nil {
		return fmt.Errorf("invalid DATA_DIR: %w", err)
	}
	return nil
}

// ChunkLimitBytes is the per-request upload cap of the transcription service.
func (c *Config) ChunkLimitBytes() int64 {
	return int64(c.ChunkLimitMB) * 1024 * 1024
}

// ErrMissingAPIKey is reported by Validate when no OpenAI key is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// Validate reports settings that allow startup but break the pipeline.
func (c *Config) Validate() []error {
	var warnings []error
	if c.OpenAI.APIKey == "" {
		warnings = append(warnings, ErrMissingAPIKey)
	}
	return warnings
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
