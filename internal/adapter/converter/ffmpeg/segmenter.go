package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/infrastructure/logger"
	"github.com/bnema/vidsum/internal/port"
)

const (
	// DefaultChunkLimit sits just under the 25 MB upload cap of the
	// transcription API.
	DefaultChunkLimit int64 = 24 * 1024 * 1024
	// DefaultSegmentSeconds is the duration of one chunk when splitting.
	DefaultSegmentSeconds = 600

	normalizedSuffix = ".small.m4a"
	partInfix        = ".part-"
	partExt          = ".m4a"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains invalid characters")
)

func validatePath(p string) error {
	if p == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(p, '\x00') {
		return ErrInvalidPath
	}
	return nil
}

type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, logger.Truncate(lastLine(string(out))))
	}
	return nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Segmenter shrinks downloaded audio and cuts it into chunks small enough for
// the transcription service.
type Segmenter struct {
	ffmpegPath     string
	chunkLimit     int64
	segmentSeconds int
	runner         commandRunner
	lookPath       func(file string) (string, error)
}

type Option func(*Segmenter)

func WithFFmpegPath(path string) Option {
	return func(s *Segmenter) {
		if path != "" {
			s.ffmpegPath = path
		}
	}
}

func WithChunkLimit(limit int64) Option {
	return func(s *Segmenter) {
		if limit > 0 {
			s.chunkLimit = limit
		}
	}
}

func WithSegmentSeconds(seconds int) Option {
	return func(s *Segmenter) {
		if seconds > 0 {
			s.segmentSeconds = seconds
		}
	}
}

func NewSegmenter(opts ...Option) *Segmenter {
	s := &Segmenter{
		ffmpegPath:     "ffmpeg",
		chunkLimit:     DefaultChunkLimit,
		segmentSeconds: DefaultSegmentSeconds,
		runner:         execRunner{},
		lookPath:       exec.LookPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether ffmpeg (or its avconv fork) can be found.
func (s *Segmenter) Available() error {
	for _, bin := range []string{s.ffmpegPath, "avconv"} {
		if _, err := s.lookPath(bin); err == nil {
			return nil
		}
	}
	return domain.ErrNoAudioDecoder
}

// Prepare returns the ordered chunk list for inputPath. It never fails: when
// re-encoding fails the original file is used, and when splitting fails the
// single (possibly oversized) file is returned.
func (s *Segmenter) Prepare(ctx context.Context, inputPath string) []string {
	source := inputPath
	normalized, err := s.Normalize(ctx, inputPath)
	if err != nil {
		logger.Warn.Printf("normalize failed, using original file=%s: %v", filepath.Base(inputPath), err)
	} else {
		source = normalized
	}

	size := fileSize(source)
	if size > 0 && size <= s.chunkLimit {
		logger.Info.Printf("audio fits in one chunk file=%s size=%s", filepath.Base(source), humanize.IBytes(uint64(size)))
		return []string{source}
	}

	logger.Info.Printf("splitting audio file=%s size=%s limit=%s segment=%ds",
		filepath.Base(source), humanize.IBytes(uint64(max(size, 0))), humanize.IBytes(uint64(s.chunkLimit)), s.segmentSeconds)

	parts, err := s.Split(ctx, source)
	if err != nil {
		logger.Warn.Printf("split failed, sending single chunk file=%s: %v", filepath.Base(source), err)
		return []string{source}
	}
	return parts
}

// Normalize re-encodes inputPath to 16 kHz mono AAC at 48 kbit/s next to the
// original, as <base>.small.m4a.
func (s *Segmenter) Normalize(ctx context.Context, inputPath string) (string, error) {
	if err := validatePath(inputPath); err != nil {
		return "", fmt.Errorf("invalid input path: %w", err)
	}
	outputPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + normalizedSuffix

	args := []string{
		"-y",
		"-i", inputPath,
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "aac",
		"-b:a", "48k",
		outputPath,
	}
	if err := s.runner.Run(ctx, s.ffmpegPath, args...); err != nil {
		return "", fmt.Errorf("re-encode: %w", err)
	}
	if fileSize(outputPath) <= 0 {
		return "", fmt.Errorf("re-encode produced no output: %s", outputPath)
	}
	return outputPath, nil
}

// Split cuts inputPath into fixed-duration parts using stream copy and
// returns them ordered by part index.
func (s *Segmenter) Split(ctx context.Context, inputPath string) ([]string, error) {
	if err := validatePath(inputPath); err != nil {
		return nil, fmt.Errorf("invalid input path: %w", err)
	}
	dir := filepath.Dir(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	pattern := filepath.Join(dir, base+partInfix+"%03d"+partExt)

	args := []string{
		"-y",
		"-i", inputPath,
		"-f", "segment",
		"-segment_time", strconv.Itoa(s.segmentSeconds),
		"-c", "copy",
		pattern,
	}
	if err := s.runner.Run(ctx, s.ffmpegPath, args...); err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}

	parts, err := collectParts(dir, base)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("segment produced no parts for %s", filepath.Base(inputPath))
	}
	return parts, nil
}

// collectParts lists <base>.part-NNN.m4a files in dir sorted by NNN.
func collectParts(dir, base string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}

	type part struct {
		index int
		path  string
	}
	var parts []part
	prefix := base + partInfix
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, partExt) {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, prefix), partExt))
		if err != nil {
			continue
		}
		parts = append(parts, part{index: idx, path: filepath.Join(dir, name)})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].index < parts[j].index })

	paths := make([]string, len(parts))
	for i, p := range parts {
		paths[i] = p.path
	}
	return paths, nil
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

var (
	_ port.AudioSegmenter = (*Segmenter)(nil)
	_ port.DecoderProbe   = (*Segmenter)(nil)
)
