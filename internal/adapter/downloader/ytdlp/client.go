package ytdlp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/infrastructure/logger"
	"github.com/bnema/vidsum/internal/port"
)

const (
	progressTag = "[vidsum]"
	fileTag     = "[vidsum-file]"

	// Fields are space separated; tmpfilename goes last because it is the
	// only one that may be long.
	progressTemplate = "download:" + progressTag +
		" %(progress.status)s %(progress.downloaded_bytes)s %(progress.total_bytes)s" +
		" %(progress.total_bytes_estimate)s %(progress.fragment_index)s" +
		" %(progress.fragment_count)s %(progress.tmpfilename)s"
	filePrintTemplate = "after_move:" + fileTag + " %(id)s|%(filepath)s"
)

// audioExtensions are probed, in order, when yt-dlp did not report the final
// path of the produced file.
var audioExtensions = []string{".m4a", ".mp4", ".aac", ".mp3", ".webm", ".wav"}

type OutputStream string

const (
	StreamStdout OutputStream = "stdout"
	StreamStderr OutputStream = "stderr"
)

// lineRunner executes a command and hands every output line to onLine.
type lineRunner interface {
	Run(ctx context.Context, name string, args []string, onLine func(stream OutputStream, line string)) error
}

// Client drives the yt-dlp binary to fetch the audio track of a video.
type Client struct {
	binary   string
	runner   lineRunner
	lookPath func(file string) (string, error)
}

type Option func(*Client)

func WithBinary(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.binary = path
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		binary:   "yt-dlp",
		runner:   execRunner{},
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether the yt-dlp binary can be found.
func (c *Client) Available() error {
	if _, err := c.lookPath(c.binary); err != nil {
		return fmt.Errorf("missing dependency: %s is not installed or not on PATH", c.binary)
	}
	return nil
}

// FetchAudio downloads the best audio stream of url into outputDir, converts
// it to m4a and returns the absolute path of the produced file.
func (c *Client) FetchAudio(ctx context.Context, url, outputDir string, progress domain.ProgressFunc) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", fmt.Errorf("video URL is required")
	}
	if strings.TrimSpace(outputDir) == "" {
		return "", fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	var (
		mu       sync.Mutex
		reported string
		videoID  string
	)
	onLine := func(stream OutputStream, line string) {
		switch {
		case strings.HasPrefix(line, progressTag+" "):
			ev, ok := parseProgressLine(line)
			if ok && progress != nil {
				progress(ev)
			}
		case strings.HasPrefix(line, fileTag+" "):
			id, path := parseFileLine(line)
			mu.Lock()
			videoID, reported = id, path
			mu.Unlock()
		default:
			logger.Debug.Printf("yt-dlp %s: %s", stream, logger.Truncate(line))
		}
	}

	if err := c.runner.Run(ctx, c.binary, buildArgs(url, outputDir), onLine); err != nil {
		return "", err
	}

	mu.Lock()
	defer mu.Unlock()
	if reported != "" && exists(reported) {
		return absPath(reported), nil
	}
	if videoID == "" {
		videoID, _ = domain.ExtractVideoID(url)
	}
	if path := locate(outputDir, videoID); path != "" {
		return absPath(path), nil
	}
	return "", fmt.Errorf("%w in %s", domain.ErrAudioNotProduced, outputDir)
}

func buildArgs(url, outputDir string) []string {
	return []string{
		"-f", "bestaudio/best",
		"--no-playlist",
		"--restrict-filenames",
		"--no-check-certificates",
		"--retries", "3",
		"--fragment-retries", "3",
		"--extractor-retries", "3",
		"--extract-audio",
		"--audio-format", "m4a",
		"--audio-quality", "0",
		"--embed-metadata",
		"--progress",
		"--newline",
		"--progress-template", progressTemplate,
		"--print", filePrintTemplate,
		"-o", filepath.Join(outputDir, "%(id)s.%(ext)s"),
		url,
	}
}

func parseFileLine(line string) (id, path string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, fileTag))
	id, path, found := strings.Cut(rest, "|")
	if !found {
		return "", rest
	}
	return id, path
}

// locate finds <id>.<ext> in dir for the known audio extensions.
func locate(dir, id string) string {
	if id == "" {
		return ""
	}
	for _, ext := range audioExtensions {
		candidate := filepath.Join(dir, id+ext)
		if exists(candidate) {
			return candidate
		}
	}
	return ""
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args []string, onLine func(stream OutputStream, line string)) error {
	cmd := exec.CommandContext(ctx, name, args...)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("setup stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("setup stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("missing dependency: %s is not installed or not on PATH", name)
		}
		return fmt.Errorf("start %s: %w", name, err)
	}

	var errBuf strings.Builder
	var mu sync.Mutex
	var wg sync.WaitGroup

	read := func(stream OutputStream, r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		buf := make([]byte, 0, 64*1024)
		scanner.Buffer(buf, 1024*1024)
		scanner.Split(splitByNewlineOrCR)
		for scanner.Scan() {
			line := scanner.Text()
			if stream == StreamStderr {
				mu.Lock()
				appendLimited(&errBuf, line)
				mu.Unlock()
			}
			onLine(stream, line)
		}
	}

	wg.Add(2)
	go read(StreamStdout, stdoutPipe)
	go read(StreamStderr, stderrPipe)
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		mu.Lock()
		defer mu.Unlock()
		return fmt.Errorf("yt-dlp failed: %w: %s", err, logger.Truncate(strings.TrimSpace(errBuf.String())))
	}
	return nil
}

func splitByNewlineOrCR(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' || data[i] == '\r' {
			if i == 0 {
				return 1, nil, nil
			}
			return i + 1, data[:i], nil
		}
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func appendLimited(b *strings.Builder, line string) {
	const maxKeep = 8192
	if b.Len() >= maxKeep {
		return
	}
	toWrite := line + "\n"
	if remain := maxKeep - b.Len(); len(toWrite) > remain {
		toWrite = toWrite[:remain]
	}
	b.WriteString(toWrite)
}

var _ port.AudioFetcher = (*Client)(nil)
