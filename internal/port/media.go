package port

import (
	"context"

	"github.com/bnema/vidsum/internal/domain"
)

// AudioFetcher downloads the audio track of a remote video into outputDir and
// returns the absolute path of the produced file.
type AudioFetcher interface {
	FetchAudio(ctx context.Context, url, outputDir string, progress domain.ProgressFunc) (string, error)
}

// DecoderProbe reports whether an audio-capable decoding tool is installed.
type DecoderProbe interface {
	Available() error
}

// AudioSegmenter turns one audio file into an ordered list of chunks that fit
// the transcription size limit. It never fails: on any tooling error it
// degrades to fewer, larger chunks.
type AudioSegmenter interface {
	Prepare(ctx context.Context, inputPath string) []string
}

// Transcriber converts one audio chunk into text. A non-nil error always
// comes with an empty string.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Summarizer turns a transcript into Markdown. An empty transcript yields an
// empty summary without calling the backing service.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, instructions string) (string, error)
}
