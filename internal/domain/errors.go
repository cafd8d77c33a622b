package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	ErrNoAudioDecoder     = errors.New("ffmpeg or avconv is required to extract audio")
	ErrAudioNotProduced   = errors.New("audio file not produced")
	ErrTranscriptionEmpty = errors.New("transcription empty")
	ErrTranscriptEmpty    = errors.New("transcript is empty")
	ErrSummaryEmpty       = errors.New("summary is empty")
	ErrMissingAPIKey      = errors.New("api key is not configured")
	ErrNoMetadata         = errors.New("no metadata for video")
)

// DownloadError is returned by the download stage. It always halts the pipeline
// before transcription.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewDownloadError(url string, err error) *DownloadError {
	return &DownloadError{URL: url, Err: err}
}
