package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/vidsum/internal/infrastructure/logger"
	"github.com/bnema/vidsum/internal/port"
)

const (
	DefaultTranscribeModel = "whisper-1"
	transcribeTimeout      = 120 * time.Second
)

// Transcriber sends audio chunks to the speech-to-text endpoint.
type Transcriber struct {
	client   client
	model    string
	language string
}

func NewTranscriber(cfg Config, model, language string) *Transcriber {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultTranscribeModel
	}
	return &Transcriber{
		client:   newClient(cfg),
		model:    model,
		language: strings.TrimSpace(language),
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the file at audioPath and returns the recognized text.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := t.client.checkKey(); err != nil {
		return "", err
	}

	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("model", t.model); err != nil {
		return "", err
	}
	if t.language != "" {
		if err := mw.WriteField("language", t.language); err != nil {
			return "", err
		}
	}
	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, transcribeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.client.endpoint("/audio/transcriptions"), &body)
	if err != nil {
		return "", err
	}
	t.client.authorize(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	logger.Info.Printf("transcribe request model=%s file=%s", t.model, filepath.Base(audioPath))
	resp, err := t.client.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai transcribe: %w", err)
	}
	defer resp.Body.Close()
	logger.Info.Printf("transcribe response status=%d file=%s", resp.StatusCode, filepath.Base(audioPath))

	if resp.StatusCode >= 300 {
		return "", statusError("transcribe", resp)
	}
	var out transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode transcription: %w", err)
	}
	return strings.TrimSpace(out.Text), nil
}

var _ port.Transcriber = (*Transcriber)(nil)
