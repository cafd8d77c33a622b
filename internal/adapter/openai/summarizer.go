package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/vidsum/internal/infrastructure/logger"
	"github.com/bnema/vidsum/internal/port"
)

const (
	DefaultSummaryModel = "gpt-4o-mini"
	summarizeTimeout    = 45 * time.Second
	summaryTemperature  = 0.2
	summaryMaxTokens    = 512

	summarySystemPrompt = "You are an expert summarizer. Respond in clean Markdown. " +
		"Write a short intro paragraph followed by a bulleted list of 3–7 key points. " +
		"Use headings when helpful (e.g., '# Summary', '## Key Points') and **bold** for emphasis."
)

// Summarizer turns transcripts into Markdown summaries through the chat
// completions endpoint.
type Summarizer struct {
	client client
	model  string
}

func NewSummarizer(cfg Config, model string) *Summarizer {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultSummaryModel
	}
	return &Summarizer{client: newClient(cfg), model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func systemPrompt(instructions string) string {
	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		return summarySystemPrompt
	}
	return summarySystemPrompt + " Additional instructions: " + instructions
}

// Summarize returns a Markdown summary of transcript. An empty transcript
// returns "" without calling the API.
func (s *Summarizer) Summarize(ctx context.Context, transcript, instructions string) (string, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "", nil
	}
	if err := s.client.checkKey(); err != nil {
		return "", err
	}

	payload, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(instructions)},
			{Role: "user", Content: "Transcript:\n" + transcript},
		},
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode summary request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, summarizeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.endpoint("/chat/completions"), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	s.client.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai summarize: %w", err)
	}
	defer resp.Body.Close()
	logger.Info.Printf("summarize response status=%d model=%s", resp.StatusCode, s.model)

	if resp.StatusCode >= 300 {
		return "", statusError("summarize", resp)
	}
	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode summary: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

var _ port.Summarizer = (*Summarizer)(nil)
