package openai

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/infrastructure/logger"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 4096

// Config holds the settings shared by the transcription and summarization
// adapters.
type Config struct {
	APIKey  string
	BaseURL string
	// HTTPClient is used when set. Per-call timeouts are applied through the
	// request context, so a client without Timeout is fine.
	HTTPClient *http.Client
}

type client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func newClient(cfg Config) client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return client{apiKey: strings.TrimSpace(cfg.APIKey), baseURL: base, http: hc}
}

func (c client) endpoint(path string) string {
	return c.baseURL + path
}

func (c client) checkKey() error {
	if c.apiKey == "" {
		return domain.ErrMissingAPIKey
	}
	return nil
}

func (c client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// statusError reads the body of a non-2xx response into an error.
func statusError(op string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("openai %s: http %d: %s", op, resp.StatusCode, logger.Truncate(strings.TrimSpace(string(b))))
}
