package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/infrastructure/logger"
	"github.com/bnema/vidsum/internal/port"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"
	lookupTimeout  = 15 * time.Second
	maxErrorBody   = 4096
)

type Config struct {
	APIKey  string
	BaseURL string
	// HTTPClient is used when set. The lookup timeout is applied through the
	// request context.
	HTTPClient *http.Client
}

// Client reads video metadata from the YouTube Data API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{apiKey: strings.TrimSpace(cfg.APIKey), baseURL: base, http: hc}
}

type videosResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// Lookup returns the snippet and statistics of the video rawURL points at.
// URLs without a YouTube video id return domain.ErrNoMetadata without a
// request.
func (c *Client) Lookup(ctx context.Context, rawURL string) (*domain.VideoMetadata, error) {
	id, ok := domain.ExtractVideoID(rawURL)
	if !ok {
		return nil, domain.ErrNoMetadata
	}
	if c.apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("part", "snippet,statistics")
	q.Set("id", id)
	q.Set("key", c.apiKey)

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/videos?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		// *url.Error carries the request URL, which includes the key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("youtube videos: %w", err)
	}
	defer resp.Body.Close()
	logger.Debug.Printf("youtube videos response status=%d video=%s", resp.StatusCode, id)

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("youtube videos: http %d: %s", resp.StatusCode, logger.Truncate(strings.TrimSpace(string(b))))
	}
	var out videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode youtube videos: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, domain.ErrNoMetadata
	}

	item := out.Items[0]
	meta := &domain.VideoMetadata{
		Title:        strings.TrimSpace(item.Snippet.Title),
		Description:  item.Snippet.Description,
		ChannelTitle: item.Snippet.ChannelTitle,
		ViewCount:    parseCount(item.Statistics.ViewCount),
		LikeCount:    parseCount(item.Statistics.LikeCount),
		CommentCount: parseCount(item.Statistics.CommentCount),
	}
	if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
		t = t.UTC()
		meta.PublishedAt = &t
	}
	return meta, nil
}

// parseCount reads a statistics counter. The API sends counters as strings
// and omits them when the owner hides them.
func parseCount(s string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

var _ port.MetadataLookup = (*Client)(nil)
