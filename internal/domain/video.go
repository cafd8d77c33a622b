package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// AssetStatus tracks one pipeline-managed asset of a video (audio, transcript).
type AssetStatus string

const (
	AssetStatusNone    AssetStatus = ""
	AssetStatusPending AssetStatus = "pending"
	AssetStatusReady   AssetStatus = "ready"
	AssetStatusFailed  AssetStatus = "failed"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetStatusNone, AssetStatusPending, AssetStatusReady, AssetStatusFailed:
		return true
	default:
		return false
	}
}

type Video struct {
	ID               int64       `json:"id"`
	URL              string      `json:"url"`
	Title            string      `json:"title"`
	Transcript       string      `json:"transcribe"`
	Summary          string      `json:"summary"`
	AudioPath        string      `json:"audio_path"`
	AudioStatus      AssetStatus `json:"audio_status"`
	TranscribeStatus AssetStatus `json:"transcribe_status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`

	// Platform metadata captured on create. Unknown values stay nil.
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channel_title"`
	PublishedAt  *time.Time `json:"published_at"`
	ViewCount    *int64     `json:"view_count"`
	LikeCount    *int64     `json:"like_count"`
	CommentCount *int64     `json:"comment_count"`
}

// VideoMetadata is what the hosting platform reports about a video.
type VideoMetadata struct {
	Title        string
	Description  string
	ChannelTitle string
	PublishedAt  *time.Time
	ViewCount    *int64
	LikeCount    *int64
	CommentCount *int64
}

// ApplyMetadata copies m onto the record. The platform title replaces the
// title only when keepTitle is false and the platform reports one.
func (v *Video) ApplyMetadata(m *VideoMetadata, keepTitle bool) {
	if m == nil {
		return
	}
	if !keepTitle {
		if t := strings.TrimSpace(m.Title); t != "" {
			v.Title = t
		}
	}
	v.Description = m.Description
	v.ChannelTitle = m.ChannelTitle
	v.PublishedAt = m.PublishedAt
	v.ViewCount = m.ViewCount
	v.LikeCount = m.LikeCount
	v.CommentCount = m.CommentCount
}

// NewVideo builds a record for a freshly submitted URL. The title falls back
// to the URL until metadata is known.
func NewVideo(url, title string) *Video {
	url = strings.TrimSpace(url)
	title = strings.TrimSpace(title)
	if title == "" {
		title = url
	}
	now := time.Now().UTC()
	return &Video{
		URL:       url,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasTranscript reports whether a usable transcript is stored.
func (v *Video) HasTranscript() bool {
	return strings.TrimSpace(v.Transcript) != ""
}

// RelativeAudioPath converts an absolute audio location into the
// root-relative form stored on the record ("/audio/abc.m4a"). Paths outside
// root are kept absolute.
func RelativeAudioPath(root, absPath string) string {
	if root == "" {
		return absPath
	}
	rel, err := filepath.Rel(root, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return absPath
	}
	return "/" + filepath.ToSlash(rel)
}

// ResolveAudioPath is the inverse of RelativeAudioPath.
func ResolveAudioPath(root, stored string) string {
	if stored == "" {
		return ""
	}
	if root != "" && !isUnder(root, stored) {
		return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(stored, "/")))
	}
	return stored
}

func isUnder(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
