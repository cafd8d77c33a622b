package domain

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	videoIDPattern         = regexp.MustCompile(`^[\w-]{11}$`)
	videoIDFallbackPattern = regexp.MustCompile(`(?i)(?:youtu\.be/|v=|/v/|/embed/|/shorts/)([\w-]{11})`)
)

// pathMarkers are the path prefixes that carry a video id as next segment.
var pathMarkers = []string{"shorts", "embed", "v", "live"}

// ExtractVideoID recognizes the common video-sharing URL shapes (watch?v=,
// youtu.be/, /shorts/, /embed/, /v/, /live/) as well as a bare 11 character id.
func ExtractVideoID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if videoIDPattern.MatchString(raw) {
		return raw, true
	}

	if u, err := url.Parse(raw); err == nil {
		if v := u.Query().Get("v"); videoIDPattern.MatchString(v) {
			return v, true
		}

		var parts []string
		for _, p := range strings.Split(u.Path, "/") {
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) >= 2 {
			for _, marker := range pathMarkers {
				if parts[0] == marker && videoIDPattern.MatchString(parts[1]) {
					return parts[1], true
				}
			}
		}
		if len(parts) > 0 && videoIDPattern.MatchString(parts[len(parts)-1]) {
			return parts[len(parts)-1], true
		}
	}

	if m := videoIDFallbackPattern.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	return "", false
}

// CanonicalURL rewrites a recognizable video URL into its single-video watch
// form so that playlist or mix parameters are dropped. Unknown URLs are
// returned trimmed but otherwise untouched.
func CanonicalURL(raw string) string {
	if id, ok := ExtractVideoID(raw); ok {
		return "https://www.youtube.com/watch?v=" + id
	}
	return strings.TrimSpace(raw)
}
