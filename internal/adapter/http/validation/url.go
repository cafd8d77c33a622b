// Package validation checks and normalizes user input before it reaches the
// service layer.
package validation

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	maxURLLength   = 2048
	maxTitleLength = 255
)

var (
	ErrEmptyURL       = errors.New("url is required")
	ErrURLTooLong     = errors.New("url is too long")
	ErrInvalidURL     = errors.New("url is not valid")
	ErrUnsupportedURL = errors.New("url scheme must be http or https")
)

// VideoURL validates a submitted video URL and returns it trimmed. Only
// absolute http(s) URLs with a host are accepted.
func VideoURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}
	if len(raw) > maxURLLength {
		return "", ErrURLTooLong
	}
	if strings.IndexFunc(raw, isControl) >= 0 {
		return "", ErrInvalidURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	case "":
		return "", ErrInvalidURL
	default:
		return "", ErrUnsupportedURL
	}
	if u.Hostname() == "" {
		return "", ErrInvalidURL
	}
	return raw, nil
}

// SanitizeTitle replaces control characters with spaces and truncates the
// result to 255 bytes without splitting a multi-byte character.
func SanitizeTitle(title string) string {
	var sb strings.Builder
	sb.Grow(len(title))
	for _, r := range title {
		if isControl(r) {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(truncateToBytes(strings.TrimSpace(sb.String()), maxTitleLength))
}

func isControl(r rune) bool {
	return r < 32 || r == 127
}

// truncateToBytes truncates a UTF-8 string to at most maxBytes bytes,
// ensuring we don't cut in the middle of a multi-byte character.
func truncateToBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}
