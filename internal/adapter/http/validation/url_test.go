package validation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestVideoURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{
			name:     "watch url",
			input:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:     "short url trimmed",
			input:    "  https://youtu.be/dQw4w9WgXcQ\n",
			expected: "https://youtu.be/dQw4w9WgXcQ",
		},
		{
			name:     "plain http",
			input:    "http://example.com/video",
			expected: "http://example.com/video",
		},
		{
			name:     "uppercase scheme",
			input:    "HTTPS://example.com/v",
			expected: "HTTPS://example.com/v",
		},
		{name: "empty", input: "", err: ErrEmptyURL},
		{name: "whitespace only", input: "   ", err: ErrEmptyURL},
		{name: "bare id", input: "dQw4w9WgXcQ", err: ErrInvalidURL},
		{name: "missing host", input: "https:///watch?v=dQw4w9WgXcQ", err: ErrInvalidURL},
		{name: "file scheme", input: "file:///etc/passwd", err: ErrUnsupportedURL},
		{name: "javascript scheme", input: "javascript:alert(1)", err: ErrUnsupportedURL},
		{name: "embedded newline", input: "https://example.com/a\nb", err: ErrInvalidURL},
		{name: "too long", input: "https://example.com/" + strings.Repeat("a", maxURLLength), err: ErrURLTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VideoURL(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "My talk", expected: "My talk"},
		{name: "unicode preserved", input: "vidéo 動画 🎬", expected: "vidéo 動画 🎬"},
		{name: "control chars", input: "line1\nline2\r\x00end", expected: "line1 line2  end"},
		{name: "trimmed", input: "  \tpadded\t ", expected: "padded"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeTitle(tt.input))
		})
	}
}

func TestSanitizeTitle_TruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 200) // 400 bytes

	got := SanitizeTitle(long)

	assert.LessOrEqual(t, len(got), maxTitleLength)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 127), got)
}
