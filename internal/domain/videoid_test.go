package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{name: "watch url", input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "watch url with playlist", input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&index=4", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "short link", input: "https://youtu.be/dQw4w9WgXcQ?t=42", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "shorts", input: "https://www.youtube.com/shorts/abcdefghijk", wantID: "abcdefghijk", wantOK: true},
		{name: "embed", input: "https://www.youtube.com/embed/abc_def-123", wantID: "abc_def-123", wantOK: true},
		{name: "live", input: "https://www.youtube.com/live/ABCDEFGHIJK?feature=share", wantID: "ABCDEFGHIJK", wantOK: true},
		{name: "bare id", input: "ABCDEFGHIJK", wantID: "ABCDEFGHIJK", wantOK: true},
		{name: "bare id with spaces", input: "  ABCDEFGHIJK ", wantID: "ABCDEFGHIJK", wantOK: true},
		{name: "foreign host watch url", input: "https://example.com/watch?v=ABCDEFGHIJK", wantID: "ABCDEFGHIJK", wantOK: true},
		{name: "invalid v parameter", input: "https://www.youtube.com/watch?v=short", wantOK: false},
		{name: "channel url", input: "https://www.youtube.com/@somechannel", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestCanonicalURL(t *testing.T) {
	assert.Equal(t,
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		CanonicalURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=RDdQw4w9WgXcQ&start_radio=1"))
	assert.Equal(t,
		"https://www.youtube.com/watch?v=ABCDEFGHIJK",
		CanonicalURL("https://example.com/watch?v=ABCDEFGHIJK"))
	assert.Equal(t,
		"https://vimeo.com/12345",
		CanonicalURL(" https://vimeo.com/12345 "))
}
