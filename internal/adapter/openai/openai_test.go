package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidsum/internal/domain"
)

func writeAudio(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "ABCDEFGHIJK.small.part-000.m4a")
	require.NoError(t, os.WriteFile(p, []byte("fake-audio"), 0o644))
	return p
}

func TestTranscriber_Transcribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		assert.Equal(t, "fr", r.FormValue("language"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "ABCDEFGHIJK.small.part-000.m4a", hdr.Filename)
		b, _ := io.ReadAll(f)
		assert.Equal(t, "fake-audio", string(b))

		_ = json.NewEncoder(w).Encode(map[string]string{"text": "  bonjour tout le monde \n"})
	}))
	defer srv.Close()

	tr := NewTranscriber(Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1/"}, "", "fr")
	text, err := tr.Transcribe(context.Background(), writeAudio(t))

	require.NoError(t, err)
	assert.Equal(t, "bonjour tout le monde", text)
}

func TestTranscriber_Transcribe_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte(`{"error":{"message":"Maximum content size limit exceeded"}}`))
	}))
	defer srv.Close()

	tr := NewTranscriber(Config{APIKey: "sk-test", BaseURL: srv.URL}, "whisper-1", "")
	text, err := tr.Transcribe(context.Background(), writeAudio(t))

	assert.Empty(t, text)
	assert.ErrorContains(t, err, "http 413")
}

func TestTranscriber_Transcribe_MissingKey(t *testing.T) {
	tr := NewTranscriber(Config{}, "", "")

	text, err := tr.Transcribe(context.Background(), writeAudio(t))

	assert.Empty(t, text)
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestTranscriber_Transcribe_MissingFile(t *testing.T) {
	tr := NewTranscriber(Config{APIKey: "sk-test"}, "", "")

	text, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.m4a"))

	assert.Empty(t, text)
	assert.Error(t, err)
}

func TestSummarizer_Summarize(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"# Summary\n\n- point\n"}}]}`))
	}))
	defer srv.Close()

	s := NewSummarizer(Config{APIKey: "sk-test", BaseURL: srv.URL}, "")
	out, err := s.Summarize(context.Background(), "  the transcript  ", "focus on dates")

	require.NoError(t, err)
	assert.Equal(t, "# Summary\n\n- point", out)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 0.2, got.Temperature)
	assert.Equal(t, 512, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, summarySystemPrompt+" Additional instructions: focus on dates", got.Messages[0].Content)
	assert.Equal(t, "Transcript:\nthe transcript", got.Messages[1].Content)
}

func TestSummarizer_Summarize_EmptyTranscriptSkipsCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("summarizer must not call the API for an empty transcript")
	}))
	defer srv.Close()

	s := NewSummarizer(Config{APIKey: "sk-test", BaseURL: srv.URL}, "")
	out, err := s.Summarize(context.Background(), " \n ", "")

	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestSummarizer_Summarize_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: true},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: false},
		{name: "malformed json", status: http.StatusOK, body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := NewSummarizer(Config{APIKey: "sk-test", BaseURL: srv.URL}, "gpt-4o-mini")
			out, err := s.Summarize(context.Background(), "text", "")

			assert.Empty(t, out)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSystemPrompt(t *testing.T) {
	assert.Equal(t, summarySystemPrompt, systemPrompt("   "))
	assert.Contains(t, systemPrompt("bullet points only"), "Additional instructions: bullet points only")
}
