package http

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/service"
)

func TestSendState_SkipsUnchangedSnapshot(t *testing.T) {
	st := domain.JobState{Status: domain.JobStatusDownloading, Progress: 10}

	first := httptest.NewRecorder()
	last, err := sendState(first, st, nil)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 1, strings.Count(first.Body.String(), "event: status"))
	assert.Contains(t, first.Body.String(), `data: {"status":"downloading","progress":10}`)

	second := httptest.NewRecorder()
	last, err = sendState(second, st, last)
	require.NoError(t, err)
	assert.Empty(t, second.Body.String())

	third := httptest.NewRecorder()
	_, err = sendState(third, domain.JobState{Status: domain.JobStatusDownloading, Progress: 20}, last)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(third.Body.String(), "event: status"))
}

// readStates reads "status" events until the stream ends.
func readStates(t *testing.T, sc *bufio.Scanner, n int) []domain.JobState {
	t.Helper()
	var out []domain.JobState
	for len(out) < n && sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var st domain.JobState
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &st))
		out = append(out, st)
	}
	return out
}

func TestEvents_StreamsUntilTerminal(t *testing.T) {
	svc := newFakeVideoService()
	v := svc.seed("https://youtu.be/dQw4w9WgXcQ")
	svc.setState(v.ID, domain.JobState{Status: domain.JobStatusQueued})
	bus := service.NewEventBus()
	ts := httptest.NewServer(NewServer(svc, bus))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/events/1")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	sc := bufio.NewScanner(resp.Body)
	initial := readStates(t, sc, 1)
	require.Len(t, initial, 1)
	assert.Equal(t, domain.JobStatusQueued, initial[0].Status)

	downloading := domain.JobState{Status: domain.JobStatusDownloading, Progress: 30}
	bus.Publish(v.ID, service.Event{JobID: v.ID, State: downloading})
	bus.Publish(v.ID, service.Event{JobID: v.ID, State: downloading})
	bus.Publish(v.ID, service.Event{JobID: v.ID, State: domain.JobState{Status: domain.JobStatusFinished, Progress: 100}})

	rest := readStates(t, sc, 10)
	require.Len(t, rest, 2)
	assert.Equal(t, downloading, rest[0])
	assert.Equal(t, domain.JobStatusFinished, rest[1].Status)
}

func TestEvents_TerminalStateClosesImmediately(t *testing.T) {
	svc := newFakeVideoService()
	v := svc.seed("https://youtu.be/dQw4w9WgXcQ")
	svc.setState(v.ID, domain.JobState{Status: domain.JobStatusError, Error: "transcription empty"})
	srv := NewServer(svc, service.NewEventBus())

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		done <- do(t, srv, http.MethodGet, "/events/1", "")
	}()

	select {
	case rec := <-done:
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error":"transcription empty"`)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close on terminal state")
	}
}

func TestEvents_UnknownVideo(t *testing.T) {
	srv := NewServer(newFakeVideoService(), service.NewEventBus())

	rec := do(t, srv, http.MethodGet, "/events/3", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEvents_KeepAliveResyncsMissedTerminalState(t *testing.T) {
	prev := keepAliveInterval
	keepAliveInterval = 20 * time.Millisecond
	t.Cleanup(func() { keepAliveInterval = prev })

	svc := newFakeVideoService()
	v := svc.seed("https://youtu.be/dQw4w9WgXcQ")
	svc.setState(v.ID, domain.JobState{Status: domain.JobStatusTranscribing, Progress: 60})
	ts := httptest.NewServer(NewServer(svc, service.NewEventBus()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/events/1")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	sc := bufio.NewScanner(resp.Body)
	initial := readStates(t, sc, 1)
	require.Len(t, initial, 1)
	assert.Equal(t, domain.JobStatusTranscribing, initial[0].Status)

	// The job finishes without any event reaching the bus.
	svc.setState(v.ID, domain.JobState{Status: domain.JobStatusFinished, Progress: 100})

	done := make(chan []domain.JobState)
	go func() { done <- readStates(t, sc, 10) }()

	select {
	case rest := <-done:
		require.Len(t, rest, 1)
		assert.Equal(t, domain.JobStatusFinished, rest[0].Status)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close after the terminal state was stored")
	}
}
