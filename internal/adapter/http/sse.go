package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/service"
)

var keepAliveInterval = 15 * time.Second

type SSEHandler struct {
	eventBus *service.EventBus
	videoSvc VideoService
}

func NewSSEHandler(eventBus *service.EventBus, videoSvc VideoService) *SSEHandler {
	return &SSEHandler{
		eventBus: eventBus,
		videoSvc: videoSvc,
	}
}

// sseWrite writes an SSE event, handling multi-line data correctly.
func sseWrite(w http.ResponseWriter, eventName string, data string) {
	_, _ = fmt.Fprintf(w, "event: %s\n", eventName)
	for _, line := range strings.Split(data, "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// sendState writes one "status" event. It skips the write when the snapshot
// equals last and returns the snapshot that was sent.
func sendState(w http.ResponseWriter, st domain.JobState, last *domain.JobState) (*domain.JobState, error) {
	if last != nil && *last == st {
		return last, nil
	}
	payload, err := json.Marshal(st)
	if err != nil {
		return last, err
	}
	sseWrite(w, "status", string(payload))
	return &st, nil
}

// sendKeepAlive writes an SSE comment to keep the connection active.
func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// Events streams job snapshots for one video until the job reaches a
// terminal state or the client goes away.
func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if _, err := h.videoSvc.Get(r.Context(), id); err != nil {
			http.Error(w, "Video not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		// Subscribe before reading the snapshot so no transition is missed.
		ch := h.eventBus.Subscribe(id)
		defer h.eventBus.Unsubscribe(id, ch)

		current := h.videoSvc.Status(id)
		last, _ := sendState(w, current, nil)
		if current.Status.IsTerminal() {
			return
		}

		ctx := r.Context()
		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				// Events are dropped for slow subscribers; resync from the
				// registry so a lost terminal event still ends the stream.
				current := h.videoSvc.Status(id)
				last, _ = sendState(w, current, last)
				if current.Status.IsTerminal() {
					return
				}
				sendKeepAlive(w)
			case event, ok := <-ch:
				if !ok {
					return
				}
				last, _ = sendState(w, event.State, last)
				if event.State.Status.IsTerminal() {
					return
				}
			}
		}
	}
}
