package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bnema/vidsum/internal/adapter/http/validation"
	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/infrastructure/logger"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 * 1024

type VideoService interface {
	Create(ctx context.Context, url, title string) (*domain.Video, error)
	Get(ctx context.Context, id int64) (*domain.Video, error)
	List(ctx context.Context) ([]*domain.Video, error)
	Status(id int64) domain.JobState
	StartPipeline(ctx context.Context, id int64) (bool, error)
	StartDownload(ctx context.Context, id int64) (bool, error)
	Summarize(ctx context.Context, id int64, instructions string) (string, error)
}

type Handlers struct {
	videoSvc VideoService
}

func NewHandlers(videoSvc VideoService) *Handlers {
	return &Handlers{videoSvc: videoSvc}
}

type createVideoRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type summarizeRequest struct {
	Instructions string `json:"instructions"`
}

type queueResponse struct {
	Queued bool            `json:"queued"`
	Status domain.JobState `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handlers) CreateVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVideoRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		url, err := validation.VideoURL(req.URL)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		video, err := h.videoSvc.Create(r.Context(), url, validation.SanitizeTitle(req.Title))
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				writeError(w, http.StatusConflict, "video already exists")
				return
			}
			logger.Error.Printf("create video error url=%s: %v", logger.SanitizeForLog(url), err)
			writeError(w, http.StatusInternalServerError, "failed to create video")
			return
		}

		writeJSON(w, http.StatusCreated, video)
	}
}

func (h *Handlers) ListVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := h.videoSvc.List(r.Context())
		if err != nil {
			logger.Error.Printf("list videos error: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to list videos")
			return
		}
		if videos == nil {
			videos = []*domain.Video{}
		}
		writeJSON(w, http.StatusOK, videos)
	}
}

func (h *Handlers) GetVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		video, err := h.videoSvc.Get(r.Context(), id)
		if err != nil {
			h.lookupError(w, id, err)
			return
		}
		writeJSON(w, http.StatusOK, video)
	}
}

// VideoStatus returns the in-memory job snapshot. Unknown ids report idle.
func (h *Handlers) VideoStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, h.videoSvc.Status(id))
	}
}

func (h *Handlers) StartPipeline() http.HandlerFunc {
	return h.start(func(ctx context.Context, id int64) (bool, error) {
		return h.videoSvc.StartPipeline(ctx, id)
	})
}

func (h *Handlers) StartDownload() http.HandlerFunc {
	return h.start(func(ctx context.Context, id int64) (bool, error) {
		return h.videoSvc.StartDownload(ctx, id)
	})
}

// start answers 202 when the job was admitted and 409 when it is already
// active. Both carry the current snapshot.
func (h *Handlers) start(launch func(ctx context.Context, id int64) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		queued, err := launch(r.Context(), id)
		if err != nil {
			h.lookupError(w, id, err)
			return
		}

		status := http.StatusAccepted
		if !queued {
			status = http.StatusConflict
		}
		writeJSON(w, status, queueResponse{Queued: queued, Status: h.videoSvc.Status(id)})
	}
}

func (h *Handlers) Summarize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req summarizeRequest
		if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
			return
		}

		summary, err := h.videoSvc.Summarize(r.Context(), id, req.Instructions)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
		case errors.Is(err, domain.ErrTranscriptEmpty):
			writeError(w, http.StatusUnprocessableEntity, "video has no transcript")
		case errors.Is(err, domain.ErrSummaryEmpty):
			writeError(w, http.StatusBadGateway, "summary could not be generated")
		default:
			h.lookupError(w, id, err)
		}
	}
}

func (h *Handlers) lookupError(w http.ResponseWriter, id int64, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "video not found")
		return
	}
	logger.Error.Printf("video request error video_id=%d: %v", id, err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid video id")
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn.Printf("write response error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
