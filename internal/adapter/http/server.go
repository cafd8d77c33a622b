package http

import (
	"net/http"

	"github.com/bnema/vidsum/internal/adapter/http/middleware"
	"github.com/bnema/vidsum/internal/service"
)

type Server struct {
	mux        *http.ServeMux
	handlers   *Handlers
	sseHandler *SSEHandler
}

func NewServer(videoSvc VideoService, eventBus *service.EventBus) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		handlers:   NewHandlers(videoSvc),
		sseHandler: NewSSEHandler(eventBus, videoSvc),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.mux.HandleFunc("POST /videos", s.handlers.CreateVideo())
	s.mux.HandleFunc("GET /videos", s.handlers.ListVideos())
	s.mux.HandleFunc("GET /videos/{id}", s.handlers.GetVideo())
	s.mux.HandleFunc("GET /videos/{id}/status", s.handlers.VideoStatus())
	s.mux.HandleFunc("POST /videos/{id}/pipeline", s.handlers.StartPipeline())
	s.mux.HandleFunc("POST /videos/{id}/download", s.handlers.StartDownload())
	s.mux.HandleFunc("POST /videos/{id}/summarize", s.handlers.Summarize())

	s.mux.HandleFunc("GET /events/{id}", s.sseHandler.Events())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.SecurityHeaders(s.mux).ServeHTTP(w, r)
}
