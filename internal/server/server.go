package server

import (
	"net/http"

	"github.com/spacepage/spacepage/internal/config"
	"github.com/spacepage/spacepage/internal/status"
	"github.com/spacepage/spacepage/internal/store"
)

// Server holds dependencies for the status HTTP handlers.
type Server struct {
	cfg     *config.Config
	status  *status.Tracker
	store   store.Store // nil when no archive is configured
	outPath string
}

func New(cfg *config.Config, tracker *status.Tracker, st store.Store, outPath string) *Server {
	return &Server{cfg: cfg, status: tracker, store: st, outPath: outPath}
}

// Router returns the HTTP handler with all routes registered.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/document", s.handleDocument)
	return s.corsMiddleware(mux)
}
