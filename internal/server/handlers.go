package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	lastUpdate := s.status.LastUpdate()

	resp := map[string]any{
		"status": "ok",
	}
	if !lastUpdate.IsZero() {
		resp["last_update"] = lastUpdate.Format("2006-01-02T15:04:05Z07:00")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report := s.status.Latest()
	if report == nil {
		http.Error(w, `{"error":"no completed runs yet"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	content, err := os.ReadFile(s.outPath)
	if err != nil {
		// Cold path: serve the most recent archived document, if any.
		if s.store == nil {
			http.Error(w, "document not available", http.StatusNotFound)
			return
		}
		slog.Info("document missing on disk, loading from archive", "path", s.outPath)
		content, err = s.store.LatestDocument(r.Context())
		if err != nil {
			slog.Error("failed to load archived document", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if content == nil {
			http.Error(w, "document not available", http.StatusNotFound)
			return
		}
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write(content)
}
