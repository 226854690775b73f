package web

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"ladderview/internal/logging"
)

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// pageData is the view state handed to every HTML page.
type pageData struct {
	Title        string
	Source       string
	Position     int
	Total        int
	Prev         int
	Next         int
	ShareURL     string
	MaxUploadMiB int
	Error        string
	Detail       string
	Model        any
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.requestLogger(r).Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.writeJSON(w, r, status, errorResponse{Error: message})
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	data.MaxUploadMiB = s.cfg.Server.MaxUploadMiB
	t, ok := s.templates[page]
	if !ok {
		s.requestLogger(r).Error("unknown page template", logging.String("page", page))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.requestLogger(r).Error("render page failed", logging.String("page", page), logging.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message, detail string) {
	s.renderPage(w, r, status, "error-page", pageData{Title: "Error", Error: message, Detail: detail})
}

func (s *Server) requestLogger(r *http.Request) *slog.Logger {
	if r == nil {
		return s.logger
	}
	return logging.WithContext(r.Context(), s.logger)
}
