package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ladderview/internal/dataset"
	"ladderview/internal/ingest"
	"ladderview/internal/logging"
	"ladderview/internal/record"
	"ladderview/internal/share"
	"ladderview/internal/view"
)

const pastedSourceName = "pasted.json"

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ds := s.store.Current()
	if ds == nil {
		s.renderPage(w, r, http.StatusOK, "upload-page", pageData{Title: "Pipeline Analytics"})
		return
	}

	cursor := ds.Cursor()
	if raw := strings.TrimSpace(r.URL.Query().Get("record")); raw != "" {
		pos, err := strconv.Atoi(raw)
		if err != nil {
			s.renderError(w, r, http.StatusBadRequest, "Invalid record number", raw)
			return
		}
		pos = min(max(pos, 1), ds.Len())
		_ = cursor.Seek(pos - 1)
	}

	rec := cursor.Current()
	ctx := logging.WithRecord(r.Context(), cursor.Position())
	model := view.Build(rec, view.Options{HiddenFields: s.hidden, Logger: logging.WithContext(ctx, s.logger)})
	token, err := share.Encode(rec)
	if err != nil {
		logging.WithContext(ctx, s.logger).Error("share link failed", logging.Error(err))
		s.renderError(w, r, http.StatusInternalServerError, "Could not build share link", err.Error())
		return
	}

	data := pageData{
		Title:    "Pipeline Analytics",
		Source:   ds.Source(),
		Position: cursor.Position(),
		Total:    cursor.Len(),
		ShareURL: s.link.URL(token),
		Model:    model,
	}
	if cursor.HasPrev() {
		data.Prev = cursor.Position() - 1
	}
	if cursor.HasNext() {
		data.Next = cursor.Position() + 1
	}
	s.renderPage(w, r, http.StatusOK, "dashboard-page", data)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes()); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.renderError(w, r, http.StatusRequestEntityTooLarge, "Upload too large",
				fmt.Sprintf("limit is %d MiB", s.cfg.Server.MaxUploadMiB))
			return
		}
		s.renderError(w, r, http.StatusBadRequest, "Could not read upload", err.Error())
		return
	}

	name, records, err := s.readUpload(r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ingest.ErrUnsupportedInput) {
			status = http.StatusUnsupportedMediaType
		}
		s.requestLogger(r).Info("upload rejected", logging.String(logging.FieldSource, name), logging.Error(err))
		s.renderError(w, r, status, "Could not load data", err.Error())
		return
	}
	ds, err := dataset.New(name, records)
	if err != nil {
		s.renderError(w, r, http.StatusBadRequest, "No records found", err.Error())
		return
	}
	s.store.Replace(ds)
	s.requestLogger(r).Info("dataset loaded",
		logging.String(logging.FieldSource, name),
		logging.Int("records", ds.Len()),
	)
	http.Redirect(w, r, "/?record=1", http.StatusSeeOther)
}

// readUpload prefers the file field and falls back to pasted JSON.
func (s *Server) readUpload(r *http.Request) (string, []record.Record, error) {
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		records, err := ingest.Load(header.Filename, file)
		return header.Filename, records, err
	case !errors.Is(err, http.ErrMissingFile):
		return "", nil, fmt.Errorf("read file field: %w", err)
	}

	pasted := strings.TrimSpace(r.FormValue("json"))
	if pasted == "" {
		return "", nil, errors.New("choose a file or paste JSON")
	}
	records, err := ingest.Load(pastedSourceName, strings.NewReader(pasted))
	return pastedSourceName, records, err
}

func (s *Server) handleSharedPage(w http.ResponseWriter, r *http.Request) {
	rec, err := share.Decode(share.TokenFromQuery(r.URL.RawQuery, s.link.Param))
	if err != nil {
		reason := share.ReasonOf(err)
		s.requestLogger(r).Info("shared token rejected", logging.String("reason", reason.String()), logging.Error(err))
		s.renderError(w, r, http.StatusBadRequest, reason.Message(), "")
		return
	}
	model := view.Build(rec, view.Options{HiddenFields: s.hidden, Shared: true, Logger: s.requestLogger(r)})
	s.renderPage(w, r, http.StatusOK, "shared-page", pageData{Title: "Shared Record", Model: model})
}
