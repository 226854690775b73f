package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ladderview/internal/dataset"
	"ladderview/internal/logging"
	"ladderview/internal/record"
	"ladderview/internal/share"
	"ladderview/internal/view"
)

// RecordSummary lists one record in /api/records.
type RecordSummary struct {
	Position    int               `json:"position"`
	Identifiers []view.Identifier `json:"identifiers"`
}

// RecordsResponse is the body of GET /api/records.
type RecordsResponse struct {
	Source  string          `json:"source"`
	Count   int             `json:"count"`
	Records []RecordSummary `json:"records"`
}

// RecordResponse is the body of GET /api/records/{n}.
type RecordResponse struct {
	Position int        `json:"position"`
	Total    int        `json:"total"`
	Record   view.Model `json:"record"`
}

// ShareResponse is the body of GET /api/records/{n}/share.
type ShareResponse struct {
	Position int    `json:"position"`
	Token    string `json:"token"`
	URL      string `json:"url"`
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	ds := s.store.Current()
	if ds == nil {
		s.writeError(w, r, http.StatusNotFound, "no dataset loaded")
		return
	}
	resp := RecordsResponse{Source: ds.Source(), Count: ds.Len(), Records: make([]RecordSummary, 0, ds.Len())}
	for i, rec := range ds.Records() {
		resp.Records = append(resp.Records, RecordSummary{Position: i + 1, Identifiers: view.Identifiers(rec)})
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	ds, rec, pos, ok := s.recordFromPath(w, r)
	if !ok {
		return
	}
	model := view.Build(rec, view.Options{HiddenFields: s.hidden, Logger: s.requestLogger(r)})
	s.writeJSON(w, r, http.StatusOK, RecordResponse{Position: pos, Total: ds.Len(), Record: model})
}

func (s *Server) handleRecordShare(w http.ResponseWriter, r *http.Request) {
	_, rec, pos, ok := s.recordFromPath(w, r)
	if !ok {
		return
	}
	token, err := share.Encode(rec)
	if err != nil {
		s.requestLogger(r).Error("share link failed", logging.Error(err))
		s.writeError(w, r, http.StatusInternalServerError, "could not build share link")
		return
	}
	s.writeJSON(w, r, http.StatusOK, ShareResponse{Position: pos, Token: token, URL: s.link.URL(token)})
}

func (s *Server) handleSharedAPI(w http.ResponseWriter, r *http.Request) {
	rec, err := share.Decode(share.TokenFromQuery(r.URL.RawQuery, s.link.Param))
	if err != nil {
		reason := share.ReasonOf(err)
		s.requestLogger(r).Info("shared token rejected", logging.String("reason", reason.String()), logging.Error(err))
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: reason.Message(), Reason: reason.String()})
		return
	}
	s.writeJSON(w, r, http.StatusOK, view.Build(rec, view.Options{HiddenFields: s.hidden, Shared: true, Logger: s.requestLogger(r)}))
}

// recordFromPath resolves the 1-based {n} path parameter. On failure it has
// already written the response.
func (s *Server) recordFromPath(w http.ResponseWriter, r *http.Request) (*dataset.Dataset, record.Record, int, bool) {
	ds := s.store.Current()
	if ds == nil {
		s.writeError(w, r, http.StatusNotFound, "no dataset loaded")
		return nil, record.Record{}, 0, false
	}
	pos, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "record position must be an integer")
		return nil, record.Record{}, 0, false
	}
	rec, err := ds.AtPosition(pos)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrOutOfRange) {
			status = http.StatusNotFound
		}
		s.writeError(w, r, status, err.Error())
		return nil, record.Record{}, 0, false
	}
	return ds, rec, pos, true
}
