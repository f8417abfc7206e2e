package api

import (
	"net/http"
	"strings"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/checkin"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
)

// checkinHandler handles POST /api/checkin.
func (s *Server) checkinHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var c models.CheckIn
	if !decodeJSON(w, r, &c, false) {
		return
	}
	result, err := s.checkins.Record(r.Context(), s.sessionID(w, r), c)
	if err != nil {
		writeStoreError(w, err, "record check-in")
		return
	}
	writeJSONResponse(w, http.StatusCreated, models.RecordedWithResult(result.Message, result))
}

// patternsHandler handles GET /api/patterns.
func (s *Server) patternsHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	patterns, err := s.st.ListPatterns(r.Context(), s.sessionID(w, r))
	if err != nil {
		writeStoreError(w, err, "fetch patterns")
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(nonNil(patterns)))
}

// logToolHandler handles POST /api/log_tool.
func (s *Server) logToolHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req models.LogToolRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	entry := req.Entry(s.sessionID(w, r))
	if err := entry.Validate(); err != nil {
		writeJSONResponse(w, http.StatusBadRequest, models.Error(err.Error()))
		return
	}
	if err := s.st.AddProgress(r.Context(), entry); err != nil {
		writeStoreError(w, err, "log tool usage")
		return
	}
	writeJSONResponse(w, http.StatusCreated, models.RecordedWithResult("Tool usage logged", nil))
}

// progressHandler handles GET /api/progress.
func (s *Server) progressHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	entries, err := s.st.ListProgress(r.Context(), s.sessionID(w, r), ProgressListLimit)
	if err != nil {
		writeStoreError(w, err, "fetch progress")
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(nonNil(entries)))
}

// affirmationsHandler handles GET /api/affirmations/{emotion}.
func (s *Server) affirmationsHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	emotion := strings.ToLower(strings.TrimSpace(r.PathValue("emotion")))
	writeJSONResponse(w, http.StatusOK, models.Success(checkin.Affirmations(emotion, nil)))
}

// toolsHandler handles GET /api/tools.
func (s *Server) toolsHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(checkin.Tools()))
}
