package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
)

// journalHandler handles GET and POST /api/journal.
func (s *Server) journalHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	if r.Method == http.MethodGet {
		entries, err := s.st.ListJournalEntries(r.Context(), s.sessionID(w, r))
		if err != nil {
			writeStoreError(w, err, "fetch journal")
			return
		}
		writeJSONResponse(w, http.StatusOK, models.Success(nonNil(entries)))
		return
	}

	var entry models.JournalEntry
	if !decodeJSON(w, r, &entry, false) {
		return
	}
	if err := entry.Validate(); err != nil {
		writeJSONResponse(w, http.StatusBadRequest, models.Error(err.Error()))
		return
	}
	entry.UserID = s.sessionID(w, r)
	entry.Timestamp = time.Time{}
	id, err := s.st.AddJournalEntry(r.Context(), entry)
	if err != nil {
		writeStoreError(w, err, "save journal entry")
		return
	}
	writeJSONResponse(w, http.StatusCreated, models.RecordedWithResult("Journal entry saved", map[string]int64{"id": id}))
}

// exportHandler handles GET /api/export.
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()
	userID := s.sessionID(w, r)
	export := models.UserExport{UserID: userID, ExportedAt: time.Now().Unix()}

	var err error
	if export.Messages, err = s.st.ListMessages(ctx, userID); err != nil {
		writeStoreError(w, err, "export data")
		return
	}
	if export.Insights, err = s.st.InsightSummary(ctx, userID); err != nil {
		writeStoreError(w, err, "export data")
		return
	}
	if export.Journal, err = s.st.ListJournalEntries(ctx, userID); err != nil {
		writeStoreError(w, err, "export data")
		return
	}
	if export.CheckIns, err = s.st.ListCheckIns(ctx, userID); err != nil {
		writeStoreError(w, err, "export data")
		return
	}
	if export.Patterns, err = s.st.ListPatterns(ctx, userID); err != nil {
		writeStoreError(w, err, "export data")
		return
	}
	if export.Progress, err = s.st.ListProgress(ctx, userID, 0); err != nil {
		writeStoreError(w, err, "export data")
		return
	}
	export.Messages = nonNil(export.Messages)
	export.Insights = nonNil(export.Insights)
	export.Journal = nonNil(export.Journal)
	export.CheckIns = nonNil(export.CheckIns)
	export.Patterns = nonNil(export.Patterns)
	export.Progress = nonNil(export.Progress)

	slog.Info("Server.exportHandler: data exported", "user_id", userID)
	w.Header().Set("Content-Disposition", `attachment; filename="healing-guru-export.json"`)
	writeJSONResponse(w, http.StatusOK, models.Success(export))
}

// accountHandler handles DELETE /api/account.
func (s *Server) accountHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}
	userID := s.sessionID(w, r)
	if err := s.st.DeleteUserData(r.Context(), userID); err != nil {
		writeStoreError(w, err, "delete account data")
		return
	}
	s.clearSession(w)
	slog.Info("Server.accountHandler: account data deleted", "user_id", userID)
	writeJSONResponse(w, http.StatusOK, models.SuccessWithMessage("All data for this session has been deleted", nil))
}
