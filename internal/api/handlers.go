// Package api provides HTTP handlers for Healing Guru endpoints.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/flow"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/guru"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
)

// defaultToolEmotion is used by the tool lookup when no emotion is given.
const defaultToolEmotion = "anxiety"

// healthHandler provides a health check endpoint for monitoring and load balancing
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// chatHandler handles POST /api/chat.
func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req models.ChatRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	userID := s.sessionID(w, r)
	reply, err := s.flow.Respond(r.Context(), userID, req.Message)
	if err != nil {
		slog.Warn("Server.chatHandler: rejected message", "user_id", userID, "error", err)
		writeStoreError(w, err, "generate response")
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(reply))
}

// historyHandler handles GET /api/history (oldest first).
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	userID := s.sessionID(w, r)
	msgs, err := s.st.ListMessages(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "fetch history")
		return
	}
	slog.Debug("Server.historyHandler: history fetched", "user_id", userID, "count", len(msgs))
	writeJSONResponse(w, http.StatusOK, models.Success(nonNil(msgs)))
}

// insightsHandler handles GET /api/insights.
func (s *Server) insightsHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	summary, err := s.st.InsightSummary(r.Context(), s.sessionID(w, r))
	if err != nil {
		writeStoreError(w, err, "fetch insights")
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(nonNil(summary)))
}

// getToolHandler handles POST /api/get_tool.
func (s *Server) getToolHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req models.EmotionRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}
	emotion := req.EmotionOrDefault(defaultToolEmotion)
	writeJSONResponse(w, http.StatusOK, models.Success(models.ToolSuggestion{
		Emotion: emotion,
		Tools:   flow.ToolCards(guru.ToolsForEmotion(emotion)),
	}))
}

// affirmationHandler handles POST /api/affirmation.
func (s *Server) affirmationHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req models.EmotionRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(models.AffirmationReply{
		Affirmation: guru.PickAffirmation(s.picker, req.EmotionOrDefault("")),
	}))
}
