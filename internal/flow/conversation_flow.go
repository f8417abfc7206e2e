// Package flow provides the conversation flow shared by the HTTP API and the
// chat channels: history fetch, response selection and persistence.
package flow

import (
	"context"
	"log/slog"
	"time"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/guru"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/store"
)

// DefaultHistoryLimit is the number of turns handed to the engine per message.
const DefaultHistoryLimit = 10

// Recorder receives per-turn outcomes. *metrics.Metrics satisfies it.
type Recorder interface {
	RecordResponse(stage string, crisis bool, score int, tools []string)
	RecordStoreError(operation string)
}

type nopRecorder struct{}

func (nopRecorder) RecordResponse(string, bool, int, []string) {}
func (nopRecorder) RecordStoreError(string)                    {}

// ConversationFlow runs one chat turn end to end.
type ConversationFlow struct {
	store        store.Store
	history      HistoryManager
	engine       *guru.Engine
	recorder     Recorder
	historyLimit int
	locks        *userLocks
}

// Option configures a ConversationFlow.
type Option func(*ConversationFlow)

// WithEngine sets the response engine.
func WithEngine(e *guru.Engine) Option {
	return func(f *ConversationFlow) {
		if e != nil {
			f.engine = e
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(f *ConversationFlow) {
		if r != nil {
			f.recorder = r
		}
	}
}

// WithHistoryLimit sets how many turns are loaded per message. Non-positive values keep the default.
func WithHistoryLimit(n int) Option {
	return func(f *ConversationFlow) {
		if n > 0 {
			f.historyLimit = n
		}
	}
}

// NewConversationFlow creates a new conversation flow backed by st.
func NewConversationFlow(st store.Store, opts ...Option) *ConversationFlow {
	f := &ConversationFlow{
		store:        st,
		history:      NewStoreBasedHistory(st),
		engine:       guru.NewEngine(),
		recorder:     nopRecorder{},
		historyLimit: DefaultHistoryLimit,
		locks:        newUserLocks(),
	}
	for _, opt := range opts {
		opt(f)
	}
	slog.Debug("ConversationFlow.NewConversationFlow: created", "history_limit", f.historyLimit)
	return f
}

// Respond validates message, selects the reply against the user's recent
// history and persists both turns. Storage failures are logged and counted
// but never withhold a reply; only invalid input returns an error.
func (f *ConversationFlow) Respond(ctx context.Context, userID, message string) (models.ChatReply, error) {
	if userID == "" {
		return models.ChatReply{}, models.ErrSessionRequired
	}
	req := models.ChatRequest{Message: message}
	if err := req.Validate(); err != nil {
		return models.ChatReply{}, err
	}

	unlock := f.locks.lock(userID)
	defer unlock()

	// History is read before the new turn is saved so the engine never sees
	// the current message twice.
	turns, err := f.history.Recent(ctx, userID, f.historyLimit)
	if err != nil {
		slog.Warn("ConversationFlow.Respond: continuing without history", "user_id", userID, "error", err)
		f.recorder.RecordStoreError("recent_messages")
		turns = nil
	}

	if err := f.history.Append(ctx, userID, guru.RoleUser, message); err != nil {
		slog.Error("ConversationFlow.Respond: failed to save user turn", "user_id", userID, "error", err)
		f.recorder.RecordStoreError("add_message")
	}

	resp, assessment := f.engine.Evaluate(message, turns)

	if err := f.history.Append(ctx, userID, guru.RoleAssistant, resp.Text); err != nil {
		slog.Error("ConversationFlow.Respond: failed to save assistant turn", "user_id", userID, "error", err)
		f.recorder.RecordStoreError("add_message")
	}
	if resp.Category != "" {
		insight := models.Insight{
			UserID:      userID,
			PatternType: resp.Category,
			Description: models.Truncate(message, models.MaxInsightDescriptionLength),
			DetectedAt:  time.Now().UTC(),
		}
		if err := f.store.AddInsight(ctx, insight); err != nil {
			slog.Error("ConversationFlow.Respond: failed to save insight", "user_id", userID, "error", err)
			f.recorder.RecordStoreError("add_insight")
		}
	}

	reply := models.ChatReply{
		Message: resp.Text,
		Pattern: resp.Category,
		Emotion: resp.Emotion,
	}
	var toolNames []string
	if resp.NeedsTool {
		reply.UrgentTools = ToolCards(resp.Tools)
		for _, t := range resp.Tools {
			toolNames = append(toolNames, t.Name)
		}
	}
	f.recorder.RecordResponse(string(resp.Stage), resp.Category == guru.CategoryCrisis, assessment.Score, toolNames)

	slog.Debug("ConversationFlow.Respond: reply ready", "user_id", userID, "stage", resp.Stage, "pattern", resp.Category, "tools", len(reply.UrgentTools))
	return reply, nil
}

// ToolCards converts catalog tools into the user-facing card form.
func ToolCards(tools []guru.CopingTool) []models.ToolCard {
	if len(tools) == 0 {
		return nil
	}
	cards := make([]models.ToolCard, len(tools))
	for i, t := range tools {
		cards[i] = models.ToolCard{Name: t.Name, Description: t.Description, When: t.When}
	}
	return cards
}
