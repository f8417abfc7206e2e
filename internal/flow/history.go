package flow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/guru"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/store"
)

// HistoryManager loads and appends conversation turns for a user.
type HistoryManager interface {
	// Recent returns up to limit turns, newest first.
	Recent(ctx context.Context, userID string, limit int) ([]guru.ConversationTurn, error)
	Append(ctx context.Context, userID string, role guru.Role, text string) error
}

// StoreBasedHistory implements HistoryManager using a Store backend.
type StoreBasedHistory struct {
	store store.Store
}

// NewStoreBasedHistory creates a new HistoryManager backed by a Store.
func NewStoreBasedHistory(st store.Store) *StoreBasedHistory {
	slog.Debug("Creating StoreBasedHistory")
	return &StoreBasedHistory{store: st}
}

// Recent retrieves the newest turns for a user and converts them for the engine.
func (h *StoreBasedHistory) Recent(ctx context.Context, userID string, limit int) ([]guru.ConversationTurn, error) {
	msgs, err := h.store.RecentMessages(ctx, userID, limit)
	if err != nil {
		slog.Error("StoreBasedHistory.Recent: load failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	turns := make([]guru.ConversationTurn, 0, len(msgs))
	for _, m := range msgs {
		turns = append(turns, guru.ConversationTurn{
			Role:      guru.Role(m.Role),
			Text:      m.Content,
			Timestamp: m.Timestamp,
		})
	}
	slog.Debug("StoreBasedHistory.Recent: loaded", "user_id", userID, "turns", len(turns))
	return turns, nil
}

// Append stores one turn.
func (h *StoreBasedHistory) Append(ctx context.Context, userID string, role guru.Role, text string) error {
	err := h.store.AddMessage(ctx, models.Message{
		UserID:    userID,
		Role:      models.Role(role),
		Content:   text,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to append %s turn: %w", role, err)
	}
	return nil
}
