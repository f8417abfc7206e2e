package models

import (
	"strings"
	"unicode/utf8"
)

// ChatRequest is the payload accepted by the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// Validate rejects blank and oversized messages.
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(r.Message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// ToolCard is a coping tool as shown to the user.
type ToolCard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	When        string `json:"when"`
}

// ChatReply is the outcome of one chat turn. It deliberately carries no
// severity reading.
type ChatReply struct {
	Message     string     `json:"message"`
	Pattern     string     `json:"pattern,omitempty"`
	Emotion     string     `json:"emotion,omitempty"`
	UrgentTools []ToolCard `json:"urgent_tools,omitempty"`
}

// EmotionRequest carries an emotion label for the tool and affirmation lookups.
type EmotionRequest struct {
	Emotion string `json:"emotion"`
}

// EmotionOrDefault returns the trimmed, lower-cased emotion or def when blank.
func (r *EmotionRequest) EmotionOrDefault(def string) string {
	e := strings.ToLower(strings.TrimSpace(r.Emotion))
	if e == "" {
		return def
	}
	return e
}

// ToolSuggestion is the result of the per-emotion tool lookup.
type ToolSuggestion struct {
	Emotion string     `json:"emotion"`
	Tools   []ToolCard `json:"tools"`
}

// LogToolRequest is the payload for recording how well a tool worked.
type LogToolRequest struct {
	ToolUsed      string `json:"tool_used"`
	Effectiveness int    `json:"effectiveness"`
	Notes         string `json:"notes,omitempty"`
}

// Entry converts the request into a progress entry for userID.
func (r *LogToolRequest) Entry(userID string) ProgressEntry {
	return ProgressEntry{
		UserID:        userID,
		ToolUsed:      strings.TrimSpace(r.ToolUsed),
		Effectiveness: r.Effectiveness,
		Notes:         r.Notes,
	}
}

// AffirmationReply is the body returned by the single affirmation lookup.
type AffirmationReply struct {
	Affirmation string `json:"affirmation"`
}

// UserExport is everything stored for one session.
type UserExport struct {
	UserID     string           `json:"user_id"`
	Messages   []Message        `json:"messages"`
	Insights   []InsightSummary `json:"insights"`
	Journal    []JournalEntry   `json:"journal"`
	CheckIns   []CheckIn        `json:"checkins"`
	Patterns   []PatternRecord  `json:"patterns"`
	Progress   []ProgressEntry  `json:"progress"`
	ExportedAt int64            `json:"exported_at"`
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
