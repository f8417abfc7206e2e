// Package guru implements the Healing Guru message analysis engine: intensity
// assessment, ordered detector stages, tool selection and the empathetic
// fallback responder. All content tables are package-level and read-only, so a
// single Engine is safe for concurrent use.
package guru

import (
	"strings"
	"time"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// ConversationTurn is one stored message of a conversation. History slices
// handed to the engine are newest-first.
type ConversationTurn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SanitizeHistory drops turns with an unknown role or blank text while keeping
// the original order. Malformed turns are treated as absent rather than as errors.
func SanitizeHistory(history []ConversationTurn) []ConversationTurn {
	clean := make([]ConversationTurn, 0, len(history))
	for _, turn := range history {
		if !turn.Role.Valid() || strings.TrimSpace(turn.Text) == "" {
			continue
		}
		clean = append(clean, turn)
	}
	return clean
}

// assistantTexts returns the text of up to limit assistant turns, newest first.
func assistantTexts(turns []ConversationTurn, limit int) []string {
	var texts []string
	for _, turn := range turns {
		if len(texts) == limit {
			break
		}
		if turn.Role == RoleAssistant {
			texts = append(texts, turn.Text)
		}
	}
	return texts
}

// userTexts returns up to limit lower-cased user turns, newest first. A limit
// below zero returns every user turn.
func userTexts(turns []ConversationTurn, limit int) []string {
	var texts []string
	for _, turn := range turns {
		if limit >= 0 && len(texts) == limit {
			break
		}
		if turn.Role == RoleUser {
			texts = append(texts, strings.ToLower(turn.Text))
		}
	}
	return texts
}
