package guru

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssess(t *testing.T) {
	hopelessHistory := []ConversationTurn{
		user("it's hopeless"),
		assistant("I'm here."),
		user("no point trying"),
		assistant("Tell me more."),
		user("everything is worse and hopeless"),
		user("never again, nothing works"),
	}

	tests := []struct {
		name     string
		message  string
		history  []ConversationTurn
		want     int
		critical bool
	}{
		{"empty", "", nil, 0, false},
		{"neutral", "I walked to the shop", nil, 0, false},
		{"moderate", "I feel anxious", nil, 4, false},
		{"moderate high", "I'm so overwhelmed", nil, 6, false},
		{"high distress", "I'm spiraling", nil, 7, false},
		{"severe", "I'm falling apart", nil, 8, false},
		{"tiers take the max", "I'm worried and spiraling", nil, 7, false},
		{"fragment bonus", "anxious...", nil, 5, false},
		{"long message skips fragment bonus", "I am anxious about so many things happening at once this week...", nil, 4, false},
		{"typographic apostrophe", "I can’t cope", nil, 8, false},
		{"critical", "I want to die...", nil, 10, true},
		{"critical ignores history", "nothing matters", hopelessHistory, 10, true},
		{"hopeless history bonus", "hello", hopelessHistory, 2, false},
		{
			"escalation bonus",
			"hello",
			[]ConversationTurn{user("it's getting worse and i can't"), user("fine")},
			1,
			false,
		},
		{"clamped", "I'm falling apart!!", hopelessHistory, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.message, tt.history)
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, tt.critical, got.Critical)
			assert.Equal(t, tt.want, Intensity(tt.message, tt.history))
		})
	}
}

func TestAssessIgnoresMalformedTurns(t *testing.T) {
	history := []ConversationTurn{
		{Role: "bot", Text: "it's hopeless"},
		{Role: RoleUser, Text: ""},
		{Role: "", Text: "give up"},
	}
	assert.Equal(t, 0, Intensity("hello", history))
}

func TestIsCritical(t *testing.T) {
	assert.True(t, IsCritical("I Want To Die"))
	assert.False(t, IsCritical("I want to dive into this"))
}
