package guru

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPositiveState(t *testing.T) {
	tests := []struct {
		message string
		want    PositiveState
	}{
		{"I feel so good today", ClearPositivity},
		{"I'm so grateful for my sister", Gratitude},
		{"I finished everything on my list", EnergyMomentum},
		{"I can breathe again", Relief},
		{"It feels calm in here", Peace},
		{"I'm going to rest this evening", SelfCare},
		{"I had a great time yesterday", GeneralPositive},
		{"yeah, great", PositiveNone},
		{"ok sounds good", PositiveNone},
		{"yes I feel great", ClearPositivity},
		{"I'm not doing too good", PositiveNone},
		{"I barely feel happy", PositiveNone},
		{"", PositiveNone},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPositiveState(tt.message))
		})
	}
}

func TestIsDysregulatedPositivity(t *testing.T) {
	assert.True(t, IsDysregulatedPositivity("best day ever!!!"))
	assert.True(t, IsDysregulatedPositivity("I'm buzzing right now"))
	assert.True(t, IsDysregulatedPositivity("I AM SO HAPPY"))
	assert.False(t, IsDysregulatedPositivity("I feel calm and happy"))
	assert.False(t, IsDysregulatedPositivity(""))
}

func TestDetectEmotion(t *testing.T) {
	assert.Equal(t, "anxiety", DetectEmotion("I'm so nervous"))
	assert.Equal(t, "sadness", DetectEmotion("I feel lonely"))
	assert.Equal(t, "joy", DetectEmotion("I'm thrilled"))
	assert.Equal(t, "", DetectEmotion("the weather is mild"))
}

func TestExtractTimePeriod(t *testing.T) {
	tests := []struct {
		message string
		phrase  string
		kind    PeriodKind
	}{
		{"I've been struggling for 3 months", "3 months", PeriodDuration},
		{"it's been a couple of weeks", "a couple of weeks", PeriodDuration},
		{"for several days now", "several days", PeriodDuration},
		{"I've had a bad week", "a bad week", PeriodStretch},
		{"it's been a rough few days", "a rough few days", PeriodStretch},
		{"this morning was awful", "this morning", PeriodMoment},
		{"I've felt off since monday", "since monday", PeriodOngoing},
		{"lately I can't focus", "lately", PeriodOngoing},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, ok := ExtractTimePeriod(tt.message)
			assert.True(t, ok)
			assert.Equal(t, tt.phrase, got.Phrase)
			assert.Equal(t, tt.kind, got.Kind)
		})
	}

	_, ok := ExtractTimePeriod("I went to the shop")
	assert.False(t, ok)
	_, ok = ExtractTimePeriod("see you today")
	assert.True(t, ok)
}

func TestSanitizeHistory(t *testing.T) {
	history := []ConversationTurn{
		user("first"),
		{Role: "system", Text: "drop"},
		assistant(""),
		assistant("second"),
	}
	got := SanitizeHistory(history)
	assert.Equal(t, []ConversationTurn{user("first"), assistant("second")}, got)
}

func TestFreshCandidates(t *testing.T) {
	candidates := []string{"a", "b", "c"}
	assert.Equal(t, candidates, freshCandidates(candidates, nil))
	assert.Equal(t, []string{"b"}, freshCandidates(candidates, []string{"xa", "c!"}))
	assert.Equal(t, candidates, freshCandidates(candidates, []string{"abc"}))
}

func TestContainsPhrase(t *testing.T) {
	assert.True(t, containsPhrase("ok, sure", "ok"))
	assert.False(t, containsPhrase("i look tired", "ok"))
	assert.False(t, containsPhrase("yesterday", "yes"))
	assert.True(t, containsPhrase("my friend", "friend"))
	assert.False(t, containsPhrase("friendly", "friend"))
	assert.False(t, containsPhrase("anything", ""))
}

func TestPickAffirmation(t *testing.T) {
	first := PickerFunc(func(int) int { return 0 })
	assert.Equal(t, affirmations["anxiety"][0], PickAffirmation(first, " Anxiety "))
	assert.Equal(t, GenericAffirmation, PickAffirmation(first, "joy"))
	assert.Equal(t, GenericAffirmation, PickAffirmation(nil, ""))
}
