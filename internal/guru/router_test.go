package guru

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstPicker always chooses the first candidate.
var firstPicker = PickerFunc(func(int) int { return 0 })

func newTestEngine() *Engine {
	return NewEngine(WithPicker(firstPicker))
}

func assistant(text string) ConversationTurn {
	return ConversationTurn{Role: RoleAssistant, Text: text}
}

func user(text string) ConversationTurn {
	return ConversationTurn{Role: RoleUser, Text: text}
}

func TestAnalyzeIsTotal(t *testing.T) {
	e := NewEngine()
	malformed := []ConversationTurn{
		{Role: "", Text: "orphan"},
		{Role: "system", Text: "ignored"},
		{Role: RoleUser, Text: "   "},
		{Role: RoleAssistant},
	}
	inputs := []string{
		"",
		"   ",
		"\n\t",
		strings.Repeat("everything is a lot ", 2000),
		"こんにちは 🌸 今日はつらい",
		"HELLO THERE, HOW ARE YOU",
		"ÇA VA? je suis épuisé...",
		"!!!???...",
	}
	for _, in := range inputs {
		for _, history := range [][]ConversationTurn{nil, malformed} {
			resp := e.Analyze(in, history)
			assert.NotEmpty(t, strings.TrimSpace(resp.Text), "input %q", in)
			if resp.NeedsTool {
				assert.NotEmpty(t, resp.Tools, "input %q", in)
			}
		}
	}
}

func TestCrisisFloor(t *testing.T) {
	e := newTestEngine()
	for _, phrase := range criticalPhrases {
		msg := "Honestly I " + phrase
		a := Assess(msg, nil)
		assert.Equal(t, 10, a.Score, phrase)
		assert.True(t, a.Critical, phrase)

		resp := e.Analyze(msg, nil)
		assert.Equal(t, CategoryCrisis, resp.Category, phrase)
		assert.True(t, resp.NeedsTool)
		assert.NotEmpty(t, resp.Tools)
		assert.True(t, containsAny(resp.Text, CrisisHotlineMarkers), phrase)
	}
}

func TestCrisisBeatsPositiveWords(t *testing.T) {
	resp := newTestEngine().Analyze("I feel great today but I want to die", nil)
	assert.Equal(t, CategoryCrisis, resp.Category)
	assert.Equal(t, StageCrisis, resp.Stage)
}

func TestKillMyselfScenario(t *testing.T) {
	e := newTestEngine()
	resp, a := e.Evaluate("I want to kill myself", nil)
	assert.Equal(t, 10, a.Score)
	assert.Equal(t, CategoryCrisis, resp.Category)
	assert.Contains(t, resp.Text, "988")
}

func TestElevatedCrisisUsesSofterPhrasing(t *testing.T) {
	resp, a := newTestEngine().Evaluate("I'm spiraling", nil)
	require.Equal(t, 7, a.Score)
	assert.Equal(t, CategoryCrisis, resp.Category)
	assert.True(t, strings.HasPrefix(resp.Text, crisisElevated))
	assert.Contains(t, resp.Text, "Would you like me to guide you through one of these?")
}

func TestFallbackTemplates(t *testing.T) {
	withAffirmation := func(msg, base string) string {
		if aff := affirmations[DetectEmotion(msg)]; len(aff) > 0 {
			return base + "\n\n✨ " + aff[0]
		}
		return base
	}
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"no time objection", "I don't have time for this", noTimeResponses[0]},
		{"help request", "can you suggest a technique", withAffirmation("can you suggest a technique", helpSuggestions[0])},
		{"gratitude", "thank you so much", gratitudeResponses[0]},
		{"support needed", "I need support", supportResponses[0]},
		{"plea for help", "please help", supportResponses[0]},
	}
	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := e.Analyze(tt.msg, nil)
			assert.Equal(t, StageFallback, resp.Stage)
			assert.Equal(t, tt.want, resp.Text)
		})
	}
}

// The score is never written out in words. Digits can still appear inside
// fixed content such as hotline numbers, so no digit check is made.
func TestResponsesNeverNameTheScore(t *testing.T) {
	e := NewEngine()
	messages := []string{
		"I want to kill myself",
		"I'm falling apart",
		"I'm so overwhelmed, my heart racing",
		"My boss was mean and I had too much to do",
		"I'm so anxious",
		"I feel numb",
		"Hi",
		"I've been struggling for 3 months",
	}
	for _, msg := range messages {
		text := strings.ToLower(e.Analyze(msg, nil).Text)
		assert.NotContains(t, text, "score", msg)
		assert.NotContains(t, text, "intensity", msg)
		assert.NotContains(t, text, "/10", msg)
	}
}

func TestCategoriesAreMutuallyExclusive(t *testing.T) {
	states := map[string]bool{}
	for _, name := range EmotionalStateNames() {
		states[name] = true
	}
	patterns := map[string]bool{}
	for _, p := range legacyPatterns {
		patterns[p.Name] = true
	}

	e := NewEngine()
	messages := []string{
		"My boss was mean and I had too much to do",
		"I'm so overwhelmed and my chest tight",
		"I'm a perfectionist and it must be perfect",
		"My friend was upset and I feel numb",
		"I can't sleep at all",
	}
	for _, msg := range messages {
		resp := e.Analyze(msg, nil)
		set := 0
		if strings.HasPrefix(resp.Category, "life_topic_") {
			set++
		}
		if states[resp.Category] {
			set++
		}
		if patterns[resp.Category] {
			set++
		}
		assert.LessOrEqual(t, set, 1, msg)
	}
}

func TestDedupFallsBackToFullListWhenWindowIsExhausted(t *testing.T) {
	templates := lifeTopics[0].Templates[ToneNeutral]
	require.Len(t, templates, 3)

	history := []ConversationTurn{
		assistant(templates[0]),
		user("Tell me about my work"),
		assistant(templates[1]),
		user("Tell me about my work"),
		assistant(templates[2]),
	}
	resp := newTestEngine().Analyze("Tell me about my work", history)
	assert.Equal(t, "life_topic_work", resp.Category)
	assert.Contains(t, templates, resp.Text)
}

func TestDedupSkipsRecentlyUsedTemplates(t *testing.T) {
	templates := lifeTopics[0].Templates[ToneNeutral]
	history := []ConversationTurn{
		assistant(templates[0]),
		user("Tell me about my work"),
		assistant(templates[2]),
	}
	resp := newTestEngine().Analyze("Tell me about my work", history)
	assert.Equal(t, templates[1], resp.Text)
}

func TestNegationGuard(t *testing.T) {
	msg := "I'm not feeling great today, everything is falling apart"
	assert.Equal(t, PositiveNone, DetectPositiveState(msg))
	resp := newTestEngine().Analyze(msg, nil)
	assert.NotEqual(t, CategoryPositive, resp.Category)
}

func TestHiScenario(t *testing.T) {
	resp := newTestEngine().Analyze("Hi", nil)
	assert.Empty(t, resp.Category)
	assert.False(t, resp.NeedsTool)
	assert.Empty(t, resp.Tools)
	assert.Contains(t, greetingResponses, resp.Text)
}

func TestBossScenario(t *testing.T) {
	msg := "My boss was mean and I had too much to do"
	resp, a := newTestEngine().Evaluate(msg, nil)
	assert.Equal(t, "life_topic_work", resp.Category)
	topic, ok := DetectLifeTopic(msg)
	require.True(t, ok)
	assert.Equal(t, ToneStressed, topic.ToneOf(normalize(msg)))
	assert.Equal(t, a.Score >= 4, resp.NeedsTool)
	require.NotEmpty(t, resp.Tools)
	assert.Contains(t, resp.Text, "**"+resp.Tools[0].Name+"**")
}

func TestAnxiousTwiceDoesNotRepeat(t *testing.T) {
	e := newTestEngine()
	first := e.Analyze("I'm so anxious", nil)
	history := []ConversationTurn{assistant(first.Text), user("I'm so anxious")}
	second := e.Analyze("I'm so anxious", history)

	assert.Equal(t, first.Category, second.Category)
	assert.NotEqual(t, first.Text, second.Text)
}

func TestLifeTopics(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		category string
		tone     Tone
	}{
		{"work praise", "I got praised at work today!", "life_topic_work", ToneCelebratory},
		{"work load", "Feeling overwhelmed by my workload", "life_topic_work", ToneStressed},
		{"friend upset", "My friend was upset with me", "life_topic_relationships", ToneStressed},
		{"day with mum", "I had a lovely day with my mum", "life_topic_relationships", ToneCelebratory},
		{"sick dog", "My dog is sick", "life_topic_pets", ToneStressed},
		{"tidy home", "I tidied my whole bedroom", "life_topic_home", ToneCelebratory},
		{"tight money", "Money is really tight right now", "life_topic_money", ToneStressed},
		{"paid off", "I just paid off my credit card!", "life_topic_money", ToneCelebratory},
	}
	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := e.Analyze(tt.message, nil)
			assert.Equal(t, tt.category, resp.Category)
			topic, ok := DetectLifeTopic(tt.message)
			require.True(t, ok)
			assert.Equal(t, tt.tone, topic.ToneOf(normalize(tt.message)))
		})
	}
}

func TestGreetingFriendIsNotARelationship(t *testing.T) {
	_, ok := DetectLifeTopic("Hey friend, how are you?")
	assert.False(t, ok)

	resp := newTestEngine().Analyze("Hey friend, how are you?", nil)
	assert.Empty(t, resp.Category)
	assert.Contains(t, greetingResponses, resp.Text)

	_, ok = DetectLifeTopic("Hey friend, my friend ignored me today")
	assert.True(t, ok)
}

func TestWantToShareInvitesElaboration(t *testing.T) {
	resp := newTestEngine().Analyze("I wanted to share something with you", nil)
	assert.Contains(t, shareResponses, resp.Text)
	assert.False(t, resp.NeedsTool)
}

func TestStretchDoesNotAskHowLong(t *testing.T) {
	e := NewEngine()
	for range 20 {
		resp := e.Analyze("I've had a bad week", nil)
		assert.NotContains(t, resp.Text, "How long has this been")
	}
}

func TestDurationShapesOpenPrompt(t *testing.T) {
	resp := newTestEngine().Analyze("I've been struggling for 3 months", nil)
	assert.Contains(t, resp.Text, "3 months")
	assert.NotContains(t, resp.Text, "for for")

	history := []ConversationTurn{assistant("Tell me more."), user("It started 2 weeks ago")}
	resp = newTestEngine().Analyze("I just feel off", history)
	assert.Contains(t, resp.Text, "2 weeks")
}

func TestEmotionalStateOffersTools(t *testing.T) {
	resp, a := newTestEngine().Evaluate("I feel numb", nil)
	require.Equal(t, "numb_disconnected", resp.Category)
	assert.Equal(t, 6, a.Score)
	assert.True(t, resp.NeedsTool)
	assert.NotEmpty(t, resp.Tools)
	assert.Contains(t, resp.Text, crisisFooter)
	assert.Contains(t, resp.Text, "Here are some tools that might help:")
}

func TestLegacyPatternNeedsToolFromScore(t *testing.T) {
	resp, a := newTestEngine().Evaluate("I'm so anxious", nil)
	assert.Equal(t, "anxiety", resp.Category)
	assert.Equal(t, 4, a.Score)
	assert.False(t, resp.NeedsTool)
	assert.Contains(t, resp.Text, "✨ Reminder: ")

	resp, a = newTestEngine().Evaluate("I'm so anxious...", nil)
	assert.Equal(t, "anxiety", resp.Category)
	assert.Equal(t, 5, a.Score)
	assert.True(t, resp.NeedsTool)
	assert.NotEmpty(t, resp.Tools)
}

func TestSelfReflectionQuotesPreviousTurn(t *testing.T) {
	history := []ConversationTurn{
		assistant("It sounds like you're caught in perfectionism."),
		user("It has to be perfect before I hand it in"),
	}
	resp := newTestEngine().Analyze("Why do you think that?", history)
	assert.Equal(t, StageSelfReflection, resp.Stage)
	assert.Contains(t, resp.Text, `"It has to be perfect before I hand it in"`)
	assert.Contains(t, resp.Text, "perfectionism patterns")
	assert.Contains(t, resp.Text, "Or does it feel off?")
}

func TestSelfReflectionQuotesNewestUserTurn(t *testing.T) {
	history := []ConversationTurn{
		assistant("It sounds like you're caught in perfectionism."),
		user("It has to be perfect before I hand it in"),
		assistant("Tell me more."),
		user("It has to be perfect or my boss will notice"),
	}
	resp := newTestEngine().Analyze("Why do you think that?", history)
	assert.Equal(t, StageSelfReflection, resp.Stage)
	assert.Contains(t, resp.Text, "before I hand it in")
	assert.NotContains(t, resp.Text, "or my boss")
}

func TestSelfReflectionFallsThroughWithoutHistory(t *testing.T) {
	resp := newTestEngine().Analyze("Why do you think that?", nil)
	assert.NotEqual(t, StageSelfReflection, resp.Stage)
}

func TestReplayOffersTheNamedExercise(t *testing.T) {
	e := newTestEngine()

	history := []ConversationTurn{assistant(FormatToolOffer([]CopingTool{mustTool(t, "Box Breathing")}, 5))}
	resp := e.Analyze("yes", history)
	assert.Equal(t, guidedBreath, resp.Text)

	history = []ConversationTurn{assistant(FormatToolOffer([]CopingTool{mustTool(t, "Body Scan")}, 5))}
	resp = e.Analyze("ok let's try", history)
	assert.Contains(t, resp.Text, "**Body Scan - Follow Along:**")

	resp = e.Analyze("yes", nil)
	assert.Contains(t, agreementResponses, resp.Text)
}

func TestNeedStatementAsksPermission(t *testing.T) {
	resp := newTestEngine().Analyze("I need grounding", nil)
	assert.Contains(t, resp.Text, "**5-4-3-2-1 Grounding**")
	assert.False(t, resp.NeedsTool)

	follow := newTestEngine().Analyze("yes please", []ConversationTurn{assistant(resp.Text), user("I need grounding")})
	assert.Equal(t, guidedGrounding, follow.Text)
}

func TestReassuranceLoopEscalates(t *testing.T) {
	history := []ConversationTurn{
		user("i'm scared"),
		assistant("I'm here."),
		user("I don't know what to do"),
		assistant("Tell me more."),
	}
	resp := newTestEngine().Analyze("I don't know what to do", history)
	assert.Equal(t, CategoryReassuranceLoop, resp.Category)
	assert.Equal(t, reassuranceLoopResponse, resp.Text)
}

func TestPositiveRouting(t *testing.T) {
	e := newTestEngine()

	resp := e.Analyze("I feel so good today", nil)
	assert.Equal(t, CategoryPositive, resp.Category)
	assert.Equal(t, StagePositive, resp.Stage)
	assert.True(t, strings.HasPrefix(resp.Text, reflectiveResponses[0]))
	assert.True(t, strings.HasSuffix(resp.Text, positiveCheckIns[0]))

	resp = e.Analyze("I feel AMAZING!!! SO HAPPY!!!", nil)
	assert.Contains(t, dysregulatedPositiveResponses, resp.Text)

	resp = e.Analyze("I feel good, thanks", nil)
	assert.Equal(t, CategoryPositiveExit, resp.Category)

	resp = e.Analyze("Feeling great, bye for now", nil)
	assert.Equal(t, CategoryFarewell, resp.Category)
}

func TestFarewellOutsidePositiveState(t *testing.T) {
	resp := newTestEngine().Analyze("gotta go", nil)
	assert.Equal(t, CategoryFarewell, resp.Category)
	assert.Contains(t, farewellResponses, resp.Text)
}

func TestThemesNeedingTools(t *testing.T) {
	resp := newTestEngine().Analyze("I feel stuck", nil)
	assert.Contains(t, trappedResponses, resp.Text)
	assert.True(t, resp.NeedsTool)
	assert.NotEmpty(t, resp.Tools)
}

func TestToolHelpedAsksToContinueOrRest(t *testing.T) {
	resp := newTestEngine().Analyze("that really helped me", nil)
	assert.Contains(t, toolHelpedResponses, resp.Text)
}

func TestMatchPatternsReturnsDeclarationOrder(t *testing.T) {
	matches := MatchPatterns("I must be perfect or I'm worthless")
	require.GreaterOrEqual(t, len(matches), 2)
	assert.Equal(t, "perfectionism", matches[0].Category)
	assert.Equal(t, []string{"perfect", "must"}, matches[0].Keywords)
	assert.Equal(t, "self_criticism", matches[1].Category)
}

func mustTool(t *testing.T, name string) CopingTool {
	t.Helper()
	tool, ok := FindTool(name)
	require.True(t, ok, name)
	return tool
}
