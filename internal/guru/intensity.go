package guru

import "strings"

// Window sizes used by the history-sensitive checks. Each is tuned for its
// own detector and they are deliberately not shared.
const (
	hopelessWindow   = 5
	escalationWindow = 4
	fragmentWords    = 10
	maxIntensity     = 10
	crisisThreshold  = 7
	footerThreshold  = 6
	criticalScore    = 10
)

// Assessment is the internal severity reading for one message. It is never
// rendered into response text.
type Assessment struct {
	Score    int
	Critical bool
}

type intensityTier struct {
	value   int
	markers []string
}

var criticalPhrases = []string{
	"want to die", "kill myself", "end it all", "cant do this anymore", "can't do this anymore",
	"dont want to exist", "don't want to exist", "want everything to stop", "hurt myself",
	"no point in living", "better off dead", "nothing matters", "give up completely",
}

var intensityTiers = []intensityTier{
	{8, []string{
		"cant cope", "can't cope", "falling apart", "unraveling", "cant go on", "can't go on",
		"no way out", "dont see the point", "don't see the point", "completely hopeless",
		"breaking down", "cant take it", "can't take it", "too much pain", "hate myself",
		"im worthless", "i'm worthless", "im stupid", "i'm stupid", "everything is my fault",
		"no one cares about me", "im the problem", "i'm the problem", "im a bad person",
		"i'm a bad person",
	}},
	{7, []string{
		"cant function", "can't function", "losing it", "cant breathe", "spiraling", "collapsing",
		"drowning", "suffocating", "completely overwhelmed", "cant handle", "breaking",
	}},
	{6, []string{
		"overwhelmed", "too much", "cant think", "exhausted", "dont know what to do", "feel lost",
		"stuck", "trapped", "panic", "terrified", "desperate", "dont feel anything",
		"don't feel anything", "im empty", "i'm empty", "feel numb", "disconnected from myself",
		"feel nothing", "emotionally numb",
	}},
	{4, []string{
		"anxious", "stressed", "worried", "scared", "confused", "frustrated", "upset",
		"struggling", "difficult",
	}},
}

var fragmentMarkers = []string{"...", "??", "!!"}

var hopelessMarkers = []string{"hopeless", "pointless", "give up", "cant", "can't", "no point"}

var escalationWords = []string{"worse", "cant", "can't", "hopeless", "stuck", "nothing", "never"}

// Assess scores message on the internal 0 to 10 scale using the newest-first
// history for the repetition and escalation bonuses.
func Assess(message string, history []ConversationTurn) Assessment {
	return assess(message, normalize(message), SanitizeHistory(history))
}

// Intensity is Assess without the critical flag.
func Intensity(message string, history []ConversationTurn) int {
	return Assess(message, history).Score
}

// IsCritical reports whether the message contains self-harm or suicidal
// ideation language.
func IsCritical(message string) bool {
	return containsAny(normalize(message), criticalPhrases)
}

func assess(message, lower string, turns []ConversationTurn) Assessment {
	if containsAny(lower, criticalPhrases) {
		return Assessment{Score: criticalScore, Critical: true}
	}

	score := 0
	for _, tier := range intensityTiers {
		if tier.value > score && containsAny(lower, tier.markers) {
			score = tier.value
		}
	}

	if len(strings.Fields(message)) < fragmentWords && containsAny(message, fragmentMarkers) {
		score++
	}

	recentUsers := userTexts(turns, hopelessWindow)
	hopeless := 0
	for _, text := range recentUsers {
		if containsAny(text, hopelessMarkers) {
			hopeless++
		}
	}
	if hopeless >= 2 {
		score += 2
	}

	escalating := userTexts(turns, escalationWindow)
	if len(escalating) >= 2 {
		recent := countMarkers(escalating[:2], escalationWords)
		older := countMarkers(escalating[2:], escalationWords)
		if recent > older {
			score++
		}
	}

	return Assessment{Score: min(score, maxIntensity)}
}

// countMarkers counts each marker at most once per text.
func countMarkers(texts []string, markers []string) int {
	n := 0
	for _, text := range texts {
		for _, m := range markers {
			if strings.Contains(text, m) {
				n++
			}
		}
	}
	return n
}
