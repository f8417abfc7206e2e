package guru

import (
	"strings"
	"unicode"
)

// PositiveState is a category of genuinely positive disclosure.
type PositiveState string

const (
	PositiveNone    PositiveState = ""
	ClearPositivity PositiveState = "clear_positivity"
	Gratitude       PositiveState = "gratitude"
	EnergyMomentum  PositiveState = "energy_momentum"
	Relief          PositiveState = "relief"
	Peace           PositiveState = "peace"
	SelfCare        PositiveState = "self_care"
	GeneralPositive PositiveState = "general_positive"
)

// agreementMaxWords bounds the length of a message treated as bare agreement.
const agreementMaxWords = 8

var negationMarkers = []string{
	"not doing", "not feeling", "not too", "not very", "not really",
	"don't feel", "dont feel", "doesn't feel", "doesnt feel",
	"not good", "not great", "not well", "not okay", "not ok",
	"hardly", "barely", "far from",
}

var agreementWords = []string{
	"yeah", "yh", "yep", "yes", "ok", "okay", "sure", "sounds good",
	"that works", "makes sense", "i understand", "got it", "alright",
}

var feelingStatements = []string{"feel good", "feel great", "feeling good", "feeling great", "i feel"}

var positiveKeywords = []string{
	"good", "great", "calm", "peaceful", "happy", "light",
	"grateful", "relieved", "balanced", "proud", "settled", "clear",
}

var positiveIndicators = []struct {
	state   PositiveState
	phrases []string
}{
	{ClearPositivity, []string{
		"feel so good", "feel good", "feel great", "feeling good", "feeling great",
		"really happy", "so happy", "feel happy", "feel lighter", "feel peaceful",
		"breakthrough", "feel amazing", "feeling amazing", "going well", "things are good",
	}},
	{Gratitude, []string{
		"grateful", "thankful", "so grateful", "heart feels full",
		"appreciate this", "blessed", "fortunate",
	}},
	{EnergyMomentum, []string{
		"feel motivated", "feel energized", "feel like myself",
		"feel proud", "proud of myself", "accomplished",
		"completed everything", "finished everything", "got everything done",
		"finished", "completed", "all done", "made it through",
		"i did it", "achieved", "mission accomplished", "checked off",
		"got it done", "made progress", "got through it",
	}},
	{Relief, []string{
		"feel calmer", "can breathe again", "feel better",
		"lifted", "weight lifted", "feel lighter", "relieved",
	}},
	{Peace, []string{"peaceful", "calm", "settled", "centered", "balanced", "clear"}},
	{SelfCare, []string{
		"going to rest", "going to relax", "take time", "take a break",
		"need rest", "need to rest", "time to relax", "going to take care",
		"prioritize myself", "setting boundaries", "saying no",
		"taking space", "stepping back", "going to unwind",
		"time for myself", "focusing on me", "self care",
	}},
}

var exitPhrases = []string{
	"i'm good", "im good", "i'm okay now", "im okay now",
	"all good", "no, i'm fine", "no im fine", "that's enough",
	"thats enough", "thank you", "thanks", "appreciate it",
	"i'm fine now", "im fine now", "feel better now",
}

var farewellPhrases = []string{
	"bye", "goodbye", "good bye", "see you", "talk soon", "speak soon",
	"see you later", "see you soon", "talk to you later", "talk later",
	"catch you later", "ttyl", "gotta go", "got to go", "have to go",
	"going to leave", "going to go", "will be back", "i'll be back",
	"ill be back", "back later", "back soon", "leaving now",
	"time to go", "heading out", "signing off",
}

var buzzingWords = []string{
	"buzzing", "can't sit still", "too energized", "too much energy",
	"racing", "wired", "hyper",
}

// DetectPositiveState classifies message as a positive disclosure, returning
// PositiveNone when a negation or bare conversational agreement is present.
func DetectPositiveState(message string) PositiveState {
	return detectPositive(normalize(message))
}

func detectPositive(lower string) PositiveState {
	if containsAny(lower, negationMarkers) {
		return PositiveNone
	}
	if wordCount(lower) <= agreementMaxWords && containsAnyPhrase(lower, agreementWords) &&
		!containsAny(lower, feelingStatements) {
		return PositiveNone
	}
	for _, group := range positiveIndicators {
		if containsAny(lower, group.phrases) {
			return group.state
		}
	}
	if containsAny(lower, positiveKeywords) {
		return GeneralPositive
	}
	return PositiveNone
}

// IsFarewell reports whether the message is a goodbye.
func IsFarewell(message string) bool {
	return containsAny(normalize(message), farewellPhrases)
}

// IsExit reports whether the user is signalling they are done for now.
func IsExit(message string) bool {
	return containsAny(normalize(message), exitPhrases)
}

// IsDysregulatedPositivity reports whether an upbeat message shows signs of
// an over-activated nervous system: long unpunctuated bursts, stacked
// exclamation marks, buzzing language or mostly capital letters.
func IsDysregulatedPositivity(message string) bool {
	if wordCount(message) > 50 && strings.Contains(message, "!") {
		return true
	}
	if strings.Count(message, "!") >= 3 {
		return true
	}
	if containsAny(normalize(message), buzzingWords) {
		return true
	}
	upper, total := 0, 0
	for _, r := range message {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) > float64(total)*0.3
}
