package guru

import (
	"regexp"
	"strings"
)

// PeriodKind distinguishes how a mentioned time period should be reflected.
type PeriodKind int

const (
	PeriodNone PeriodKind = iota
	// PeriodDuration is a counted span such as "3 days" or "a couple of weeks".
	PeriodDuration
	// PeriodMoment is a single point in the day such as "today" or "this morning".
	PeriodMoment
	// PeriodOngoing is an open-ended span such as "lately" or "since monday".
	PeriodOngoing
	// PeriodStretch is a qualitative span such as "a rough week".
	PeriodStretch
)

// TimePeriod is a time phrase extracted from a message.
type TimePeriod struct {
	Phrase string
	Kind   PeriodKind
}

// durationWindow is the number of recent user turns searched for a time
// phrase when the current message has none.
const durationWindow = 3

var periodPatterns = []struct {
	kind PeriodKind
	re   *regexp.Regexp
}{
	{PeriodDuration, regexp.MustCompile(`(?:\b(?:for|past|last|about) )?(?:(?:a|the) )?(?:few )?\b(?:\d+|a|an|couple|several)(?: of)? ?(?:days?|weeks?|months?|years?)\b`)},
	{PeriodStretch, regexp.MustCompile(`\b(?:a|this|the|last|past) (?:really |very )?(?:bad|rough|hard|long|tough|difficult|awful|terrible|horrible|stressful|heavy|strange|weird)(?: few)? (?:days?|weeks?|months?|years?)\b`)},
	{PeriodMoment, regexp.MustCompile(`\b(?:today|tonight|this morning|this afternoon|this evening)\b`)},
	{PeriodOngoing, regexp.MustCompile(`\b(?:all day|all week|all month|all year)\b`)},
	{PeriodOngoing, regexp.MustCompile(`\bsince (?:yesterday|last week|last month|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)},
	{PeriodOngoing, regexp.MustCompile(`\b(?:lately|recently|for a while|for ages|forever)\b`)},
}

// ExtractTimePeriod finds the first time phrase in message. Counted spans
// lose a leading "for" so they read naturally inside a sentence.
func ExtractTimePeriod(message string) (TimePeriod, bool) {
	lower := normalize(message)
	for _, p := range periodPatterns {
		match := p.re.FindString(lower)
		if match == "" {
			continue
		}
		phrase := strings.TrimSpace(match)
		if p.kind == PeriodDuration {
			phrase = strings.TrimPrefix(phrase, "for ")
		}
		return TimePeriod{Phrase: phrase, Kind: p.kind}, true
	}
	return TimePeriod{}, false
}
