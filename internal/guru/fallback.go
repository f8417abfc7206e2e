package guru

import (
	"fmt"
	"strings"
)

const (
	reassuranceWindow = 6
	replayWindow      = 2
	shortReplyWords   = 5
)

var greetingPhrases = []string{
	"how are you", "how r u", "how are u", "hows it going", "how's it going",
	"whats up", "what's up", "how do you do", "how you doing", "howdy",
	"hey there", "hi there", "hello there",
	"are you ok", "are you okay", "you ok", "you okay", "u ok", "u okay",
	"are you alright", "you alright", "are you good", "you good",
	"are you doing ok", "are you doing okay", "doing ok", "doing okay",
	"everything ok", "everything okay", "all good with you",
}

var simpleHellos = []string{"hi", "hello", "hey", "hiya", "heya", "yo", "hey friend", "hi friend", "hello friend"}

var needStatements = []struct {
	phrase string
	need   string
	tool   string
}{
	{"need grounding", "grounding", "5-4-3-2-1 Grounding"},
	{"need to ground", "grounding", "5-4-3-2-1 Grounding"},
	{"need to breathe", "space to breathe", "Box Breathing"},
	{"need some peace", "peace", "Box Breathing"},
	{"need peace", "peace", "Box Breathing"},
	{"need quiet", "quiet", "Body Scan"},
	{"need stillness", "stillness", "Body Scan"},
	{"need some comfort", "comfort", "Hand-on-Heart Regulation"},
	{"need comfort", "comfort", "Hand-on-Heart Regulation"},
	{"need space", "space", "Protective Boundaries Check-In"},
	{"need a moment", "stillness", "Physiological Sigh"},
	{"need to slow down", "slowness", "Physiological Sigh"},
}

var sharePhrases = []string{
	"want to share", "wanted to share", "like to share", "have news", "have some news",
	"got news", "got some news", "something to tell you", "can i tell you", "want to tell you",
	"wanted to tell you", "guess what",
}

var immediateSupportPhrases = []string{
	"need support", "need help now", "need help right now", "need someone",
	"help me now", "cant do this alone", "can't do this alone", "need you",
	"please help", "help me please", "struggling right now",
	"really struggling", "need to talk", "talk to someone",
}

var reassurancePhrases = []string{
	"dont know what to do", "don't know what to do", "i cant cope", "i can't cope",
	"im scared", "i'm scared", "dont know how", "don't know how", "feel so lost",
}

var agreementReplies = []string{
	"yh", "yeah", "yes", "yep", "ok", "okay", "sure", "alright", "lets try", "let's try",
	"ill try", "i'll try", "sounds good", "that works", "go on", "go ahead", "please",
}

var guidancePhrases = []string{
	"guide me", "walk me through", "show me how", "help me do", "ready",
	"lets do it", "let's do it", "let's do",
}

var noTimePhrases = []string{
	"dont have time", "don't have time", "no time", "too busy", "cant do this now",
	"can't do this", "dont have the time", "rushed", "in a hurry",
}

var (
	trappedMarkers   = []string{"trapped", "stuck", "cant escape", "no way out", "cornered", "imprisoned"}
	lostMarkers      = []string{"lost", "confused", "dont know", "don't know", "unclear", "uncertain", "directionless"}
	hopelessThemes   = []string{"hopeless", "pointless", "no point", "give up", "cant go on", "no future"}
	exhaustedMarkers = []string{"exhausted", "tired", "drained", "worn out", "cant anymore", "too much"}
)

var helpRequestMarkers = []string{
	"suggest", "advice", "help me", "what should i do", "what can i",
	"how do i", "how can i", "recommend", "need help", "dont know what", "dont know how",
	"tool", "technique", "exercise", "practice", "coping", "calm down",
}

var toolHelpedPhrases = []string{
	"that helped", "it helped", "this helped", "really helped", "helped a lot", "helped me",
	"that worked", "it worked", "this worked", "that was helpful", "it was helpful",
	"feel calmer now", "feel more grounded",
}

var gratitudeMarkers = []string{"thank", "grateful", "appreciate", "helped"}

var progressMarkers = []string{"better", "helped", "working", "trying", "practicing"}

// fallback is the last stage. It always produces a response.
func (e *Engine) fallback(c *turnContext, positive PositiveState) Response {
	emotion := detectEmotion(c.lower)
	if positive != PositiveNone {
		return e.positiveResponse(c, positive, emotion)
	}

	if containsAny(c.lower, farewellPhrases) {
		return Response{Text: e.fresh(farewellResponses, c), Category: CategoryFarewell, Emotion: emotion}
	}
	if isGreeting(c.lower) {
		return Response{Text: e.fresh(greetingResponses, c)}
	}
	if wordCount(c.lower) <= shortReplyWords {
		for _, ns := range needStatements {
			if !strings.Contains(c.lower, ns.phrase) {
				continue
			}
			candidates := make([]string, len(needStatementTemplates))
			for i, t := range needStatementTemplates {
				candidates[i] = fmt.Sprintf(t, ns.need, ns.tool)
			}
			return Response{Text: e.fresh(candidates, c), Emotion: emotion}
		}
	}
	if containsAny(c.lower, sharePhrases) {
		return Response{Text: e.fresh(shareResponses, c), Emotion: emotion}
	}
	if containsAny(c.lower, immediateSupportPhrases) {
		return Response{Text: e.fresh(supportResponses, c), Emotion: emotion}
	}
	if r, ok := e.reassuranceLoop(c, emotion); ok {
		return r
	}
	if r, ok := e.replay(c, emotion); ok {
		return r
	}
	if containsAny(c.lower, noTimePhrases) {
		return Response{Text: e.fresh(noTimeResponses, c), Emotion: emotion}
	}

	switch {
	case containsAny(c.lower, trappedMarkers):
		return Response{Text: e.fresh(trappedResponses, c), Emotion: emotion, NeedsTool: true}
	case containsAny(c.lower, lostMarkers):
		return Response{Text: e.fresh(lostResponses, c), Emotion: emotion}
	case containsAny(c.lower, hopelessThemes):
		return Response{Text: e.fresh(hopelessResponses, c), Emotion: emotion, NeedsTool: true}
	case containsAny(c.lower, exhaustedMarkers):
		return Response{Text: e.fresh(exhaustedResponses, c), Emotion: emotion}
	}

	if containsAny(c.lower, helpRequestMarkers) {
		text := e.fresh(helpSuggestions, c)
		if aff := e.affirmation(emotion); aff != "" {
			text += "\n\n✨ " + aff
		}
		return Response{Text: text, Emotion: emotion}
	}
	if containsAny(c.lower, toolHelpedPhrases) {
		return Response{Text: e.fresh(toolHelpedResponses, c), Emotion: emotion}
	}
	if containsAny(c.lower, gratitudeMarkers) {
		return Response{Text: e.fresh(gratitudeResponses, c), Emotion: emotion}
	}
	if containsAny(c.lower, progressMarkers) {
		return Response{Text: e.fresh(progressResponses, c), Emotion: emotion}
	}
	return Response{Text: e.openPrompt(c), Emotion: emotion}
}

func isGreeting(lower string) bool {
	if containsAny(lower, greetingPhrases) {
		return true
	}
	bare := strings.Trim(strings.TrimSpace(lower), " !.?,")
	for _, h := range simpleHellos {
		if bare == h {
			return true
		}
	}
	return false
}

func (e *Engine) positiveResponse(c *turnContext, state PositiveState, emotion string) Response {
	if containsAny(c.lower, farewellPhrases) {
		return Response{Text: e.fresh(farewellResponses, c), Category: CategoryFarewell, Emotion: emotion}
	}
	dysregulated := IsDysregulatedPositivity(c.message)
	if containsAny(c.lower, exitPhrases) {
		return Response{Text: e.fresh(exitResponses, c), Category: CategoryPositiveExit, Emotion: emotion}
	}

	var candidates []string
	switch {
	case dysregulated:
		candidates = dysregulatedPositiveResponses
	case state == ClearPositivity:
		candidates = append(append([]string(nil), reflectiveResponses...), celebratoryResponses...)
	case state == Gratitude:
		candidates = gratitudeStateResponses
	case state == EnergyMomentum:
		candidates = energyMomentumResponses
	case state == Relief:
		candidates = reliefResponses
	case state == Peace:
		candidates = peaceResponses
	case state == SelfCare:
		candidates = selfCareResponses
	default:
		candidates = generalPositiveResponses
	}

	text := e.fresh(candidates, c)
	if !dysregulated {
		text += pickOne(e.picker, positiveCheckIns)
	}
	return Response{Text: text, Category: CategoryPositive, Emotion: emotion}
}

// reassuranceLoop escalates gently toward professional support when the
// user keeps repeating the same distress.
func (e *Engine) reassuranceLoop(c *turnContext, emotion string) (Response, bool) {
	if len(c.turns) == 0 || !containsAny(c.lower, reassurancePhrases) {
		return Response{}, false
	}
	repeats := 0
	for _, text := range userTexts(c.turns, reassuranceWindow) {
		if containsAny(text, reassurancePhrases) {
			repeats++
		}
	}
	if repeats < 2 {
		return Response{}, false
	}
	return Response{Text: reassuranceLoopResponse, Category: CategoryReassuranceLoop, Emotion: emotion}, true
}

// replay walks the user through the exercise most recently offered when
// they answer with a short yes or ask to be guided.
func (e *Engine) replay(c *turnContext, emotion string) (Response, bool) {
	agreed := wordCount(c.lower) <= shortReplyWords && containsAnyPhrase(c.lower, agreementReplies)
	guided := containsAnyPhrase(c.lower, guidancePhrases)
	if !agreed && !guided {
		return Response{}, false
	}
	if script, ok := offeredExercise(assistantTexts(c.turns, replayWindow)); ok {
		return Response{Text: script}, true
	}
	if agreed {
		return Response{Text: e.fresh(agreementResponses, c), Emotion: emotion}, true
	}
	return Response{}, false
}

// offeredExercise finds the exercise named in the newest assistant turn that
// offered one and returns its step-by-step script.
func offeredExercise(texts []string) (string, bool) {
	for _, text := range texts {
		if tool, ok := firstNamedTool(text); ok {
			return exerciseScript(tool), true
		}
		lower := strings.ToLower(text)
		if strings.Contains(lower, "breath") {
			return guidedBreath, true
		}
		if strings.Contains(lower, "grounding") || strings.Contains(lower, "5-4-3-2-1") {
			return guidedGrounding, true
		}
	}
	return "", false
}

// firstNamedTool returns the catalog tool whose name appears earliest in text.
func firstNamedTool(text string) (CopingTool, bool) {
	best, bestIdx := CopingTool{}, -1
	for _, t := range toolCatalog {
		idx := strings.Index(text, t.Name)
		if idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			best, bestIdx = t, idx
		}
	}
	return best, bestIdx >= 0
}

func exerciseScript(tool CopingTool) string {
	switch tool.Name {
	case "Box Breathing":
		return guidedBreath
	case "5-4-3-2-1 Grounding":
		return guidedGrounding
	default:
		return fmt.Sprintf(replayTemplate, tool.Name, tool.Description)
	}
}

// openPrompt is the final exploratory question. A time phrase in the
// message or recent user turns steers it away from asking how long again.
func (e *Engine) openPrompt(c *turnContext) string {
	period, ok := ExtractTimePeriod(c.lower)
	if !ok {
		for _, text := range userTexts(c.turns, durationWindow) {
			if period, ok = ExtractTimePeriod(text); ok {
				break
			}
		}
	}
	if !ok {
		return e.fresh(explorationResponses, c)
	}

	var templates []string
	switch period.Kind {
	case PeriodDuration:
		templates = durationTemplates
	case PeriodMoment:
		templates = momentTemplates
	case PeriodStretch:
		templates = stretchTemplates
	default:
		templates = ongoingTemplates
	}
	candidates := make([]string, len(templates))
	for i, t := range templates {
		candidates[i] = fmt.Sprintf(t, period.Phrase)
	}
	return e.fresh(candidates, c)
}
