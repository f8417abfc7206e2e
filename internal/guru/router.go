package guru

import (
	"fmt"
	"log/slog"
	"strings"
)

// Stage names the detector that produced a response.
type Stage string

const (
	StagePositive       Stage = "positive"
	StageCrisis         Stage = "crisis"
	StageSelfReflection Stage = "self_reflection"
	StageLifeTopic      Stage = "life_topic"
	StageEmotionalState Stage = "emotional_state"
	StageLegacyPattern  Stage = "legacy_pattern"
	StageFallback       Stage = "fallback"
)

// Response categories that are not an emotional state, legacy pattern or
// life topic name.
const (
	CategoryCrisis          = "crisis_intervention"
	CategoryPositive        = "positive_state"
	CategoryFarewell        = "farewell"
	CategoryPositiveExit    = "positive_exit"
	CategoryReassuranceLoop = "reassurance_loop"
)

const (
	snippetRadius     = 20
	maxQuotedSnippets = 2
	maxQuotedKeywords = 3
	legacyToolScore   = 5
)

// alwaysOfferStates get a tool offer regardless of intensity.
var alwaysOfferStates = map[string]bool{
	"overwhelmed_anxious":       true,
	"numb_disconnected":         true,
	"high_functioning_distress": true,
}

var selfReflectionPhrases = []string{
	"what makes you", "why do you think", "why do you say", "how do you know",
	"what gave you", "why would you", "i'm not", "i don't think i'm",
}

// Response is the single output of the engine for one message.
type Response struct {
	Text      string       `json:"response"`
	Category  string       `json:"pattern,omitempty"`
	Emotion   string       `json:"emotion,omitempty"`
	NeedsTool bool         `json:"needs_tool"`
	Tools     []CopingTool `json:"recommended_tools,omitempty"`
	Stage     Stage        `json:"-"`
}

// DetectorMatch is a category together with the keywords that triggered it.
type DetectorMatch struct {
	Category string
	Keywords []string
}

// Engine evaluates messages against the ordered detector stages.
type Engine struct {
	picker Picker
}

// Option configures an Engine.
type Option func(*Engine)

// WithPicker sets the randomness source used for template and tool choice.
func WithPicker(p Picker) Option {
	return func(e *Engine) {
		if p != nil {
			e.picker = p
		}
	}
}

// NewEngine creates an Engine. Without options it picks uniformly at random.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{picker: RandomPicker{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// turnContext carries the per-call values shared by every stage.
type turnContext struct {
	message    string
	lower      string
	turns      []ConversationTurn
	recent     []string
	assessment Assessment
}

func newTurnContext(message string, history []ConversationTurn) *turnContext {
	turns := SanitizeHistory(history)
	lower := normalize(message)
	return &turnContext{
		message:    message,
		lower:      lower,
		turns:      turns,
		recent:     assistantTexts(turns, dedupWindow),
		assessment: assess(message, lower, turns),
	}
}

// Analyze returns the response for message given newest-first history.
func (e *Engine) Analyze(message string, history []ConversationTurn) Response {
	resp, _ := e.Evaluate(message, history)
	return resp
}

// Evaluate is Analyze that also returns the internal assessment, for callers
// that record it. The assessment must never be shown to the user.
func (e *Engine) Evaluate(message string, history []ConversationTurn) (Response, Assessment) {
	c := newTurnContext(message, history)
	resp := e.finalize(e.route(c), c)
	slog.Debug("Engine.Evaluate: response selected", "stage", resp.Stage, "category", resp.Category, "needs_tool", resp.NeedsTool, "tools", len(resp.Tools))
	return resp, c.assessment
}

func (e *Engine) route(c *turnContext) Response {
	if !c.assessment.Critical {
		if state := detectPositive(c.lower); state != PositiveNone {
			return withStage(e.fallback(c, state), StagePositive)
		}
	}
	if r, ok := e.crisisStage(c); ok {
		return withStage(r, StageCrisis)
	}
	if r, ok := e.selfReflectionStage(c); ok {
		return withStage(r, StageSelfReflection)
	}
	if r, ok := e.lifeTopicStage(c); ok {
		return withStage(r, StageLifeTopic)
	}
	if r, ok := e.emotionalStateStage(c); ok {
		return withStage(r, StageEmotionalState)
	}
	if r, ok := e.legacyStage(c); ok {
		return withStage(r, StageLegacyPattern)
	}
	return withStage(e.fallback(c, PositiveNone), StageFallback)
}

func withStage(r Response, s Stage) Response {
	r.Stage = s
	return r
}

// finalize guarantees non-empty text and a non-empty tool list whenever a
// tool is needed.
func (e *Engine) finalize(r Response, c *turnContext) Response {
	if strings.TrimSpace(r.Text) == "" {
		r.Text = e.fresh(explorationResponses, c)
	}
	if !r.NeedsTool {
		r.Tools = nil
		return r
	}
	if len(r.Tools) == 0 {
		r.Tools = SelectTools(e.picker, c.assessment.Score, r.Category)
	}
	return r
}

func (e *Engine) crisisStage(c *turnContext) (Response, bool) {
	score := c.assessment.Score
	if score < crisisThreshold {
		return Response{}, false
	}
	state := ""
	for _, s := range emotionalStates {
		if containsAny(c.lower, s.Keywords) {
			state = s.Name
			break
		}
	}
	tools := SelectTools(e.picker, score, state)
	return Response{
		Text:      CrisisMessage(score) + "\n\n" + FormatToolOffer(tools, score),
		Category:  CategoryCrisis,
		Emotion:   detectEmotion(c.lower),
		NeedsTool: true,
		Tools:     tools,
	}, true
}

// selfReflectionStage explains an earlier observation when the user asks
// why the bot said it, quoting their own words from the previous turn.
func (e *Engine) selfReflectionStage(c *turnContext) (Response, bool) {
	if !containsAny(c.lower, selfReflectionPhrases) {
		return Response{}, false
	}
	var previous string
	// c.turns is newest-first, so this quotes the most recent prior user turn.
	for _, turn := range c.turns {
		if turn.Role == RoleUser {
			previous = turn.Text
			break
		}
	}
	if previous == "" {
		return Response{}, false
	}
	matches := matchPatterns(normalize(previous))
	if len(matches) == 0 {
		return Response{}, false
	}
	pattern, keywords := matches[0].pattern, matches[0].keywords

	var quotes []string
	for _, kw := range keywords[:min(len(keywords), maxQuotedKeywords)] {
		if snippet, ok := snippetAround(previous, kw, snippetRadius); ok {
			quotes = append(quotes, `"`+snippet+`"`)
		}
	}
	var b strings.Builder
	b.WriteString("I heard that because you used phrases like ")
	if len(quotes) > 0 {
		b.WriteString(strings.Join(quotes[:min(len(quotes), maxQuotedSnippets)], ", "))
	} else {
		b.WriteString(`"` + strings.Join(keywords[:min(len(keywords), maxQuotedSnippets)], ", ") + `"`)
	}
	fmt.Fprintf(&b, ". These phrases often indicate %s patterns.\n\n", pattern.Label())
	b.WriteString("But you know yourself better than I do. What resonates with you about that? Or does it feel off?")

	return Response{Text: b.String(), Emotion: detectEmotion(c.lower)}, true
}

func (e *Engine) lifeTopicStage(c *turnContext) (Response, bool) {
	topic, ok := detectLifeTopic(c.lower)
	if !ok {
		return Response{}, false
	}
	tone := topic.ToneOf(c.lower)
	resp := Response{
		Text:     e.fresh(topicTemplates(topic, tone), c),
		Category: topic.Category(),
		Emotion:  detectEmotion(c.lower),
	}
	if tone == ToneStressed && c.assessment.Score >= lifeTopicToolThreshold {
		resp.NeedsTool = true
		resp.Tools = SelectTools(e.picker, c.assessment.Score, "")
		resp.Text += "\n\n" + fmt.Sprintf(topicConsent, resp.Tools[0].Name)
	}
	return resp, true
}

func (e *Engine) emotionalStateStage(c *turnContext) (Response, bool) {
	score := c.assessment.Score
	for _, state := range emotionalStates {
		if len(state.Matches(c.lower)) == 0 {
			continue
		}
		emotion := detectEmotion(c.lower)
		text := e.fresh(state.Responses, c)
		if aff := e.affirmation(emotion); aff != "" {
			text += "\n\n✨ " + aff
		}
		if score >= footerThreshold {
			text += "\n\n" + crisisFooter
		}
		resp := Response{Category: state.Name, Emotion: emotion}
		if alwaysOfferStates[state.Name] || score >= 4 {
			resp.Tools = SelectTools(e.picker, score, state.Name)
			resp.NeedsTool = true
			text += "\n\n" + FormatToolOffer(resp.Tools, score)
		}
		resp.Text = text
		return resp, true
	}
	return Response{}, false
}

func (e *Engine) legacyStage(c *turnContext) (Response, bool) {
	matches := matchPatterns(c.lower)
	if len(matches) == 0 {
		return Response{}, false
	}
	pattern, keywords := matches[0].pattern, matches[0].keywords
	label := pattern.Label()

	var candidates []string
	for _, q := range pattern.Questions {
		candidates = append(candidates,
			fmt.Sprintf("I'm hearing %s coming through in what you're saying. %s\n\n%s", label, pattern.Insight, q),
			fmt.Sprintf("%s\n\nI wonder: %s", pattern.Insight, q),
			fmt.Sprintf("It sounds like you're caught in %s. %s\n\n%s", label, pattern.Insight, q),
			fmt.Sprintf("When you say things like '%s', it often points to %s. %s\n\n%s", keywords[0], label, pattern.Insight, q),
		)
	}
	emotion := detectEmotion(c.lower)
	text := e.fresh(candidates, c)
	if aff := e.affirmation(emotion); aff != "" {
		text += "\n\n✨ Reminder: " + aff
	}
	return Response{
		Text:      text,
		Category:  pattern.Name,
		Emotion:   emotion,
		NeedsTool: c.assessment.Score >= legacyToolScore,
	}, true
}

type patternMatch struct {
	pattern  LegacyPattern
	keywords []string
}

func matchPatterns(lower string) []patternMatch {
	var matches []patternMatch
	for _, p := range legacyPatterns {
		if kws := p.Matches(lower); len(kws) > 0 {
			matches = append(matches, patternMatch{pattern: p, keywords: kws})
		}
	}
	return matches
}

// MatchPatterns returns every legacy pattern found in message in table order.
func MatchPatterns(message string) []DetectorMatch {
	matches := matchPatterns(normalize(message))
	out := make([]DetectorMatch, len(matches))
	for i, m := range matches {
		out[i] = DetectorMatch{Category: m.pattern.Name, Keywords: m.keywords}
	}
	return out
}

// MatchEmotionalState returns the first emotional state found in message.
func MatchEmotionalState(message string) (DetectorMatch, bool) {
	lower := normalize(message)
	for _, s := range emotionalStates {
		if kws := s.Matches(lower); len(kws) > 0 {
			return DetectorMatch{Category: s.Name, Keywords: kws}, true
		}
	}
	return DetectorMatch{}, false
}

// EmotionalStateNames lists the emotional states in scan order.
func EmotionalStateNames() []string {
	names := make([]string, len(emotionalStates))
	for i, s := range emotionalStates {
		names[i] = s.Name
	}
	return names
}

func (e *Engine) fresh(candidates []string, c *turnContext) string {
	return pickFresh(e.picker, candidates, c.recent)
}

func (e *Engine) affirmation(emotion string) string {
	return pickOne(e.picker, affirmations[emotion])
}
