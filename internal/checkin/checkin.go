// Package checkin provides the structured daily check-in: pattern keyword
// analysis, personalised affirmations, intensity-based tool recommendations
// and the service that records a check-in against the store.
package checkin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/store"
)

// ---- Patterns ----

// patternKeywords is scanned in declaration order.
var patternKeywords = []struct {
	name     string
	keywords []string
}{
	{"perfectionism", []string{"perfect", "not good enough", "should", "must", "failure"}},
	{"people_pleasing", []string{"say no", "disappointing", "others think", "everyone else", "approval"}},
	{"catastrophizing", []string{"worst case", "disaster", "terrible", "always", "never"}},
	{"avoidance", []string{"ignore", "later", "cant face", "escape", "distract"}},
	{"self_criticism", []string{"stupid", "useless", "worthless", "failure", "wrong"}},
	{"control", []string{"control", "need to know", "cant handle", "uncertainty", "plan"}},
}

var patternAffirmations = map[string]string{
	"perfectionism":   "Progress over perfection. I am enough as I am.",
	"people_pleasing": "My needs matter. I can say no with love.",
	"catastrophizing": "I focus on what I can control right now.",
	"avoidance":       "I face challenges with courage and self-compassion.",
	"self_criticism":  "I speak to myself with kindness and understanding.",
	"control":         "I release the need to control. I trust the process.",
}

// ---- Affirmations ----

// defaultEmotion is used for emotions without their own affirmations.
const defaultEmotion = "stress"

var affirmations = map[string][]string{
	"anxiety": {
		"I am safe in this moment",
		"My breath anchors me to the present",
		"This feeling will pass, I am resilient",
		"I trust my body to regulate itself",
		"I am stronger than my anxiety",
	},
	"sadness": {
		"My emotions are valid and temporary",
		"I allow myself to feel and heal",
		"I am worthy of love and care",
		"This too shall pass",
		"I honor my feelings without judgment",
	},
	"anger": {
		"I acknowledge my anger and choose my response",
		"My feelings are valid, my actions are my choice",
		"I release what I cannot control",
		"I am in charge of my emotional reactions",
		"I express my needs with clarity and respect",
	},
	"stress": {
		"I can handle one moment at a time",
		"I release tension with each exhale",
		"I prioritize my wellbeing",
		"I am doing my best, and that is enough",
		"I give myself permission to pause",
	},
	"overwhelm": {
		"I break challenges into manageable steps",
		"I ask for help when I need it",
		"I am capable and resourceful",
		"One thing at a time, one breath at a time",
		"I trust my ability to navigate this",
	},
}

// ---- Tools ----

const (
	highIntensity   = 8
	mediumIntensity = 5
)

var tools = map[string]models.CheckInTool{
	"grounding": {
		Name:        "5-4-3-2-1 Grounding",
		Description: "Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste",
		Duration:    "2-3 minutes",
		WhenToUse:   "Anxiety, panic, dissociation",
	},
	"breathing": {
		Name:        "Box Breathing",
		Description: "Inhale 4 counts, hold 4, exhale 4, hold 4. Repeat 4 times.",
		Duration:    "2-5 minutes",
		WhenToUse:   "Stress, anxiety, overwhelm",
	},
	"body_scan": {
		Name:        "Body Scan",
		Description: "Slowly scan from head to toe, noticing sensations without judgment",
		Duration:    "5-10 minutes",
		WhenToUse:   "Tension, disconnect, before sleep",
	},
	"progressive_relaxation": {
		Name:        "Progressive Muscle Relaxation",
		Description: "Tense each muscle group for 5 seconds, then release. Start with feet, move up.",
		Duration:    "10-15 minutes",
		WhenToUse:   "Physical tension, anxiety, insomnia",
	},
	"journaling": {
		Name:        "Emotional Journaling",
		Description: "Write freely about your feelings without editing or judgment",
		Duration:    "10-20 minutes",
		WhenToUse:   "Processing emotions, confusion, overwhelm",
	},
	"cold_water": {
		Name:        "Cold Water Reset",
		Description: "Splash cold water on face or hold ice cube to activate vagus nerve",
		Duration:    "30-60 seconds",
		WhenToUse:   "Panic, intense emotion, need quick reset",
	},
}

// toolOrder fixes the catalog order for listings.
var toolOrder = []string{"grounding", "breathing", "body_scan", "progressive_relaxation", "journaling", "cold_water"}

// RecordedMessage accompanies every recorded check-in.
const RecordedMessage = "Check-in recorded. Here are your personalized recommendations."

// ---- Public API ----

// Analyze returns the check-in patterns found in text, in declaration order.
func Analyze(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, p := range patternKeywords {
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				found = append(found, p.name)
				break
			}
		}
	}
	return found
}

// Affirmations returns the affirmations for emotion followed by one per
// detected pattern. Unknown emotions fall back to the stress list.
func Affirmations(emotion string, patterns []string) []string {
	base, ok := affirmations[strings.ToLower(strings.TrimSpace(emotion))]
	if !ok {
		base = affirmations[defaultEmotion]
	}
	out := append([]string(nil), base...)
	for _, p := range patterns {
		if a, ok := patternAffirmations[p]; ok {
			out = append(out, a)
		}
	}
	return out
}

// RecommendTools picks regulation tools for high intensity, body-based tools
// for medium intensity and processing tools otherwise.
func RecommendTools(intensity int) []models.CheckInTool {
	var keys []string
	switch {
	case intensity >= highIntensity:
		keys = []string{"grounding", "breathing", "cold_water"}
	case intensity >= mediumIntensity:
		keys = []string{"breathing", "body_scan", "progressive_relaxation"}
	default:
		keys = []string{"journaling", "body_scan"}
	}
	out := make([]models.CheckInTool, len(keys))
	for i, k := range keys {
		out[i] = tools[k]
	}
	return out
}

// Tools returns the whole check-in tool catalog in a stable order.
func Tools() []models.CheckInTool {
	out := make([]models.CheckInTool, len(toolOrder))
	for i, k := range toolOrder {
		out[i] = tools[k]
	}
	return out
}

// Service records check-ins and their patterns.
type Service struct {
	st store.Store
}

// NewService creates a Service backed by st.
func NewService(st store.Store) *Service {
	return &Service{st: st}
}

// Record validates and stores a check-in, bumps the frequency of every
// pattern found in its trigger and thoughts, and returns the recommendations.
func (s *Service) Record(ctx context.Context, userID string, c models.CheckIn) (models.CheckInResult, error) {
	if userID == "" {
		return models.CheckInResult{}, models.ErrSessionRequired
	}
	if err := c.Validate(); err != nil {
		return models.CheckInResult{}, err
	}
	c.UserID = userID
	if _, err := s.st.AddCheckIn(ctx, c); err != nil {
		return models.CheckInResult{}, fmt.Errorf("failed to save check-in: %w", err)
	}

	patterns := Analyze(c.Trigger + " " + c.Thoughts)
	for _, p := range patterns {
		if err := s.st.UpsertPattern(ctx, userID, p); err != nil {
			return models.CheckInResult{}, fmt.Errorf("failed to save pattern: %w", err)
		}
	}
	slog.Debug("checkin.Service.Record: check-in stored", "user_id", userID, "patterns", len(patterns))

	if patterns == nil {
		patterns = []string{}
	}
	return models.CheckInResult{
		Patterns:     patterns,
		Affirmations: Affirmations(c.Emotion, patterns),
		Tools:        RecommendTools(c.Intensity),
		Message:      RecordedMessage,
	}, nil
}
