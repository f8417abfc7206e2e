package guru

import (
	"fmt"
	"strings"
)

// CopingTool is one entry of the coping-tool catalog.
type CopingTool struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	When         string   `json:"when"`
	MinIntensity int      `json:"-"`
	MaxIntensity int      `json:"-"`
	States       []string `json:"-"`
}

// Fits reports whether score lies within the tool's intensity range.
func (t CopingTool) Fits(score int) bool {
	return t.MinIntensity <= score && score <= t.MaxIntensity
}

// AppliesTo reports whether the tool is tagged for the named state.
func (t CopingTool) AppliesTo(state string) bool {
	for _, s := range t.States {
		if s == state {
			return true
		}
	}
	return false
}

const (
	maxToolsOffered = 2
	defaultToolName = "Box Breathing"
)

// toolBands map score ceilings to the default tool names used when the
// catalog filter comes up empty.
var toolBands = []struct {
	ceiling int
	names   []string
}{
	{3, []string{"Name the Need", "One Tiny Step", "Thought Defusion (Clouds Passing)"}},
	{6, []string{"Box Breathing", "5-4-3-2-1 Grounding", "Physiological Sigh"}},
	{8, []string{"Hand-on-Heart Regulation", "Butterfly Hug", "Co-Regulation Imagery"}},
	{maxIntensity, []string{"Physiological Sigh", "Hand-on-Heart Regulation", "Butterfly Hug"}},
}

var toolCatalog = []CopingTool{
	{
		Name:         "5-4-3-2-1 Grounding",
		Description:  "Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste. This brings you back to the present moment.",
		When:         "anxiety, panic, dissociation",
		MinIntensity: 4,
		MaxIntensity: 6,
		States:       []string{"overwhelmed_anxious", "overthinking"},
	},
	{
		Name:         "Box Breathing",
		Description:  "Breathe in for 4, hold for 4, out for 4, hold for 4. Repeat 4 times. This activates your parasympathetic nervous system.",
		When:         "stress, anxiety, anger",
		MinIntensity: 4,
		MaxIntensity: 9,
		States:       []string{"overwhelmed_anxious", "overthinking"},
	},
	{
		Name:         "Butterfly Hug",
		Description:  "Cross your arms over your chest and gently tap alternating sides. This bilateral stimulation is calming for trauma responses.",
		When:         "trauma activation, intense emotion",
		MinIntensity: 7,
		MaxIntensity: 10,
		States:       []string{"high_functioning_distress", "self_blame_shame"},
	},
	{
		Name:         "Cold Water Reset",
		Description:  "Splash cold water on your face or hold ice cubes. This activates the dive reflex and quickly calms your nervous system.",
		When:         "panic, intense distress",
		MinIntensity: 6,
		MaxIntensity: 9,
		States:       []string{"overwhelmed_anxious"},
	},
	{
		Name:         "Loving-Kindness Meditation",
		Description:  "Say to yourself: \"May I be safe. May I be peaceful. May I be kind to myself. May I accept myself as I am.\"",
		When:         "self-criticism, shame, loneliness",
		MinIntensity: 4,
		MaxIntensity: 8,
		States:       []string{"self_blame_shame", "seeking_validation"},
	},
	{
		Name:         "Body Scan",
		Description:  "Slowly notice sensations from head to toe without judgment. Just observe and breathe.",
		When:         "disconnection from body, numbness",
		MinIntensity: 3,
		MaxIntensity: 6,
		States:       []string{"numb_disconnected", "avoidant_withdrawing"},
	},
	{
		Name:         "Name the Need",
		Description:  "A soft invitation to recognise what your heart is asking for.\n\nDo you need:\n• Rest?\n• Understanding?\n• Comfort?\n• Choice?\n• Connection?\n\nNo pressure-just notice what resonates.",
		When:         "confusion, mild stress, feeling lost",
		MinIntensity: 0,
		MaxIntensity: 4,
		States:       []string{"numb_disconnected", "avoidant_withdrawing", "people_pleasing_overgiving"},
	},
	{
		Name:         "Physiological Sigh",
		Description:  "A proven nervous-system reset from somatic therapy.\n\n**Try this now:**\n1️⃣ Two quick inhales through your nose\n2️⃣ One long exhale through your mouth\n\nRepeat 2-3 times. This is powerful for panic, overwhelm, and tight chest sensations.",
		When:         "panic, overwhelm, tight chest",
		MinIntensity: 5,
		MaxIntensity: 10,
		States:       []string{"overwhelmed_anxious", "high_functioning_distress", "overthinking"},
	},
	{
		Name:         "Hand-on-Heart Regulation",
		Description:  "A tool for self-soothing when you feel lost, ashamed, or alone.\n\n**Right now:**\nPlace your hand on your chest. Feel the warmth. Breathe with it. Let your body remember safety.\n\nStay there for 5 breaths.",
		When:         "shame, self-blame, loneliness, collapse",
		MinIntensity: 5,
		MaxIntensity: 9,
		States:       []string{"self_blame_shame", "numb_disconnected", "seeking_validation"},
	},
	{
		Name:         "Thought Defusion (Clouds Passing)",
		Description:  "For when thoughts spiral and loop.\n\n**Imagine this:**\nEach thought is a cloud drifting across the sky. You're not the cloud - you're the sky watching it pass.\n\nNo fighting the thought. Just watching it drift by.",
		When:         "overthinking, mental spirals, racing thoughts",
		MinIntensity: 3,
		MaxIntensity: 7,
		States:       []string{"overthinking", "overwhelmed_anxious", "change_resistance"},
	},
	{
		Name:         "One Tiny Step",
		Description:  "For when you feel stuck, scared, or frozen.\n\n**Choose one small action that feels doable:**\n• One breath\n• One sentence\n• One minute pause\n• One small decision\n\nMovement without pressure. What's your one tiny step right now?",
		When:         "stuck, overwhelmed, paralyzed",
		MinIntensity: 0,
		MaxIntensity: 6,
		States:       []string{"avoidant_withdrawing", "overwhelmed_anxious", "change_resistance"},
	},
	{
		Name:         "Emotional Naming",
		Description:  "Name it to tame it-softly, not clinically.\n\nYou might be feeling:\n• Overwhelmed\n• Scared\n• Exhausted\n• Angry\n• Lost\n• Something close to these\n\nI'm here with you. What feels closest?",
		When:         "confusion, emotional fog, numbness",
		MinIntensity: 2,
		MaxIntensity: 6,
		States:       []string{"numb_disconnected", "overwhelmed_anxious"},
	},
	{
		Name:         "Co-Regulation Imagery",
		Description:  "For loneliness, hopelessness, or emotional collapse.\n\n**Close your eyes for a moment:**\nImagine someone steady sitting beside you. Not fixing anything. Not talking. Just being there. Breathing with you.\n\nFeel that presence. You're not alone.",
		When:         "loneliness, hopelessness, collapse",
		MinIntensity: 6,
		MaxIntensity: 9,
		States:       []string{"numb_disconnected", "seeking_validation", "self_blame_shame"},
	},
	{
		Name:         "Protective Boundaries Check-In",
		Description:  "For overwhelm, irritation, or people-pleasing.\n\n**A gentle question:**\nWhat part of you is asking for space right now?\n\nYou don't have to justify it. Just notice it.",
		When:         "overwhelm, irritation, people-pleasing",
		MinIntensity: 3,
		MaxIntensity: 7,
		States:       []string{"people_pleasing_overgiving", "irritated_on_edge", "overwhelmed_anxious"},
	},
	{
		Name:         "Tension Release Scan",
		Description:  "A micro-somatic reset. Just three key spots:\n\n**Right now:**\n• Jaw - relax it by 10%\n• Shoulders - drop them by 10%\n• Belly - soften it by 10%\n\nThat's it. Notice the shift.",
		When:         "tension, irritation, physical stress",
		MinIntensity: 4,
		MaxIntensity: 7,
		States:       []string{"irritated_on_edge", "overwhelmed_anxious", "high_functioning_distress"},
	},
	{
		Name:         "Safe Support Reflection",
		Description:  "A gentle bridge toward real-world help.\n\n**Reflect on this:**\n• Who in your life helps you feel steadier?\n• Is there a professional or place you trust?\n• What would reaching out look like?\n\nNo pressure. Just planting a seed.",
		When:         "high distress, needing additional support",
		MinIntensity: 7,
		MaxIntensity: 9,
		States:       []string{"high_functioning_distress", "numb_disconnected"},
	},
	{
		Name:         "Sleep Preparation (Nervous System Reset)",
		Description:  "When your mind won't quiet for sleep.\n\n**30 minutes before bed:**\n1. **Body temperature drop** - Warm shower/bath, then cool room (65-68°F)\n2. **4-7-8 Breathing** - In for 4, hold for 7, out for 8 (repeat 4 times)\n3. **Progressive muscle relaxation** - Tense each muscle group for 5 seconds, then release\n\n**In bed:**\n• Keep eyes open in the dark (reverse psychology)\n• If awake after 20 min, leave room until drowsy\n• No clock watching\n\nYour body knows how to sleep. You're just helping it remember safety.",
		When:         "sleep difficulty, racing mind, insomnia",
		MinIntensity: 3,
		MaxIntensity: 8,
		States:       []string{"overthinking", "overwhelmed_anxious", "high_functioning_distress"},
	},
	{
		Name:         "Worry Time Container (For Sleep)",
		Description:  "Stop middle-of-the-night worry spirals.\n\n**Setup:**\nBefore bed, write down your worries. All of them. Then say: \"I'll think about this tomorrow at [specific time].\"\n\n**If worries come at night:**\n\"Not now. Tomorrow at [time].\" Redirect to breath.\n\nYour brain needs permission to let go. This gives it a plan.",
		When:         "bedtime anxiety, racing thoughts at night",
		MinIntensity: 4,
		MaxIntensity: 7,
		States:       []string{"overthinking", "overwhelmed_anxious", "high_functioning_distress"},
	},
	{
		Name:         "Repair Exercise (Choosing Differently)",
		Description:  "For when you're carrying guilt about how you acted.\n\n**Close your eyes and reimagine:**\n1. Picture the moment again\n2. See yourself responding with steadiness and care\n3. Notice how it feels to choose differently\n\n**Then ask yourself:**\nWhat would you say now if you could? What needs healing?\n\nYou always get to choose differently going forward.",
		When:         "guilt, regret, shame about behavior",
		MinIntensity: 4,
		MaxIntensity: 8,
		States:       []string{"self_blame_shame", "causing_harm", "emotional_dysregulation"},
	},
	{
		Name:         "Self-Forgiveness Prompt",
		Description:  "A gentle path toward releasing shame.\n\n**Say to yourself (out loud if you can):**\n\"I was dysregulated. I was overwhelmed. I didn't have the tools in that moment that I have now.\n\nI forgive myself for not knowing what I hadn't yet learned.\n\nI choose to do better going forward.\"\n\n**Then place a hand on your chest and breathe.**",
		When:         "shame, regret, self-criticism",
		MinIntensity: 5,
		MaxIntensity: 9,
		States:       []string{"self_blame_shame", "causing_harm"},
	},
	{
		Name:         "Safety Validation & Support Check",
		Description:  "For when you're being mistreated or feel unsafe.\n\n**Remember:**\n• What happened to you was not okay\n• Your feelings make complete sense\n• You deserve to feel safe and respected\n• This is not your fault\n\n**Reflection:**\nIs this situation ongoing? Do you have someone you trust who can support you?\n\nIf you ever feel at risk, reaching out to a counselor, trusted adult, or support service is really important.\n\n**Crisis Support:**\n🇺🇸 **US** - Crisis Text Line: Text HOME to 741741 | Call: 988\n🇬🇧 **UK** - Samaritans: 116 123 | Text: 85258\n🇦🇺 **Australia** - Lifeline: 13 11 14\n🇨🇦 **Canada** - Crisis Services: 1-833-456-4566\n🇮🇪 **Ireland** - Samaritans: 116 123\n🌍 **Worldwide** - findahelpline.com for your country",
		When:         "bullying, mistreatment, feeling unsafe",
		MinIntensity: 5,
		MaxIntensity: 10,
		States:       []string{"being_bullied", "overwhelmed_anxious", "self_blame_shame"},
	},
}

// Tools returns a copy of the coping-tool catalog in declaration order.
func Tools() []CopingTool {
	return copyTools(toolCatalog)
}

// FindTool looks a catalog entry up by exact name.
func FindTool(name string) (CopingTool, bool) {
	for _, t := range toolCatalog {
		if t.Name == name {
			return copyTool(t), true
		}
	}
	return CopingTool{}, false
}

// ToolsForEmotion returns the catalog entries whose usage note mentions
// emotion, or the first two entries when none do.
func ToolsForEmotion(emotion string) []CopingTool {
	emotion = strings.ToLower(strings.TrimSpace(emotion))
	var matched []CopingTool
	if emotion != "" {
		for _, t := range toolCatalog {
			if strings.Contains(strings.ToLower(t.When), emotion) {
				matched = append(matched, copyTool(t))
			}
		}
	}
	if len(matched) == 0 {
		return copyTools(toolCatalog[:maxToolsOffered])
	}
	return matched
}

// SelectTools picks up to two tools for score, preferring ones tagged for
// state. The result is never empty.
func SelectTools(p Picker, score int, state string) []CopingTool {
	var candidates []CopingTool
	if state != "" {
		for _, t := range toolCatalog {
			if t.Fits(score) && t.AppliesTo(state) {
				candidates = append(candidates, t)
			}
		}
	}
	if len(candidates) == 0 {
		for _, t := range toolCatalog {
			if t.Fits(score) {
				candidates = append(candidates, t)
			}
		}
	}
	if len(candidates) == 0 {
		candidates = bandDefaults(score)
	}
	if len(candidates) == 0 {
		t, _ := FindTool(defaultToolName)
		return []CopingTool{t}
	}
	return sampleTools(p, candidates, maxToolsOffered)
}

func bandDefaults(score int) []CopingTool {
	for _, band := range toolBands {
		if score > band.ceiling {
			continue
		}
		var tools []CopingTool
		for _, name := range band.names {
			if t, ok := FindTool(name); ok {
				tools = append(tools, t)
			}
		}
		return tools
	}
	return nil
}

// sampleTools draws k distinct tools without replacement.
func sampleTools(p Picker, pool []CopingTool, k int) []CopingTool {
	remaining := append([]CopingTool(nil), pool...)
	k = min(k, len(remaining))
	picked := make([]CopingTool, 0, k)
	for range k {
		i := pickIndex(p, len(remaining))
		picked = append(picked, copyTool(remaining[i]))
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	return picked
}

// FormatToolOffer renders tools as a numbered offer whose framing depends on
// the intensity band.
func FormatToolOffer(tools []CopingTool, score int) string {
	var b strings.Builder
	switch {
	case score >= crisisThreshold:
		b.WriteString("Let me offer something that might help ground you right now:\n\n")
	case score >= 4:
		b.WriteString("Here are some tools that might help:\n\n")
	default:
		b.WriteString("You might find one of these helpful:\n\n")
	}
	for i, t := range tools {
		fmt.Fprintf(&b, "**%d. %s**\n%s\n\n", i+1, t.Name, t.Description)
	}
	if score >= crisisThreshold {
		b.WriteString("Would you like me to guide you through one of these?")
	} else {
		b.WriteString("Let me know if you'd like to try one, or if you want to talk more first.")
	}
	return b.String()
}

func copyTool(t CopingTool) CopingTool {
	t.States = append([]string(nil), t.States...)
	return t
}

func copyTools(tools []CopingTool) []CopingTool {
	out := make([]CopingTool, len(tools))
	for i, t := range tools {
		out[i] = copyTool(t)
	}
	return out
}
