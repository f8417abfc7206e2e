package guru

import "strings"

// EmotionalState is a named cluster of phrases with a response set written for it.
type EmotionalState struct {
	Name         string
	Keywords     []string
	PhysicalCues []string
	Responses    []string
}

// Matches reports the keywords and physical cues of the state found in text,
// which must already be lower-cased.
func (s EmotionalState) Matches(text string) []string {
	var matched []string
	for _, kw := range s.Keywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	for _, cue := range s.PhysicalCues {
		if strings.Contains(text, cue) {
			matched = append(matched, cue)
		}
	}
	return matched
}

// emotionalStates is scanned in order; the first state with a match wins.
var emotionalStates = []EmotionalState{
	{
		Name:     "overwhelmed_anxious",
		Keywords: []string{"cant", "too much", "overwhelmed", "racing", "shaky", "cant breathe", "everything at once", "drowning"},
		PhysicalCues: []string{"heart racing", "chest tight", "shaking", "trembling", "cant catch my breath"},
		Responses: []string{
			"I can sense your nervous system is running fast right now. Let's slow down together. Can you take one slow breath with me? Breathe in for 4... and out for 6. Just this moment.",
			"Everything feels like too much right now. That's okay. We're going to take this one small piece at a time. Right now, can you place your hand on your heart and feel it beating? You're here. You're safe.",
			"Your body is trying to keep up with a lot. Let's anchor you. Name one thing you can see right now. Then one thing you can touch. Just that. Nothing more.",
			"I hear the overwhelm. Your nervous system needs grounding. Press your feet into the floor. Feel the solid ground beneath you. You don't have to do everything right now - just this breath.",
		},
	},
	{
		Name:     "numb_disconnected",
		Keywords: []string{"numb", "disconnected", "dont feel anything", "empty", "blank", "nothing", "cant feel", "hollow"},
		Responses: []string{
			"Sometimes our system shuts down to protect us from feeling too much. That numbness makes sense. You don't have to force feeling. Can you just notice - are you warm or cold right now? That's enough.",
			"I hear that disconnection. Your body chose this to keep you safe. We can stay here together without pressure. What's one tiny sensation you notice - maybe the chair beneath you, or your breath moving?",
			"Numbness is your nervous system saying 'I need a break.' That's valid. No pressure to feel more. Can you just notice if your jaw is clenched? Or if your shoulders are tense? Just observe, no need to change anything.",
			"That flatness is real. You're not broken - you're protecting yourself. Let's just be present without pushing. Can you wiggle your toes? Sometimes the smallest movement can be a gentle way back.",
		},
	},
	{
		Name:     "self_blame_shame",
		Keywords: []string{"my fault", "sorry", "i should have", "im a burden", "bothering you", "worthless", "failure", "always mess up", "terrible person"},
		Responses: []string{
			"I'm noticing a lot of harsh words toward yourself. What would happen if we paused that for just a moment? You're not a burden. Your pain matters. You matter.",
			"That self-blame is so heavy. Can I reflect something back to you? You're human. Humans make mistakes, have limits, and need support. That doesn't make you less worthy - it makes you real.",
			"I hear you apologizing for existing. Please know: you don't need to earn the right to be heard or helped. You're worthy of care simply because you're here.",
			"Those words you're using about yourself are so harsh. Would you ever speak to someone you care about this way? What if we tried offering yourself the same gentleness you'd give a friend?",
		},
	},
	{
		Name:     "irritated_on_edge",
		Keywords: []string{"irritated", "annoyed", "so done", "everything annoys me", "on edge", "angry at everything", "frustrated", "cant stand"},
		Responses: []string{
			"I can feel that restless energy. Something underneath is asking for your attention. Can you take a breath and ask yourself: what do I actually need right now that I'm not getting?",
			"That irritation is a signal. Usually it's protecting something - maybe a boundary that needs honoring, or a need that's been ignored. What's underneath the 'done' feeling?",
			"Everything feels grating right now. That makes sense when we're stretched too thin or our boundaries are being pushed. Can you soften your jaw? Let your shoulders drop? What's one thing that would give you relief right now?",
			"Irritation often means we're carrying something we shouldn't have to carry. What would it feel like to put something down, even just for a moment?",
		},
	},
	{
		Name:     "avoidant_withdrawing",
		Keywords: []string{"dont want to talk", "leave me alone", "not now", "withdrawing", "pulling away", "hiding", "cant face", "too tired to share"},
		Responses: []string{
			"I respect that you need space. You don't have to explain or share more than you're ready for. I'm here whenever you need, no pressure. Even this small connection counts.",
			"Withdrawing makes sense when things feel like too much. There's no rush. If you need to just sit quietly for now, that's okay. I'll be here when you're ready.",
			"I hear the exhaustion and the need to pull back. That's self-protection, and it's valid. You don't owe anyone your vulnerability. What would support feel like right now - presence, or true space?",
			"Sometimes we need to retreat to restore. That's wisdom, not weakness. If you want to just breathe together in silence, that's enough. Or if you want to step away, that's okay too.",
		},
	},
	{
		Name:     "overthinking",
		Keywords: []string{"what if", "keep thinking", "cant stop", "spiral", "analysing", "going in circles", "need to figure out", "need certainty"},
		Responses: []string{
			"I can see your mind working hard to find certainty. But sometimes the more we think, the further we get from clarity. Can we pause the analysis for a moment and just feel your breath?",
			"Those 'what if' loops are your brain trying to protect you by preparing for everything. But it's exhausting you. Let's ground back in what IS true right now. What's one thing you know for certain in this moment?",
			"Your mind is tangled in possibilities. That makes sense - we think if we figure it all out, we'll feel safe. But maybe what you need isn't more answers, but less noise. Can you place your hand on your belly and just breathe?",
			"I hear the spiral. Your intuition already knows something your mind is trying to logic its way to. What would happen if you listened to your gut instead of your thoughts for just a moment?",
		},
	},
	{
		Name:     "seeking_validation",
		Keywords: []string{"is this okay", "is that right", "what do you think", "should i", "am i doing this right", "tell me if", "need to know if"},
		Responses: []string{
			"I notice you're checking with me. But I'm curious - what does YOUR inner voice say? What feels true to you?",
			"You're looking outside for permission. But you already have the answer inside. What would you do if you trusted yourself completely?",
			"That question is really asking 'am I okay?' And the answer is yes. You don't need external validation to make your feelings or choices real. What do YOU think?",
			"I hear you seeking reassurance. But your opinion of yourself matters more than anyone else's. When you quiet everyone else's voices, what does yours say?",
		},
	},
	{
		Name:     "people_pleasing_overgiving",
		Keywords: []string{"dont want to upset", "everyone else", "their needs", "cant say no", "disappointing", "letting them down", "always helping", "exhausted from"},
		Responses: []string{
			"I'm noticing a pattern of putting everyone else first. What about YOUR needs? What about what YOU want? When was the last time you honored what you needed?",
			"That exhaustion makes sense - you're pouring from an empty cup. People-pleasing is a survival pattern, not a character flaw. But you deserve to be on your own list of people who matter.",
			"Your needs are just as important as everyone else's. Not more, not less - equal. What would it feel like to say 'no' and trust that people who truly care will understand?",
			"I hear the fear of disappointing others. But what about disappointing yourself? What if the relationship with yourself is the most important one to honor? What do you need today?",
		},
	},
	{
		Name:     "high_functioning_distress",
		Keywords: []string{"im fine", "keeping it together", "managing", "functioning", "doing everything right", "maintaining", "holding it together", "appear normal"},
		Responses: []string{
			"You say you're fine, but I'm sensing something underneath. It's exhausting to hold everything together all the time. What would it feel like to let the armor down, even for a moment?",
			"You're doing so much, accomplishing so much - but how are you FEELING? Sometimes we perform strength when what we really need is permission to fall apart a little.",
			"I see you keeping it all together. That takes so much energy. What if you didn't have to be strong right now? What if it was safe to let someone see the strain?",
			"High-functioning doesn't mean not struggling. It often means struggling in silence. You don't have to earn care through achievement. You can be seen in your exhaustion too.",
		},
	},
	{
		Name:     "change_resistance",
		Keywords: []string{"not ready", "scared to change", "what if i fail", "procrastinating", "cant take the step", "want to but", "afraid to move forward"},
		Responses: []string{
			"Fear of change is so normal. Growth doesn't require urgency or big leaps. What's one tiny step that feels manageable? Just one small thing.",
			"That 'not ready' feeling makes sense. Change means losing something familiar, even if that familiar thing doesn't serve you. What are you afraid of losing if you move forward?",
			"You don't have to be ready. You don't have to be fearless. You just have to take one small step while scared. What would that look like?",
			"Resistance isn't weakness - it's your system trying to keep you safe. But sometimes safety means staying stuck. What would it feel like to honor the fear AND take a small step anyway?",
		},
	},
}
