package guru

import "strings"

// LegacyPattern is a named cognitive pattern with an insight and reflective questions.
type LegacyPattern struct {
	Name      string
	Keywords  []string
	Intro     string
	Insight   string
	Questions []string
}

// Matches returns the pattern keywords found in the lower-cased text.
func (p LegacyPattern) Matches(text string) []string {
	var matched []string
	for _, kw := range p.Keywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// Label is the pattern name in prose form.
func (p LegacyPattern) Label() string {
	return strings.ReplaceAll(p.Name, "_", " ")
}

var legacyPatterns = []LegacyPattern{
	{
		Name:     "perfectionism",
		Keywords: []string{"perfect", "not good enough", "should", "must", "flawed", "mistake"},
		Intro:    "I'm noticing some perfectionist thinking patterns here. ",
		Insight:  "Perfectionism often stems from a deep fear of not being enough. But here's the truth: you are inherently worthy, regardless of your achievements or mistakes.",
		Questions: []string{
			"What would you tell a friend who was being this hard on themselves?",
			"Where did you learn that you had to be perfect to be valuable?",
			"What would it feel like to give yourself permission to be human?",
		},
	},
	{
		Name:     "people_pleasing",
		Keywords: []string{"say no", "disappointing", "others think", "approval", "let them down"},
		Intro:    "It sounds like you're carrying the weight of others' expectations. ",
		Insight:  "People-pleasing is often a survival strategy we developed to feel safe and accepted. But your needs matter just as much as anyone else's.",
		Questions: []string{
			"What are you afraid will happen if you prioritize your own needs?",
			"Whose voice is telling you that you need to please everyone?",
			"What would setting a boundary look like in this situation?",
		},
	},
	{
		Name:     "catastrophizing",
		Keywords: []string{"worst case", "disaster", "terrible", "doomed", "everything is terrible", "everything is wrong", "nothing works", "nothing matters", "always goes wrong", "never works out", "always fail", "never succeed"},
		Intro:    "I hear you spiraling into worst-case scenarios. ",
		Insight:  "Catastrophic thinking is your brain's way of trying to protect you by preparing for the worst. But it's exhausting and often inaccurate.",
		Questions: []string{
			"What's the most likely outcome, not the worst-case scenario?",
			"Have you survived situations like this before?",
			"What evidence do you have that contradicts this catastrophic thought?",
		},
	},
	{
		Name:     "self_criticism",
		Keywords: []string{"stupid", "useless", "worthless", "failure", "wrong", "idiot", "hate myself", "pathetic"},
		Intro:    "The way you're speaking to yourself right now is really harsh. ",
		Insight:  "Self-criticism might feel motivating, but research shows it actually undermines our wellbeing and progress. You deserve the same compassion you'd give others.",
		Questions: []string{
			"Would you ever speak to someone you love this way?",
			"What's beneath this self-criticism? What are you really afraid of?",
			"Can you find even one compassionate thought to offer yourself right now?",
		},
	},
	{
		Name:     "avoidance",
		Keywords: []string{"ignore", "later", "cant face", "escape", "distract", "running from", "put off", "hide"},
		Intro:    "It seems like you're trying to avoid something difficult. ",
		Insight:  "Avoidance gives temporary relief but usually makes things harder in the long run. What we resist, persists.",
		Questions: []string{
			"What are you really trying to avoid feeling?",
			"What's one tiny step you could take toward facing this?",
			"What would it feel like to stop running and just be with what is?",
		},
	},
	{
		Name:     "anxiety",
		Keywords: []string{"anxious", "worried", "panic", "scared", "fear", "nervous", "overwhelmed", "stressed"},
		Intro:    "I can sense the anxiety you're experiencing. ",
		Insight:  "Anxiety is your nervous system trying to protect you. It's not your enemy-it's just working overtime. Let's help it calm down.",
		Questions: []string{
			"Where do you feel this anxiety in your body?",
			"What do you need to feel safe right now?",
			"Can you take three slow breaths with me before we continue?",
		},
	},
	{
		Name:     "sleep_difficulty",
		Keywords: []string{"cant sleep", "can't sleep", "insomnia", "staying awake", "trouble sleeping", "hard to sleep", "sleep problems", "cant fall asleep", "wide awake", "racing mind at night", "tossing and turning"},
		Intro:    "Sleep struggles are so hard. When your mind won't quiet, it's exhausting. ",
		Insight:  "Sleep difficulties are often your nervous system stuck in 'on' mode. Your body needs safety signals to let go into rest.",
		Questions: []string{
			"What's your mind doing when you're trying to sleep? Racing? Worrying? Replaying things?",
			"What does your body feel like? Restless? Tense? Wired?",
			"What time are you usually trying to sleep, and how long have you been struggling with this?",
		},
	},
	{
		Name:     "being_bullied",
		Keywords: []string{"bullying me", "bullied", "horrible to me", "picked on", "picking on me", "nasty things", "feel targeted", "made me feel small", "scared of how they treat", "mistreated", "won't leave me alone", "keep saying mean", "someone was mean", "they said something cruel", "won't stop messaging"},
		Intro:    "I'm really sorry you were treated that way. No one deserves to feel unsafe or belittled. ",
		Insight:  "That must have been painful. Your feelings make complete sense. What you feel is completely valid. You don't have to hold this alone-I'm right here with you.",
		Questions: []string{
			"What part of this is sitting heaviest on your heart?",
			"Where did you feel it most-in your body, or in your mind?",
			"If this situation feels threatening or ongoing, reaching out to someone you trust or a professional can offer the support you deserve. Your safety matters.",
		},
	},
	{
		Name:     "causing_harm",
		Keywords: []string{"i hurt someone", "i was mean", "said something awful", "feel guilty for how i acted", "shouldn't have spoken", "i lost control", "i regret what i did", "feel awful for how i acted", "i hurt them", "i was horrible", "said something i shouldn't"},
		Intro:    "Thank you for trusting me with this. Looking honestly at our actions is a strong, courageous step. ",
		Insight:  "It sounds like you were dysregulated in that moment, and everything became too much. That doesn't make you a bad person-it shows you were in pain. Guilt often signals that your heart cares deeply.",
		Questions: []string{
			"What happened in that moment?",
			"What was going on inside you before you reacted? What part of you felt unheard or overwhelmed?",
			"If you imagine the moment again, what would a calmer version of you do differently? You always get to choose differently going forward.",
		},
	},
	{
		Name:     "emotional_dysregulation",
		Keywords: []string{"i exploded", "i snapped", "i lost it", "out of control", "couldn't stop myself", "reacted badly", "didn't feel heard", "i was overwhelmed", "lost my temper", "couldn't regulate", "wasn't thinking clearly"},
		Intro:    "That sounds overwhelming. Moments like that often come from deep stress or feeling unheard. ",
		Insight:  "You're not alone-many people react this way when their system is overloaded. Feeling unheard can bring up strong reactions. It makes sense that everything felt intense.",
		Questions: []string{
			"What do you think your body was trying to communicate in that moment?",
			"Was there a boundary, fear, or need underneath the reaction?",
			"You're allowed to grow from this-awareness is the beginning of change. What was your heart needing in that moment?",
		},
	},
}
