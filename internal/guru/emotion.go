package guru

import "strings"

// affirmations are keyed by the negative emotions DetectEmotion can return.
var affirmations = map[string][]string{
	"anxiety": {
		"I am safe in this moment.",
		"I trust myself to handle whatever comes.",
		"My anxiety is uncomfortable, but it won't harm me.",
		"I choose to focus on what I can control.",
		"I am learning to calm my nervous system.",
	},
	"sadness": {
		"It's okay to feel sad. My emotions are valid.",
		"This feeling will pass. I have survived difficult feelings before.",
		"I deserve comfort and gentleness right now.",
		"My sadness doesn't define me-it's just a visitor.",
		"I am allowed to rest and heal.",
	},
	"anger": {
		"My anger is telling me something important.",
		"I can feel angry and still choose how I respond.",
		"My boundaries matter and deserve to be respected.",
		"I release the need to control what I cannot change.",
		"I am learning healthier ways to express my needs.",
	},
	"shame": {
		"I am not my mistakes. I am learning and growing.",
		"Shame thrives in secrecy. I choose to bring it into the light.",
		"I am worthy of love and belonging, just as I am.",
		"Everyone struggles. I am not alone in my imperfection.",
		"I forgive myself for not knowing what I hadn't yet learned.",
	},
	"overwhelm": {
		"I can only do what I can do, and that's enough.",
		"I give myself permission to take this one moment at a time.",
		"Not everything needs to be done right now.",
		"I am doing the best I can with what I have.",
		"It's okay to ask for help.",
	},
}

// emotionLexicon is scanned in order; the first emotion with a keyword hit is reported.
var emotionLexicon = []struct {
	Emotion  string
	Keywords []string
}{
	{"anxiety", []string{"anxious", "worried", "panic", "scared", "fear", "nervous", "overwhelmed"}},
	{"sadness", []string{"sad", "depressed", "hopeless", "empty", "lonely", "hurt", "grief"}},
	{"anger", []string{"angry", "furious", "frustrated", "irritated", "rage", "mad"}},
	{"shame", []string{"ashamed", "embarrassed", "guilty", "worthless", "pathetic"}},
	{"overwhelm", []string{"overwhelmed", "too much", "cant cope", "drowning", "exhausted"}},
	{"joy", []string{"happy", "joyful", "excited", "thrilled", "delighted", "elated"}},
	{"peace", []string{"peaceful", "calm", "serene", "tranquil", "settled", "centered"}},
	{"gratitude", []string{"grateful", "thankful", "blessed", "appreciate", "fortunate"}},
	{"pride", []string{"proud", "accomplished", "achieved", "succeeded"}},
	{"relief", []string{"relieved", "lighter", "lifted", "unburdened", "can breathe"}},
	{"hope", []string{"hopeful", "optimistic", "looking forward", "better", "improving"}},
}

// DetectEmotion returns the first coarse emotion label whose keywords appear
// in message, or "" when none do.
func DetectEmotion(message string) string {
	return detectEmotion(normalize(message))
}

func detectEmotion(lower string) string {
	for _, entry := range emotionLexicon {
		if containsAny(lower, entry.Keywords) {
			return entry.Emotion
		}
	}
	return ""
}

// GenericAffirmation is offered when an emotion has no affirmations of its own.
const GenericAffirmation = "You are doing the best you can, and that is enough."

// PickAffirmation returns one affirmation for emotion, or GenericAffirmation.
func PickAffirmation(p Picker, emotion string) string {
	if p == nil {
		p = RandomPicker{}
	}
	list := affirmations[strings.ToLower(strings.TrimSpace(emotion))]
	if len(list) == 0 {
		return GenericAffirmation
	}
	return pickOne(p, list)
}

// Affirmations returns a copy of the affirmation list for emotion.
func Affirmations(emotion string) []string {
	return append([]string(nil), affirmations[emotion]...)
}

// AffirmationEmotions lists the emotions that carry affirmations.
func AffirmationEmotions() []string {
	return []string{"anxiety", "sadness", "anger", "shame", "overwhelm"}
}
