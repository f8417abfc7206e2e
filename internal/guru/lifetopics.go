package guru

import "regexp"

// Tone is the sentiment of a life-topic message.
type Tone string

const (
	ToneCelebratory Tone = "celebratory"
	ToneStressed    Tone = "stressed"
	ToneNeutral     Tone = "neutral"
)

// lifeTopicToolThreshold is the minimum score at which a stressed life-topic
// message is offered tools.
const lifeTopicToolThreshold = 4

// LifeTopic is an everyday-life category with tone-specific templates.
type LifeTopic struct {
	Name        string
	Keywords    []string
	Celebration []string
	Stress      []string
	Templates   map[Tone][]string
}

// Category is the response tag used for the topic.
func (t LifeTopic) Category() string {
	return "life_topic_" + t.Name
}

// ToneOf classifies text already known to be about the topic. Celebration
// wins over stress when both are present.
func (t LifeTopic) ToneOf(lower string) Tone {
	switch {
	case containsAnyPhrase(lower, t.Celebration):
		return ToneCelebratory
	case containsAnyPhrase(lower, t.Stress):
		return ToneStressed
	default:
		return ToneNeutral
	}
}

// greetingFriend matches "friend" used as a form of address rather than a
// person being talked about.
var greetingFriend = regexp.MustCompile(`\b(?:hey|hi|hello|hiya|heya|yo|thanks|thank you|cheers|morning|evening|night|bye)(?: there)?,? (?:my )?(?:dear )?friend\b`)

// DetectLifeTopic returns the first life topic mentioned in message.
func DetectLifeTopic(message string) (LifeTopic, bool) {
	return detectLifeTopic(normalize(message))
}

func detectLifeTopic(lower string) (LifeTopic, bool) {
	for _, topic := range lifeTopics {
		matched := matchedPhrases(lower, topic.Keywords)
		if len(matched) == 0 {
			continue
		}
		if topic.Name == "relationships" && onlyGreetingFriend(lower, matched) {
			continue
		}
		return topic, true
	}
	return LifeTopic{}, false
}

// onlyGreetingFriend reports whether the sole relationship keyword is a
// greeting such as "hey friend".
func onlyGreetingFriend(lower string, matched []string) bool {
	for _, kw := range matched {
		if kw != "friend" {
			return false
		}
	}
	stripped := greetingFriend.ReplaceAllString(lower, "")
	return !containsPhrase(stripped, "friend")
}

// topicConsent is appended to stressed replies that carry tools. The tool
// name lets a short "yes" replay that exercise.
const topicConsent = "If it would help, I can walk you through **%s** right now. Would you like that?"

var lifeTopics = []LifeTopic{
	{
		Name: "work",
		Keywords: []string{
			"at work", "my work", "from work", "to work", "for work", "after work", "before work",
			"work today", "work was", "work is", "workplace", "job", "boss", "manager", "colleague",
			"colleagues", "coworker", "coworkers", "co-worker", "office", "workload", "deadline",
			"deadlines", "meeting", "meetings", "my shift", "night shift", "shifts", "overtime",
			"career", "promotion", "promoted", "client", "clients", "team lead",
		},
		Celebration: []string{
			"praised", "promoted", "promotion", "pay rise", "raise", "bonus", "recognised",
			"recognized", "nailed it", "smashed it", "went well", "great day", "good day",
			"new job", "got the job", "hired", "proud", "thanked", "appreciated", "celebrate",
			"celebrating", "won", "success", "successful",
		},
		Stress: []string{
			"mean", "stressed", "stress", "stressful", "too much", "overwhelmed", "workload",
			"deadline", "deadlines", "pressure", "fired", "laid off", "redundant", "exhausted",
			"burnt out", "burned out", "burnout", "behind", "yelled", "shouted", "criticised",
			"criticized", "undervalued", "unappreciated", "overworked", "hate my job",
			"don't want to go", "dont want to go", "toxic", "conflict", "tense", "nervous",
			"worried", "anxious", "unfair", "instability", "micromanaged", "dread",
		},
		Templates: map[Tone][]string{
			ToneCelebratory: {
				"That's something to celebrate. Being recognised at work can feel really nourishing.\n\nHow did it feel in your body when it happened?",
				"I love hearing this. Your effort is being seen, and that matters.\n\nWhat part of it are you most proud of?",
				"That's wonderful. Moments like this deserve to be savoured, not rushed past.\n\nHow do you want to honour this win today?",
			},
			ToneStressed: {
				"Work can take so much out of us, especially when people around us aren't kind or the load keeps piling up. That sounds genuinely draining.\n\nWhat part of today is sitting heaviest with you?",
				"It makes sense that you feel stretched. Carrying that kind of pressure at work wears on the nervous system.\n\nWhat would help you feel even a little more supported right now?",
				"That sounds like a hard day at work. You don't have to hold all of it at once.\n\nWhich piece feels most urgent, and which one could wait until tomorrow?",
				"I'm sorry work has felt like this. When the pressure stacks up, even small tasks can feel enormous.\n\nWhat's one thing you could set down or ask for help with?",
			},
			ToneNeutral: {
				"Work takes up so much of our days. How are you feeling about how things are going there?",
				"Thank you for telling me about work. What's been on your mind about it lately?",
				"I'd love to hear more. What's work been like for you recently?",
			},
		},
	},
	{
		Name: "relationships",
		Keywords: []string{
			"friend", "friends", "best friend", "bestie", "partner", "boyfriend", "girlfriend",
			"husband", "wife", "mum", "mom", "mother", "dad", "father", "parent", "parents",
			"sister", "brother", "sibling", "siblings", "family", "relationship", "marriage",
			"son", "daughter", "kids", "children", "grandma", "grandpa", "nan", "auntie", "uncle",
			"cousin", "fiance", "fiancé", "ex",
		},
		Celebration: []string{
			"lovely", "love", "loved", "wonderful", "beautiful", "great time", "good time", "fun",
			"laughed", "celebrated", "supported me", "kindness", "reconnected", "made up",
			"proud", "excited", "engaged", "anniversary", "birthday", "grateful", "special",
		},
		Stress: []string{
			"upset", "argument", "argued", "arguing", "fight", "fought", "hurt", "hurtful", "ignored",
			"left out", "without me", "misunderstood", "don't feel understood", "dont feel understood",
			"broke up", "breakup", "break up", "cheated", "lonely", "jealous", "betrayed",
			"disagreement", "distant", "drifting", "dismissed", "unheard", "ghosted", "divorce",
			"divorcing", "boundaries", "neglected", "mean", "angry", "annoyed", "tension", "tense",
		},
		Templates: map[Tone][]string{
			ToneCelebratory: {
				"That sounds like a really lovely moment. Connection like that can fill us right up.\n\nWhat made it feel so special?",
				"I'm so glad you had that time together. Moments of closeness are worth holding onto.\n\nWhat do you want to remember about it?",
				"That's beautiful. It sounds like this person brings something warm into your life.\n\nHow are you feeling after spending that time with them?",
			},
			ToneStressed: {
				"It really hurts when things feel off with someone we care about. Your feelings make sense.\n\nWhat happened that's staying with you most?",
				"Relationships can stir up so much, especially when we feel unheard or left out. That's a lot to hold.\n\nWhat do you wish they understood?",
				"I'm sorry things feel tense right now. Conflict with people close to us can shake our whole sense of safety.\n\nWhat do you need most in this moment?",
				"That sounds painful. Being hurt by someone close to you lands differently than anything else.\n\nWould it help to talk through what happened, or would you rather focus on how you're feeling?",
			},
			ToneNeutral: {
				"The people in our lives shape so much of how we feel. How are things between you?",
				"Thank you for sharing that. How are you feeling about this relationship right now?",
				"I'd like to understand more. What's been happening with them lately?",
			},
		},
	},
	{
		Name: "pets",
		Keywords: []string{
			"dog", "dogs", "puppy", "pup", "cat", "cats", "kitten", "pet", "pets", "bird", "hamster",
			"rabbit", "bunny", "horse", "guinea pig", "fish", "tortoise", "parrot",
		},
		Celebration: []string{
			"cute", "funny", "hilarious", "sweet", "adorable", "cuddles", "cuddled", "cuddling",
			"playful", "new puppy", "new kitten", "adopted", "bonding", "learned", "trick", "made me laugh",
			"made me smile", "so happy",
		},
		Stress: []string{
			"sick", "unwell", "ill", "vet", "injured", "hurt", "lost", "missing", "passed away", "died",
			"put down", "grieving", "grief", "frustrated", "destroyed", "chewed", "barking", "scared",
			"worried", "old age", "vet bills",
		},
		Templates: map[Tone][]string{
			ToneCelebratory: {
				"That's so sweet. Our animals have a way of bringing us right into the present moment.\n\nWhat did they do that made you smile?",
				"I love that. There's something really grounding about the simple joy pets bring.\n\nHow did it feel to share that moment with them?",
				"That sounds adorable. Little moments like this are real medicine for the nervous system.\n\nWhat's your favourite thing about them right now?",
			},
			ToneStressed: {
				"Worrying about an animal you love is so hard. They're family, and it makes sense that this is weighing on you.\n\nWhat's happening with them right now?",
				"I'm sorry. When our pets are struggling, our hearts feel it too.\n\nHow are you holding up through this?",
				"That sounds really stressful. Caring for an animal when things go wrong takes a lot out of us.\n\nWhat kind of support would help you most today?",
			},
			ToneNeutral: {
				"Animals can be such good company. Tell me a bit about them?",
				"I'd love to hear more about your pet. How are things with them?",
				"Pets bring so much into our days. What's been going on with yours?",
			},
		},
	},
	{
		Name: "home",
		Keywords: []string{
			"home", "house", "my flat", "apartment", "bedroom", "living room", "kitchen", "chores",
			"laundry",
			"dishes", "clutter", "tidy", "tidied", "tidying", "cleaning", "cleaned", "decluttered",
			"moving house", "moved in", "neighbour", "neighbours", "neighbor", "neighbors", "landlord",
			"roommate", "housemate", "housemates", "garden",
		},
		Celebration: []string{
			"tidied", "tidy", "organised", "organized", "cleaned", "decluttered", "decorated", "cosy",
			"cozy", "new home", "moved in", "love my home", "peaceful", "excited", "finished", "proud",
			"fresh", "lovely",
		},
		Stress: []string{
			"chaotic", "chaos", "messy", "mess", "clutter", "cluttered", "chores", "laundry", "dishes",
			"noise", "noisy", "conflict", "eviction", "evicted", "repairs", "broken", "leak", "mould",
			"mold", "unsafe", "don't feel safe", "dont feel safe", "stressed", "piling up", "overwhelming",
			"overwhelmed", "can't relax", "cant relax", "too much",
		},
		Templates: map[Tone][]string{
			ToneCelebratory: {
				"That's a lovely feeling. A calm space can make such a difference to how we feel inside.\n\nHow does it feel to be in your space right now?",
				"Well done. Caring for your home is a way of caring for yourself.\n\nWhat's your favourite part of how it feels now?",
				"I love that. There's real peace in a space that feels like yours.\n\nHow do you want to enjoy it today?",
			},
			ToneStressed: {
				"When home doesn't feel restful, it's hard to switch off anywhere. That makes total sense.\n\nWhat's making home feel hard right now?",
				"A messy or noisy space can keep our nervous system on alert. You're not lazy, you're stretched.\n\nWhat's one tiny thing that would make your space feel a little easier?",
				"Home is meant to be where we recharge, so it's exhausting when it feels like another source of stress.\n\nWhat would help you feel more at ease there?",
			},
			ToneNeutral: {
				"Our home environment affects us more than we realise. How are things feeling there?",
				"Thank you for sharing that. How do you feel when you're at home at the moment?",
				"Tell me more about what's happening at home?",
			},
		},
	},
	{
		Name: "money",
		Keywords: []string{
			"money", "rent", "bill", "bills", "debt", "debts", "credit card", "loan", "loans",
			"mortgage", "salary", "paycheck", "payday", "paid", "savings", "saved", "budget",
			"finances", "financial", "bank", "overdraft", "afford", "income", "tax", "expenses",
			"spending",
		},
		Celebration: []string{
			"paid off", "saved", "savings goal", "pay rise", "raise", "bonus", "unexpected money",
			"debt free", "debt-free", "got paid", "windfall", "refund", "afforded", "on track",
			"proud", "finally", "payday",
		},
		Stress: []string{
			"tight", "broke", "debt", "debts", "overdue", "can't afford", "cant afford", "overdraft",
			"behind on", "worried", "panicked", "panic", "stressed", "expensive", "struggling", "owe",
			"collections", "scared", "anxious", "unexpected bill", "bills", "rent",
		},
		Templates: map[Tone][]string{
			ToneCelebratory: {
				"That's a real milestone. Money wins can take such a weight off.\n\nHow does it feel to have reached this point?",
				"Well done. That took consistency and care, and it's worth acknowledging.\n\nWhat does this make possible for you now?",
				"I love hearing this. Let yourself feel the relief of it.\n\nWhat helped you get here?",
			},
			ToneStressed: {
				"Money stress can sit in the body all day long. It makes sense that you feel on edge.\n\nWhat feels most pressing right now?",
				"I'm sorry things feel tight. Financial worry can make everything else feel heavier.\n\nWhat's one small step that feels doable today?",
				"That sounds really stressful. You're not alone in this, and it doesn't say anything about your worth.\n\nWhat kind of support would help most right now?",
			},
			ToneNeutral: {
				"Money brings up a lot for many of us. How are you feeling about it at the moment?",
				"Thank you for sharing that. What's on your mind about your finances?",
				"I'm listening. How is the money side of things affecting you right now?",
			},
		},
	},
}

// topicTemplates returns the template list for topic and tone.
func topicTemplates(topic LifeTopic, tone Tone) []string {
	if templates := topic.Templates[tone]; len(templates) > 0 {
		return templates
	}
	return topic.Templates[ToneNeutral]
}

// LifeTopicNames lists the topic names in scan order.
func LifeTopicNames() []string {
	names := make([]string, len(lifeTopics))
	for i, t := range lifeTopics {
		names[i] = t.Name
	}
	return names
}
