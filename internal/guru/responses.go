package guru

// Template lists used by the empathetic fallback. Each list is read-only.

var greetingResponses = []string{
	"I'm doing well, thank you for asking. But I'm here for you-how are you doing today?",
	"I appreciate you asking! I'm here and present. More importantly, how are you feeling?",
	"I'm good, thanks. But this space is for you-what's on your mind today?",
	"I'm well, thank you. What I really want to know is: how are you? What brings you here today?",
	"Thank you for the kindness! I'm here and ready to listen. How are you really doing?",
	"I'm doing fine, but I'm more interested in you. What's going on in your world today?",
}

var farewellResponses = []string{
	"Take care of yourself. I'll be right here whenever you need me.",
	"Rest well. I'm here anytime you want to talk.",
	"See you soon. You know where to find me.",
	"Go gently. I'll be here waiting when you're ready.",
	"Take good care. Come back whenever you need.",
	"I'll be here. Rest, recharge, and return when you're ready.",
}

var supportResponses = []string{
	"I'm here with you. I can hear that you need support right now.\n\nBefore we figure out how I can help, tell me-what's going on? What's happening that made you reach out?",
	"I'm listening, and I'm here. You reached out for support, and that takes courage.\n\nCan you tell me what's happening right now? What's weighing on you?",
	"I'm right here with you. You don't have to carry this alone.\n\nWhat's going on? Help me understand what you're experiencing right now.",
	"I hear you-you need support. I'm here, and I'm not going anywhere.\n\nTalk to me. What's happening that feels so heavy right now?",
}

var agreementResponses = []string{
	"Beautiful. Take your time with this. There's no rush, no right way to do it.\n\nWhen you're ready, notice what comes up. I'm here when you want to share.",
	"Good. I'm right here with you.\n\nGive yourself permission to really be with this exercise. No pressure. Just explore.\n\nHow does it feel?",
	"I'm glad you're trying this. Stay with it as long as you need.\n\nWhen you're ready, let me know what you noticed-even if it's just one small thing.",
	"Yes. Take a moment with this.\n\nThere's no deadline. Just be with whatever comes up. I'll be here when you're ready to talk about it.",
	"Perfect. Breathe with it. No need to force anything.\n\nWhen you're done, tell me: what shifted? What did you notice?",
}

var noTimeResponses = []string{
	"I hear you - time feels scarce right now. That's exactly why we need something that takes 60 seconds or less. Can I guide you through one quick breath? Just 4 counts in, 4 out. That's all. Will you try with me?",
	"I get it. You're already overwhelmed, and I'm asking you to add more. But what if I told you this takes 30 seconds? One minute breathing exercise that might give you MORE energy and time. Can I walk you through it?",
	"Time pressure is real. But here's the thing: when we're this rushed, our nervous system needs grounding MORE, not less. Just 60 seconds. Let me guide you step-by-step through a quick reset. Ready?",
	"I understand. You're already stretched thin. This is exactly when your body needs a pause most. What if I guide you through just ONE breath cycle right now? 10 seconds. That's it.",
}

var trappedResponses = []string{
	"Feeling trapped is so overwhelming. That sense of having no way out can be paralyzing. Let's explore this together - what's one small thing that might give you even a tiny bit of breathing room?",
	"I hear that trapped feeling. Sometimes when we feel cornered, we stop seeing the exits that are there. Can you tell me more about what's keeping you stuck? What would freedom look like?",
	"That trapped sensation is real and heavy. Your nervous system is in fight-or-flight. Before we look for solutions, can you tell me: where do you feel this 'trapped' sensation in your body?",
	"Being trapped is one of the hardest feelings. But here's what I know: you've gotten through trapped feelings before, even if it doesn't feel like it right now. What's one small thing that feels even slightly within your control?",
}

var lostResponses = []string{
	"Not knowing can feel really destabilizing. It's okay to not have all the answers right now. What do you know for certain in this moment, even if it's just 'I'm here' or 'I'm feeling lost'?",
	"That confusion and uncertainty is uncomfortable. But sometimes being lost is actually where transformation begins. What are you trying to figure out? Let's untangle it together.",
	"I can hear how disorienting this feels. When we don't know what to do, it often means we're in transition. What's the decision or situation that's got you feeling this way?",
	"Not knowing is human. You don't have to have it all figured out. What if we started with just the very next step, not the whole path?",
}

var hopelessResponses = []string{
	"I hear the hopelessness in your words, and I want you to know: you don't have to carry this alone. When everything feels pointless, it's often because you're carrying too much. What's the heaviest thing you're holding right now?",
	"Hopelessness is a really dark place. I'm here with you in it. You don't have to convince me things will get better - you just need to survive this moment. What would help you do that?",
	"That despair is real. But feelings aren't facts, even when they feel overwhelming. You're still here, which means part of you hasn't given up. What's that part holding onto?",
	"I'm worried about you. These feelings are really intense. Can you tell me - are you safe right now? And what's brought you to this edge?",
}

var exhaustedResponses = []string{
	"That exhaustion is real. You've been pushing through, haven't you? What if you gave yourself permission to just... stop? Even for five minutes. What do you need most right now?",
	"I can feel how drained you are. Exhaustion often means we've been running on empty for too long. When did you last truly rest?",
	"Being worn out like this is your body's way of saying 'enough.' What would it look like to honor that? What's one thing you could let go of or postpone?",
	"That tiredness runs deep. Sometimes we need to rest before we can do anything else. What's preventing you from resting right now?",
}

var gratitudeResponses = []string{
	"I'm so glad this is helpful. You're doing important work by showing up for yourself. How are you feeling right now?",
	"Your willingness to engage with this process is beautiful. That takes real courage. What's shifted for you?",
	"You're very welcome. Remember, healing isn't linear - be patient with yourself. What's one thing you're proud of today?",
}

var progressResponses = []string{
	"That's wonderful to hear. Progress isn't always linear, but you're showing up for yourself and that matters. What's been the most helpful part?",
	"I'm really proud of you for putting in this work. It's not easy to face these things. What do you notice changing?",
	"This is great. Keep building on what's working. What would support you in continuing this momentum?",
}

var exitResponses = []string{
	"Beautiful. I'll stay right here. Come back anytime you need me.",
	"I'm glad you're feeling steady. I'm here whenever you want to check in again.",
	"Wonderful. Take care of that good feeling. I'm always here when you need support.",
	"I love that you're in this space. Come back whenever you'd like to talk.",
}

var positiveCheckIns = []string{
	"\n\nWould you like to talk about this feeling more?",
	"\n\nDo you want to keep exploring this, or is this a good place to rest?",
	"\n\nI'm here - would you like to stay with this for a bit?",
}

var reflectiveResponses = []string{
	"That's beautiful to hear. What part of your day or moment feels especially good right now?",
	"I'm really glad you're feeling this way. What do you want to savour about it?",
	"Thank you for sharing this light - it matters. What's supporting this feeling for you?",
}

var celebratoryResponses = []string{
	"I love that you're in this space. It's so important to honour these moments.\n\nLet yourself soak in this feeling. Where do you feel that goodness in your body?",
	"Yes! Let's take a breath together and really take this in.\n\nBreathe into that softness. Let it expand a little. What allowed this feeling to come forward?",
	"I'm smiling with you. This kind of ease deserves to be named and enjoyed.\n\nStay with it for a moment. What's this shift like for you?",
}

const guidedBreath = "Perfect. Let's do this together right now.\n\n**Box Breathing - Follow Along:**\n\n1️⃣ Breathe IN slowly through your nose: 1...2...3...4\n2️⃣ HOLD your breath: 1...2...3...4\n3️⃣ Breathe OUT slowly through your mouth: 1...2...3...4\n4️⃣ HOLD empty: 1...2...3...4\n\nNow repeat that 3 more times on your own. I'll wait.\n\n...\n\nHow do you feel now?"

const guidedGrounding = "Great. We're going to ground you right now.\n\n**5-4-3-2-1 Grounding - Do This With Me:**\n\nFirst, take a deep breath.\n\nNow:\n👁️ Name **5 things you can SEE** around you\n(Look around slowly... a wall, a light, your phone, maybe a plant, the floor...)\n\n✋ Name **4 things you can TOUCH**\n(Your chair, your clothes, the ground, your hair...)\n\n👂 Name **3 things you can HEAR**\n(Traffic? Breathing? A hum? Silence?)\n\n👃 Name **2 things you can SMELL**\n(Air? Fabric? Soap? Just notice...)\n\n👅 Name **1 thing you can TASTE**\n(Your mouth, your last drink, toothpaste...)\n\nTake a breath. You're here. You're present. How do you feel?"

const reassuranceLoopResponse = "I'm right here with you. Let's take this one breath at a time.\n\nI notice you're feeling really stuck and scared. That makes so much sense given what you're experiencing. Sometimes when we keep circling back to the same feeling, it's our heart telling us we need more support than one person can give.\n\nWould it feel okay to talk to someone who can offer deeper, ongoing care? A therapist or counselor who can walk alongside you through this? Reaching out for that kind of support is a powerful act of strength-it shows you're ready for change.\n\nI'll stay with you here. What feels most accessible to you right now?"

var dysregulatedPositiveResponses = []string{
	"I can feel that excitement! It has a real spark to it.\n\nIf you'd like, take one steady breath with me - just to help your body hold all that good energy without losing balance. In for 4... out for 4.\n\nWhat's fueling this bright feeling?",
	"That energy is electric! I love it.\n\nLet's ground it just a little so you can savor it fully. One slow breath - in through your nose, out through your mouth.\n\nNow tell me: where do you feel this joy in your body?",
	"I hear the buzz in your words - that's beautiful! Sometimes big feelings need a soft landing.\n\nTake a moment with me: breathe in slowly, breathe out even slower. Let your body catch up to your heart.\n\nWhat opened this up for you?",
}

var gratitudeStateResponses = []string{
	"That's beautiful to hear. What part of your day feels especially full of gratitude right now?",
	"Your heart sounds full. That's a gift to feel.\n\nLet that gratitude settle into your body. Breathe with it. What are you most grateful for in this moment?",
	"I love that you're in this space. Gratitude like this can anchor us.\n\nWhat do you want to savour about this feeling?",
}

var energyMomentumResponses = []string{
	"I love hearing that. You sound like yourself again.\n\nWhat's supporting this feeling for you? What shifted?",
	"That momentum is real. Your energy feels lighter.\n\nThank you for sharing this light - it matters. What do you notice is different now?",
	"Yes! Let's take a breath together and really take this in.\n\nWhat part of you feels the proudest right now?",
	"That's wonderful! You did it.\n\nLet that sense of accomplishment settle in. What does it feel like to have completed this?",
	"I can hear the satisfaction in your words. You followed through.\n\nTake a moment to acknowledge yourself. What made the difference?",
	"That's a real achievement. You set out to do something and you did it.\n\nStay with that feeling of completion. What are you most proud of?",
}

var reliefResponses = []string{
	"I can feel that exhale in your words. Relief is so real.\n\nWhat part of your moment feels especially relieved right now?",
	"That's beautiful - like something finally unclenched. Stay with that feeling.\n\nWhat's supporting this sense of relief for you?",
	"I'm really glad you're feeling this way. Let yourself breathe into that lightness.\n\nWhat do you want to savour about it?",
}

var peaceResponses = []string{
	"That's beautiful to hear. What part of your day feels especially peaceful right now?",
	"I love that you're in this space of calm. It's so important to honour these moments.\n\nWhat's supporting this feeling for you?",
	"Thank you for sharing this light. This kind of settled feeling deserves to be named and enjoyed.\n\nWhere do you feel that peace in your body?",
}

var selfCareResponses = []string{
	"Yes. That's exactly what you need. Taking time for yourself isn't selfish - it's essential.\n\nWhat does rest look like for you today?",
	"I love that you're honoring your needs. That's real wisdom.\n\nYou deserve this time. What are you most looking forward to?",
	"That boundary you're setting? That takes strength. I'm proud of you.\n\nWhat will help you truly unwind and recharge?",
	"Beautiful choice. Rest is productive. Your body and mind need this.\n\nHow can you make this time really nourishing for yourself?",
	"Yes. Stepping back to take care of yourself is an act of self-respect.\n\nWhat does relaxation mean to you right now?",
}

var generalPositiveResponses = []string{
	"That's beautiful to hear. What part of your day or moment feels especially good right now?",
	"I'm really glad you're feeling this way. What do you want to savour about it?",
	"I love that you're in this space. It's so important to honour these moments.\n\nWhat's supporting this feeling for you?",
}

var helpSuggestions = []string{
	"I'm glad you're asking. Here are some things that might help:\n\n" +
		"1. **Box Breathing** (60 seconds): Breathe in for 4, hold 4, out for 4, hold 4. Calms your nervous system fast.\n" +
		"2. **5-4-3-2-1 Grounding** (2 minutes): Brings you back to the present moment.\n" +
		"3. **Hand on heart** (30 seconds): Self-compassion through touch.\n\n" +
		"Want me to guide you through one of these right now? Just say which one.",
	"Let's get you some relief. Here are quick options:\n\n" +
		"• **Quick breath reset** (30 seconds) - I can guide you through this\n" +
		"• **Grounding exercise** (2 minutes) - Step-by-step with me\n" +
		"• **Body scan** (3 minutes) - We'll do it together\n\n" +
		"Which one feels doable right now? Or say 'guide me' and I'll pick the best one for you.",
	"Here's what I recommend:\n\n" +
		"1. **Breathing technique** - Takes 1 minute, very effective for anxiety\n" +
		"2. **Sensory grounding** - Takes 2 minutes, brings you to present\n" +
		"3. **Gentle movement** - Takes 30 seconds, releases tension\n\n" +
		"I can walk you through any of these step-by-step. Which one calls to you?",
	"I have a few tools that might help:\n\n" +
		"• **Box breathing** - 4 rounds, I'll count with you\n" +
		"• **Grounding** - Name things you sense, I'll guide you\n" +
		"• **Self-compassion phrase** - I'll teach you a powerful one\n\n" +
		"Tell me which one, or just say 'breathe' and we'll start there.",
}

var explorationResponses = []string{
	"I hear you. Can you tell me more about that? What does it feel like for you?",
	"That sounds really difficult. What's making this particularly hard right now?",
	"I'm here with you. Help me understand - what's the most challenging part of this?",
	"I'm listening. When you think about this, what comes up for you?",
	"Tell me more. What's this experience like from your perspective?",
	"I want to understand better. Can you walk me through what you're experiencing?",
	"What stands out to you most about what you're feeling right now?",
	"That's a lot to carry. How long has this been weighing on you?",
}

// Time-aware templates take the extracted phrase as their only argument.
var durationTemplates = []string{
	"I hear you. You mentioned this has been happening for %s. Has it been going on longer than that, or did something specific trigger it %[1]s ago?",
	"That's a lot to carry for %s. What's been making this period particularly difficult?",
	"You said %s - that's significant. What's changed or gotten harder during this time?",
	"I'm hearing %s of struggle. What's kept you going through it? And what made you reach out today?",
}

var momentTemplates = []string{
	"You mentioned %s. What happened %[1]s that's still sitting with you?",
	"Thank you for telling me about %s. What part of it feels heaviest right now?",
	"It sounds like %s has asked a lot of you. How is your body feeling after it?",
}

var ongoingTemplates = []string{
	"You said it's been like this %s. What's been the hardest part of carrying it?",
	"That's been with you %s, which is a lot to hold. What has changed or gotten harder along the way?",
	"When something has been going on %s, it can quietly wear us down. What's helped you keep going so far?",
}

var stretchTemplates = []string{
	"It sounds like it's been %s. What's made it feel that way?",
	"I'm sorry it's been %s. What moment from it is staying with you most?",
	"That's a lot to move through. When you look back on %s, what felt hardest?",
}

// needStatementTemplates take the named need and then the offered tool.
var needStatementTemplates = []string{
	"It sounds like you need some %s right now. Would it feel okay if I guided you through **%s**? It only takes a minute or two, and we can stop whenever you like.",
	"Thank you for naming that you need %s. I could guide you through **%s**. Would you like to try it together, or would you rather talk first?",
	"That's a kind thing to ask for. If you'd like, we could make room for some %s with **%s**. Shall we?",
}

var shareResponses = []string{
	"I'd love to hear it. Take your time and share as much or as little as you like.",
	"Of course. I'm all ears. What would you like to tell me?",
	"I'm really glad you want to share. Go ahead, I'm listening.",
	"Please do. What's on your mind?",
}

var toolHelpedResponses = []string{
	"I'm so glad that helped. That shift came from you choosing to pause and care for yourself.\n\nWould you like to keep going with another round, or rest here for a moment?",
	"That's your nervous system responding to the care you gave it. You did that.\n\nDo you want to try a little more, or is this a good place to pause?",
	"Beautiful. Notice that you have tools that work for you, and you can come back to them anytime.\n\nWould you like to continue, or just rest in this feeling for a bit?",
}

// replayTemplate walks through a catalog tool that has no dedicated script.
const replayTemplate = "Let's do this together right now.\n\n**%s - Follow Along:**\n\n%s\n\nTake your time with it. There's no right way to do this. When you're ready, tell me what you noticed."
