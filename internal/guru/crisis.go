package guru

// severePhrasingThreshold selects the stronger crisis wording.
const severePhrasingThreshold = 9

// crisisSevere is used at scores of 9 and above and lists hotlines by country.
const crisisSevere = "I'm hearing a lot of pain in your words… and I need you to know: you don't have to carry this alone.\n\n" +
	"Reaching out for support is a sign of strength — it shows you're ready for change. Feeling scared, confused, or overwhelmed is part of moving through difficult things. There are people trained to help carry this weight with you.\n\n" +
	"🆘 **Crisis Support (24/7)**:\n🇺🇸 **US** - Crisis Text Line: Text HOME to 741741 | Call: 988\n🇬🇧 **UK** - Samaritans: 116 123 | Text: 85258\n🇦🇺 **Australia** - Lifeline: 13 11 14\n🇨🇦 **Canada** - Crisis Services: 1-833-456-4566\n🌍 **Worldwide** - findahelpline.com\n\n" +
	"Your life has value. This pain is real, but it can change. You deserve care and support. Please let someone help you through this moment."

// crisisElevated is used for scores of 7 and 8.
const crisisElevated = "I can feel how much you're struggling right now. This level of pain… it's a signal that you need more support than what I can offer here.\n\n" +
	"Asking for help doesn't mean you're failing. It means you're brave enough to care for yourself. You're not meant to carry this alone — reaching out is a powerful act of strength.\n\n" +
	"Please consider talking to:\n\n" +
	"• A mental health professional or doctor who can provide ongoing care\n• A crisis counselor (24/7 support available)\n• A trusted friend, family member, or spiritual advisor\n\n" +
	"You deserve care that can hold this with you. You're worthy of support. What would feel most accessible right now?"

const crisisFooter = "💜 If you need immediate support, please reach out: Call/text 988 (crisis line) or text HOME to 741741."

// CrisisHotlineMarkers are hotline strings found in the severe crisis text
// and the emotional-state footer.
var CrisisHotlineMarkers = []string{"988", "741741", "116 123", "findahelpline.com"}

// CrisisMessage returns the crisis-tier text for score, or "" below the
// crisis threshold.
func CrisisMessage(score int) string {
	switch {
	case score >= severePhrasingThreshold:
		return crisisSevere
	case score >= crisisThreshold:
		return crisisElevated
	default:
		return ""
	}
}
