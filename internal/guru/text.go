package guru

import (
	"strings"
	"unicode"
)

var quoteReplacer = strings.NewReplacer("’", "'", "‘", "'", "“", "\"", "”", "\"")

// normalize lower-cases text and folds typographic quotes so "can’t" and
// "can't" hit the same markers.
func normalize(text string) string {
	return quoteReplacer.Replace(strings.ToLower(text))
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// containsPhrase reports whether phrase occurs in text on word boundaries, so
// "ok" matches "ok, sure" but not "look".
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; start < len(text); {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		if boundaryBefore(text, i) && boundaryAfter(text, end) {
			return true
		}
		start = i + 1
	}
	return false
}

func containsAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if containsPhrase(text, p) {
			return true
		}
	}
	return false
}

func matchedPhrases(text string, phrases []string) []string {
	var matched []string
	for _, p := range phrases {
		if containsPhrase(text, p) {
			matched = append(matched, p)
		}
	}
	return matched
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r := lastRune(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r := []rune(text[end:])[0]
	return !isWordRune(r)
}

func lastRune(s string) rune {
	runes := []rune(s)
	return runes[len(runes)-1]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

// snippetAround returns up to radius runes of context either side of the
// first case-insensitive occurrence of keyword in text.
func snippetAround(text, keyword string, radius int) (string, bool) {
	runes := []rune(text)
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}
	needle := []rune(keyword)
	idx := indexRunes(lowered, needle)
	if idx < 0 {
		return "", false
	}
	start := max(0, idx-radius)
	end := min(len(runes), idx+len(needle)+radius)
	return strings.TrimSpace(string(runes[start:end])), true
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j, r := range needle {
			if haystack[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}
