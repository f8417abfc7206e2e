package guru

import "strings"

// dedupWindow is the number of recent assistant turns a template must not
// already appear in.
const dedupWindow = 3

// freshCandidates removes every candidate contained in one of the recent
// assistant texts. When nothing survives, the full list is returned so a
// stage never runs out of things to say.
func freshCandidates(candidates, recent []string) []string {
	if len(recent) == 0 {
		return candidates
	}
	fresh := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !usedRecently(c, recent) {
			fresh = append(fresh, c)
		}
	}
	if len(fresh) == 0 {
		return candidates
	}
	return fresh
}

func usedRecently(candidate string, recent []string) bool {
	for _, text := range recent {
		if strings.Contains(text, candidate) {
			return true
		}
	}
	return false
}

// pickFresh applies the recent-response policy and then picks one candidate.
func pickFresh(p Picker, candidates, recent []string) string {
	return pickOne(p, freshCandidates(candidates, recent))
}
