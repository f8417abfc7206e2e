package guru

import "math/rand/v2"

// Picker chooses one of n candidates. Implementations must return a value in
// [0, n) for n > 0; out-of-range answers are clamped to the first candidate.
type Picker interface {
	Pick(n int) int
}

// RandomPicker picks uniformly using math/rand/v2.
type RandomPicker struct{}

// Pick implements Picker.
func (RandomPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// PickerFunc adapts a plain function to the Picker interface.
type PickerFunc func(n int) int

// Pick implements Picker.
func (f PickerFunc) Pick(n int) int { return f(n) }

func pickIndex(p Picker, n int) int {
	if n <= 1 {
		return 0
	}
	idx := p.Pick(n)
	if idx < 0 || idx >= n {
		return 0
	}
	return idx
}

func pickOne(p Picker, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[pickIndex(p, len(candidates))]
}
