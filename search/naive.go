package search

import "slices"

// naive compares the pattern against every window of the haystack.
type naive[T Unit] struct {
	pattern []T
}

func (m naive[T]) scan(haystack []T, yield func(int) bool) {
	n := len(m.pattern)
	first := m.pattern[0]
	for i := 0; i+n <= len(haystack); i++ {
		if haystack[i] == first && slices.Equal(haystack[i:i+n], m.pattern) && !yield(i) {
			return
		}
	}
}
