package search

// kmp is a Knuth-Morris-Pratt matcher.
type kmp[T Unit] struct {
	pattern []T
	table   []int
}

func newKMP[T Unit](pattern []T) *kmp[T] {
	return &kmp[T]{pattern: pattern, table: prefixTable(pattern)}
}

// prefixTable returns the prefix function of p: table[i] is the length of
// the longest proper prefix of p[:i+1] that is also its suffix.
func prefixTable[T Unit](p []T) []int {
	table := make([]int, len(p))
	for i := 1; i < len(p); i++ {
		prev := table[i-1]
		for prev > 0 && p[prev] != p[i] {
			prev = table[prev-1]
		}
		if p[prev] == p[i] {
			table[i] = prev + 1
		}
	}
	return table
}

func (m *kmp[T]) scan(haystack []T, yield func(int) bool) {
	p, table := m.pattern, m.table
	n := len(p)
	j := 0 // length of the current partial match
	for i, c := range haystack {
		for j > 0 && c != p[j] {
			j = table[j-1]
		}
		if c == p[j] {
			j++
		}
		if j == n {
			if !yield(i - n + 1) {
				return
			}
			// keep the border so overlapping matches are found
			j = table[j-1]
		}
	}
}
