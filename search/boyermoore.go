package search

// shiftTable maps a code unit to the distance the alignment may advance
// after a mismatch on that unit. Units absent from the pattern map to the
// table's default, the full pattern length.
type shiftTable[T Unit] struct {
	low  [256]int // units below 256; 0 means absent
	high map[T]int
	def  int
}

// newShiftTable records, for every unit of p, max(1, len(p)-i-1) where i is
// the unit's rightmost position in p.
func newShiftTable[T Unit](p []T) *shiftTable[T] {
	n := len(p)
	t := &shiftTable[T]{def: n}
	for i, c := range p {
		t.set(c, max(1, n-i-1))
	}
	return t
}

func (t *shiftTable[T]) set(c T, shift int) {
	if uint(c) < uint(len(t.low)) {
		t.low[uint(c)] = shift
		return
	}
	if t.high == nil {
		t.high = make(map[T]int)
	}
	t.high[c] = shift
}

// Get returns the shift for c, or the pattern length if c is not in the
// pattern.
func (t *shiftTable[T]) Get(c T) int {
	if uint(c) < uint(len(t.low)) {
		if s := t.low[uint(c)]; s != 0 {
			return s
		}
		return t.def
	}
	if s, ok := t.high[c]; ok {
		return s
	}
	return t.def
}

// boyerMoore is a Boyer-Moore matcher using the bad-character rule only.
type boyerMoore[T Unit] struct {
	pattern []T
	shifts  *shiftTable[T]
}

func newBoyerMoore[T Unit](pattern []T) *boyerMoore[T] {
	return &boyerMoore[T]{pattern: pattern, shifts: newShiftTable(pattern)}
}

func (m *boyerMoore[T]) scan(haystack []T, yield func(int) bool) {
	p := m.pattern
	n := len(p)
	// end is the haystack index aligned with the last pattern unit
	for end := n - 1; end < len(haystack); {
		i, j := end, n-1
		for j >= 0 && haystack[i] == p[j] {
			i--
			j--
		}
		if j < 0 {
			if !yield(i + 1) {
				return
			}
			end++
			continue
		}
		// Keyed by the pattern unit that failed to match, not the haystack
		// unit: its rightmost occurrence is at or after j, and any smaller
		// shift would line that occurrence up with an already matched,
		// different unit.
		end += m.shifts.Get(p[j])
	}
}
