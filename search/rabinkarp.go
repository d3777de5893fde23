package search

import "github.com/mhr3/patmatch/rollhash"

// rabinKarp slides a window hash across the haystack and compares it with
// the pattern hash. Equality also compares the window contents, so hash
// collisions never produce a match; the cost is O(len(pattern)) per window
// whose hash agrees.
type rabinKarp[T Unit] struct {
	mod     uint64
	charset uint64
	pattern *rollhash.Hash[T]
}

func newRabinKarp[T Unit](pattern []T, mod, charset uint64) *rabinKarp[T] {
	h := rollhash.New[T](mod, charset)
	for _, c := range pattern {
		h.Add(c)
	}
	return &rabinKarp[T]{mod: mod, charset: charset, pattern: h}
}

func (m *rabinKarp[T]) scan(haystack []T, yield func(int) bool) {
	n := m.pattern.Len()
	window := rollhash.New[T](m.mod, m.charset)
	for end, c := range haystack {
		window.Add(c)
		if window.Len() > n {
			if err := window.RemoveFirst(); err != nil {
				panic(err)
			}
		}
		if window.Equal(m.pattern) && !yield(end-n+1) {
			return
		}
	}
}
