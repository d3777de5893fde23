package search

import (
	"iter"
	"slices"

	"github.com/mhr3/patmatch/internal/bytealg"
	"github.com/mhr3/patmatch/rollhash"
)

// matcher scans a haystack for a preprocessed pattern of length >= 1 that
// is no longer than the haystack. It calls yield with each match start in
// ascending order and stops as soon as yield returns false.
type matcher[T Unit] interface {
	scan(haystack []T, yield func(int) bool)
}

// Searcher performs repeated searches for one pattern.
// Construct once with NewSearcher, then call Index on multiple haystacks.
// Amortizes pattern preprocessing across searches. A Searcher is immutable
// and safe for concurrent use.
type Searcher[T Unit] struct {
	pattern []T
	alg     Algorithm
	m       matcher[T]
}

// NewSearcher preprocesses pattern for alg. It panics if alg is not one of
// the defined algorithms.
func NewSearcher[T Unit](pattern []T, alg Algorithm) *Searcher[T] {
	if int(alg) >= len(algorithmNames) {
		panic("search: unknown algorithm " + alg.String())
	}
	pattern = slices.Clone(pattern)
	s := &Searcher[T]{pattern: pattern, alg: alg}
	if len(pattern) == 0 {
		return s
	}

	switch alg {
	case AlgoRabinKarp:
		s.m = newRabinKarp(pattern, rollhash.DefaultMod, rollhash.DefaultCharset)
	case AlgoKMP:
		s.m = newKMP(pattern)
	case AlgoBoyerMoore:
		s.m = newBoyerMoore(pattern)
	case AlgoNaive:
		s.m = naive[T]{pattern: pattern}
	}
	return s
}

// NewSearcherWithHash creates a Rabin-Karp Searcher with a custom hash
// modulus and base. mod must be positive.
func NewSearcherWithHash[T Unit](pattern []T, mod, charset uint64) *Searcher[T] {
	if mod == 0 {
		panic("search: hash modulus must be positive")
	}
	pattern = slices.Clone(pattern)
	s := &Searcher[T]{pattern: pattern, alg: AlgoRabinKarp}
	if len(pattern) > 0 {
		s.m = newRabinKarp(pattern, mod, charset)
	}
	return s
}

// Algorithm returns the algorithm the Searcher was built for.
func (s *Searcher[T]) Algorithm() Algorithm {
	return s.alg
}

// Pattern returns the Searcher's pattern. It must not be modified.
func (s *Searcher[T]) Pattern() []T {
	return s.pattern
}

// All returns an iterator over the starting indexes of every occurrence of
// the pattern in haystack, in ascending order. Overlapping occurrences are
// all reported.
func (s *Searcher[T]) All(haystack []T) iter.Seq[int] {
	return func(yield func(int) bool) {
		n := len(s.pattern)
		if n > len(haystack) {
			return
		}
		if n == 0 {
			for i := 0; i <= len(haystack); i++ {
				if !yield(i) {
					return
				}
			}
			return
		}
		if !bytealg.MayMatch(haystack, s.pattern) {
			return
		}
		s.m.scan(haystack, yield)
	}
}

// Index returns the index of the first occurrence of the pattern in
// haystack, or -1 if there is none.
func (s *Searcher[T]) Index(haystack []T) int {
	for i := range s.All(haystack) {
		return i
	}
	return -1
}

// IndexAll returns the starting indexes of all occurrences of the pattern in
// haystack. The result is empty, not nil, when there are none.
func (s *Searcher[T]) IndexAll(haystack []T) []int {
	out := []int{}
	for i := range s.All(haystack) {
		out = append(out, i)
	}
	return out
}

// Count returns the number of occurrences of the pattern in haystack,
// overlapping occurrences included.
func (s *Searcher[T]) Count(haystack []T) int {
	n := 0
	for range s.All(haystack) {
		n++
	}
	return n
}
