// Package search implements exact substring search over sequences of
// fixed-width code units with four classical algorithms: Rabin-Karp,
// Knuth-Morris-Pratt, Boyer-Moore (bad-character rule) and a naive window
// comparison.
//
// Every algorithm comes in a first-match form returning the starting index
// of the leftmost occurrence, or -1, and an all-matches form returning every
// starting index in ascending order, overlapping occurrences included.
//
// All forms share the same edge cases: a pattern longer than the haystack
// never matches, and the empty pattern matches at every position from 0 to
// len(haystack) inclusive.
//
// The functions are pure and may be called concurrently. Callers that search
// many haystacks for one pattern should build a Searcher once.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mhr3/patmatch/rollhash"
)

// Unit is a fixed-width code unit: a byte or a UTF-16 code unit.
type Unit = rollhash.Unit

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognised names.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm selects a matching strategy.
type Algorithm uint8

const (
	AlgoRabinKarp Algorithm = iota
	AlgoKMP
	AlgoBoyerMoore
	AlgoNaive
)

var algorithmNames = [...]string{
	AlgoRabinKarp:  "rabin-karp",
	AlgoKMP:        "kmp",
	AlgoBoyerMoore: "boyer-moore",
	AlgoNaive:      "naive",
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoRabinKarp, AlgoKMP, AlgoBoyerMoore, AlgoNaive}
}

// ParseAlgorithm maps a name such as "kmp" or "boyer-moore" to an Algorithm.
// Matching is case-insensitive and accepts a few common spellings.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rabin-karp", "rabinkarp", "rabin_karp", "rk":
		return AlgoRabinKarp, nil
	case "kmp", "knuth-morris-pratt":
		return AlgoKMP, nil
	case "boyer-moore", "boyermoore", "boyer_moore", "bm":
		return AlgoBoyerMoore, nil
	case "naive", "brute-force":
		return AlgoNaive, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Index returns the index of the first occurrence of pattern in haystack
// using alg, or -1 if there is none.
func Index[T Unit](alg Algorithm, haystack, pattern []T) int {
	return NewSearcher(pattern, alg).Index(haystack)
}

// IndexAll returns the indexes of all occurrences of pattern in haystack
// using alg.
func IndexAll[T Unit](alg Algorithm, haystack, pattern []T) []int {
	return NewSearcher(pattern, alg).IndexAll(haystack)
}

// RabinKarp returns the index of the first occurrence of pattern in haystack,
// or -1. Candidate windows are compared by hash and contents, so the result
// is exact.
func RabinKarp[T Unit](haystack, pattern []T) int {
	return Index(AlgoRabinKarp, haystack, pattern)
}

// RabinKarpAll returns the indexes of all occurrences of pattern in haystack.
func RabinKarpAll[T Unit](haystack, pattern []T) []int {
	return IndexAll(AlgoRabinKarp, haystack, pattern)
}

// KMP returns the index of the first occurrence of pattern in haystack, or -1.
func KMP[T Unit](haystack, pattern []T) int {
	return Index(AlgoKMP, haystack, pattern)
}

// KMPAll returns the indexes of all occurrences of pattern in haystack.
func KMPAll[T Unit](haystack, pattern []T) []int {
	return IndexAll(AlgoKMP, haystack, pattern)
}

// BoyerMoore returns the index of the first occurrence of pattern in
// haystack, or -1.
func BoyerMoore[T Unit](haystack, pattern []T) int {
	return Index(AlgoBoyerMoore, haystack, pattern)
}

// BoyerMooreAll returns the indexes of all occurrences of pattern in haystack.
func BoyerMooreAll[T Unit](haystack, pattern []T) []int {
	return IndexAll(AlgoBoyerMoore, haystack, pattern)
}

// Naive returns the index of the first occurrence of pattern in haystack,
// or -1.
func Naive[T Unit](haystack, pattern []T) int {
	return Index(AlgoNaive, haystack, pattern)
}

// NaiveAll returns the indexes of all occurrences of pattern in haystack.
func NaiveAll[T Unit](haystack, pattern []T) []int {
	return IndexAll(AlgoNaive, haystack, pattern)
}
