package search

import (
	"unicode/utf16"
	"unsafe"

	"github.com/segmentio/asm/ascii"
)

// IndexString returns the byte offset of the first occurrence of pattern in
// s using alg, or -1.
func IndexString(alg Algorithm, s, pattern string) int {
	return Index(alg, bytesOf(s), bytesOf(pattern))
}

// IndexAllString returns the byte offsets of all occurrences of pattern in
// s using alg.
func IndexAllString(alg Algorithm, s, pattern string) []int {
	return IndexAll(alg, bytesOf(s), bytesOf(pattern))
}

// UTF16 returns s as UTF-16 code units, so that match indexes count
// characters of the Basic Multilingual Plane rather than bytes.
func UTF16(s string) []uint16 {
	if ascii.ValidString(s) {
		units := make([]uint16, len(s))
		for i := 0; i < len(s); i++ {
			units[i] = uint16(s[i])
		}
		return units
	}
	return utf16.Encode([]rune(s))
}

// bytesOf returns the bytes of s without copying. The matchers never write
// to their inputs.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
