// Package bytealg holds the unit-level primitives shared by the matchers,
// with platform-specific fast paths for byte slices.
package bytealg

// Contains reports whether c occurs in s.
func Contains[T ~uint8 | ~uint16](s []T, c T) bool {
	if b, ok := any(s).([]byte); ok {
		return containsByte(b, byte(c))
	}
	for _, u := range s {
		if u == c {
			return true
		}
	}
	return false
}

// MayMatch reports whether pattern can occur in s, judged by its first and
// last units alone. A false result is definitive; true means "scan".
func MayMatch[T ~uint8 | ~uint16](s, pattern []T) bool {
	n := len(pattern)
	if n == 0 {
		return true
	}
	last := pattern[n-1]
	if !Contains(s, last) {
		return false
	}
	if first := pattern[0]; first != last && !Contains(s, first) {
		return false
	}
	return true
}
