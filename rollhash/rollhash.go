// Package rollhash implements a polynomial rolling hash over a sliding window
// of fixed-width code units.
//
// The hash of a window w of length n is
//
//	(w[0]*charset^(n-1) + w[1]*charset^(n-2) + ... + w[n-1]) mod mod
//
// Units are appended at the tail with Add and evicted from the head with
// RemoveFirst. The window contents are kept alongside the hash so that two
// contexts can be compared exactly, which rules out collisions.
package rollhash

import (
	"errors"
	"math/bits"
	"slices"
)

const (
	// DefaultMod is the modulus used by the Rabin-Karp matcher.
	DefaultMod = 101
	// DefaultCharset is the positional base, sized for 16-bit code units.
	DefaultCharset = 1 << 16
)

// ErrEmptyWindow is returned by RemoveFirst when there is nothing to evict.
var ErrEmptyWindow = errors.New("rollhash: remove from empty window")

// Unit is a fixed-width code unit: a byte or a UTF-16 code unit.
type Unit interface {
	~uint8 | ~uint16
}

// Hash is a rolling hash context. The zero value is not usable; construct
// with New. A Hash must not be shared between goroutines without locking.
type Hash[T Unit] struct {
	mod     uint64
	charset uint64
	sum     uint64
	buf     []T // window is buf[head:]
	head    int
}

// New returns an empty context. mod must be positive; it is not validated.
func New[T Unit](mod, charset uint64) *Hash[T] {
	return &Hash[T]{mod: mod, charset: charset}
}

// Add appends c to the window.
func (h *Hash[T]) Add(c T) {
	h.buf = append(h.buf, c)
	h.sum = mulAddMod(h.sum, h.charset, uint64(c), h.mod)
}

// RemoveFirst evicts the oldest unit from the window.
func (h *Hash[T]) RemoveFirst() error {
	n := h.Len()
	if n == 0 {
		return ErrEmptyWindow
	}

	lead := mulAddMod(powMod(h.charset, uint64(n-1), h.mod), uint64(h.buf[h.head]), 0, h.mod)
	if h.sum >= lead {
		h.sum -= lead
	} else {
		h.sum += h.mod - lead
	}

	h.head++
	// reclaim the evicted prefix once it dominates the buffer
	if h.head > 32 && h.head*2 > len(h.buf) {
		h.buf = append(h.buf[:0], h.buf[h.head:]...)
		h.head = 0
	}
	return nil
}

// Len returns the number of units in the window.
func (h *Hash[T]) Len() int {
	return len(h.buf) - h.head
}

// Sum returns the hash of the current window, in [0, mod).
func (h *Hash[T]) Sum() uint64 {
	return h.sum
}

// Window returns the window contents, oldest first. The slice aliases the
// context's storage and is only valid until the next Add or RemoveFirst.
func (h *Hash[T]) Window() []T {
	return h.buf[h.head:len(h.buf):len(h.buf)]
}

// Equal reports whether h and o hold the same hash and the same window
// contents in the same order.
func (h *Hash[T]) Equal(o *Hash[T]) bool {
	if h == o {
		return true
	}
	if o == nil {
		return false
	}
	return h.sum == o.sum && slices.Equal(h.Window(), o.Window())
}

// Reset empties the window, keeping the allocated storage.
func (h *Hash[T]) Reset() {
	h.buf = h.buf[:0]
	h.head = 0
	h.sum = 0
}

// Checksum computes the hash of units from scratch.
func Checksum[T Unit](mod, charset uint64, units []T) uint64 {
	var sum uint64
	for _, c := range units {
		sum = mulAddMod(sum, charset, uint64(c), mod)
	}
	return sum
}

// mulAddMod returns (a*b + c) mod m without overflow, given a < m.
func mulAddMod(a, b, c, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	var carry uint64
	lo, carry = bits.Add64(lo, c, 0)
	hi += carry
	if hi >= m {
		hi %= m
	}
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// powMod returns base^exp mod m.
func powMod(base, exp, m uint64) uint64 {
	result := 1 % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulAddMod(result, base, 0, m)
		}
		base = mulAddMod(base, base, 0, m)
		exp >>= 1
	}
	return result
}
