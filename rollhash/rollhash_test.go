package rollhash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMatchesChecksum(t *testing.T) {
	h := New[uint16](DefaultMod, DefaultCharset)
	units := []uint16{'a', 'b', 'c', 0xFFFF, 0}
	for i, c := range units {
		h.Add(c)
		assert.Equal(t, i+1, h.Len())
		assert.Equal(t, Checksum(DefaultMod, DefaultCharset, units[:i+1]), h.Sum())
	}
}

func TestAddSingle(t *testing.T) {
	h := New[byte](DefaultMod, DefaultCharset)
	h.Add('a')
	assert.Equal(t, uint64('a'%DefaultMod), h.Sum())
	h.Add('b')
	assert.Equal(t, uint64(('a'*DefaultCharset+'b')%DefaultMod), h.Sum())
}

func TestRemoveFirstEmpty(t *testing.T) {
	h := New[byte](DefaultMod, DefaultCharset)
	require.ErrorIs(t, h.RemoveFirst(), ErrEmptyWindow)

	h.Add('x')
	require.NoError(t, h.RemoveFirst())
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, uint64(0), h.Sum())
	require.ErrorIs(t, h.RemoveFirst(), ErrEmptyWindow)
}

func TestRemoveFirst(t *testing.T) {
	h := New[byte](DefaultMod, DefaultCharset)
	for _, c := range []byte("hello") {
		h.Add(c)
	}
	require.NoError(t, h.RemoveFirst())
	require.NoError(t, h.RemoveFirst())
	assert.Equal(t, []byte("llo"), h.Window())
	assert.Equal(t, Checksum(DefaultMod, DefaultCharset, []byte("llo")), h.Sum())
}

func TestEqual(t *testing.T) {
	a := New[byte](DefaultMod, DefaultCharset)
	b := New[byte](DefaultMod, DefaultCharset)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))

	for _, c := range []byte("xabc") {
		a.Add(c)
	}
	require.NoError(t, a.RemoveFirst())
	for _, c := range []byte("abc") {
		b.Add(c)
	}
	assert.True(t, a.Equal(b))

	b.Add('d')
	assert.False(t, a.Equal(b))
}

func TestEqualRejectsCollision(t *testing.T) {
	// with mod 1 every window hashes to 0
	a := New[byte](1, DefaultCharset)
	b := New[byte](1, DefaultCharset)
	a.Add('a')
	b.Add('b')
	assert.Equal(t, a.Sum(), b.Sum())
	assert.False(t, a.Equal(b))
}

func TestReset(t *testing.T) {
	h := New[byte](DefaultMod, DefaultCharset)
	h.Add('a')
	h.Add('b')
	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, uint64(0), h.Sum())
	assert.Empty(t, h.Window())
}

func TestInvariantRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	params := []struct {
		mod, charset uint64
	}{
		{DefaultMod, DefaultCharset},
		{1_000_000_007, 256},
		{1<<63 + 29, 1 << 16},
		{^uint64(0), 1<<16 + 1},
		{2, 3},
	}

	for _, p := range params {
		h := New[uint16](p.mod, p.charset)
		var shadow []uint16
		for op := 0; op < 2000; op++ {
			if len(shadow) > 0 && rng.Intn(3) == 0 {
				require.NoError(t, h.RemoveFirst())
				shadow = shadow[1:]
			} else {
				c := uint16(rng.Intn(1 << 16))
				h.Add(c)
				shadow = append(shadow, c)
			}
			require.Equal(t, len(shadow), h.Len())
			if len(shadow) > 0 {
				require.Equal(t, shadow, h.Window())
			}
			require.Equal(t, Checksum(p.mod, p.charset, shadow), h.Sum(),
				"mod=%d charset=%d op=%d", p.mod, p.charset, op)
			require.Less(t, h.Sum(), p.mod)
		}
	}
}

func TestSlidingWindowCompaction(t *testing.T) {
	h := New[byte](DefaultMod, DefaultCharset)
	data := make([]byte, 10_000)
	for i := range data {
		data[i] = byte(i * 7)
	}
	const width = 5
	for i, c := range data {
		h.Add(c)
		if h.Len() > width {
			require.NoError(t, h.RemoveFirst())
		}
		if i >= width-1 {
			window := data[i-width+1 : i+1]
			require.Equal(t, window, h.Window())
			require.Equal(t, Checksum(DefaultMod, DefaultCharset, window), h.Sum())
		}
	}
	assert.LessOrEqual(t, cap(h.buf), 256)
}

func TestPowMod(t *testing.T) {
	assert.Equal(t, uint64(0), powMod(5, 3, 1))
	assert.Equal(t, uint64(1), powMod(7, 0, 13))
	assert.Equal(t, uint64(125%13), powMod(5, 3, 13))
	assert.Equal(t, uint64(1), powMod(DefaultCharset, 100, DefaultMod)) // Fermat: 101 is prime
}

func BenchmarkSlide(b *testing.B) {
	data := make([]byte, 1<<16)
	for i := range data {
		data[i] = byte(i)
	}
	h := New[byte](DefaultMod, DefaultCharset)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Reset()
		for _, c := range data {
			h.Add(c)
			if h.Len() > 16 {
				_ = h.RemoveFirst()
			}
		}
	}
}
