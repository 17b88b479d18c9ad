package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromUint32(t *testing.T) {
	t.Parallel()
	x := NewFromUint32(42)
	assert.Equal(t, 1, x.Sign())
	assert.Equal(t, "0x0000002A", x.String())
}

func TestNewFromInt64(t *testing.T) {
	t.Parallel()

	t.Run("positive", func(t *testing.T) {
		t.Parallel()
		x := NewFromInt64(100)
		assert.Equal(t, 1, x.Sign())
		assert.Equal(t, "0x00000064", x.String())
	})

	t.Run("negative", func(t *testing.T) {
		t.Parallel()
		x := NewFromInt64(-100)
		assert.Equal(t, -1, x.Sign())
		assert.Equal(t, "-0x00000064", x.String())
	})

	t.Run("zero is always positive", func(t *testing.T) {
		t.Parallel()
		x := NewFromInt64(0)
		assert.Equal(t, 0, x.Sign())
		assert.False(t, x.IsNegative())
		assert.Equal(t, "0x00000000", x.String())
	})
}

func TestBitLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    uint32
		want int
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"word boundary", 0xFFFFFFFF, 32},
		{"power of two", 0x80000000, 32},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.want, NewFromUint32(c.v).BitLen())
		})
	}

	t.Run("spans multiple limbs", func(t *testing.T) {
		t.Parallel()
		x := New()
		_, err := x.ShiftLeft(NewFromUint32(1), 64)
		require.NoError(t, err)
		assert.Equal(t, 65, x.BitLen())
	})
}

func TestClone(t *testing.T) {
	t.Parallel()
	x := NewFromUint32(7)
	y := x.Clone()
	y.Add(y, NewFromUint32(1))
	assert.Equal(t, "0x00000007", x.String(), "mutating the clone must not affect the original")
	assert.Equal(t, "0x00000008", y.String())
}

func TestAssignFrom(t *testing.T) {
	t.Parallel()
	x := New()
	src := NewFromUint32(123456)
	x.AssignFrom(src)
	assert.True(t, x.Equal(src))
	src.Add(src, NewFromUint32(1))
	assert.False(t, x.Equal(src), "AssignFrom must copy, not alias")
}

func TestRandom(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive bit length", func(t *testing.T) {
		t.Parallel()
		_, err := Random(0, fixedSource(1))
		assert.ErrorIs(t, err, ErrBitLengthRange)
	})

	t.Run("an all-ones source produces exactly the requested bit length", func(t *testing.T) {
		t.Parallel()
		for _, bitLen := range []int{1, 8, 32, 33, 64, 65, 769} {
			x, err := Random(bitLen, fixedSource(0xFFFFFFFF))
			require.NoError(t, err)
			assert.Equalf(t, bitLen, x.BitLen(), "bit length %d", bitLen)
		}
	})

	t.Run("never forces the top bit, so a shorter draw trims down", func(t *testing.T) {
		t.Parallel()
		x, err := Random(64, fixedSource(1))
		require.NoError(t, err)
		assert.Equal(t, 33, x.BitLen())
	})

	t.Run("an all-zero draw is promoted to the value 1", func(t *testing.T) {
		t.Parallel()
		x, err := Random(32, fixedSource(0))
		require.NoError(t, err)
		assert.Equal(t, "0x00000001", x.String())
	})
}

// fixedSource is a deterministic RandomSource for tests.
type fixedSource uint32

func (f fixedSource) Uint32() uint32 { return uint32(f) }
