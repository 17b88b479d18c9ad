package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftLeft(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    uint32
		n    int
		want string
	}{
		{"no shift", 1, 0, "0x00000001"},
		{"shift within a limb", 1, 4, "0x00000010"},
		{"shift crosses a limb boundary", 1, 32, "0x0000000100000000"},
		{"shift crosses by a partial word", 1, 33, "0x0000000200000000"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			z, err := New().ShiftLeft(NewFromUint32(c.v), c.n)
			require.NoError(t, err)
			assert.Equal(t, c.want, z.String())
		})
	}

	t.Run("negative shift returns an error", func(t *testing.T) {
		t.Parallel()
		_, err := New().ShiftLeft(NewFromUint32(1), -1)
		assert.ErrorIs(t, err, ErrInvalidShift)
	})
}

func TestShiftRight(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    uint32
		n    int
		want string
	}{
		{"no shift", 0x100, 0, "0x00000100"},
		{"shift within a limb", 0x100, 4, "0x00000010"},
		{"shift past all significant bits is zero", 1, 5, "0x00000000"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			z, err := New().ShiftRight(NewFromUint32(c.v), c.n)
			require.NoError(t, err)
			assert.Equal(t, c.want, z.String())
		})
	}

	t.Run("negative shift returns an error", func(t *testing.T) {
		t.Parallel()
		_, err := New().ShiftRight(NewFromUint32(1), -1)
		assert.ErrorIs(t, err, ErrInvalidShift)
	})
}

func TestShiftRoundTrip(t *testing.T) {
	t.Parallel()
	x := NewFromInt64(123456789)
	shifted, err := New().ShiftLeft(x, 70)
	require.NoError(t, err)
	back, err := New().ShiftRight(shifted, 70)
	require.NoError(t, err)
	assert.True(t, back.Equal(x))
}
