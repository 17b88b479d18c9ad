package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBarrettRejectsNonPositiveModulus(t *testing.T) {
	t.Parallel()
	_, err := BuildBarrett(New())
	assert.ErrorIs(t, err, ErrNonPositiveModulus)
}

func TestModWithBarrettMatchesMod(t *testing.T) {
	t.Parallel()
	n := NewFromUint32(1000000007)
	barrett, err := BuildBarrett(n)
	require.NoError(t, err)

	for _, v := range []uint32{0, 1, 999999999, 4294967295} {
		x := NewFromUint32(v)
		viaMod, err := New().Mod(x, n)
		require.NoError(t, err)

		viaBarrett := New()
		_, err = barrett.ModWithBarrett(viaBarrett, x)
		require.NoError(t, err)

		assert.Truef(t, viaMod.Equal(viaBarrett), "value %d", v)
	}
}
