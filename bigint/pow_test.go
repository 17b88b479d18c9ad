package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		base int64
		exp  uint32
		want string
	}{
		{"anything to the zero is one", 0, 0, "0x00000001"},
		{"one to any power is one", 1, 1000, "0x00000001"},
		{"small power", 2, 10, "0x00000400"},
		{"negative base, even exponent is positive", -2, 4, "0x00000010"},
		{"negative base, odd exponent is negative", -2, 3, "-0x00000008"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			z, err := New().Pow(NewFromInt64(c.base), NewFromUint32(c.exp))
			require.NoError(t, err)
			assert.Equal(t, c.want, z.String())
		})
	}

	t.Run("negative exponent returns an error", func(t *testing.T) {
		t.Parallel()
		_, err := New().Pow(NewFromUint32(2), NewFromInt64(-1))
		assert.ErrorIs(t, err, ErrNegativeExponent)
	})
}

func TestPowMod(t *testing.T) {
	t.Parallel()

	// 4^13 mod 497 = 445, the textbook modexp example (HAC / RSA primers).
	z := New()
	_, err := z.PowMod(NewFromUint32(4), NewFromUint32(13), NewFromUint32(497))
	require.NoError(t, err)
	assert.Equal(t, "0x000001BD", z.String())

	t.Run("non-positive modulus", func(t *testing.T) {
		t.Parallel()
		_, err := New().PowMod(NewFromUint32(2), NewFromUint32(2), New())
		assert.ErrorIs(t, err, ErrNonPositiveModulus)
	})
}

func TestPowModWithBarrettMatchesPowMod(t *testing.T) {
	t.Parallel()
	n, err := Random(256, fixedSource(0x27220A95))
	require.NoError(t, err)
	n.digits[0] |= 1 // make it odd, a realistic modulus shape

	base, err := Random(200, fixedSource(0x41C64E6D))
	require.NoError(t, err)
	exp := NewFromUint32(65537)

	viaMod := New()
	_, err = viaMod.PowMod(base, exp, n)
	require.NoError(t, err)

	barrett, err := BuildBarrett(n)
	require.NoError(t, err)
	viaBarrett := New()
	_, err = viaBarrett.PowModWithBarrett(base, exp, barrett)
	require.NoError(t, err)

	assert.True(t, viaMod.Equal(viaBarrett))
}

func TestDiffieHellmanCrossCheck(t *testing.T) {
	t.Parallel()
	// A toy Diffie-Hellman exchange: both sides must derive the same
	// shared secret g^(a*b) mod p regardless of which exponent is
	// applied first.
	p := NewFromUint32(2147483647) // a Mersenne prime, 2^31-1
	g := NewFromUint32(5)
	a := NewFromUint32(123)
	b := NewFromUint32(456)

	A := New()
	_, err := A.PowMod(g, a, p)
	require.NoError(t, err)
	B := New()
	_, err = B.PowMod(g, b, p)
	require.NoError(t, err)

	secretFromA := New()
	_, err = secretFromA.PowMod(B, a, p)
	require.NoError(t, err)
	secretFromB := New()
	_, err = secretFromB.PowMod(A, b, p)
	require.NoError(t, err)

	assert.True(t, secretFromA.Equal(secretFromB))
}
