package bigint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	t.Run("valid values", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			in   string
			want string
		}{
			{"0", "0x00000000"},
			{"1", "0x00000001"},
			{"ff", "0x000000FF"},
			{"-ff", "-0x000000FF"},
			{"+10", "0x00000010"},
			{"deadbeef", "0xDEADBEEF"},
			{"123456789abcdef0123456789abcdef", "0x0123456789ABCDEF0123456789ABCDEF"},
		}
		for _, c := range cases {
			c := c
			t.Run(c.in, func(t *testing.T) {
				t.Parallel()
				x, err := ParseHex(c.in)
				require.NoError(t, err)
				assert.Equal(t, c.want, x.String())
			})
		}
	})

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()
		_, err := ParseHex("")
		assert.ErrorIs(t, err, ErrEmptyHexString)
	})

	t.Run("sign with no digits", func(t *testing.T) {
		t.Parallel()
		_, err := ParseHex("-")
		assert.ErrorIs(t, err, ErrEmptyHexString)
	})

	t.Run("invalid digit is rejected, not silently zeroed", func(t *testing.T) {
		t.Parallel()
		_, err := ParseHex("12g4")
		assert.ErrorIs(t, err, ErrInvalidHexDigit)
	})
}

func TestStringRendersSpecFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    int64
		want string
	}{
		{"zero", 0, "0x00000000"},
		{"small positive", 1, "0x00000001"},
		{"small negative", -1, "-0x00000001"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.want, NewFromInt64(c.v).String())
		})
	}

	t.Run("carry across a limb prints two full groups", func(t *testing.T) {
		t.Parallel()
		z := New().Add(NewFromUint32(0xFFFFFFFF), NewFromUint32(1))
		assert.Equal(t, "0x0000000100000000", z.String())
	})
}

// stripHexPrefix undoes String's "0x"/"-0x" rendering so the result can be
// fed back into ParseHex, which (like the source's from_hex_string) takes a
// bare hex magnitude with no "0x" prefix.
func stripHexPrefix(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	return sign + strings.TrimPrefix(s, "0x")
}

func FuzzParseHexString(f *testing.F) {
	seeds := []string{"0", "1", "-1", "ff", "+ff", "deadbeef1234", "-123456789abcdef"}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		x, err := ParseHex(s)
		if err != nil {
			return
		}
		roundTripped, err := ParseHex(stripHexPrefix(x.String()))
		require.NoError(t, err)
		assert.True(t, x.Equal(roundTripped))
	})
}
