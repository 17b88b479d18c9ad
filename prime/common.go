package prime

import "github.com/zooxyt/libbigint/bigint"

// randomBase returns a random witness a in [2, n-2], the range both the
// Fermat and Miller-Rabin tests draw their bases from.
func randomBase(n *bigint.Int, src bigint.RandomSource) *bigint.Int {
	span := bigint.New().Sub(n, bigint.NewFromUint32(3)) // n-3, so a lands in [0, n-4]
	raw, _ := bigint.Random(n.BitLen(), src)
	a, _ := bigint.New().Mod(raw, span)
	a.Add(a, bigint.NewFromUint32(2))
	return a
}

// trialDivide reports whether n is divisible by any prime below
// smallPrimeBound, other than n itself. It is a cheap pre-filter run
// before the probabilistic tests.
func trialDivide(n *bigint.Int) bool {
	for _, p := range smallPrimes {
		pInt := bigint.NewFromUint32(p)
		if n.Equal(pInt) {
			return false
		}
		rem, _ := bigint.New().Mod(n, pInt)
		if rem.IsZero() {
			return true
		}
	}
	return false
}
