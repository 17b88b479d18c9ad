package prime

import "github.com/zooxyt/libbigint/bigint"

// Fermat runs Fermat's primality test on n for the given number of rounds,
// each drawing a random base a and checking a^(n-1) mod n == 1.
//
// Fermat's test is cheaper than Miller-Rabin but is fooled by every base
// coprime to a Carmichael number (561, 1105, 1729, ...): such composites
// pass every round no matter how many are run. GeneratePrime uses
// Miller-Rabin, not this test, for that reason; Fermat is exported mainly
// to demonstrate the gap Miller-Rabin closes.
func Fermat(n *bigint.Int, rounds int, src bigint.RandomSource) (bool, error) {
	if rounds <= 0 {
		return false, ErrRoundsTooFew
	}
	if n.Cmp(bigint.NewFromUint32(3)) < 0 {
		return n.Cmp(bigint.NewFromUint32(2)) == 0, nil
	}
	if n.Sign() <= 0 {
		return false, nil
	}

	exponent := bigint.New().Sub(n, bigint.NewFromUint32(1))
	for i := 0; i < rounds; i++ {
		a := randomBase(n, src)
		result := bigint.New()
		if _, err := result.PowMod(a, exponent, n); err != nil {
			return false, err
		}
		if !result.Equal(bigint.NewFromUint32(1)) {
			return false, nil
		}
	}
	return true, nil
}
