package prime

import "github.com/zooxyt/libbigint/bigint"

// MillerRabin runs the Miller-Rabin primality test on n for the given
// number of rounds and reports whether n is probably prime. Each round
// draws an independent random witness; a composite n is declared prime by
// mistake with probability at most 4^-rounds, regardless of how n was
// constructed. Unlike Fermat's test, no composite can defeat every
// possible witness.
//
// Every round reduces modulo n, so a Barrett reduction context for n is
// built once up front and reused across rounds and across the squaring
// steps within each round, avoiding one division per modular reduction.
func MillerRabin(n *bigint.Int, rounds int, src bigint.RandomSource) (bool, error) {
	if rounds <= 0 {
		return false, ErrRoundsTooFew
	}
	two := bigint.NewFromUint32(2)
	three := bigint.NewFromUint32(3)
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Equal(two) || n.Equal(three) {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	nMinusOne := bigint.New().Sub(n, bigint.NewFromUint32(1))
	d := nMinusOne.Clone()
	s := 0
	for d.Bit(0) == 0 {
		d.ShiftRight(d, 1)
		s++
	}

	barrett, err := bigint.BuildBarrett(n)
	if err != nil {
		return false, err
	}

	for i := 0; i < rounds; i++ {
		if !millerRabinPass(nMinusOne, d, s, randomBase(n, src), barrett) {
			return false, nil
		}
	}
	return true, nil
}

// millerRabinPass runs a single Miller-Rabin witness test with base a
// against n = d*2^s + 1, reducing every intermediate value through barrett
// instead of n directly.
func millerRabinPass(nMinusOne, d *bigint.Int, s int, a *bigint.Int, barrett *bigint.Barrett) bool {
	x := bigint.New()
	if _, err := x.PowModWithBarrett(a, d, barrett); err != nil {
		return false
	}
	if x.Equal(bigint.NewFromUint32(1)) || x.Equal(nMinusOne) {
		return true
	}
	for i := 0; i < s-1; i++ {
		x.Square(x)
		if _, err := barrett.ModWithBarrett(x, x); err != nil {
			return false
		}
		if x.Equal(nMinusOne) {
			return true
		}
		if x.Equal(bigint.NewFromUint32(1)) {
			return false
		}
	}
	return false
}
