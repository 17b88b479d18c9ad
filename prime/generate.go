package prime

import "github.com/zooxyt/libbigint/bigint"

// GeneratePrime samples random candidates of exactly bitLen bits until one
// survives trial division against the small-prime sieve and rounds rounds
// of Miller-Rabin, or MaxAttempts candidates have been tried. Random only
// guarantees at most bitLen bits, so each candidate has its low bit and its
// (bitLen-1)-th bit forced set here, guaranteeing both oddness and the
// requested bit length.
func GeneratePrime(bitLen int, src bigint.RandomSource, opts ...Option) (*bigint.Int, error) {
	if bitLen < 2 {
		return nil, ErrBitLengthTooSmall
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rounds <= 0 {
		return nil, ErrRoundsTooFew
	}

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		candidate, err := bigint.Random(bitLen, src)
		if err != nil {
			return nil, err
		}
		forceOdd(candidate)
		forceTopBit(candidate, bitLen)

		if trialDivide(candidate) {
			continue
		}
		ok, err := MillerRabin(candidate, cfg.Rounds, src)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
	return nil, ErrGenerationExhausted
}

// forceOdd sets a candidate's least significant bit so Random's output,
// which may land on an even number, is always tested as odd. Every prime
// above 2 is odd, so sieving out even candidates up front roughly halves
// the number of candidates GeneratePrime must test.
func forceOdd(x *bigint.Int) {
	x.SetBit(x, 0, 1)
}

// forceTopBit sets a candidate's (bitLen-1)-th bit so it always carries the
// full requested bit length, compensating for Random's at-most-bitLen
// contract.
func forceTopBit(x *bigint.Int, bitLen int) {
	x.SetBit(x, bitLen-1, 1)
}
