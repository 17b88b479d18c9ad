package prime

import "errors"

var (
	// ErrBitLengthTooSmall is returned by GeneratePrime when asked for a
	// candidate too short to carry a forced top and bottom bit (2 bits).
	ErrBitLengthTooSmall = errors.New("prime: bit length must be at least 2")

	// ErrRoundsTooFew is returned when a caller asks for zero or fewer
	// Miller-Rabin rounds; the result would carry no confidence at all.
	ErrRoundsTooFew = errors.New("prime: rounds must be positive")

	// ErrGenerationExhausted is returned by GeneratePrime when no prime
	// candidate was found within MaxAttempts tries.
	ErrGenerationExhausted = errors.New("prime: exhausted attempts without finding a prime")
)
