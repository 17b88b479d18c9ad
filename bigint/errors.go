package bigint

import "errors"

// Sentinel errors returned by this package. Callers should compare against
// these with errors.Is rather than matching on message text.
var (
	// ErrInvalidHexDigit is returned when parsing a hex string that
	// contains a byte outside [0-9a-fA-F].
	ErrInvalidHexDigit = errors.New("bigint: invalid hex digit")

	// ErrEmptyHexString is returned when parsing an empty or sign-only
	// hex string with no digits.
	ErrEmptyHexString = errors.New("bigint: hex string has no digits")

	// ErrDivideByZero is returned by Div, Mod, and DivMod when the
	// divisor is zero.
	ErrDivideByZero = errors.New("bigint: division by zero")

	// ErrNonPositiveModulus is returned by PowMod and BuildBarrett when
	// the modulus is not strictly positive, and by ModWithBarrett and
	// PowModWithBarrett when given a nil Barrett context.
	ErrNonPositiveModulus = errors.New("bigint: modulus must be positive")

	// ErrNegativeExponent is returned by Pow and PowMod when the exponent
	// is negative; this library only supports non-negative integer powers.
	ErrNegativeExponent = errors.New("bigint: exponent must be non-negative")

	// ErrInvalidShift is returned by ShiftLeft and ShiftRight when the
	// shift amount is negative.
	ErrInvalidShift = errors.New("bigint: shift amount must be non-negative")

	// ErrBitLengthRange is returned by Random when asked to produce a
	// value with a non-positive bit length.
	ErrBitLengthRange = errors.New("bigint: bit length must be positive")
)
