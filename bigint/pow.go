package bigint

// isOdd reports whether e's least significant bit is set. e must be
// non-negative (checked by callers before this is used).
func isOdd(e *Int) bool {
	return e.digits[0]&1 == 1
}

// absMagnitude returns a new, always-positive Int sharing x's magnitude.
func absMagnitude(x *Int) *Int {
	return fromLimbs(x.digits[:x.used])
}

// Pow sets z to x raised to the non-negative integer power e, and returns
// (z, nil). e must be non-negative; a negative e returns ErrNegativeExponent
// instead of panicking. x^0 is 1 for every x, including 0.
//
// The sign of a negative base alternates with the parity of the exponent:
// (-x)^e is negative exactly when e is odd.
func (z *Int) Pow(x, e *Int) (*Int, error) {
	if e.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	if e.IsZero() {
		z.setFromRawMagnitude([]uint32{1}, 1)
		return z, nil
	}
	resultSign := int8(1)
	if x.IsNegative() && isOdd(e) {
		resultSign = -1
	}

	result := NewFromUint32(1)
	base := absMagnitude(x)
	for i := 0; i < e.bits; i++ {
		bit := (e.digits[i/limbBits] >> uint(i%limbBits)) & 1
		if bit == 1 {
			result.Mul(result, base)
		}
		if i+1 < e.bits {
			base.Square(base)
		}
	}
	z.setFromRawMagnitude(result.digits[:result.used], resultSign)
	return z, nil
}

// PowMod sets z to (x^e) mod n via square-and-multiply modular
// exponentiation, reducing after every multiplication so intermediate
// values never grow past twice n's bit length. n must be strictly
// positive and e non-negative.
//
// As with Pow, the result's sign follows the base's sign and the
// exponent's parity; it is not folded into a canonical non-negative
// residue when the base is negative.
func (z *Int) PowMod(x, e, n *Int) (*Int, error) {
	return z.powModImpl(x, e, n, nil)
}

// PowModWithBarrett is PowMod accelerated by a precomputed Barrett
// reduction context for n, avoiding one division per modular reduction.
func (z *Int) PowModWithBarrett(x, e *Int, b *Barrett) (*Int, error) {
	if b == nil {
		return nil, ErrNonPositiveModulus
	}
	return z.powModImpl(x, e, b.modulus, b)
}

func (z *Int) powModImpl(x, e, n *Int, barrett *Barrett) (*Int, error) {
	if n.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}
	if e.Sign() < 0 {
		return nil, ErrNegativeExponent
	}

	reduce := func(v *Int) (*Int, error) {
		r := New()
		if barrett != nil {
			return barrett.ModWithBarrett(r, v)
		}
		return r.Mod(v, n)
	}

	if e.IsZero() {
		z.setFromRawMagnitude([]uint32{1}, 1)
		return z, nil
	}
	resultSign := int8(1)
	if x.IsNegative() && isOdd(e) {
		resultSign = -1
	}

	base, err := reduce(absMagnitude(x))
	if err != nil {
		return nil, err
	}
	result := NewFromUint32(1)
	for i := 0; i < e.bits; i++ {
		bit := (e.digits[i/limbBits] >> uint(i%limbBits)) & 1
		if bit == 1 {
			result.Mul(result, base)
			result, err = reduce(result)
			if err != nil {
				return nil, err
			}
		}
		if i+1 < e.bits {
			base.Square(base)
			base, err = reduce(base)
			if err != nil {
				return nil, err
			}
		}
	}
	z.setFromRawMagnitude(result.digits[:result.used], resultSign)
	return z, nil
}
