package bigint

// DivMod sets z to the truncated quotient and r to the remainder of x / y,
// and returns (z, r, nil). The remainder takes the sign of x (truncating
// division), matching integer division in Go and C. y must be non-zero;
// a zero divisor returns ErrDivideByZero instead of panicking.
func (z *Int) DivMod(r, x, y *Int) (*Int, *Int, error) {
	if y.IsZero() {
		return nil, nil, ErrDivideByZero
	}
	if x.IsZero() {
		z.setMagnitudeZero()
		r.setMagnitudeZero()
		return z, r, nil
	}

	qDigits, rDigits := divModMagnitude(x, y)

	quotientSign := int8(1)
	if x.sign != y.sign {
		quotientSign = -1
	}
	z.setFromRawMagnitude(qDigits, quotientSign)
	r.setFromRawMagnitude(rDigits, x.sign)
	return z, r, nil
}

// Div sets z to the truncated quotient of x / y and returns (z, nil). A
// zero divisor returns ErrDivideByZero instead of panicking.
func (z *Int) Div(x, y *Int) (*Int, error) {
	scratch := New()
	_, _, err := z.DivMod(scratch, x, y)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// Mod sets z to the remainder of x / y, with the sign of x, and returns
// (z, nil). A zero divisor returns ErrDivideByZero instead of panicking.
func (z *Int) Mod(x, y *Int) (*Int, error) {
	scratch := New()
	_, _, err := scratch.DivMod(z, x, y)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// divModMagnitude performs schoolbook restoring division on |x| and |y|,
// one bit of the quotient at a time: shift the running remainder left,
// bring in the next dividend bit, and subtract the divisor back out
// whenever the remainder has grown large enough to hold it.
func divModMagnitude(x, y *Int) (qDigits, rDigits []uint32) {
	if compareMagnitude(x, y) < 0 {
		rem := make([]uint32, x.used)
		copy(rem, x.digits[:x.used])
		return []uint32{0}, rem
	}

	qLimbs := (x.bits + limbBits - 1) / limbBits
	q := make([]uint32, qLimbs)
	r := New()

	yMag := fromLimbs(y.digits[:y.used])

	for i := x.bits - 1; i >= 0; i-- {
		r.ShiftLeft(r, 1)
		bit := (x.digits[i/limbBits] >> uint(i%limbBits)) & 1
		if bit == 1 {
			r.digits[0] |= 1
			r.trim()
		}
		if r.Cmp(yMag) >= 0 {
			r.Sub(r, yMag)
			q[i/limbBits] |= 1 << uint(i%limbBits)
		}
	}
	return q, r.digits[:r.used]
}
