package bigint

// Barrett precomputes the constant needed to reduce repeated values modulo
// a fixed modulus without division, per HAC 14.42. Building it costs one
// division; each subsequent reduction costs two multiplications and a
// handful of subtractions. PowModWithBarrett uses this to avoid one
// division per bit of the exponent.
type Barrett struct {
	modulus *Int
	mu      *Int // floor(b^(2k) / modulus), where b = 2^limbBits
	k       int  // modulus's limb count
}

// BuildBarrett precomputes a Barrett reduction context for n. n must be
// strictly positive.
func BuildBarrett(n *Int) (*Barrett, error) {
	if n.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}
	k := n.used
	base, err := New().ShiftLeft(NewFromUint32(1), 2*k*limbBits)
	if err != nil {
		return nil, err
	}
	mu, err := New().Div(base, n)
	if err != nil {
		return nil, err
	}
	return &Barrett{modulus: n.Clone(), mu: mu, k: k}, nil
}

// lowLimbs returns a copy of x's low n limbs: x mod b^n, where b = 2^limbBits.
func lowLimbs(x *Int, n int) []uint32 {
	if x.used <= n {
		out := make([]uint32, x.used)
		copy(out, x.digits[:x.used])
		return out
	}
	out := make([]uint32, n)
	copy(out, x.digits[:n])
	return out
}

// ModWithBarrett sets z to x mod b.modulus, for x in [0, b^(2k)), using the
// precomputed reduction constant instead of a full division. x must be
// non-negative; the result is always a non-negative residue in [0, modulus).
func (b *Barrett) ModWithBarrett(z, x *Int) (*Int, error) {
	if b == nil {
		return nil, ErrNonPositiveModulus
	}
	k := b.k

	q1, err := New().ShiftRight(x, (k-1)*limbBits)
	if err != nil {
		return nil, err
	}
	q2 := New().Mul(q1, b.mu)
	q3, err := New().ShiftRight(q2, (k+1)*limbBits)
	if err != nil {
		return nil, err
	}

	r1 := fromLimbs(lowLimbs(x, k+1))
	r2Full := New().Mul(q3, b.modulus)
	r2 := fromLimbs(lowLimbs(r2Full, k+1))

	r := New().Sub(r1, r2)
	if r.Sign() < 0 {
		wrap, err := New().ShiftLeft(NewFromUint32(1), (k+1)*limbBits)
		if err != nil {
			return nil, err
		}
		r.Add(r, wrap)
	}
	for r.Cmp(b.modulus) >= 0 {
		r.Sub(r, b.modulus)
	}
	z.AssignFrom(r)
	return z, nil
}
