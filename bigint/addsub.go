package bigint

// negatedSign returns the sign y would carry if negated. Zero's sign is
// always positive, negated or not.
func negatedSign(y *Int) int8 {
	if y.IsZero() {
		return 1
	}
	return -y.sign
}

// Add sets z to x + y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	return z.addWithSign(x, y.sign, y)
}

// Sub sets z to x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	return z.addWithSign(x, negatedSign(y), y)
}

// addWithSign sets z to x + (signed magnitude of y, using ySign instead of
// y.sign). This lets Sub reuse Add's dispatch logic without mutating y.
func (z *Int) addWithSign(x *Int, ySign int8, y *Int) *Int {
	switch {
	case x.sign == ySign:
		z.setMagnitudeSum(x, y)
		z.sign = x.sign
	case compareMagnitude(x, y) == 0:
		z.setMagnitudeZero()
	case compareMagnitude(x, y) > 0:
		z.setMagnitudeDiff(x, y)
		z.sign = x.sign
	default:
		z.setMagnitudeDiff(y, x)
		z.sign = ySign
	}
	z.trim()
	return z
}

// setMagnitudeSum computes |x| + |y| into z via ripple-carry addition,
// ignoring both operands' signs.
func (z *Int) setMagnitudeSum(x, y *Int) {
	big, small := x, y
	if big.used < small.used {
		big, small = small, big
	}
	z.ensureCapacity(big.used + 1)

	var carry uint64
	i := 0
	for ; i < small.used; i++ {
		sum := uint64(big.digits[i]) + uint64(small.digits[i]) + carry
		z.digits[i] = uint32(sum)
		carry = sum >> limbBits
	}
	for ; i < big.used; i++ {
		sum := uint64(big.digits[i]) + carry
		z.digits[i] = uint32(sum)
		carry = sum >> limbBits
	}
	z.digits[i] = uint32(carry)
	for j := i + 1; j < len(z.digits); j++ {
		z.digits[j] = 0
	}
	z.used = i + 1
}

// setMagnitudeDiff computes |big| - |small| into z via a borrow chain.
// Callers must ensure |big| >= |small|.
func (z *Int) setMagnitudeDiff(big, small *Int) {
	z.ensureCapacity(big.used)

	var borrow uint64
	i := 0
	for ; i < small.used; i++ {
		diff := uint64(big.digits[i]) - uint64(small.digits[i]) - borrow
		z.digits[i] = uint32(diff)
		borrow = (diff >> 63) & 1
	}
	for ; i < big.used; i++ {
		diff := uint64(big.digits[i]) - borrow
		z.digits[i] = uint32(diff)
		borrow = (diff >> 63) & 1
	}
	for j := i; j < len(z.digits); j++ {
		z.digits[j] = 0
	}
	z.used = big.used
}

// setMagnitudeZero sets z's magnitude (not its sign) to zero.
func (z *Int) setMagnitudeZero() {
	z.ensureCapacity(1)
	for i := range z.digits {
		z.digits[i] = 0
	}
	z.used = 1
	z.sign = 1
}
