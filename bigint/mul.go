package bigint

import "github.com/zooxyt/libbigint/bigint/internal/numeric"

// karatsubaThresholdBits is the bit length, of the smaller operand, above
// which Mul switches from schoolbook to Karatsuba multiplication.
const karatsubaThresholdBits = 768

// Mul sets z to x * y and returns z. When x and y are the same Int, Mul
// dispatches to the dedicated squaring path instead of running the general
// multiplication algorithms against identical operands.
func (z *Int) Mul(x, y *Int) *Int {
	if x == y {
		return z.Square(x)
	}
	if x.IsZero() || y.IsZero() {
		z.setMagnitudeZero()
		return z
	}
	sign := int8(1)
	if x.sign != y.sign {
		sign = -1
	}
	mag := mulMagnitude(x, y)
	z.setFromRawMagnitude(mag, sign)
	return z
}

// Square sets z to x * x and returns z. It is faster than a general
// multiplication of two equal operands because it exploits the symmetry of squaring: every off-diagonal partial product
// x[i]*x[j] (i != j) is counted twice, so it need only be computed once.
func (z *Int) Square(x *Int) *Int {
	if x.IsZero() {
		z.setMagnitudeZero()
		return z
	}
	z.setFromRawMagnitude(squareMagnitude(x), 1)
	return z
}

// setFromRawMagnitude copies an untrimmed raw limb slice into z, applies
// sign, and trims.
func (z *Int) setFromRawMagnitude(mag []uint32, sign int8) {
	z.ensureCapacity(len(mag))
	copy(z.digits, mag)
	for i := len(mag); i < len(z.digits); i++ {
		z.digits[i] = 0
	}
	z.used = len(mag)
	z.sign = sign
	z.trim()
}

// mulMagnitude multiplies |x| by |y|, dispatching on the smaller operand's
// bit length the way the source's mul_without_check does: schoolbook when
// the smaller operand is at or below karatsubaThresholdBits, Karatsuba
// otherwise, unless the operands are lopsided enough (one at least twice
// the other's bit length) that Karatsuba's balance never pays off, in
// which case schoolbook runs regardless of size.
func mulMagnitude(x, y *Int) []uint32 {
	smaller := numeric.Min(x.bits, y.bits)
	larger := numeric.Max(x.bits, y.bits)
	if smaller <= karatsubaThresholdBits || larger >= 2*smaller {
		return schoolbookMulMagnitude(x, y)
	}
	return karatsubaMulMagnitude(x, y)
}

// schoolbookMulMagnitude computes the O(n*m) product of |x| and |y|.
func schoolbookMulMagnitude(x, y *Int) []uint32 {
	result := make([]uint32, x.used+y.used)
	for i := 0; i < x.used; i++ {
		if x.digits[i] == 0 {
			continue
		}
		for j := 0; j < y.used; j++ {
			addProductAt(result, i+j, x.digits[i], y.digits[j])
		}
	}
	return result
}

// squareMagnitude computes |x|^2 following HAC 14.2.4: each digit's square
// is added once (the diagonal), and each cross term x[i]*x[j] for j > i is
// added twice, since it occurs symmetrically as both x[i]*x[j] and x[j]*x[i]
// in the full product.
func squareMagnitude(x *Int) []uint32 {
	n := x.used
	result := make([]uint32, 2*n+1)
	for i := 0; i < n; i++ {
		addProductAt(result, 2*i, x.digits[i], x.digits[i])
		for j := i + 1; j < n; j++ {
			prod := uint64(x.digits[i]) * uint64(x.digits[j])
			lo, hi := uint32(prod), uint32(prod>>limbBits)
			addAt(result, i+j, lo)
			addAt(result, i+j, lo)
			addAt(result, i+j+1, hi)
			addAt(result, i+j+1, hi)
		}
	}
	return result
}

// addProductAt adds the 64-bit product a*b into result at limb offset at,
// propagating carry through however many limbs it takes to settle.
func addProductAt(result []uint32, at int, a, b uint32) {
	prod := uint64(a) * uint64(b)
	addAt(result, at, uint32(prod))
	addAt(result, at+1, uint32(prod>>limbBits))
}

// addAt adds v into result[at], carrying into subsequent limbs as needed.
func addAt(result []uint32, at int, v uint32) {
	carry := uint64(v)
	for carry != 0 && at < len(result) {
		sum := uint64(result[at]) + carry
		result[at] = uint32(sum)
		carry = sum >> limbBits
		at++
	}
}

// addDigitsAt adds an entire (already-reduced) limb slice into result
// starting at limb offset, propagating carry past the end of src for
// however far it takes to settle. Used to recombine Karatsuba's three
// partial products, whose shifted ranges overlap.
func addDigitsAt(result []uint32, offset int, src []uint32) {
	var carry uint64
	i := 0
	for ; i < len(src); i++ {
		sum := uint64(result[offset+i]) + uint64(src[i]) + carry
		result[offset+i] = uint32(sum)
		carry = sum >> limbBits
	}
	for carry != 0 {
		sum := uint64(result[offset+i]) + carry
		result[offset+i] = uint32(sum)
		carry = sum >> limbBits
		i++
	}
}

// fromLimbs builds a trimmed, non-negative Int directly from a raw limb
// slice, copying it.
func fromLimbs(limbs []uint32) *Int {
	x := &Int{sign: 1, digits: make([]uint32, len(limbs))}
	copy(x.digits, limbs)
	x.used = len(x.digits)
	if x.used == 0 {
		x.used = 1
		x.digits = []uint32{0}
	}
	x.trim()
	return x
}

// splitAt splits a non-negative magnitude's limb slice into a low part
// (limbs [0,split)) and high part (limbs [split,used)), each as a trimmed
// Int.
func splitAt(x *Int, split int) (low, high *Int) {
	if split >= x.used {
		return fromLimbs(x.digits[:x.used]), fromLimbs(nil)
	}
	return fromLimbs(x.digits[:split]), fromLimbs(x.digits[split:x.used])
}

// karatsubaSplit returns the limb index, per operand, at which Karatsuba
// divides x and y: half the bit length of the larger operand, rounded up
// to a word boundary, converted to a limb count.
func karatsubaSplit(x, y *Int) int {
	topBits := numeric.Max(x.bits, y.bits)
	splitBits := ((topBits / 2) | 31) + 1
	return numeric.Max(1, splitBits/limbBits)
}

// karatsubaMulMagnitude computes |x|*|y| via Karatsuba's divide-and-conquer:
// splitting each operand into a low and high half (at the same limb
// boundary) turns one n-limb multiplication into three roughly-(n/2)-limb
// multiplications instead of four, at the cost of two extra additions and
// a subtraction. The three sub-products (z0, z1, z2) are themselves
// computed through Mul, so they recurse back into Karatsuba while they stay
// above karatsubaThresholdBits and fall back to schoolbook once they do not.
//
// z1 = x1*y1 + x0*y0 - (x1-x0)*(y1-y0) can be negative as an intermediate
// value even though the final sum never is, so it is computed entirely at
// the signed Int layer (Sub, Mul, Add), never on raw magnitudes.
func karatsubaMulMagnitude(x, y *Int) []uint32 {
	split := karatsubaSplit(x, y)
	x0, x1 := splitAt(x, split)
	y0, y1 := splitAt(y, split)

	z0 := New().Mul(x0, y0)
	z2 := New().Mul(x1, y1)

	t0 := New().Sub(x1, x0)
	t1 := New().Sub(y1, y0)
	cross := New().Mul(t0, t1)

	z1 := New().Add(z2, z0)
	z1.Sub(z1, cross)

	result := make([]uint32, x.used+y.used+2)
	addDigitsAt(result, 0, z0.digits[:z0.used])
	addDigitsAt(result, split, z1.digits[:z1.used])
	addDigitsAt(result, 2*split, z2.digits[:z2.used])
	return result
}
