// Package bigint implements arbitrary-precision signed integer arithmetic:
// a sign-magnitude kernel (Int), schoolbook and Karatsuba multiplication,
// HAC-style fast squaring, schoolbook division, and Barrett-accelerated
// modular reduction and exponentiation. It is the arithmetic substrate for
// the prime and fibonacci packages.
//
// An Int's magnitude is stored as a little-endian slice of 32-bit limbs.
// Zero is always represented with a positive sign; every operation that can
// produce zero normalizes the sign back to positive before returning.
// Int values are not safe for concurrent use: callers mutating the same Int
// from multiple goroutines must synchronize externally, exactly as this
// kernel's origin, a single-threaded C library, assumed.
package bigint

import (
	"math/bits"
	"unsafe"

	"github.com/zooxyt/libbigint/pool"
)

// limbBits is the width, in bits, of one digit.
const limbBits = 32

// growthSlots is the number of spare limbs appended whenever a digit buffer
// must grow beyond its current capacity. Capacity never shrinks once grown:
// this amortizes the cost of repeated small growths (e.g. in a loop that
// increments a value one limb-carry at a time) at the price of holding a
// little slack memory, the same trade-off the source's slot allocator made.
const growthSlots = 256

// RandomSource supplies 32-bit words for Random. It is satisfied
// structurally by x/entropy.Source; bigint does not import that package
// directly so that callers needing only deterministic construction never
// pull in an entropy dependency.
type RandomSource interface {
	Uint32() uint32
}

// Int is an arbitrary-precision signed integer.
type Int struct {
	sign   int8 // +1 or -1; always +1 when the magnitude is zero
	digits []uint32
	used   int // number of significant limbs in digits[:used]
	bits   int // bit length of the magnitude, 0 for zero
	pooled bool
	pool   *pool.Pool
}

// New returns a new Int representing zero.
func New() *Int {
	return &Int{sign: 1, digits: make([]uint32, 1), used: 1, bits: 0}
}

// NewFromUint32 returns a new non-negative Int with the value of v.
func NewFromUint32(v uint32) *Int {
	x := &Int{sign: 1, digits: make([]uint32, 1), used: 1}
	x.digits[0] = v
	x.trim()
	return x
}

// NewFromInt64 returns a new Int with the value and sign of v.
func NewFromInt64(v int64) *Int {
	sign := int8(1)
	mag := uint64(v)
	if v < 0 {
		sign = -1
		mag = uint64(-v)
	}
	x := &Int{sign: sign, digits: make([]uint32, 2), used: 2}
	x.digits[0] = uint32(mag)
	x.digits[1] = uint32(mag >> 32)
	x.trim()
	return x
}

// WithPool attaches p as the allocator used for this Int's digit buffer the
// next time it must grow. It does not migrate the buffer already in use.
func (x *Int) WithPool(p *pool.Pool) *Int {
	x.pool = p
	return x
}

// allocDigits returns a limb slice of length n, preferring p when non-nil
// and the request fits in one page. Requests p cannot serve, because p is
// nil, the byte size exceeds pool.PageSize, or p.Alloc reports an error,
// fall back to the general heap, exactly as the source's digit allocator
// does for over-page requests.
func allocDigits(n int, p *pool.Pool) (digits []uint32, pooled bool) {
	if p == nil || n*4 > pool.PageSize {
		return make([]uint32, n), false
	}
	buf, err := p.Alloc(n * 4)
	if err != nil {
		return make([]uint32, n), false
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&buf[0])), n), true
}

// freeDigits returns a pooled digit buffer to its pool. It is a no-op for
// heap-backed buffers.
func freeDigits(digits []uint32, pooled bool, p *pool.Pool) {
	if !pooled || p == nil || len(digits) == 0 {
		return
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&digits[0])), len(digits)*4)
	_ = p.Free(buf)
}

// Destroy releases x's digit buffer back to its pool, if any, and leaves x
// with no digit buffer and no significant limbs (not a usable zero). Calling any other method on x after Destroy without an
// intervening assignment is a programming error, exactly as using freed
// memory in the source would be.
func (x *Int) Destroy() {
	freeDigits(x.digits, x.pooled, x.pool)
	x.digits = nil
	x.used = 0
	x.bits = 0
	x.sign = 1
	x.pooled = false
}

// Clone returns a deep copy of x, allocated from the same pool as x (if
// any).
func (x *Int) Clone() *Int {
	digits, pooled := allocDigits(x.used, x.pool)
	copy(digits, x.digits[:x.used])
	return &Int{sign: x.sign, digits: digits, used: x.used, bits: x.bits, pooled: pooled, pool: x.pool}
}

// AssignFrom overwrites x's value with src's, growing x's digit buffer if
// needed. src is left unmodified.
func (x *Int) AssignFrom(src *Int) {
	x.ensureCapacity(src.used)
	copy(x.digits[:src.used], src.digits[:src.used])
	for i := src.used; i < len(x.digits); i++ {
		x.digits[i] = 0
	}
	x.used = src.used
	x.sign = src.sign
	x.bits = src.bits
}

// ensureCapacity grows x's digit buffer, if needed, to hold at least n
// limbs, preserving existing contents. Capacity never shrinks.
func (x *Int) ensureCapacity(n int) {
	if len(x.digits) >= n {
		return
	}
	newDigits, pooled := allocDigits(n+growthSlots, x.pool)
	copy(newDigits, x.digits[:x.used])
	freeDigits(x.digits, x.pooled, x.pool)
	x.digits = newDigits
	x.pooled = pooled
}

// trim drops leading (most-significant) zero limbs, recomputes the bit
// length, and normalizes the sign of a zero magnitude back to positive.
func (x *Int) trim() {
	used := len(x.digits)
	for used > 1 && x.digits[used-1] == 0 {
		used--
	}
	x.used = used
	if used == 1 && x.digits[0] == 0 {
		x.sign = 1
		x.bits = 0
		return
	}
	x.bits = (used-1)*limbBits + (limbBits - bits.LeadingZeros32(x.digits[used-1]))
}

// Sign returns -1, 0, or 1 according to whether x is negative, zero, or
// positive.
func (x *Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	return int(x.sign)
}

// IsZero reports whether x's magnitude is zero.
func (x *Int) IsZero() bool {
	return x.used == 1 && x.digits[0] == 0
}

// IsNegative reports whether x is strictly less than zero.
func (x *Int) IsNegative() bool {
	return x.sign < 0 && !x.IsZero()
}

// BitLen returns the number of bits required to represent x's magnitude,
// excluding the sign. BitLen of zero is 0.
func (x *Int) BitLen() int {
	return x.bits
}

// Bit returns the value of x's i-th magnitude bit (0 or 1), where bit 0 is
// the least significant. i must be non-negative; bits beyond BitLen are 0.
func (x *Int) Bit(i int) uint {
	limb := i / limbBits
	if limb >= x.used {
		return 0
	}
	return uint((x.digits[limb] >> uint(i%limbBits)) & 1)
}

// SetBit sets z to x with its i-th magnitude bit forced to b (0 or 1) and
// returns z. i must be non-negative; setting a bit beyond x's current length
// grows z to hold it. Used by callers (such as prime candidate generation)
// that need an exact bit set after Random, which only guarantees at most
// the requested length.
func (z *Int) SetBit(x *Int, i int, b uint) *Int {
	limb := i / limbBits
	n := limb + 1
	if x.used > n {
		n = x.used
	}
	z.ensureCapacity(n)
	copy(z.digits, x.digits[:x.used])
	for j := x.used; j < len(z.digits); j++ {
		z.digits[j] = 0
	}
	mask := uint32(1) << uint(i%limbBits)
	if b != 0 {
		z.digits[limb] |= mask
	} else {
		z.digits[limb] &^= mask
	}
	z.used = n
	z.sign = x.sign
	z.trim()
	return z
}

// Random returns a new non-negative Int of at most bitLen bits, drawing
// words from src. The top bit is not forced, so the result may trim down
// to fewer bits than requested; a result that trims all the way to zero is
// promoted to the value 1 instead, so the returned Int always has at least
// one bit. Callers wanting exactly bitLen bits (such as GeneratePrime) must
// set the top bit themselves. bitLen must be positive.
func Random(bitLen int, src RandomSource) (*Int, error) {
	if bitLen <= 0 {
		return nil, ErrBitLengthRange
	}
	n := (bitLen + limbBits - 1) / limbBits
	digits := make([]uint32, n)
	for i := range digits {
		digits[i] = src.Uint32()
	}
	topBits := bitLen % limbBits
	if topBits == 0 {
		topBits = limbBits
	}
	mask := uint32(0xFFFFFFFF)
	if topBits < limbBits {
		mask = uint32(1)<<uint(topBits) - 1
	}
	digits[n-1] &= mask
	x := &Int{sign: 1, digits: digits, used: n}
	x.trim()
	if x.IsZero() {
		x.digits[0] = 1
		x.used = 1
		x.bits = 1
	}
	return x, nil
}
