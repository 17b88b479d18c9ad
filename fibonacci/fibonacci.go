// Package fibonacci computes Fibonacci numbers of arbitrary index using
// 2x2 matrix exponentiation, reaching indices in the millions without the
// O(n) cost (and O(n) stack depth, if done recursively) of the naive
// recurrence.
package fibonacci

import "github.com/zooxyt/libbigint/bigint"

// matrix2 is a 2x2 matrix of bigint.Int, stored row-major: {{a,b},{c,d}}.
type matrix2 struct {
	a, b, c, d *bigint.Int
}

// identity2 returns the 2x2 identity matrix.
func identity2() matrix2 {
	return matrix2{
		a: bigint.NewFromUint32(1), b: bigint.NewFromUint32(0),
		c: bigint.NewFromUint32(0), d: bigint.NewFromUint32(1),
	}
}

// fibMatrix returns the Fibonacci Q-matrix [[1,1],[1,0]], whose n-th power
// has F(n+1), F(n), F(n), F(n-1) as its entries.
func fibMatrix() matrix2 {
	return matrix2{
		a: bigint.NewFromUint32(1), b: bigint.NewFromUint32(1),
		c: bigint.NewFromUint32(1), d: bigint.NewFromUint32(0),
	}
}

// mul multiplies two 2x2 matrices.
func mul(x, y matrix2) matrix2 {
	return matrix2{
		a: bigint.New().Add(bigint.New().Mul(x.a, y.a), bigint.New().Mul(x.b, y.c)),
		b: bigint.New().Add(bigint.New().Mul(x.a, y.b), bigint.New().Mul(x.b, y.d)),
		c: bigint.New().Add(bigint.New().Mul(x.c, y.a), bigint.New().Mul(x.d, y.c)),
		d: bigint.New().Add(bigint.New().Mul(x.c, y.b), bigint.New().Mul(x.d, y.d)),
	}
}

// pow raises m to the n-th power (n >= 0) by repeated squaring.
func pow(m matrix2, n uint64) matrix2 {
	result := identity2()
	base := m
	for n > 0 {
		if n&1 == 1 {
			result = mul(result, base)
		}
		base = mul(base, base)
		n >>= 1
	}
	return result
}

// Fib returns the n-th Fibonacci number: F(0)=0, F(1)=F(2)=1, and
// F(n)=F(n-1)+F(n-2) thereafter.
func Fib(n uint64) *bigint.Int {
	if n == 0 {
		return bigint.NewFromUint32(0)
	}
	// fibMatrix()^(n-1) has F(n) at position a.
	m := pow(fibMatrix(), n-1)
	return m.a
}
