// Package numeric holds small generic numeric helpers shared across the
// bigint kernel, the kind of min/max/clamp utility every call site used to
// write by hand before generics.
package numeric

import "golang.org/x/exp/constraints"

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Clamp restricts v to [lo, hi]. It assumes lo <= hi.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}
