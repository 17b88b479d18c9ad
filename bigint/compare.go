package bigint

// Cmp compares x and y and returns -1, 0, or 1 according to whether x is
// less than, equal to, or greater than y.
func (x *Int) Cmp(y *Int) int {
	xz, yz := x.IsZero(), y.IsZero()
	switch {
	case xz && yz:
		return 0
	case xz:
		return -int(y.sign)
	case yz:
		return int(x.sign)
	case x.sign != y.sign:
		return int(x.sign)
	}
	mag := compareMagnitude(x, y)
	return mag * int(x.sign)
}

// compareMagnitude compares |x| and |y|, ignoring sign: -1, 0, or 1.
func compareMagnitude(x, y *Int) int {
	if x.used != y.used {
		if x.used < y.used {
			return -1
		}
		return 1
	}
	for i := x.used - 1; i >= 0; i-- {
		if x.digits[i] != y.digits[i] {
			if x.digits[i] < y.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x and y represent the same value.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}
