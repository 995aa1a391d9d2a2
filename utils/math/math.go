package math

import "golang.org/x/exp/constraints"

// DivFloor rounds the quotient toward negative infinity.
func DivFloor[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	if dividend%divisor != 0 && (dividend < 0) != (divisor < 0) {
		return base - 1
	}
	return base
}

// ScaleFloor returns floor(n * num / den).
func ScaleFloor[T constraints.Integer](n, num, den T) T {
	return DivFloor(n*num, den)
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
