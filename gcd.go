package frac

import (
	"math"

	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor (GCD) of m and n.
// The GCD is the largest integer that divides both m and n. The result is
// never negative: GCD(m, 0) == |m|, GCD(0, n) == |n|, and GCD(0, 0) == 0.
// GCD panics with ErrNumOverflow if the result is 2^63, which only happens
// when one argument is math.MinInt64 and the other is zero or math.MinInt64.
func GCD(m, n int64) int64 {
	d := gcdu(uabs(m), uabs(n))
	if d > math.MaxInt64 {
		panic(ErrNumOverflow)
	}
	return int64(d)
}

// gcdu is Euclid's algorithm on magnitudes.
func gcdu(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// uabs returns the magnitude of x. Unlike negation, it cannot overflow.
func uabs[T constraints.Signed](x T) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// sgn returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func sgn[T constraints.Signed](x T) int {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}
