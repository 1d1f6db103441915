package frac

import (
	"math"
	"math/bits"
)

// Op is an arithmetic operator.
type Op byte

// Supported operators.
const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// ParseOp parses a single-character operator token.
// ParseOp returns an *OperatorError if s is not one of "+", "-", "*" or "/".
func ParseOp(s string) (Op, error) {
	if len(s) == 1 {
		switch op := Op(s[0]); op {
		case OpAdd, OpSub, OpMul, OpDiv:
			return op, nil
		}
	}
	return 0, &OperatorError{Op: s}
}

// String returns the operator symbol.
func (op Op) String() string {
	return string(rune(op))
}

// Apply computes x op y without reducing the result.
// Apply returns an *OperatorError if op is not a supported operator, or
// ErrNumOverflow / ErrDenOverflow if the result does not fit.
func Apply(op Op, x, y Fraction) (Fraction, error) {
	switch op {
	case OpAdd:
		return x.TryAdd(y)
	case OpSub:
		return x.TrySub(y)
	case OpMul:
		return x.TryMul(y)
	case OpDiv:
		return x.TryDiv(y)
	}
	return Fraction{}, &OperatorError{Op: op.String()}
}

// TryAdd adds x and y by cross-multiplication and returns the result,
// unreduced, with a non-negative denominator.
// TryAdd returns 0 and a non-nil error if the result would overflow.
func (x Fraction) TryAdd(y Fraction) (Fraction, error) {
	return x.cross(y, add64)
}

// Add adds x and y and returns the result.
// Add panics if the result would overflow.
func (x Fraction) Add(y Fraction) Fraction {
	return must(x.TryAdd(y))
}

// TrySub subtracts y from x by cross-multiplication and returns the result,
// unreduced, with a non-negative denominator.
// TrySub returns 0 and a non-nil error if the result would overflow.
func (x Fraction) TrySub(y Fraction) (Fraction, error) {
	return x.cross(y, sub64)
}

// Sub subtracts y from x and returns the result.
// Sub panics if the result would overflow.
func (x Fraction) Sub(y Fraction) Fraction {
	return must(x.TrySub(y))
}

// TryMul multiplies x and y and returns the result, unreduced, with a
// non-negative denominator.
// TryMul returns 0 and a non-nil error if the result would overflow.
func (x Fraction) TryMul(y Fraction) (Fraction, error) {
	m, ok := mul64(x.num, y.num)
	if !ok {
		return Fraction{}, ErrNumOverflow
	}
	n, ok := mul64(x.den, y.den)
	if !ok {
		return Fraction{}, ErrDenOverflow
	}
	return Fraction{m, n}.canon()
}

// Mul multiplies x and y and returns the result.
// Mul panics if the result would overflow.
func (x Fraction) Mul(y Fraction) Fraction {
	return must(x.TryMul(y))
}

// TryDiv divides x by y and returns the result, unreduced, with a
// non-negative denominator. A double negative cancels, so -a/b divided by
// -c/d is (a*d)/(b*c).
//
// Dividing by a zero-valued y is not an error here: the result carries a
// zero denominator, which HasZeroDen reports and Normalize passes through.
// TryDiv returns 0 and a non-nil error if the result would overflow.
func (x Fraction) TryDiv(y Fraction) (Fraction, error) {
	m, ok := mul64(x.num, y.den)
	if !ok {
		return Fraction{}, ErrNumOverflow
	}
	n, ok := mul64(x.den, y.num)
	if !ok {
		return Fraction{}, ErrDenOverflow
	}
	return Fraction{m, n}.canon()
}

// Div divides x by y and returns the result.
// Div panics if the result would overflow.
func (x Fraction) Div(y Fraction) Fraction {
	return must(x.TryDiv(y))
}

// cross computes (x.num*y.den op y.num*x.den) / (x.den*y.den).
func (x Fraction) cross(y Fraction, op func(a, b int64) (int64, bool)) (Fraction, error) {
	p, ok := mul64(x.num, y.den)
	if !ok {
		return Fraction{}, ErrNumOverflow
	}
	q, ok := mul64(y.num, x.den)
	if !ok {
		return Fraction{}, ErrNumOverflow
	}
	m, ok := op(p, q)
	if !ok {
		return Fraction{}, ErrNumOverflow
	}
	n, ok := mul64(x.den, y.den)
	if !ok {
		return Fraction{}, ErrDenOverflow
	}
	return Fraction{m, n}.canon()
}

func must(z Fraction, err error) Fraction {
	if err != nil {
		panic(err)
	}
	return z
}

// mul64 returns a*b and whether it fits in an int64.
func mul64(a, b int64) (int64, bool) {
	// The product of the magnitudes takes at most 128 bits; anything in the
	// high word is an overflow, as is a low word beyond the int64 range for
	// the sign of the result.
	hi, lo := bits.Mul64(uabs(a), uabs(b))
	if hi != 0 {
		return 0, false
	}
	if sgn(a)*sgn(b) < 0 {
		if lo > 1<<63 {
			return 0, false
		}
		return int64(-lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// add64 returns a+b and whether it fits in an int64.
func add64(a, b int64) (int64, bool) {
	s := a + b
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, false
	}
	return s, true
}

// sub64 returns a-b and whether it fits in an int64.
func sub64(a, b int64) (int64, bool) {
	s := a - b
	if (a >= 0) != (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, false
	}
	return s, true
}

// neg64 returns -a and whether it fits in an int64.
func neg64(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return 0, false
	}
	return -a, true
}
