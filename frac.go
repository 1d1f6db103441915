// Package frac provides exact rational arithmetic over operands written as
// integers ("3"), simple fractions ("-7/9") or mixed numbers ("4_1/2").
// See the Fraction type, Parse, and Calculate for details.
package frac

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// Common errors returned by functions in this package.
var (
	ErrFmtInvalid  = errors.New("invalid operand format")
	ErrDenZero     = errors.New("zero denominator")
	ErrDenOverflow = errors.New("denominator overflow")
	ErrNumOverflow = errors.New("numerator overflow")
	ErrDivByZero   = errors.New("division by zero")
	ErrUnknownOp   = errors.New("unknown operator")
)

// OperandError records a failure to parse an operand.
// Err is one of ErrFmtInvalid, ErrDenZero, ErrNumOverflow or ErrDenOverflow.
type OperandError struct {
	Operand string
	Err     error
}

func (e *OperandError) Error() string {
	return "frac: parsing operand " + strconv.Quote(e.Operand) + ": " + e.Err.Error()
}

func (e *OperandError) Unwrap() error {
	return e.Err
}

// OperatorError records an operator that is not one of + - * /.
type OperatorError struct {
	Op string
}

func (e *OperatorError) Error() string {
	return "frac: unknown operator " + strconv.Quote(e.Op)
}

func (e *OperatorError) Unwrap() error {
	return ErrUnknownOp
}

// Fraction is a rational number with a 64-bit numerator and denominator.
//
// A Fraction is not kept in lowest terms: 2/4 and 1/2 are distinct values and
// compare unequal with ==. Use Reduce or Normalize to reach lowest terms, and
// Cmp to compare by value.
//
// Values produced by Parse and by arithmetic always have a non-negative
// denominator. A zero denominator only appears when New is called with one,
// or as the degenerate result of dividing by zero.
//
// Fraction has proper value semantics and its values can be freely copied.
type Fraction struct {
	num int64
	den int64
}

// New creates a fraction with the given numerator and denominator, taken
// literally: no reduction or sign normalization is performed.
func New(num, den int64) Fraction {
	return Fraction{num, den}
}

// FromBigRat converts a big.Rat to a Fraction, if it is possible to do so.
func FromBigRat(r *big.Rat) (Fraction, error) {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() {
		return Fraction{}, ErrNumOverflow
	} else if !den.IsInt64() {
		return Fraction{}, ErrDenOverflow
	}
	return Fraction{num.Int64(), den.Int64()}, nil
}

// Num returns the numerator of x.
func (x Fraction) Num() int64 {
	return x.num
}

// Den returns the denominator of x.
func (x Fraction) Den() int64 {
	return x.den
}

// HasZeroDen returns true if the denominator of x is zero.
func (x Fraction) HasZeroDen() bool {
	return x.den == 0
}

// IsImproper returns true if the magnitude of the numerator of x exceeds
// its denominator.
func (x Fraction) IsImproper() bool {
	return uabs(x.num) > uabs(x.den)
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
// A zero denominator yields the sign of the numerator.
func (x Fraction) Sign() int {
	s := sgn(x.num)
	if x.den < 0 {
		s = -s
	}
	return s
}

// Neg returns the negation of x, -x.
// Neg panics with ErrNumOverflow if the numerator is math.MinInt64.
func (x Fraction) Neg() Fraction {
	m, ok := neg64(x.num)
	if !ok {
		panic(ErrNumOverflow)
	}
	return Fraction{m, x.den}
}

// Cmp compares x and y by value and returns -1 if x < y, 0 if x == y, and
// 1 if x > y. Unlike ==, Cmp(New(2, 4), New(1, 2)) is 0.
// Neither x nor y may have a zero denominator.
func (x Fraction) Cmp(y Fraction) int {
	return x.BigRat().Cmp(y.BigRat())
}

// String returns a string representation of x, as m/n.
func (x Fraction) String() string {
	return fmt.Sprintf("%d/%d", x.num, x.den)
}

// BigRat converts x to a new big.Rat. x must not have a zero denominator.
func (x Fraction) BigRat() *big.Rat {
	return big.NewRat(x.num, x.den)
}

// canon returns x with a non-negative denominator.
func (x Fraction) canon() (Fraction, error) {
	if x.den >= 0 {
		return x, nil
	}
	m, ok := neg64(x.num)
	if !ok {
		return Fraction{}, ErrNumOverflow
	}
	n, ok := neg64(x.den)
	if !ok {
		return Fraction{}, ErrDenOverflow
	}
	return Fraction{m, n}, nil
}
