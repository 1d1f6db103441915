package frac

import "math"

// Reduce returns x in lowest terms with a non-negative denominator.
// A zero denominator is returned unchanged, and 0/n reduces to 0/1.
// Reduce panics with ErrNumOverflow or ErrDenOverflow if the canonical
// numerator or denominator is 2^63, which requires an operand of
// math.MinInt64 sharing no factor with the other.
func Reduce(x Fraction) Fraction {
	if x.den == 0 {
		return x
	}
	m, n := uabs(x.num), uabs(x.den)
	d := gcdu(m, n)
	m, n = m/d, n/d
	if n > math.MaxInt64 {
		panic(ErrDenOverflow)
	}
	if x.Sign() < 0 {
		return Fraction{int64(-m), int64(n)}
	}
	if m > math.MaxInt64 {
		panic(ErrNumOverflow)
	}
	return Fraction{int64(m), int64(n)}
}

// Value is the result of Normalize: a reduced Fraction and, when that
// fraction is improper, its MixedNumber view.
type Value struct {
	f     Fraction
	m     MixedNumber
	mixed bool
}

// Normalize reduces x to lowest terms and, if the result is improper,
// converts it to a MixedNumber.
//
// A fraction with a zero denominator is passed through unchanged, neither
// reduced nor converted.
func Normalize(x Fraction) Value {
	if x.HasZeroDen() {
		return Value{f: x}
	}
	r := Reduce(x)
	if r.IsImproper() {
		return Value{f: r, m: ToMixed(r), mixed: true}
	}
	return Value{f: r}
}

// Fraction returns the reduced fraction, improper or not.
func (v Value) Fraction() Fraction {
	return v.f
}

// Mixed returns the mixed number view and true if the value is improper.
func (v Value) Mixed() (MixedNumber, bool) {
	return v.m, v.mixed
}

// IsMixed reports whether the value is improper and carries a MixedNumber.
func (v Value) IsMixed() bool {
	return v.mixed
}

// String renders the mixed number view if there is one, and the reduced
// fraction as m/n otherwise.
func (v Value) String() string {
	if v.mixed {
		return v.m.String()
	}
	return v.f.String()
}
