package frac

import "strconv"

// MixedNumber is the whole_numerator/denominator view of a fraction.
//
// MixedNumber values are only obtained from ToMixed or Normalize. For an
// improper fraction the remainder numerator is non-negative and less than the
// positive denominator, and the sign lives on the whole part.
type MixedNumber struct {
	whole int64
	num   int64
	den   int64
}

// ToMixed converts x to a mixed number. The whole part is x.Num()/x.Den()
// truncated toward zero, keeping the sign; the remainder numerator and
// denominator are magnitudes. So -7/2 becomes -3_1/2.
//
// If x is not improper, the whole part is zero and the remainder is x
// unchanged. x must not have a zero denominator.
func ToMixed(x Fraction) MixedNumber {
	if !x.IsImproper() {
		return MixedNumber{0, x.num, x.den}
	}
	// |x.num| > |x.den|, so |x.den| < 2^63 and both magnitudes below fit.
	return MixedNumber{
		whole: x.num / x.den,
		num:   int64(uabs(x.num % x.den)),
		den:   int64(uabs(x.den)),
	}
}

// Whole returns the whole-number part of m.
func (m MixedNumber) Whole() int64 {
	return m.whole
}

// Num returns the remainder numerator of m.
func (m MixedNumber) Num() int64 {
	return m.num
}

// Den returns the remainder denominator of m.
func (m MixedNumber) Den() int64 {
	return m.den
}

// Fraction converts m back to a single fraction over the same denominator.
func (m MixedNumber) Fraction() Fraction {
	switch {
	case m.whole < 0:
		return Fraction{m.whole*m.den - m.num, m.den}
	case m.whole > 0:
		return Fraction{m.whole*m.den + m.num, m.den}
	}
	return Fraction{m.num, m.den}
}

// String returns "n/d" when there is no whole part, "w" when there is no
// remainder, and "w_n/d" otherwise.
func (m MixedNumber) String() string {
	switch {
	case m.whole == 0:
		return strconv.FormatInt(m.num, 10) + "/" + strconv.FormatInt(m.den, 10)
	case m.num == 0:
		return strconv.FormatInt(m.whole, 10)
	}
	return strconv.FormatInt(m.whole, 10) + "_" +
		strconv.FormatInt(m.num, 10) + "/" + strconv.FormatInt(m.den, 10)
}
