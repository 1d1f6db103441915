package frac

import (
	"errors"
	"strconv"
	"strings"
)

// Shape is the lexical shape of an operand.
type Shape int

// Operand shapes, in the order Parse tests them.
const (
	ShapeInvalid Shape = iota
	ShapeInteger       // -?D
	ShapeSimple        // -?D/D
	ShapeMixed         // -?D_D/D
)

var shapeNames = [...]string{"invalid", "integer", "simple fraction", "mixed number"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
	return shapeNames[s]
}

// operand is an operand split along its delimiters. Only the whole part
// (or the numerator, for a simple fraction) may carry the sign.
type operand struct {
	shape           Shape
	whole, num, den string
}

// scan splits s into its parts, or reports ShapeInvalid.
// Where D stands for one or more ASCII digits, the accepted forms are
// "D", "-D", "D/D", "-D/D", "D_D/D" and "-D_D/D".
func scan(s string) operand {
	body := strings.TrimPrefix(s, "-")
	sign := s[:len(s)-len(body)]
	head, tail, mixed := strings.Cut(body, "_")
	if !mixed {
		num, den, simple := strings.Cut(body, "/")
		switch {
		case !simple && isDigits(body):
			return operand{shape: ShapeInteger, num: sign + body, den: "1"}
		case simple && isDigits(num) && isDigits(den):
			return operand{shape: ShapeSimple, num: sign + num, den: den}
		}
		return operand{}
	}
	num, den, ok := strings.Cut(tail, "/")
	if ok && isDigits(head) && isDigits(num) && isDigits(den) {
		return operand{shape: ShapeMixed, whole: sign + head, num: num, den: den}
	}
	return operand{}
}

// Classify reports the lexical shape of s without converting it.
// A shape other than ShapeInvalid does not guarantee that Parse succeeds,
// since the digits may still overflow or the denominator may be zero.
func Classify(s string) Shape {
	return scan(s).shape
}

// Parse converts an operand to a Fraction.
//
// An integer "n" becomes n/1 and a simple fraction "n/d" becomes n/d, taken
// literally without reduction. A mixed number "w_n/d" becomes (w*d+n)/d,
// where the sign of w multiplies into the composite numerator: "-2_1/3" is
// -5/3, not -7/3.
//
// Parse returns an *OperandError wrapping ErrFmtInvalid if s has none of the
// accepted shapes, ErrDenZero if the denominator is zero, and ErrNumOverflow
// or ErrDenOverflow if a component does not fit in an int64.
func Parse(s string) (Fraction, error) {
	op := scan(s)
	if op.shape == ShapeInvalid {
		return Fraction{}, &OperandError{s, ErrFmtInvalid}
	}
	num, err := parseInt(op.num, ErrNumOverflow)
	if err != nil {
		return Fraction{}, &OperandError{s, err}
	}
	den, err := parseInt(op.den, ErrDenOverflow)
	if err != nil {
		return Fraction{}, &OperandError{s, err}
	}
	if den == 0 {
		return Fraction{}, &OperandError{s, ErrDenZero}
	}
	if op.shape == ShapeMixed {
		whole, err := parseInt(op.whole, ErrNumOverflow)
		if err != nil {
			return Fraction{}, &OperandError{s, err}
		}
		wd, ok := mul64(whole, den)
		if ok {
			num, ok = add64(wd, num)
		}
		if !ok {
			return Fraction{}, &OperandError{s, ErrNumOverflow}
		}
	}
	return Fraction{num, den}, nil
}

// parseInt parses a validated run of digits, mapping a range error to
// overflow.
func parseInt(s string, overflow error) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, overflow
	}
	return v, err
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
