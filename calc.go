package frac

import "fmt"

// Calculate parses both operands and the operator, applies the operator, and
// normalizes the result.
//
// Operand failures are returned as *OperandError, an unsupported operator as
// *OperatorError. Dividing by a zero-valued operand returns ErrDivByZero, and
// an overflowing result returns ErrNumOverflow or ErrDenOverflow; both are
// wrapped with the expression being evaluated.
func Calculate(x, op, y string) (Value, error) {
	fx, err := Parse(x)
	if err != nil {
		return Value{}, err
	}
	fy, err := Parse(y)
	if err != nil {
		return Value{}, err
	}
	o, err := ParseOp(op)
	if err != nil {
		return Value{}, err
	}
	if o == OpDiv && fy.num == 0 {
		return Value{}, fmt.Errorf("frac: %s %s %s: %w", x, op, y, ErrDivByZero)
	}
	z, err := Apply(o, fx, fy)
	if err != nil {
		return Value{}, fmt.Errorf("frac: %s %s %s: %w", x, op, y, err)
	}
	return Normalize(z), nil
}
