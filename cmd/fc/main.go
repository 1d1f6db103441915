// Command fc evaluates one arithmetic operation on two fractions.
//
//	fc [-v] <operand1> <operator> <operand2>
//
// Operands are integers, simple fractions or mixed numbers, such as -2, 3,
// 1/2, -7/9, 4_1/2 or -5_7/4. The operator is one of + - * /. The exact
// result is printed reduced, as a mixed number when it is improper:
//
//	$ fc 1/2 '*' 3_3/4
//	1/2 * 3_3/4 = 1_7/8
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kbolino/frac"
)

const usageText = `Usage: fc [-v] <operand1> <operator> <operand2>
Example: fc 1/2 '*' 3_3/4
Operators:
        *: multiply
        /: divide
        +: add
        -: subtract
Operand format: (sign)<whole_number>(_<numerator>/<denominator>)(numerator/denominator)
        Examples: -2, 3, 1/2, -7/9, 4_1/2, -5_7/4
`

// argsAllowed is the number of positional arguments fc accepts.
const argsAllowed = 3

var (
	errArgCount      = fmt.Errorf("There must be exactly %d arguments", argsAllowed)
	errOrderOrFormat = errors.New("Verify either the order of the operator and operands or the format of the operands")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Failure: %s\n", reason(err))
		}
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	verbose := fs.Bool("v", false, "log the parsed operands and the unreduced result")
	n := flagCount(args)
	if err := fs.Parse(args[:n]); err != nil {
		return err
	}
	args = append(fs.Args(), args[n:]...)
	if err := validate(args); err != nil {
		return err
	}
	if *verbose {
		logSteps(log.New(stderr, "fc: ", 0), args[0], args[1], args[2])
	}
	v, err := frac.Calculate(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s = %s\n", strings.Join(args, " "), v)
	return err
}

// flagCount returns the number of leading arguments that are flags. A
// negative operand such as -2 or the operator - ends the flags.
func flagCount(args []string) int {
	for i, a := range args {
		if a == "-" || !strings.HasPrefix(a, "-") || frac.Classify(a) != frac.ShapeInvalid {
			return i
		}
		if a == "--" {
			return i + 1
		}
	}
	return len(args)
}

// validate checks the argument count and that the arguments are ordered as
// operand, operator, operand.
func validate(args []string) error {
	if len(args) != argsAllowed {
		return errArgCount
	}
	if frac.Classify(args[0]) == frac.ShapeInvalid || frac.Classify(args[2]) == frac.ShapeInvalid {
		return errOrderOrFormat
	}
	if _, err := frac.ParseOp(args[1]); err != nil {
		return errOrderOrFormat
	}
	return nil
}

func logSteps(l *log.Logger, x, op, y string) {
	fx, err := frac.Parse(x)
	if err != nil {
		return
	}
	fy, err := frac.Parse(y)
	if err != nil {
		return
	}
	l.Printf("operands: %v %s %v", fx, op, fy)
	o, err := frac.ParseOp(op)
	if err != nil {
		return
	}
	if z, err := frac.Apply(o, fx, fy); err == nil {
		l.Printf("unreduced: %v", z)
	}
}

// reason turns an error from run into the failure line shown to the user.
func reason(err error) string {
	var oe *frac.OperandError
	if errors.As(err, &oe) {
		if errors.Is(oe.Err, frac.ErrDenZero) {
			return fmt.Sprintf("Improper format for operand %s, 0 in the denominator", oe.Operand)
		}
		if errors.Is(oe.Err, frac.ErrFmtInvalid) {
			return "Error while parsing operand " + oe.Operand
		}
	}
	return err.Error()
}
