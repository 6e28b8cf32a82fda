package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mathkit/foundation/core/errors"
	"github.com/msto63/mathkit/foundation/core/log"
	"github.com/msto63/mathkit/foundation/utils/complexx"
)

type unaryComplexOp struct {
	name string
	eval func(z complexx.Complex, prec int) (string, error)
}

type binaryComplexOp struct {
	name string
	eval func(a, b complexx.Complex, prec int) (string, error)
}

// checked makes a zero divisor a DIVISION_BY_ZERO error instead of an
// Inf or NaN result
var checked bool

func fixed(z complexx.Complex, prec int) string {
	return z.StringFixed(prec)
}

// unaryComplexOps are listed in the order "all" prints them
var unaryComplexOps = []unaryComplexOp{
	{"real", func(z complexx.Complex, p int) (string, error) { return formatFloat(z.Real(), p), nil }},
	{"imag", func(z complexx.Complex, p int) (string, error) { return formatFloat(z.Imag(), p), nil }},
	{"magnitude", func(z complexx.Complex, p int) (string, error) { return formatFloat(z.Magnitude(), p), nil }},
	{"phase", func(z complexx.Complex, p int) (string, error) { return formatFloat(z.Phase(), p), nil }},
	{"conjugate", func(z complexx.Complex, p int) (string, error) { return fixed(z.Conjugate(), p), nil }},
	{"sqrt", func(z complexx.Complex, p int) (string, error) { return fixed(z.Sqrt(), p), nil }},
	{"reciprocal", func(z complexx.Complex, p int) (string, error) {
		if !checked {
			return fixed(z.Reciprocal(), p), nil
		}
		r, err := z.CheckedReciprocal()
		if err != nil {
			return "", err
		}
		return fixed(r, p), nil
	}},
}

var binaryComplexOps = []binaryComplexOp{
	{"add", func(a, b complexx.Complex, p int) (string, error) { return fixed(a.Add(b), p), nil }},
	{"subtract", func(a, b complexx.Complex, p int) (string, error) { return fixed(a.Subtract(b), p), nil }},
	{"multiply", func(a, b complexx.Complex, p int) (string, error) { return fixed(a.Multiply(b), p), nil }},
	{"divide", func(a, b complexx.Complex, p int) (string, error) {
		if !checked {
			return fixed(a.Divide(b), p), nil
		}
		q, err := a.CheckedDivide(b)
		if err != nil {
			return "", err
		}
		return fixed(q, p), nil
	}},
	{"equal", func(a, b complexx.Complex, p int) (string, error) { return formatBool(a.Equal(b)), nil }},
}

var complexCmd = &cobra.Command{
	Use:   "complex <re> <im> [operation] [re2 im2]",
	Short: "Evaluates an operation on a complex number",
	Long: `Evaluates an operation on the complex number re + im·i.

Unary operations:  real, imag, magnitude, phase, conjugate, sqrt, reciprocal
Binary operations: add, subtract, multiply, divide, equal (need re2 and im2)

Without an operation every unary result is printed. A zero divisor gives
Inf or NaN parts; with --checked it is an error instead, and "all" shows
the reciprocal of zero as undefined. Flags go before the numbers; use --
when the first number is negative.`,
	Example: `  mathkit complex 8 6 sqrt
  mathkit complex 2 3 divide -1 -1
  mathkit complex --checked 1 1 divide 0 0
  mathkit complex --precision 3 3 -4
  mathkit complex -- -3 4 phase`,
	Args: cobra.RangeArgs(2, 5),
	RunE: runComplex,
}

func init() {
	complexCmd.Flags().BoolVar(&checked, "checked", false, "fail on a zero divisor instead of printing Inf or NaN")
	// negative numbers after the first argument are operands, not flags
	complexCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(complexCmd)
}

func runComplex(cmd *cobra.Command, args []string) error {
	z, err := parseComplex("complex", args[0], args[1])
	if err != nil {
		return err
	}

	op := "all"
	if len(args) > 2 {
		op = strings.ToLower(args[2])
	}
	var operands []string
	if len(args) > 3 {
		operands = args[3:]
	}

	prec := appConfig.Output.Precision
	title := "complex " + z.StringFixed(prec)

	if op == "all" {
		if len(operands) > 0 {
			return errors.CliInvalidArgument("complex", strings.Join(operands, " "), "no operands for all")
		}
		rows := make([]row, 0, len(unaryComplexOps))
		for _, u := range unaryComplexOps {
			value, err := evalUnary(u, z, prec)
			if err != nil {
				if !complexx.IsDivisionByZero(err) {
					return err
				}
				logger.Debug("skipping undefined result", log.String("operation", u.name))
				value = "undefined"
			}
			rows = append(rows, row{u.name, value})
		}
		render(cmd.OutOrStdout(), title, rows, appConfig.Output.Plain)
		return nil
	}

	for _, u := range unaryComplexOps {
		if u.name != op {
			continue
		}
		if len(operands) > 0 {
			return errors.CliInvalidArgument("complex", strings.Join(operands, " "), "no operands for "+op)
		}
		value, err := evalUnary(u, z, prec)
		if err != nil {
			return err
		}
		render(cmd.OutOrStdout(), title, []row{{op, value}}, appConfig.Output.Plain)
		return nil
	}

	for _, b := range binaryComplexOps {
		if b.name != op {
			continue
		}
		if len(operands) != 2 {
			return errors.CliInvalidArgument("complex", strings.Join(operands, " "), "re2 and im2 for "+op)
		}
		w, err := parseComplex("complex", operands[0], operands[1])
		if err != nil {
			return err
		}

		timer := logger.StartTimer("complex." + op).WithField("operand", w.String())
		value, err := b.eval(z, w, prec)
		if err != nil {
			timer.StopWithError(err)
			return err
		}
		timer.Stop()

		render(cmd.OutOrStdout(), title+" "+op+" "+w.StringFixed(prec), []row{{op, value}}, appConfig.Output.Plain)
		return nil
	}

	return errors.CliUnknownOperation("complex", op, complexOpNames())
}

func evalUnary(u unaryComplexOp, z complexx.Complex, prec int) (string, error) {
	timer := logger.StartTimer("complex." + u.name)
	value, err := u.eval(z, prec)
	if err != nil {
		timer.StopWithError(err)
		return "", err
	}
	timer.Stop()
	return value, nil
}

func parseComplex(command, re, im string) (complexx.Complex, error) {
	r, err := parseFloat(command, re)
	if err != nil {
		return complexx.Complex{}, err
	}
	i, err := parseFloat(command, im)
	if err != nil {
		return complexx.Complex{}, err
	}
	return complexx.New(r, i), nil
}

func parseFloat(command, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, errors.InvalidFormat(errors.ModuleCLI, command, arg, "a number", err)
	}
	return v, nil
}

func complexOpNames() []string {
	names := []string{"all"}
	for _, u := range unaryComplexOps {
		names = append(names, u.name)
	}
	for _, b := range binaryComplexOps {
		names = append(names, b.name)
	}
	return names
}
