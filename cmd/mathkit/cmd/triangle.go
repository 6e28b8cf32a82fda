package cmd

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mathkit/foundation/core/errors"
	"github.com/msto63/mathkit/foundation/core/log"
	"github.com/msto63/mathkit/foundation/utils/trianglex"
)

var intSides bool

// triangleOps are listed in the order "all" prints them
var triangleOps = []string{"sides", "perimeter", "semiperimeter", "area", "valid", "classify"}

var triangleCmd = &cobra.Command{
	Use:   "triangle <a> <b> <c> [operation]",
	Short: "Evaluates an operation on a triangle given by its sides",
	Long: `Evaluates an operation on the triangle with side lengths a, b and c.

Operations: sides, perimeter, semiperimeter, area, valid, classify

Without an operation every result is printed. Sides are parsed as floats
unless --int is given.`,
	Example: `  mathkit triangle 3 4 5 classify
  mathkit triangle --int 3 8 6
  mathkit triangle 1 1 100 valid`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runTriangle,
}

func init() {
	triangleCmd.Flags().BoolVar(&intSides, "int", false, "parse sides as integers")
	triangleCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(triangleCmd)
}

func runTriangle(cmd *cobra.Command, args []string) error {
	op := "all"
	if len(args) > 3 {
		op = strings.ToLower(args[3])
	}
	if op != "all" && !slices.Contains(triangleOps, op) {
		return errors.CliUnknownOperation("triangle", op, append([]string{"all"}, triangleOps...))
	}

	var (
		title string
		rows  []row
	)
	if intSides {
		sides, err := parseSides(args[:3], func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		}, "an integer")
		if err != nil {
			return err
		}
		t := trianglex.New(sides[0], sides[1], sides[2])
		title, rows = t.String(), triangleRows(t, op, appConfig.Output.Precision)
	} else {
		sides, err := parseSides(args[:3], func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}, "a number")
		if err != nil {
			return err
		}
		t := trianglex.New(sides[0], sides[1], sides[2])
		title, rows = t.String(), triangleRows(t, op, appConfig.Output.Precision)
	}

	render(cmd.OutOrStdout(), title, rows, appConfig.Output.Plain)
	return nil
}

func parseSides[T trianglex.Scalar](args []string, parse func(string) (T, error), expected string) ([3]T, error) {
	var sides [3]T
	for i, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return sides, errors.InvalidFormat(errors.ModuleCLI, "triangle", arg, expected, err)
		}
		sides[i] = v
	}
	return sides, nil
}

func triangleRows[T trianglex.Scalar](t trianglex.Triangle[T], op string, prec int) []row {
	timer := logger.StartTimer("triangle." + op).WithField("triangle", t.String())
	defer timer.Stop()

	ops := triangleOps
	if op != "all" {
		ops = []string{op}
	}

	rows := make([]row, 0, len(ops))
	for _, name := range ops {
		rows = append(rows, row{name, evalTriangle(t, name, prec)})
	}
	return rows
}

func evalTriangle[T trianglex.Scalar](t trianglex.Triangle[T], op string, prec int) string {
	switch op {
	case "sides":
		a, b, c := t.Sides()
		return fmt.Sprintf("%s, %s, %s", formatScalar(a, prec), formatScalar(b, prec), formatScalar(c, prec))
	case "perimeter":
		if p, ok := t.ExactPerimeter(); ok {
			return p.String()
		}
		return formatScalar(t.Perimeter(), prec)
	case "semiperimeter":
		return formatFloat(t.Semiperimeter(), prec)
	case "area":
		area := t.Area()
		if math.IsNaN(area) {
			logger.Debug("area undefined for these sides", log.Float64("semiperimeter", t.Semiperimeter()))
		}
		return formatFloat(area, prec)
	case "valid":
		if err := t.Validate(); err != nil {
			logger.Debug("triangle is not valid", log.Err(err))
			return formatBool(false) + " (" + err.Error() + ")"
		}
		return formatBool(true)
	case "classify":
		return t.Classify().String()
	default:
		return ""
	}
}

func formatScalar[T trianglex.Scalar](v T, prec int) string {
	switch f := any(v).(type) {
	case float64:
		return formatFloat(f, prec)
	case float32:
		return formatFloat(float64(f), prec)
	default:
		return fmt.Sprint(v)
	}
}
