// File: complex.go
// Title: Complex Number Value Type
// Description: Implements the immutable Complex type: accessors, magnitude and
//              phase, equality, conjugate, the four arithmetic operations,
//              reciprocal and principal square root.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-01
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-01 v0.1.0: Initial implementation of Complex arithmetic
// - 2025-08-03 v0.1.1: Checked division helpers, String and StringFixed

package complexx

import (
	"math"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/mathkit/foundation/core/error"
	"github.com/msto63/mathkit/foundation/core/errors"
)

// Complex represents a complex number re + im·i. The zero value is 0+0i.
type Complex struct {
	re float64
	im float64
}

// New creates a Complex from its real and imaginary parts.
// Any float64 is accepted, including NaN and ±Inf.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromComplex128 converts Go's builtin complex128
func FromComplex128(z complex128) Complex {
	return Complex{re: real(z), im: imag(z)}
}

// Zero returns 0+0i
func Zero() Complex {
	return Complex{}
}

// One returns 1+0i
func One() Complex {
	return Complex{re: 1}
}

// I returns the imaginary unit 0+1i
func I() Complex {
	return Complex{im: 1}
}

// Real returns the real part
func (c Complex) Real() float64 {
	return c.re
}

// Imag returns the imaginary part
func (c Complex) Imag() float64 {
	return c.im
}

// Complex128 converts c to Go's builtin complex128
func (c Complex) Complex128() complex128 {
	return complex(c.re, c.im)
}

// IsZero reports whether both parts compare equal to zero
func (c Complex) IsZero() bool {
	return c.re == 0 && c.im == 0
}

// Magnitude returns sqrt(re² + im²)
func (c Complex) Magnitude() float64 {
	return math.Sqrt(c.re*c.re + c.im*c.im)
}

// Phase returns the argument of c in radians, in (-π, π].
//
// The branches are evaluated in this order:
//   - re > 0 or im != 0: 2·atan2(im, |c| + re)
//   - re < 0 and im == 0: π
//   - otherwise: atan2(im, re), which is 0 at the origin and NaN for NaN parts
func (c Complex) Phase() float64 {
	if c.re > 0 || c.im != 0 {
		return 2 * math.Atan2(c.im, c.Magnitude()+c.re)
	}
	if c.re < 0 && c.im == 0 {
		return math.Pi
	}
	return math.Atan2(c.im, c.re)
}

// Equal reports whether both parts are exactly equal. No tolerance is applied;
// 0 and -0 compare equal, NaN never does.
func (c Complex) Equal(other Complex) bool {
	return c.re == other.re && c.im == other.im
}

// Conjugate returns re - im·i
func (c Complex) Conjugate() Complex {
	return Complex{re: c.re, im: -c.im}
}

// Add returns c + other
func (c Complex) Add(other Complex) Complex {
	return Complex{re: c.re + other.re, im: c.im + other.im}
}

// Subtract returns c - other
func (c Complex) Subtract(other Complex) Complex {
	return Complex{re: c.re - other.re, im: c.im - other.im}
}

// Multiply returns c · other
func (c Complex) Multiply(other Complex) Complex {
	return Complex{
		re: c.re*other.re - c.im*other.im,
		im: c.re*other.im + c.im*other.re,
	}
}

// Reciprocal returns 1/c. For c == 0 the result holds Inf or NaN parts.
func (c Complex) Reciprocal() Complex {
	d := c.re*c.re + c.im*c.im
	return Complex{re: c.re / d, im: -c.im / d}
}

// Divide returns c / other. For other == 0 the result holds Inf or NaN parts.
func (c Complex) Divide(other Complex) Complex {
	k := 1 / (other.re*other.re + other.im*other.im)
	return Complex{
		re: k * (other.re*c.re + other.im*c.im),
		im: k * (other.re*c.im - other.im*c.re),
	}
}

// CheckedReciprocal is Reciprocal with a DIVISION_BY_ZERO error for c == 0
func (c Complex) CheckedReciprocal() (Complex, error) {
	if c.IsZero() {
		return Complex{}, errors.ComplexxDivisionByZero("CheckedReciprocal")
	}
	return c.Reciprocal(), nil
}

// CheckedDivide is Divide with a DIVISION_BY_ZERO error for other == 0
func (c Complex) CheckedDivide(other Complex) (Complex, error) {
	if other.IsZero() {
		return Complex{}, errors.ComplexxDivisionByZero("CheckedDivide").
			WithDetail("dividend", c.String())
	}
	return c.Divide(other), nil
}

// MustDivide returns c / other, panicking on a zero divisor
func (c Complex) MustDivide(other Complex) Complex {
	q, err := c.CheckedDivide(other)
	if err != nil {
		panic(err)
	}
	return q
}

// Sqrt returns the principal square root of c.
//
// The real part is sqrt((re + |c|)/2). The imaginary part is sqrt((|c| - re)/2)
// carrying the sign of im, and exactly 0 when im == 0.
func (c Complex) Sqrt() Complex {
	r := c.Magnitude()
	re := math.Sqrt((c.re + r) / 2)

	var im float64
	switch {
	case c.im < 0:
		im = -math.Sqrt((r - c.re) / 2)
	case c.im > 0:
		im = math.Sqrt((r - c.re) / 2)
	}
	return Complex{re: re, im: im}
}

// String formats c as "a+bi" using the shortest representation of each part
func (c Complex) String() string {
	return c.format('g', -1)
}

// StringFixed formats c as "a+bi" with prec digits after the decimal point.
// A negative prec uses the shortest representation.
func (c Complex) StringFixed(prec int) string {
	if prec < 0 {
		return c.String()
	}
	return c.format('f', prec)
}

func (c Complex) format(verb byte, prec int) string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(c.re, verb, prec, 64))

	im := strconv.FormatFloat(c.im, verb, prec, 64)
	if im[0] != '+' && im[0] != '-' {
		b.WriteByte('+')
	}
	b.WriteString(im)
	b.WriteByte('i')
	return b.String()
}

// IsDivisionByZero reports whether err came from a checked division helper
func IsDivisionByZero(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeDivisionByZero)
}
