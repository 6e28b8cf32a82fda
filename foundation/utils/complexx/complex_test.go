// File: complex_test.go
// Title: Complex Number Value Type Tests
// Description: Table-driven tests for the Complex accessors, arithmetic,
//              phase and square root branch policies, checked division
//              helpers and string formatting.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-01
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-01 v0.1.0: Initial test implementation
// - 2025-08-03 v0.1.1: Tests for checked division and formatting

package complexx

import (
	"errors"
	"math"
	"testing"

	mdwerror "github.com/msto63/mathkit/foundation/core/error"
)

const epsilon = 1e-12

// a variable keeps 0.1+0.2 out of exact constant arithmetic
var tenth = 0.1

// closeEnough compares with a relative tolerance, falling back to an
// absolute one when want is zero
func closeEnough(got, want, eps float64) bool {
	if got == want {
		return true
	}
	diff := math.Abs(got - want)
	if want == 0 {
		return diff < eps
	}
	return diff/math.Abs(want) < eps
}

func assertComplex(t *testing.T, got, want Complex) {
	t.Helper()
	if !closeEnough(got.Real(), want.Real(), epsilon) || !closeEnough(got.Imag(), want.Imag(), epsilon) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAccessors(t *testing.T) {
	c := New(2, -3)
	if c.Real() != 2 {
		t.Errorf("Real() = %v, want 2", c.Real())
	}
	if c.Imag() != -3 {
		t.Errorf("Imag() = %v, want -3", c.Imag())
	}

	var zero Complex
	if !zero.Equal(Zero()) || !zero.IsZero() {
		t.Error("zero value must equal Zero()")
	}
	if !One().Equal(New(1, 0)) {
		t.Errorf("One() = %v", One())
	}
	if !I().Equal(New(0, 1)) {
		t.Errorf("I() = %v", I())
	}
	if !I().Multiply(I()).Equal(New(-1, 0)) {
		t.Errorf("i² = %v, want -1", I().Multiply(I()))
	}
}

func TestBuiltinInterop(t *testing.T) {
	z := complex(3.5, -1.25)
	c := FromComplex128(z)
	if c.Real() != 3.5 || c.Imag() != -1.25 {
		t.Errorf("FromComplex128(%v) = %v", z, c)
	}
	if c.Complex128() != z {
		t.Errorf("Complex128() = %v, want %v", c.Complex128(), z)
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name string
		c    Complex
		want float64
	}{
		{"origin", New(0, 0), 0},
		{"unit real", New(1, 0), 1},
		{"negative real", New(-1, 0), 1},
		{"3-4i", New(3, -4), 5},
		{"-3+4i", New(-3, 4), 5},
		{"8+6i", New(8, 6), 10},
		{"1+1i", New(1, 1), math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Magnitude()
			if !closeEnough(got, tt.want, epsilon) {
				t.Errorf("Magnitude() = %v, want %v", got, tt.want)
			}
			if got < 0 {
				t.Errorf("Magnitude() must not be negative, got %v", got)
			}
		})
	}
}

func TestPhase(t *testing.T) {
	tests := []struct {
		name string
		c    Complex
		want float64
	}{
		{"origin", New(0, 0), 0},
		{"positive real", New(1, 0), 0},
		{"negative real", New(-1, 0), math.Pi},
		{"negative real with negative zero", New(-1, math.Copysign(0, -1)), math.Pi},
		{"first quadrant", New(1, 1), 0.7853981633974484},
		{"positive imaginary", New(0, 1), math.Pi / 2},
		{"negative imaginary", New(0, -1), -math.Pi / 2},
		{"3-4i", New(3, -4), -0.9272952180016122},
		{"-3+4i", New(-3, 4), 2.214297435588181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Phase()
			if !closeEnough(got, tt.want, epsilon) {
				t.Errorf("Phase() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("negative real is exactly pi", func(t *testing.T) {
		if got := New(-2.5, 0).Phase(); got != math.Pi {
			t.Errorf("Phase() = %v, want exactly π", got)
		}
	})

	t.Run("NaN propagates", func(t *testing.T) {
		if got := New(math.NaN(), 0).Phase(); !math.IsNaN(got) {
			t.Errorf("Phase() = %v, want NaN", got)
		}
	})
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Complex
		want bool
	}{
		{"identical", New(1, 2), New(1, 2), true},
		{"different real", New(1, 2), New(1.5, 2), false},
		{"different imaginary", New(1, 2), New(1, -2), false},
		{"signed zeros", New(0, 0), New(math.Copysign(0, -1), math.Copysign(0, -1)), true},
		{"NaN never equal", New(math.NaN(), 0), New(math.NaN(), 0), false},
		{"no tolerance", New(tenth+0.2, 0), New(0.3, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestConjugate(t *testing.T) {
	tests := []struct {
		c, want Complex
	}{
		{New(2, 3), New(2, -3)},
		{New(3, -4), New(3, 4)},
		{New(-3, 4), New(-3, -4)},
		{New(0, 0), New(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			got := tt.c.Conjugate()
			if !got.Equal(tt.want) {
				t.Errorf("Conjugate() = %v, want %v", got, tt.want)
			}
			if !got.Conjugate().Equal(tt.c) {
				t.Errorf("Conjugate is not an involution for %v", tt.c)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Complex
		sum     Complex
		diff    Complex
		product Complex
	}{
		{"2+3i and 1", New(2, 3), New(1, 0), New(3, 3), New(1, 3), New(2, 3)},
		{"2+3i and -1-1i", New(2, 3), New(-1, -1), New(1, 2), New(3, 4), New(1, -5)},
		{"3-4i and -3+4i", New(3, -4), New(-3, 4), New(0, 0), New(6, -8), New(7, 24)},
		{"8+6i and 3-4i", New(8, 6), New(3, -4), New(11, 2), New(5, 10), New(48, -14)},
		{"zero and i", New(0, 0), New(0, 1), New(0, 1), New(0, -1), New(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); !got.Equal(tt.sum) {
				t.Errorf("Add() = %v, want %v", got, tt.sum)
			}
			if got := tt.a.Subtract(tt.b); !got.Equal(tt.diff) {
				t.Errorf("Subtract() = %v, want %v", got, tt.diff)
			}
			if got := tt.a.Multiply(tt.b); !got.Equal(tt.product) {
				t.Errorf("Multiply() = %v, want %v", got, tt.product)
			}
		})
	}
}

func TestReciprocal(t *testing.T) {
	tests := []struct {
		c, want Complex
	}{
		{New(1, 0), New(1, 0)},
		{New(1, 1), New(0.5, -0.5)},
		{New(0, 1), New(0, -1)},
		{New(-1, -1), New(-0.5, 0.5)},
		{New(3, -4), New(0.12, 0.16)},
		{New(-3, 4), New(-0.12, -0.16)},
	}

	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			assertComplex(t, tt.c.Reciprocal(), tt.want)
		})
	}

	t.Run("zero yields non-finite parts", func(t *testing.T) {
		got := Zero().Reciprocal()
		if !math.IsNaN(got.Real()) || !math.IsNaN(got.Imag()) {
			t.Errorf("Reciprocal() of zero = %v, want NaN parts", got)
		}
	})
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name string
		a, b Complex
		want Complex
	}{
		{"by one", New(2, 3), New(1, 0), New(2, 3)},
		{"by -1-1i", New(2, 3), New(-1, -1), New(-2.5, -0.5)},
		{"3-4i by -3+4i", New(3, -4), New(-3, 4), New(-1, 0)},
		{"-3+4i by 3-4i", New(-3, 4), New(3, -4), New(-1, 0)},
		{"zero dividend", New(0, 0), New(-1, -1), New(0, 0)},
		{"by i", New(1, 0), New(0, 1), New(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertComplex(t, tt.a.Divide(tt.b), tt.want)
		})
	}

	t.Run("zero divisor yields non-finite parts", func(t *testing.T) {
		got := New(1, 1).Divide(Zero())
		if isFinite(got.Real()) || isFinite(got.Imag()) {
			t.Errorf("Divide() by zero = %v, want non-finite parts", got)
		}
	})
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		name string
		c    Complex
		want Complex
	}{
		{"origin", New(0, 0), New(0, 0)},
		{"one", New(1, 0), New(1, 0)},
		{"four", New(4, 0), New(2, 0)},
		{"8+6i", New(8, 6), New(3, 1)},
		{"3-4i", New(3, -4), New(2, -1)},
		{"1+2i", New(1, 2), New(1.272019649514069, 0.7861513777574233)},
		{"-2i", New(0, -2), New(1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertComplex(t, tt.c.Sqrt(), tt.want)
		})
	}

	t.Run("negative real axis yields zero", func(t *testing.T) {
		got := New(-4, 0).Sqrt()
		if !got.Equal(Zero()) {
			t.Errorf("Sqrt(-4) = %v, want 0+0i", got)
		}
		if got.Imag() != 0 {
			t.Errorf("imaginary part must be exactly 0, got %v", got.Imag())
		}
	})

	t.Run("real part is never negative", func(t *testing.T) {
		for _, c := range sampleValues() {
			if re := c.Sqrt().Real(); re < 0 {
				t.Errorf("Sqrt(%v).Real() = %v", c, re)
			}
		}
	})
}

func sampleValues() []Complex {
	return []Complex{
		New(1, 0), New(0, 1), New(0, -1), New(2, 3), New(-2, 3),
		New(-2, -3), New(3, -4), New(8, 6), New(0.5, -0.25), New(1e3, 1e-3),
	}
}

func TestAlgebraicProperties(t *testing.T) {
	values := sampleValues()

	for _, a := range values {
		for _, b := range values {
			if got := a.Add(b).Subtract(b); !got.Equal(a) && !closeToComplex(got, a, 1e-9) {
				t.Errorf("(%v + %v) - %v = %v", a, b, b, got)
			}
			if !closeToComplex(a.Multiply(b), b.Multiply(a), 1e-12) {
				t.Errorf("%v * %v is not commutative", a, b)
			}
			if got := a.Multiply(b).Divide(b); !closeToComplex(got, a, 1e-9) {
				t.Errorf("(%v * %v) / %v = %v", a, b, b, got)
			}
		}
	}
}

func TestSqrtSquaredRecoversValue(t *testing.T) {
	for _, c := range sampleValues() {
		s := c.Sqrt()
		if got := s.Multiply(s); !closeToComplex(got, c, 1e-9) {
			t.Errorf("Sqrt(%v)² = %v", c, got)
		}
	}
}

func closeToComplex(got, want Complex, tol float64) bool {
	scale := math.Max(1, want.Magnitude())
	return got.Subtract(want).Magnitude() <= tol*scale
}

func TestCheckedReciprocal(t *testing.T) {
	got, err := New(3, -4).CheckedReciprocal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertComplex(t, got, New(0.12, 0.16))

	_, err = Zero().CheckedReciprocal()
	if err == nil {
		t.Fatal("expected error for zero")
	}
	if !IsDivisionByZero(err) {
		t.Errorf("IsDivisionByZero(%v) = false", err)
	}
}

func TestCheckedDivide(t *testing.T) {
	got, err := New(2, 3).CheckedDivide(New(-1, -1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertComplex(t, got, New(-2.5, -0.5))

	_, err = New(1, 1).CheckedDivide(Zero())
	if !IsDivisionByZero(err) {
		t.Fatalf("expected division by zero, got %v", err)
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		t.Fatalf("expected *mdwerror.Error, got %T", err)
	}
	if mdwErr.Details()["dividend"] != "1+1i" {
		t.Errorf("dividend detail = %v", mdwErr.Details()["dividend"])
	}
	if mdwErr.Severity() != mdwerror.SeverityMedium {
		t.Errorf("Severity() = %v, want medium", mdwErr.Severity())
	}
}

func TestMustDivide(t *testing.T) {
	if got := New(8, 6).MustDivide(New(3, -4)); !closeToComplex(got, New(0, 2), 1e-12) {
		t.Errorf("MustDivide() = %v, want 0+2i", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustDivide by zero should panic")
		}
	}()
	New(1, 0).MustDivide(Zero())
}

func TestIsDivisionByZeroOnOtherErrors(t *testing.T) {
	if IsDivisionByZero(nil) {
		t.Error("nil is not a division by zero")
	}
	if IsDivisionByZero(errors.New("boom")) {
		t.Error("plain errors are not a division by zero")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Complex
		want string
	}{
		{New(3, 1), "3+1i"},
		{New(2, -1), "2-1i"},
		{New(0, 0), "0+0i"},
		{New(-0.5, 0.25), "-0.5+0.25i"},
		{New(1, math.Copysign(0, -1)), "1-0i"},
		{New(1.272019649514069, 0.7861513777574233), "1.272019649514069+0.7861513777574233i"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringFixed(t *testing.T) {
	tests := []struct {
		c    Complex
		prec int
		want string
	}{
		{New(3, -4), 2, "3.00-4.00i"},
		{New(0.12, 0.16), 1, "0.1+0.2i"},
		{New(math.Pi, 0), 4, "3.1416+0.0000i"},
		{New(2, 3), 0, "2+3i"},
		{New(0.5, -0.25), -1, "0.5-0.25i"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.StringFixed(tt.prec); got != tt.want {
				t.Errorf("StringFixed(%d) = %q, want %q", tt.prec, got, tt.want)
			}
		})
	}
}

func TestImmutability(t *testing.T) {
	a := New(2, 3)
	b := New(-1, -1)

	_ = a.Add(b)
	_ = a.Multiply(b)
	_ = a.Divide(b)
	_ = a.Sqrt()
	_ = a.Conjugate()

	if !a.Equal(New(2, 3)) || !b.Equal(New(-1, -1)) {
		t.Errorf("operands changed: a=%v b=%v", a, b)
	}
}
