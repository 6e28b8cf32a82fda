// File: doc.go
// Title: Package Documentation for complexx
// Description: Package complexx provides an immutable complex number value type
//              with algebraic operations and explicit edge-case policies for
//              phase and square root.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-01
// Modified: 2025-08-01
//
// Change History:
// - 2025-08-01 v0.1.0: Initial implementation

// Package complexx provides an immutable complex number type.
//
// A Complex is a pair of float64 values (real, imaginary). Every operation is a
// pure function of its receiver and arguments and returns a new value, so a
// Complex can be shared between goroutines freely.
//
// # Edge cases
//
// Phase uses the half-angle form 2*atan2(im, |z|+re) whenever re > 0 or
// im != 0. On the negative real axis it returns π; at the origin it returns
// atan2(0, 0), which is 0.
//
// Sqrt returns the principal root. The imaginary part takes the sign of the
// input's imaginary part and is exactly 0 when the input's imaginary part is 0,
// so the root of a negative real number is reported as 0.
//
// Reciprocal and Divide do not check for a zero divisor and follow IEEE-754
// (Inf or NaN). CheckedReciprocal and CheckedDivide return a structured
// DIVISION_BY_ZERO error instead.
//
// # Usage
//
//	z := complexx.New(8, 6)
//	r := z.Sqrt()                        // 3+1i
//	m := complexx.New(3, -4).Magnitude() // 5
//
//	q, err := z.CheckedDivide(complexx.Zero())
//	if err != nil {
//	    // DIVISION_BY_ZERO
//	}
package complexx
