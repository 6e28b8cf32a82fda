// File: doc.go
// Title: Package Documentation for trianglex
// Description: Package trianglex provides an immutable triangle value type
//              over any integer or floating point side type, with validity
//              checks, Heron's area and classification.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-01
// Modified: 2025-08-01
//
// Change History:
// - 2025-08-01 v0.1.0: Initial implementation

// Package trianglex provides an immutable triangle described by its three
// side lengths.
//
// Triangle is generic over Scalar, so the same code serves integer and
// floating point sides:
//
//	t := trianglex.New(3, 4, 5)         // Triangle[int]
//	u := trianglex.New(2.0, 2.0, 3.0)   // Triangle[float64]
//
// Construction never validates. IsValid reports whether the sides are all
// positive and satisfy the strict triangle inequality, and Validate returns
// a structured error naming the rule that failed.
//
// # Classification
//
// Classify returns the first matching kind in this order: Equilateral,
// Isosceles, Right, Scalene. A right isosceles triangle is therefore
// reported as Isosceles. The Pythagorean check is exact, so float sides
// such as (1, 1, √2) are not recognised as right triangles.
//
// Classification and Area do not require a valid triangle. Area returns NaN
// when Heron's radicand is negative.
package trianglex
