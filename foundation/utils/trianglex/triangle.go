// File: triangle.go
// Title: Triangle Value Type
// Description: Implements the immutable generic Triangle: side access,
//              order-independent equality, perimeter, Heron's area, validity
//              and classification.
// Author: msto63
// Version: v0.1.2
// Created: 2025-08-01
// Modified: 2025-08-05
//
// Change History:
// - 2025-08-01 v0.1.0: Initial implementation of Triangle
// - 2025-08-03 v0.1.1: Validate with structured errors, Semiperimeter, String
// - 2025-08-05 v0.1.2: Validity and right-angle checks no longer wrap for large integer sides

package trianglex

import (
	"fmt"
	"math"
	"slices"

	"github.com/msto63/mathkit/foundation/core/errors"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of side length types a Triangle can hold
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Triangle is described by its three side lengths in construction order
type Triangle[T Scalar] struct {
	a, b, c T
}

// New creates a Triangle. The sides are stored as given and not validated.
func New[T Scalar](a, b, c T) Triangle[T] {
	return Triangle[T]{a: a, b: b, c: c}
}

// Sides returns the side lengths in construction order
func (t Triangle[T]) Sides() (a, b, c T) {
	return t.a, t.b, t.c
}

// Equal reports whether both triangles have the same multiset of sides
func (t Triangle[T]) Equal(other Triangle[T]) bool {
	return t.sorted() == other.sorted()
}

func (t Triangle[T]) sorted() [3]T {
	s := [3]T{t.a, t.b, t.c}
	slices.Sort(s[:])
	return s
}

// Perimeter returns a + b + c in the side type. Integer sums wrap on
// overflow like any Go arithmetic; see ExactPerimeter.
func (t Triangle[T]) Perimeter() T {
	return t.a + t.b + t.c
}

// Semiperimeter returns half the perimeter as float64
func (t Triangle[T]) Semiperimeter() float64 {
	return (float64(t.a) + float64(t.b) + float64(t.c)) / 2
}

// Area returns the area by Heron's formula. It is NaN when the radicand is
// negative, which happens for some invalid triangles.
func (t Triangle[T]) Area() float64 {
	s := t.Semiperimeter()
	return math.Sqrt(s * (s - float64(t.a)) * (s - float64(t.b)) * (s - float64(t.c)))
}

// IsValid reports whether every side is positive and each side is strictly
// shorter than the sum of the other two
func (t Triangle[T]) IsValid() bool {
	if t.a <= 0 || t.b <= 0 || t.c <= 0 {
		return false
	}
	_, _, _, broken := t.inequalityViolation()
	return !broken
}

// Validate returns nil for a valid triangle, otherwise an error naming the
// first side that breaks a rule. Non-positive sides are reported before the
// triangle inequality.
func (t Triangle[T]) Validate() error {
	for _, side := range []struct {
		name  string
		value T
	}{{"a", t.a}, {"b", t.b}, {"c", t.c}} {
		if side.value <= 0 {
			return errors.TrianglexNonPositiveSide(side.name, side.value)
		}
	}

	if side, value, sum, broken := t.inequalityViolation(); broken {
		return errors.TrianglexInequalityViolated(side, value, sum)
	}
	return nil
}

// Classify returns the kind of the triangle, checking Equilateral,
// Isosceles, Right and Scalene in that order. Validity is not required.
func (t Triangle[T]) Classify() TriType {
	a, b, c := t.a, t.b, t.c
	switch {
	case a == b && b == c:
		return Equilateral
	case a == b || a == c || b == c:
		return Isosceles
	case t.isRight():
		return Right
	default:
		return Scalene
	}
}

// String returns "Triangle(a, b, c)"
func (t Triangle[T]) String() string {
	return fmt.Sprintf("Triangle(%v, %v, %v)", t.a, t.b, t.c)
}
