// File: exact.go
// Title: Overflow-Free Side Arithmetic
// Description: Sums and squares of integer sides computed with math/big so
//              the validity and right-angle checks cannot wrap. Float sides
//              keep their native arithmetic.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-05
// Modified: 2025-08-05
//
// Change History:
// - 2025-08-05 v0.1.0: Initial implementation

package trianglex

import "math/big"

// isFloat reports whether T is a floating point type. Integer division
// truncates 1/2 to zero, float division does not.
func isFloat[T Scalar]() bool {
	var one T = 1
	return one/2 != 0
}

// isSigned reports whether T can hold negative values
func isSigned[T Scalar]() bool {
	var zero T
	return zero-1 < zero
}

// toBig converts an integer side to a *big.Int without loss
func toBig[T Scalar](v T) *big.Int {
	if isSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func square[T Scalar](v T) *big.Int {
	x := toBig(v)
	return x.Mul(x, x)
}

func sumEquals(x, y, z *big.Int) bool {
	return new(big.Int).Add(x, y).Cmp(z) == 0
}

// inequalityViolation returns the first side, checking c, b and a in that
// order, that is not shorter than the sum of the other two. sum is a T for
// float sides and an exact *big.Int for integer sides.
func (t Triangle[T]) inequalityViolation() (side string, value T, sum any, found bool) {
	checks := [3]struct {
		name string
		side T
		x, y T
	}{
		{"c", t.c, t.a, t.b},
		{"b", t.b, t.a, t.c},
		{"a", t.a, t.b, t.c},
	}

	float := isFloat[T]()
	for _, k := range checks {
		if float {
			if k.x+k.y <= k.side {
				return k.name, k.side, k.x + k.y, true
			}
			continue
		}
		s := new(big.Int).Add(toBig(k.x), toBig(k.y))
		if s.Cmp(toBig(k.side)) <= 0 {
			return k.name, k.side, s, true
		}
	}
	return "", 0, nil, false
}

// isRight reports whether the squares of two sides add up to the square of
// the third
func (t Triangle[T]) isRight() bool {
	if isFloat[T]() {
		a, b, c := t.a, t.b, t.c
		return a*a+b*b == c*c || a*a+c*c == b*b || b*b+c*c == a*a
	}
	a, b, c := square(t.a), square(t.b), square(t.c)
	return sumEquals(a, b, c) || sumEquals(a, c, b) || sumEquals(b, c, a)
}

// ExactPerimeter returns a + b + c without wrapping for integer side types.
// ok is false for float sides, where Perimeter overflows to +Inf instead of
// wrapping.
func (t Triangle[T]) ExactPerimeter() (p *big.Int, ok bool) {
	if isFloat[T]() {
		return nil, false
	}
	p = toBig(t.a)
	p.Add(p, toBig(t.b))
	return p.Add(p, toBig(t.c)), true
}
