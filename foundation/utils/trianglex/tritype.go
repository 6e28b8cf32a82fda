// File: tritype.go
// Title: Triangle Classification Kinds
// Description: Defines TriType, the closed set of triangle kinds produced by
//              classification, with string conversion and parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-01
// Modified: 2025-08-01
//
// Change History:
// - 2025-08-01 v0.1.0: Initial implementation

package trianglex

import (
	"strconv"
	"strings"

	"github.com/msto63/mathkit/foundation/core/errors"
)

// TriType is the kind of a triangle as determined by Classify
type TriType int

const (
	// Equilateral has three equal sides
	Equilateral TriType = iota

	// Isosceles has exactly two equal sides
	Isosceles

	// Scalene has no equal sides and no right angle
	Scalene

	// Right satisfies a² + b² = c² for some ordering of its sides
	Right
)

var triTypeNames = map[TriType]string{
	Equilateral: "equilateral",
	Isosceles:   "isosceles",
	Scalene:     "scalene",
	Right:       "right",
}

// String returns the lower-case name of the kind
func (t TriType) String() string {
	if name, ok := triTypeNames[t]; ok {
		return name
	}
	return "TriType(" + strconv.Itoa(int(t)) + ")"
}

// AllTriTypes returns every kind in declaration order
func AllTriTypes() []TriType {
	return []TriType{Equilateral, Isosceles, Scalene, Right}
}

// ParseTriType parses a kind name, ignoring case and surrounding space
func ParseTriType(s string) (TriType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllTriTypes() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, errors.InvalidInput(errors.ModuleTrianglex, "parse_tri_type", s,
		"one of equilateral, isosceles, scalene, right")
}
