// ============================================================================
// mathkit - Complex Number and Triangle Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the libraries and the CLI
// Author:      msto63
// Created:     2025-08-03
// License:     MIT
// ============================================================================

package version

// Version constants for all mathkit components
const (
	// Toolkit version
	Toolkit = "0.1.0"

	// Component versions
	Complexx  = "0.1.1"
	Trianglex = "0.1.1"
	CLI       = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "complexx":
		return Complexx
	case "trianglex":
		return Trianglex
	case "cli", "mathkit":
		return CLI
	default:
		return Toolkit
	}
}

// Components lists the names accepted by ComponentVersion
func Components() []string {
	return []string{"complexx", "trianglex", "cli"}
}
