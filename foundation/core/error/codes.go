// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across mathkit for consistent
//              classification in logs and CLI output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-03 v0.2.0: Numeric domain codes, dropped service and auth codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Arithmetic and geometry
	CodeDivisionByZero     Code = "DIVISION_BY_ZERO"
	CodeDegenerateGeometry Code = "DEGENERATE_GEOMETRY"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeDivisionByZero, CodeDegenerateGeometry,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDivisionByZero, CodeDegenerateGeometry:
		return "arithmetic"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for the CLI.
// Usage errors exit with 2, everything else with 1.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation":
		return 2
	default:
		return 1
	}
}
