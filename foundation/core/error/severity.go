// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses them to pick
//              the level an error is reported at.
// Author: msto63
// Version: v0.1.2
// Created: 2025-01-24
// Modified: 2025-08-05
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-08-03 v0.1.1: Severity mapping for numeric domain codes
// - 2025-08-05 v0.1.2: Dropped alerting and numeric level accessors

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as a malformed argument
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects a single operation
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. an unreadable config file
	SeverityHigh

	// SeverityCritical indicates an error that makes the program unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeDivisionByZero, CodeDegenerateGeometry, CodeMissingConfig:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
