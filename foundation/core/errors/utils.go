// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent ErrorBuilder and the standard constructors used across
//              mathkit for consistent error patterns.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2025-08-05
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-08-03 v0.2.0: Numeric, config and CLI constructors
// - 2025-08-05 v0.2.1: InvalidFormat carries the parser error, dropped unused lookups

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/mathkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = string(mdwerror.CodeUnknown)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	op := eb.module
	if eb.operation != "" {
		op = eb.module + "." + eb.operation
	}

	// severity first so WithCode does not override it
	return err.
		WithSeverity(eb.severity).
		WithCode(mdwerror.Code(eb.code)).
		WithOperation(op).
		WithDetails(eb.details)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidFormat reports input that could not be parsed as expectedFormat.
// cause is the parser error and may be nil.
func InvalidFormat(module, operation string, input string, expectedFormat string, cause error) *mdwerror.Error {
	b := NewErrorBuilder(module).
		Operation(operation).
		Messagef("cannot parse %q as %s", input, expectedFormat).
		Code(CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(mdwerror.SeverityLow)
	if cause != nil {
		b = b.Cause(cause)
	}
	return b.Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("validate_"+field).
		Message(fmt.Sprintf("validation failed for field %s: %s", field, reason)).
		Code(CodeConfigInvalidValue).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// ComplexxDivisionByZero reports a zero divisor in a checked complex operation
func ComplexxDivisionByZero(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleComplexx).
		Operation(operation).
		Message("division by zero").
		Code(CodeComplexxDivisionByZero).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// TrianglexNonPositiveSide reports a side length that is zero or negative
func TrianglexNonPositiveSide(side string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleTrianglex).
		Operation("validate").
		Messagef("side %s must be positive, got %v", side, value).
		Code(CodeTrianglexNonPositiveSide).
		Detail("side", side).
		Detail("value", value).
		Severity(mdwerror.SeverityLow).
		Build()
}

// TrianglexInequalityViolated reports that one side is not shorter than the sum of the others
func TrianglexInequalityViolated(side string, value, sumOfOthers interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleTrianglex).
		Operation("validate").
		Messagef("side %s (%v) is not shorter than the sum of the other two (%v)", side, value, sumOfOthers).
		Code(CodeTrianglexInequalityViolated).
		Detail("side", side).
		Detail("value", value).
		Detail("sum_of_others", sumOfOthers).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ConfigNotFound reports an explicitly requested config file that does not exist
func ConfigNotFound(path string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("config file not found: %s", path).
		Code(CodeConfigNotFound).
		Detail("path", path).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// ConfigParseFailed wraps a decoder error for the given file and format
func ConfigParseFailed(path, format string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("failed to parse %s config file %s", format, path).
		Cause(cause).
		Code(CodeConfigParseFailed).
		Detail("path", path).
		Detail("format", format).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ConfigReadFailed wraps an I/O error for the given file
func ConfigReadFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("failed to read config file %s", path).
		Cause(cause).
		Code(CodeConfigReadFailed).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// CliInvalidArgument reports command-line arguments the command cannot use
func CliInvalidArgument(operation, arg string, expected string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCLI).
		Operation(operation).
		Messagef("invalid argument %q: expected %s", arg, expected).
		Code(CodeCLIInvalidArgument).
		Detail("argument", arg).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// CliUnknownOperation reports an operation name the command does not know
func CliUnknownOperation(command, op string, known []string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCLI).
		Operation(command).
		Messagef("unknown %s operation %q", command, op).
		Code(CodeCLIUnknownOperation).
		Detail("requested", op).
		Detail("known", known).
		Severity(mdwerror.SeverityLow).
		Build()
}
