// File: standards.go
// Title: Error Standards for mathkit
// Description: Module identifiers and standardized error codes shared by all
//              mathkit packages, mapped onto the codes of foundation/core/error.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2025-08-05
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-08-03 v0.2.0: Module set reduced to complexx, trianglex, config, cli
// - 2025-08-05 v0.2.1: Only codes known to foundation/core/error

package errors

// Module identifiers for error categorization
const (
	ModuleComplexx  = "complexx"
	ModuleTrianglex = "trianglex"
	ModuleConfig    = "config"
	ModuleCLI       = "cli"
	ModuleLog       = "log"
)

// Standardized error codes. Every value must be a Code known to
// foundation/core/error so Category and ExitCode apply.
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInvalidFormat = "INVALID_FORMAT"
	CodeOutOfRange    = "VALUE_OUT_OF_RANGE"

	CodeComplexxDivisionByZero = "DIVISION_BY_ZERO"

	CodeTrianglexNonPositiveSide    = "VALUE_OUT_OF_RANGE"
	CodeTrianglexInequalityViolated = "DEGENERATE_GEOMETRY"

	CodeConfigNotFound     = "MISSING_CONFIG"
	CodeConfigParseFailed  = "INVALID_CONFIG"
	CodeConfigReadFailed   = "CONFIG_ERROR"
	CodeConfigInvalidValue = "VALIDATION_FAILED"

	CodeCLIInvalidArgument  = "INVALID_INPUT"
	CodeCLIUnknownOperation = "NOT_FOUND"
)
