// Package errors provides standardized error constructors for mathkit modules.
//
// Package: errors
// Title: Standardized Error Constructors
// Description: A fluent ErrorBuilder on top of foundation/core/error plus
//              ready-made constructors for the situations the numeric packages,
//              the configuration loader and the CLI report. Use these instead of
//              fmt.Errorf so that every error carries a module, an operation and
//              a stable code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-08-03 v0.2.0: complexx, trianglex, config and cli constructors
//
// Usage:
//
//	import mdwerrors "github.com/msto63/mathkit/foundation/core/errors"
//
//	if divisor.IsZero() {
//	    return complexx.Complex{}, mdwerrors.ComplexxDivisionByZero("CheckedDivide")
//	}
//
//	err := mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
//	    Operation("parse_side").
//	    Messagef("side %q is not a number", arg).
//	    Code(mdwerrors.CodeCLIInvalidArgument).
//	    Build()
package errors
