// Package error provides the structured error type shared by the mathkit foundation.
//
// Package: error
// Title: mathkit Error Handling Framework
// Description: Structured errors carrying a code, a severity, operation context,
//              free-form details and a captured stack trace. The numeric packages
//              never return errors from their core operations; this package backs
//              the opt-in checked helpers, configuration loading and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-03 v0.2.0: Reduced code set to the numeric and configuration domains,
//                       added DIVISION_BY_ZERO and DEGENERATE_GEOMETRY
//
// Usage:
//   import mdwerror "github.com/msto63/mathkit/foundation/core/error"
//
//   err := mdwerror.New("divisor is zero").
//     WithCode(mdwerror.CodeDivisionByZero).
//     WithOperation("complexx.CheckedDivide").
//     WithDetail("divisor", "0+0i")
//
//   if mdwerror.HasCode(err, mdwerror.CodeDivisionByZero) {
//     // fall back to the unchecked operation or report
//   }
package error
