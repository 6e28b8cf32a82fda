// Package log provides structured logging for mathkit.
//
// Package: log
// Title: mathkit Structured Logging
// Description: Leveled, structured logging with JSON, text, console and logfmt
//              output, correlation ids and integration with the structured
//              errors of foundation/core/error.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-05
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-08-03 v0.2.0: Deterministic field order, dropped async mode and audit level
// - 2025-08-05 v0.3.0: Dropped fatal level and the package default logger
//
// Usage:
//   import mdwlog "github.com/msto63/mathkit/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatLogfmt,
//   }).WithName("mathkit.complex").WithCorrelationID(uuid.NewString())
//
//   logger.Debug("evaluated", mdwlog.Fields{"op": "sqrt", "result": "3+1i"})
//   logger.LogError(err)
//
//   timer := logger.StartTimer("triangle.classify")
//   // ...
//   timer.Stop()
package log
