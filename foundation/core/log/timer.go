// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration on completion.
// Author: msto63
// Version: v0.1.2
// Created: 2025-01-24
// Modified: 2025-08-05
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-03 v0.1.1: Entries carry Duration instead of duplicate string fields
// - 2025-08-05 v0.1.2: Timers always log at debug, failures included

package log

import (
	"time"
)

// Timer measures an operation and logs its duration at debug level
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Stop stops the timer and logs the elapsed time. A second call returns 0
// and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := time.Since(t.startTime)
	t.stopped = true

	t.fields["operation"] = t.operation
	t.emit(t.operation+" completed", nil, elapsed)
	return elapsed
}

// StopWithError stops the timer and logs a failure with err attached.
// Reporting err to the user is left to the caller.
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := time.Since(t.startTime)
	t.stopped = true

	t.fields["operation"] = t.operation
	t.fields["success"] = false
	t.emit(t.operation+" failed", err, elapsed)
	return elapsed
}

func (t *Timer) emit(message string, err error, elapsed time.Duration) {
	if t.logger == nil || !t.logger.IsLevelEnabled(LevelDebug) {
		return
	}

	entry := NewEntry(LevelDebug, message)
	entry.Logger = t.logger.name
	entry.CorrelationID = t.logger.correlationID
	entry.Error = err
	entry.Duration = elapsed
	entry.Fields = t.logger.contextFields.Merge(t.fields)
	t.logger.write(entry)
}
