// File: level.go
// Title: Log Levels
// Description: Log level definitions, parsing and filtering. Names, short
//              tags and console colors come from a single table indexed by
//              level.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-05
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with log levels
// - 2025-08-03 v0.2.0: Removed audit level
// - 2025-08-05 v0.3.0: Removed fatal level, table-driven names and parsing

package log

import (
	"strings"

	"github.com/msto63/mathkit/foundation/core/errors"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
}

func (l Level) info() (levelInfo, bool) {
	if l < 0 || int(l) >= len(levels) {
		return levelInfo{name: "unknown", short: "???", color: "\033[0m"}, false
	}
	return levels[l], true
}

// String returns the lower-case level name
func (l Level) String() string {
	i, _ := l.info()
	return i.name
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	i, _ := l.info()
	return i.short
}

// Color returns the ANSI color sequence for console output
func (l Level) Color() string {
	i, _ := l.info()
	return i.color
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name or one of its aliases, case-insensitively
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, i := range levels {
		if s == i.name {
			return Level(l), nil
		}
		for _, alias := range i.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, errors.InvalidFormat(errors.ModuleLog, "parse_level", level, "a log level (trace, debug, info, warn, error)", nil)
}

// DefaultLevel returns the default log level. The CLI only reports warnings
// unless asked to be verbose.
func DefaultLevel() Level {
	return LevelWarn
}
