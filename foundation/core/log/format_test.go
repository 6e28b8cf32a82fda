// File: format_test.go
// Title: Log Formatter Tests
// Description: Tests for JSON, text, console and logfmt output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-03

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/mathkit/foundation/core/error"
)

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "evaluated")
	e.Timestamp = time.Date(2025, 8, 3, 12, 0, 0, 0, time.UTC)
	e.Logger = "complex"
	e.CorrelationID = "cid-1"
	e.Fields = Fields{"op": "sqrt", "result": "3+1i"}
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.input, got, err)
		}
		if !tt.wantErr && got.String() != strings.ToLower(tt.input) {
			t.Errorf("%v.String() = %q", got, got.String())
		}
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	out, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}

	want := map[string]interface{}{
		"level":          "info",
		"message":        "evaluated",
		"logger":         "complex",
		"correlation_id": "cid-1",
		"op":             "sqrt",
		"result":         "3+1i",
		"timestamp":      "2025-08-03T12:00:00Z",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestJSONFormatter_StructuredError(t *testing.T) {
	e := testEntry()
	e.Error = mdwerror.New("division by zero").WithCode(mdwerror.CodeDivisionByZero)

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", data)
	}
	if details["code"] != "DIVISION_BY_ZERO" {
		t.Errorf("error_details.code = %v", details["code"])
	}
}

func TestTextFormatter_Format(t *testing.T) {
	e := testEntry()
	e.Error = errors.New("boom")

	f := NewTextFormatter()
	out, _ := f.Format(e)
	want := `12:00:00 [INF] {complex} (cid=cid-1) evaluated [op=sqrt result=3+1i] error="boom"` + "\n"
	if string(out) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", out, want)
	}

	f.DisableTimestamp = true
	out, _ = f.Format(e)
	if strings.HasPrefix(string(out), "12:00:00") {
		t.Error("DisableTimestamp should omit the timestamp")
	}
}

func TestConsoleFormatter_Format(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(out), LevelInfo.Color()) || !strings.HasSuffix(string(out), "\033[0m\n") {
		t.Errorf("console output not colorized: %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(testEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("DisableColors output contains escape codes: %q", out)
	}
}

func TestLogfmtFormatter_Format(t *testing.T) {
	e := testEntry()
	e.Duration = 1500 * time.Microsecond
	out, _ := NewLogfmtFormatter().Format(e)

	want := `timestamp=2025-08-03T12:00:00Z level=info message="evaluated" logger=complex correlation_id=cid-1 op="sqrt" result="3+1i" duration_ms=1.500` + "\n"
	if string(out) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", out, want)
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("FormatText should give a TextFormatter")
	}
	if _, ok := GetFormatter(FormatConsole).(*ConsoleFormatter); !ok {
		t.Error("FormatConsole should give a ConsoleFormatter")
	}
	if _, ok := GetFormatter(FormatLogfmt).(*LogfmtFormatter); !ok {
		t.Error("FormatLogfmt should give a LogfmtFormatter")
	}
	if _, ok := GetFormatter(Format(42)).(*JSONFormatter); !ok {
		t.Error("unknown formats fall back to JSON")
	}
}
