// File: format_test.go
// Title: Level and Format Tests
// Description: Tests for level and format parsing and for the output of
//              each formatter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DBG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseFormat("xml")
	if err == nil || err.Error() != "invalid format: xml" {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
}

func TestLevelStrings(t *testing.T) {
	if LevelWarn.String() != "warn" || LevelWarn.ShortString() != "WRN" {
		t.Errorf("unexpected strings for warn: %s %s", LevelWarn, LevelWarn.ShortString())
	}
	if Level(42).String() != "unknown" || Level(42).ShortString() != "???" {
		t.Error("undefined level should render as unknown")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatText, FormatConsole, FormatLogfmt} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
}

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "hello")
	e.Timestamp = time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC)
	e.Logger = "charseq"
	e.RequestID = "r1"
	e.WithFields(Fields{"b": 2, "a": "x y"})
	return e
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "12:30:00 [INF] {charseq} (req=r1) hello [a=x y b=2]\n"
	if string(out) != want {
		t.Errorf("text output = %q, want %q", out, want)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := testEntry().WithError(errors.New("bad")).WithDuration(1500 * time.Microsecond)
	out, err := NewLogfmtFormatter().Format(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `timestamp=2026-10-18T12:30:00Z level=info message="hello" logger=charseq request_id=r1 a="x y" b=2 error="bad" duration_ms=1.500` + "\n"
	if string(out) != want {
		t.Errorf("logfmt output = %q, want %q", out, want)
	}
}

func TestConsoleFormatterWithoutColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	out, _ := f.Format(testEntry())
	text, _ := NewTextFormatter().Format(testEntry())
	if string(out) != string(text) {
		t.Errorf("console without colors = %q, want %q", out, text)
	}
}

func TestConsoleFormatterKeepsMessage(t *testing.T) {
	out, _ := NewConsoleFormatter().Format(testEntry())
	if !strings.Contains(string(out), "INF") || !strings.HasSuffix(string(out), "hello [a=x y b=2]\n") {
		t.Errorf("console output = %q", out)
	}
}

func TestGetFormatterDefault(t *testing.T) {
	if _, ok := GetFormatter(Format(99)).(*TextFormatter); !ok {
		t.Error("unknown format should fall back to text")
	}
}
