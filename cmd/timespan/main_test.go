package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunConvert(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"1", "hr", "min"}, "60 mins\n"},
		{[]string{"1000", "ms", "s"}, "1 s\n"},
		{[]string{"-full", "1", "day", "hr"}, "24 hours\n"},
		{[]string{"-precision", "4", "100", "min", "hr"}, "1.6667 hrs\n"},
		{[]string{"-sep", "", "90", "min", "hr"}, "1.5hrs\n"},
		// Unrecognized units fall back to hour instead of failing.
		{[]string{"5", "bogus-unit", "min"}, "300 mins\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if err := runConvert(tt.args, &out); err != nil {
			t.Fatalf("runConvert(%v) error = %v", tt.args, err)
		}
		if out.String() != tt.want {
			t.Errorf("runConvert(%v) = %q, want %q", tt.args, out.String(), tt.want)
		}
	}
}

func TestRunConvertBadMagnitude(t *testing.T) {
	var out bytes.Buffer
	if err := runConvert([]string{"ninety", "min", "hr"}, &out); err == nil {
		t.Error("runConvert with bad magnitude should fail")
	}
}

func TestRunConcise(t *testing.T) {
	var out bytes.Buffer
	if err := runConcise([]string{"90", "min"}, &out); err != nil {
		t.Fatalf("runConcise error = %v", err)
	}
	if got := out.String(); got != "1.5 hrs\n" {
		t.Errorf("runConcise(90 min) = %q, want %q", got, "1.5 hrs\n")
	}
}

func TestRunParse(t *testing.T) {
	var out bytes.Buffer
	if err := runParse([]string{"-full", "90 min"}, &out); err != nil {
		t.Fatalf("runParse error = %v", err)
	}
	if got := out.String(); got != "90 minutes\n" {
		t.Errorf("runParse(90 min) = %q, want %q", got, "90 minutes\n")
	}

	if err := runParse([]string{"90 fortnights"}, &out); err == nil {
		t.Error("runParse with unknown unit should fail")
	}
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"convert 1 hr min", "60 mins\n"},
		{"concise 90 min", "1.5 hrs\n"},
		{"parse 2 weeks", "2 wks\n"},
		{"convert 1 hr", "usage: convert <n> <from> <to>\n"},
		{"bogus", "unknown command \"bogus\" (try \"help\")\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if done := dispatch(strings.Fields(tt.line), &out); done {
			t.Errorf("dispatch(%q) ended the session", tt.line)
		}
		if out.String() != tt.want {
			t.Errorf("dispatch(%q) = %q, want %q", tt.line, out.String(), tt.want)
		}
	}
}

func TestDispatchExit(t *testing.T) {
	var out bytes.Buffer
	if done := dispatch([]string{"exit"}, &out); !done {
		t.Error("dispatch(exit) should end the session")
	}
}
