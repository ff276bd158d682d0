// File: logger_test.go
// Title: Logger Unit Tests
// Description: Tests for the structured logger including level filtering,
//              contextual fields, clone semantics, and both output formats.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithLevel(LevelWarn)

	logger.Debug("should be filtered")
	logger.Info("should be filtered")
	logger.Warn("should appear")
	logger.Error("should appear too")

	output := buf.String()
	if strings.Contains(output, "filtered") {
		t.Errorf("Messages below warn level leaked into output:\n%s", output)
	}

	if !strings.Contains(output, "should appear") || !strings.Contains(output, "should appear too") {
		t.Errorf("Expected warn and error messages in output:\n%s", output)
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithName("registry")

	logger.Info("alias registered", Fields{"alias": "co", "primary": "checkout"})

	output := buf.String()
	for _, want := range []string{"[INF]", "registry:", "alias registered", "alias=co", "primary=checkout"} {
		if !strings.Contains(output, want) {
			t.Errorf("Text output missing %q:\n%s", want, output)
		}
	}
}

func TestTextOutputFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf)

	logger.Info("msg", Fields{"b": 2, "a": 1, "c": 3})

	output := buf.String()
	ia := strings.Index(output, "a=1")
	ib := strings.Index(output, "b=2")
	ic := strings.Index(output, "c=3")
	if ia < 0 || ib < 0 || ic < 0 || !(ia < ib && ib < ic) {
		t.Errorf("Fields should be emitted in sorted key order:\n%s", output)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
		Name:   "group",
	})

	logger.Debug("resolved", Fields{"token": "st", "primary": "status"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}

	if data["level"] != "debug" {
		t.Errorf("Expected level debug, got %v", data["level"])
	}
	if data["logger"] != "group" {
		t.Errorf("Expected logger group, got %v", data["logger"])
	}
	if data["token"] != "st" || data["primary"] != "status" {
		t.Errorf("Expected custom fields in JSON output, got %v", data)
	}
}

func TestWithFieldClone(t *testing.T) {
	var buf bytes.Buffer
	base := New().WithOutput(&buf)
	child := base.WithField("component", "registry")

	base.Info("from base")
	if strings.Contains(buf.String(), "component=") {
		t.Error("Base logger must not inherit the child's field")
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), "component=registry") {
		t.Errorf("Child logger should carry its context field:\n%s", buf.String())
	}
}

func TestErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf)

	logger.ErrorWithErr("registration failed", errTest)

	if !strings.Contains(buf.String(), `error="boom"`) {
		t.Errorf("Expected attached error in output:\n%s", buf.String())
	}
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "boom" }

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		expected  Level
		expectErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"fatal", LevelFatal, false},
		{"nope", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %s, expected %s", tt.input, level, tt.expected)
			}
		})
	}
}

func TestSetDefault(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(New().WithOutput(&buf))

	Info("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Error("Package-level Info should write through the default logger")
	}

	SetDefault(nil)
	if GetDefault() == nil {
		t.Error("SetDefault(nil) must not clear the default logger")
	}
}
