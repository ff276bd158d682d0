// File: codes_test.go
// Title: Error Code Unit Tests
// Description: Tests for error code validity checks and categorization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial test suite

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeAliasConflict, CodeAliasNotFound, CodeSelfAlias,
		CodeConfigError, CodeInvalidConfig, CodeMissingConfig,
	}

	for _, code := range valid {
		if !code.IsValid() {
			t.Errorf("Code %s should be valid", code)
		}
	}

	if Code("NO_SUCH_CODE").IsValid() {
		t.Error("Unknown code should not be valid")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		expected string
	}{
		{CodeAliasConflict, "registry"},
		{CodeAliasNotFound, "registry"},
		{CodeSelfAlias, "registry"},
		{CodeInvalidConfig, "configuration"},
		{CodeMissingConfig, "configuration"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.expected {
				t.Errorf("Category(%s) = %s, expected %s", tt.code, got, tt.expected)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.expected {
			t.Errorf("Severity(%d).String() = %s, expected %s", tt.severity, got, tt.expected)
		}
	}
}
