// File: casepolicy_test.go
// Title: Case Policy Unit Tests
// Description: Tests for the tri-state case policy string forms and parsing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial test suite

package registry

import "testing"

func TestCasePolicyString(t *testing.T) {
	tests := []struct {
		policy   CasePolicy
		expected string
	}{
		{CaseUnset, "unset"},
		{CaseSensitive, "sensitive"},
		{CaseInsensitive, "insensitive"},
		{CasePolicy(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.policy.String(); got != tt.expected {
			t.Errorf("CasePolicy(%d).String() = %s, expected %s", tt.policy, got, tt.expected)
		}
	}
}

func TestParseCasePolicy(t *testing.T) {
	tests := []struct {
		input     string
		expected  CasePolicy
		expectErr bool
	}{
		{"", CaseUnset, false},
		{"unset", CaseUnset, false},
		{"auto", CaseUnset, false},
		{"sensitive", CaseSensitive, false},
		{"case-sensitive", CaseSensitive, false},
		{"INSENSITIVE", CaseInsensitive, false},
		{" case-insensitive ", CaseInsensitive, false},
		{"fuzzy", CaseUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			policy, err := ParseCasePolicy(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if policy != tt.expected {
				t.Errorf("ParseCasePolicy(%q) = %s, expected %s", tt.input, policy, tt.expected)
			}
		})
	}
}
