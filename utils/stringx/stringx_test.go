// File: stringx_test.go
// Title: String Utility Unit Tests
// Description: Tests for blank detection, case folding, and display width
//              calculation including multi-byte and East Asian wide
//              characters.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial test suite

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", true},
		{"Spaces only", "   ", true},
		{"Tabs and newlines", "\t\n ", true},
		{"Non-blank", "checkout", false},
		{"Surrounded by spaces", " co ", false},
		{"Unicode whitespace", "  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFold(t *testing.T) {
	if Fold("CheckOut") != "checkout" {
		t.Errorf("Fold should lower-case: got %q", Fold("CheckOut"))
	}

	if !EqualFold("LS", "ls") || !EqualFold("Ls", "lS") {
		t.Error("EqualFold should match differently cased tokens")
	}

	if EqualFold("ls", "list") {
		t.Error("EqualFold must not match different tokens")
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"ASCII", "checkout", 8},
		{"Empty", "", 0},
		{"East Asian wide", "状態", 4},
		{"Mixed", "st 状態", 7},
		{"Accented latin", "café", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.input); got != tt.expected {
				t.Errorf("DisplayWidth(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("co", 5); got != "co   " {
		t.Errorf("PadRight(co, 5) = %q", got)
	}

	// Wide runes occupy two cells, so only one space is needed
	if got := PadRight("状態", 5); got != "状態 " {
		t.Errorf("PadRight on wide runes = %q", got)
	}

	if got := PadRight("checkout", 4); got != "checkout" {
		t.Errorf("PadRight must not truncate: %q", got)
	}
}
