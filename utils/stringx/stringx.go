// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements essential string operations used across the
//              library. Focuses on Unicode safety: case folding goes through
//              strings.ToLower, display width goes through go-runewidth so
//              East Asian wide characters and combining marks count their
//              actual terminal cells.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}

	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

// Fold returns the canonical lower-case form of s used for case-insensitive
// alias matching. Display strings keep their registered casing; only map
// keys are folded.
func Fold(s string) string {
	return strings.ToLower(s)
}

// EqualFold reports whether a and b are equal under case folding
func EqualFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// DisplayWidth returns the number of terminal cells s occupies. Unlike
// len(s) or utf8.RuneCountInString(s) this accounts for East Asian wide
// characters, combining marks, and zero-width runes.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads s with spaces on the right until it occupies width display
// cells. Strings already at or beyond the width are returned unchanged.
func PadRight(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
