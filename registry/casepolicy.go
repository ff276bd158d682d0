// File: casepolicy.go
// Title: Case Sensitivity Policy
// Description: Defines the tri-state case-sensitivity policy for alias
//              matching. CaseUnset defers to the host framework's own
//              setting at first use, after which the effective policy is
//              fixed for the registry's lifetime.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation with tri-state policy

package registry

import (
	"fmt"
	"strings"
)

// CasePolicy represents the case-sensitivity policy for alias matching
type CasePolicy int

const (
	// CaseUnset defers to the host framework's case-sensitivity setting
	// at the time of first registration or resolution
	CaseUnset CasePolicy = iota

	// CaseSensitive matches tokens exactly as registered
	CaseSensitive

	// CaseInsensitive folds tokens to lower case before storing and matching.
	// Display strings keep their registered casing.
	CaseInsensitive
)

// String returns the string representation of the case policy
func (p CasePolicy) String() string {
	switch p {
	case CaseUnset:
		return "unset"
	case CaseSensitive:
		return "sensitive"
	case CaseInsensitive:
		return "insensitive"
	default:
		return "unknown"
	}
}

// ParseCasePolicy parses a string into a case policy
func ParseCasePolicy(s string) (CasePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unset", "auto":
		return CaseUnset, nil
	case "sensitive", "case-sensitive":
		return CaseSensitive, nil
	case "insensitive", "case-insensitive":
		return CaseInsensitive, nil
	default:
		return CaseUnset, fmt.Errorf("unknown case policy: %s", s)
	}
}
