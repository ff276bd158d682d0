// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and logging. Registry conflicts are startup-time
//              failures and rank higher than ordinary input problems.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, missing optional settings
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: an alias file entry that cannot be applied
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: alias conflicts that would cause ambiguous dispatch
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: corrupted registry state (should never happen)
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeAliasConflict, CodeSelfAlias:
		return SeverityHigh

	case CodeConfigError, CodeMissingConfig:
		return SeverityMedium

	case CodeInvalidInput, CodeAliasNotFound, CodeInvalidConfig:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
