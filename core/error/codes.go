// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the cobra-aliases library. These codes
//              carry the registry error taxonomy: conflicts, unknown primaries,
//              and invalid configuration.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the cobra-aliases library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Alias registry
	CodeAliasConflict Code = "ALIAS_CONFLICT"
	CodeAliasNotFound Code = "ALIAS_NOT_FOUND"
	CodeSelfAlias     Code = "SELF_ALIAS"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeMissingConfig Code = "MISSING_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeAliasConflict, CodeAliasNotFound, CodeSelfAlias,
		CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeAliasConflict, CodeAliasNotFound, CodeSelfAlias:
		return "registry"
	case CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return "configuration"
	default:
		return "generic"
	}
}
