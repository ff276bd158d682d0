// Package error provides structured error handling for the cobra-aliases library.
//
// Package: error
// Title: cobra-aliases Error Handling
// Description: This package implements a structured error type with error codes,
//              details, and severity levels. It keeps compatibility with Go's
//              standard error interface and errors.Is/As while carrying enough
//              context to name the offending alias token and its existing owner
//              in conflict situations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Error severity levels
// - Helper predicates for the alias registry error taxonomy
//
// Usage:
//   import caerror "github.com/msto63/cobra-aliases/core/error"
//
//   // Create a new error with context
//   err := caerror.New("alias already registered").
//     WithCode(caerror.CodeAliasConflict).
//     WithDetail("alias", "co").
//     WithDetail("owner", "checkout")
//
//   // Check error classification
//   if caerror.IsConflict(err) {
//     // Handle alias conflicts specifically
//   }
package error
