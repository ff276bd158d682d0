// Package stringx provides string utilities for the cobra-aliases library.
//
// Package: stringx
// Title: String Utility Functions
// Description: Implements string operations that extend the Go standard
//              library with Unicode-aware helpers: blank checks, case folding
//              for the alias case policy, and terminal display width
//              calculation for help-text alignment.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with core utilities
package stringx
