// Package log provides structured logging for the cobra-aliases library.
//
// Package: log
// Title: cobra-aliases Structured Logging
// Description: This package implements a leveled, structured logger with
//              custom fields and pluggable output formats. Registration and
//              resolution paths log through it so applications can trace how
//              alias tokens are translated to primary commands.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with structured logging
//
// Usage:
//   import calog "github.com/msto63/cobra-aliases/core/log"
//
//   logger := calog.New().WithName("alias-registry")
//   logger.Info("alias registered", calog.Fields{
//     "alias":   "co",
//     "primary": "checkout",
//   })
package log
