// Package config provides configuration loading for the cobra-aliases library.
//
// Package: config
// Title: Settings and Alias File Handling
// Description: This package implements the construction-time settings for the
//              dispatch group (case policy, help display wrapper, separator,
//              truncation count) and load/save support for user alias files
//              in TOML and YAML format with auto-detection by file extension.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//   import "github.com/msto63/cobra-aliases/core/config"
//
//   settings, err := config.Load("aliases.toml")
//   if err != nil { ... }
//   for alias, command := range settings.Aliases { ... }
package config
