// Package format renders alias lists for help output.
//
// Package: format
// Title: Help Formatter
// Description: This package contains the pure formatting functions that turn
//              a primary command name and its alias list into the display
//              string shown in help screens: configurable wrapper format,
//              separator, deterministic truncation with a "+N more" marker,
//              and width-aligned listings that measure terminal display cells
//              rather than bytes or runes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation with truncation and alignment
//
// Formatting is stateless: every function is a pure function of its inputs.
package format
