// File: format.go
// Title: Alias Display Formatting
// Description: Implements the display-string construction for a command and
//              its aliases: truncation to a configured maximum with a
//              "+N more" marker, separator joining, and substitution into the
//              configured wrapper format. Aliases are always shown in their
//              registered casing and original order.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation

package format

import (
	"fmt"
	"strings"

	caerror "github.com/msto63/cobra-aliases/core/error"
)

// Default display configuration
const (
	// DefaultWrapper is the default wrapper format for the alias list.
	// It must contain exactly one %s verb.
	DefaultWrapper = "(%s)"

	// DefaultSeparator joins aliases inside the wrapper
	DefaultSeparator = ", "

	// DefaultMaxInline is the number of aliases shown before truncation
	DefaultMaxInline = 3
)

// TruncateAliases joins aliases with the separator, keeping at most maxInline
// entries in their original order. When entries are omitted, a "+N more"
// marker is appended. maxInline <= 0 shows none and reports all as omitted;
// maxInline >= len(aliases) shows all without a marker.
func TruncateAliases(aliases []string, maxInline int, separator string) string {
	if len(aliases) == 0 {
		return ""
	}

	if maxInline >= len(aliases) {
		return strings.Join(aliases, separator)
	}

	if maxInline <= 0 {
		return fmt.Sprintf("+%d more", len(aliases))
	}

	shown := strings.Join(aliases[:maxInline], separator)
	return fmt.Sprintf("%s%s+%d more", shown, separator, len(aliases)-maxInline)
}

// FormatCommand produces the help display string for a command. Commands
// without aliases render as their bare name; otherwise the truncated alias
// list is substituted into the wrapper and appended after the name.
//
//	FormatCommand("list", []string{"ls", "l"}, "(%s)", ", ", 3) == "list (ls, l)"
func FormatCommand(name string, aliases []string, wrapper, separator string, maxInline int) string {
	if len(aliases) == 0 {
		return name
	}

	joined := TruncateAliases(aliases, maxInline, separator)
	return name + " " + fmt.Sprintf(wrapper, joined)
}

// ValidateWrapper checks that a wrapper format contains exactly one %s verb
// and no other formatting verbs. Literal percent signs must be escaped
// as %%.
func ValidateWrapper(wrapper string) error {
	verbs := 0
	for i := 0; i < len(wrapper); i++ {
		if wrapper[i] != '%' {
			continue
		}
		if i+1 >= len(wrapper) {
			return caerror.Newf("wrapper format %q has a trailing %%", wrapper).
				WithCode(caerror.CodeInvalidConfig).
				WithDetail("wrapper", wrapper)
		}
		switch wrapper[i+1] {
		case 's':
			verbs++
		case '%':
			// escaped literal percent
		default:
			return caerror.Newf("wrapper format %q contains unsupported verb %%%c", wrapper, wrapper[i+1]).
				WithCode(caerror.CodeInvalidConfig).
				WithDetail("wrapper", wrapper)
		}
		i++
	}

	if verbs != 1 {
		return caerror.Newf("wrapper format %q must contain exactly one %%s, found %d", wrapper, verbs).
			WithCode(caerror.CodeInvalidConfig).
			WithDetail("wrapper", wrapper).
			WithDetail("verbs", verbs)
	}

	return nil
}
