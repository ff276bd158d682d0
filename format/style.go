// File: style.go
// Title: Styled Listing Rendering
// Description: Implements the optional lipgloss-styled rendering of command
//              listings. Alignment is computed on the plain labels before any
//              styling is applied, so ANSI escape sequences never disturb the
//              column layout. Disabling styling falls back to the plain
//              renderer with byte-identical text content.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation

package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/cobra-aliases/utils/stringx"
)

// Styles holds the lipgloss styles applied to the parts of a listing row
type Styles struct {
	Name        lipgloss.Style
	Alias       lipgloss.Style
	Description lipgloss.Style
}

// DefaultStyles returns the standard styling: bold command names and faint
// alias suffixes, descriptions unstyled
func DefaultStyles() Styles {
	return Styles{
		Name:        lipgloss.NewStyle().Bold(true),
		Alias:       lipgloss.NewStyle().Faint(true),
		Description: lipgloss.NewStyle(),
	}
}

// RenderStyledListing renders the entries like RenderListing but applies the
// given styles to name, alias suffix, and description. The text content is
// identical to the plain renderer's output.
func RenderStyledListing(entries []Entry, opts ListOptions, styles Styles) string {
	if len(entries) == 0 {
		return ""
	}

	width := MaxLabelWidth(entries, opts)
	gap := strings.Repeat(" ", maxInt(opts.Gap, 1))

	var b strings.Builder
	for _, entry := range entries {
		label := Label(entry, opts)

		// Pad against the plain label; styling adds zero-width escapes only
		padding := width - stringx.DisplayWidth(label)

		b.WriteString(opts.Indent)
		b.WriteString(styles.Name.Render(entry.Name))

		if suffix := strings.TrimPrefix(label, entry.Name); suffix != "" {
			b.WriteString(styles.Alias.Render(suffix))
		}

		if entry.Description != "" {
			if padding > 0 {
				b.WriteString(strings.Repeat(" ", padding))
			}
			b.WriteString(gap)
			b.WriteString(styles.Description.Render(entry.Description))
		}

		b.WriteString("\n")
	}

	return b.String()
}
