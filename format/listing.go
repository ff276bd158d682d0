// File: listing.go
// Title: Width-Aligned Command Listings
// Description: Implements the width-alignment bookkeeping for a full command
//              listing: the widest rendered label (name plus alias suffix)
//              determines the description column. Widths are measured in
//              terminal display cells so East Asian wide characters and
//              combining marks align correctly.
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

	"github.com/msto63/cobra-aliases/utils/stringx"
)

// Entry is one row of a command listing
type Entry struct {
	Name        string
	Aliases     []string
	Description string
}

// ListOptions configures how a listing is rendered
type ListOptions struct {
	// Wrapper is the alias wrapper format, containing exactly one %s
	Wrapper string

	// Separator joins aliases inside the wrapper
	Separator string

	// MaxInline is the number of aliases shown before truncation
	MaxInline int

	// ShowAliases controls whether aliases appear in the listing at all
	ShowAliases bool

	// Indent is prefixed to every line
	Indent string

	// Gap is the minimum number of spaces between label and description
	Gap int
}

// DefaultListOptions returns the standard listing configuration
func DefaultListOptions() ListOptions {
	return ListOptions{
		Wrapper:     DefaultWrapper,
		Separator:   DefaultSeparator,
		MaxInline:   DefaultMaxInline,
		ShowAliases: true,
		Indent:      "  ",
		Gap:         2,
	}
}

// Label returns the rendered label for one entry under the given options
func Label(entry Entry, opts ListOptions) string {
	if !opts.ShowAliases {
		return entry.Name
	}
	return FormatCommand(entry.Name, entry.Aliases, opts.Wrapper, opts.Separator, opts.MaxInline)
}

// MaxLabelWidth returns the widest label across all entries, measured in
// display cells
func MaxLabelWidth(entries []Entry, opts ListOptions) int {
	width := 0
	for _, entry := range entries {
		if w := stringx.DisplayWidth(Label(entry, opts)); w > width {
			width = w
		}
	}
	return width
}

// RenderListing renders the entries as aligned lines, one per entry, each
// terminated with a newline. Description columns line up across all rows.
func RenderListing(entries []Entry, opts ListOptions) string {
	if len(entries) == 0 {
		return ""
	}

	width := MaxLabelWidth(entries, opts)
	gap := strings.Repeat(" ", maxInt(opts.Gap, 1))

	var b strings.Builder
	for _, entry := range entries {
		label := Label(entry, opts)
		b.WriteString(opts.Indent)
		if entry.Description == "" {
			b.WriteString(label)
		} else {
			b.WriteString(stringx.PadRight(label, width))
			b.WriteString(gap)
			b.WriteString(entry.Description)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
