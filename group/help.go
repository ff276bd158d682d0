// File: help.go
// Title: Alias-Aware Usage Rendering
// Description: Installs a usage renderer on the root command that shows each
//              subcommand together with its aliases, width-aligned through
//              the format package. Uses cobra's documented SetUsageFunc
//              extension point rather than patching framework internals.
//              Styling is optional and falls back to plain text whenever the
//              output is not a terminal.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation

package group

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/msto63/cobra-aliases/format"
)

// installUsage replaces the root's usage function with the alias-aware
// renderer. Subcommands inherit it through cobra's usual lookup.
func (g *Group) installUsage() {
	g.root.SetUsageFunc(g.renderUsage)
}

// listOptions derives the listing configuration from the group options
func (g *Group) listOptions() format.ListOptions {
	opts := format.DefaultListOptions()
	opts.Wrapper = g.opts.Wrapper
	opts.Separator = g.opts.Separator
	opts.MaxInline = g.opts.MaxInline
	opts.ShowAliases = !g.opts.HideAliases
	return opts
}

// Entries returns the help listing rows for all available subcommands of
// the given command, with aliases attached from the registry
func (g *Group) Entries(c *cobra.Command) []format.Entry {
	var entries []format.Entry
	for _, cmd := range c.Commands() {
		if !cmd.IsAvailableCommand() && cmd.Name() != "help" {
			continue
		}
		entries = append(entries, format.Entry{
			Name:        cmd.Name(),
			Aliases:     g.registry.AliasesOf(cmd.Name()),
			Description: cmd.Short,
		})
	}
	return entries
}

// renderUsage writes the usage block for a command. It mirrors cobra's
// default usage layout, with the command listing decorated and aligned by
// the format package.
func (g *Group) renderUsage(c *cobra.Command) error {
	w := c.OutOrStderr()

	fmt.Fprintf(w, "Usage:")
	if c.Runnable() {
		fmt.Fprintf(w, "\n  %s", c.UseLine())
	}
	if c.HasAvailableSubCommands() {
		fmt.Fprintf(w, "\n  %s [command]", c.CommandPath())
	}
	fmt.Fprintln(w)

	if len(c.Aliases) > 0 {
		fmt.Fprintf(w, "\nAliases:\n  %s\n", strings.Join(append([]string{c.Name()}, c.Aliases...), ", "))
	}

	if c.HasExample() {
		fmt.Fprintf(w, "\nExamples:\n%s\n", c.Example)
	}

	if c.HasAvailableSubCommands() {
		fmt.Fprintf(w, "\nAvailable Commands:\n")
		g.writeListing(w, c)
	}

	if c.HasAvailableLocalFlags() {
		fmt.Fprintf(w, "\nFlags:\n%s", trimTrailingNewlines(c.LocalFlags().FlagUsages())+"\n")
	}

	if c.HasAvailableInheritedFlags() {
		fmt.Fprintf(w, "\nGlobal Flags:\n%s", trimTrailingNewlines(c.InheritedFlags().FlagUsages())+"\n")
	}

	if c.HasAvailableSubCommands() {
		fmt.Fprintf(w, "\nUse %q for more information about a command.\n", c.CommandPath()+" [command] --help")
	}

	return nil
}

// writeListing renders the command listing, styled when enabled and the
// output is a real terminal, plain otherwise
func (g *Group) writeListing(w io.Writer, c *cobra.Command) {
	entries := g.Entries(c)
	opts := g.listOptions()

	if g.opts.Styled && isTerminal(w) {
		fmt.Fprint(w, format.RenderStyledListing(entries, opts, format.DefaultStyles()))
		return
	}

	fmt.Fprint(w, format.RenderListing(entries, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func trimTrailingNewlines(s string) string {
	return strings.TrimRight(s, "\n")
}
