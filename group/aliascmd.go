// File: aliascmd.go
// Title: Alias Management Subcommand
// Description: Implements the ready-made "alias" subcommand with set, delete,
//              and list operations on a dispatch group. When the group is
//              configured with an alias file, mutations are persisted there.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation with set/delete/list

package group

import (
	"fmt"

	"github.com/spf13/cobra"

	caerror "github.com/msto63/cobra-aliases/core/error"
)

// NewAliasCommand builds the "alias" management command for a group. The
// caller decides whether to add it; typically via g.AddCommand.
func NewAliasCommand(g *Group) *cobra.Command {
	aliasCmd := &cobra.Command{
		Use:   "alias",
		Short: "Create, list, and delete command aliases",
		Long: `Aliases are alternate names for commands. A command can be invoked
by its canonical name or by any of its aliases; help output shows
aliases next to their command.`,
	}

	aliasCmd.AddCommand(newAliasSetCommand(g))
	aliasCmd.AddCommand(newAliasDeleteCommand(g))
	aliasCmd.AddCommand(newAliasListCommand(g))

	return aliasCmd
}

func newAliasSetCommand(g *Group) *cobra.Command {
	return &cobra.Command{
		Use:   "set <alias> <command>",
		Short: "Register an alias for a command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias, command := args[0], args[1]

			if err := g.AddAlias(command, alias); err != nil {
				return err
			}

			if g.opts.AliasFile != "" {
				if err := g.SaveAliasFile(g.opts.AliasFile); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added alias %q for %q\n", alias, command)
			return nil
		},
	}
}

func newAliasDeleteCommand(g *Group) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <alias>",
		Aliases: []string{"rm"},
		Short:   "Delete an alias",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := args[0]

			if !g.RemoveAlias(alias) {
				return caerror.Newf("no such alias: %q", alias).
					WithCode(caerror.CodeAliasNotFound).
					WithDetail("alias", alias)
			}

			if g.opts.AliasFile != "" {
				if err := g.SaveAliasFile(g.opts.AliasFile); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted alias %q\n", alias)
			return nil
		},
	}
}

func newAliasListCommand(g *Group) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all aliases",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mappings := g.ListCommandsWithAliases()
			if len(mappings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No aliases defined.")
				return nil
			}

			// Primaries is already sorted; alias-free entries are absent
			// from the mappings and render nothing
			for _, primary := range g.Registry().Primaries() {
				for _, alias := range mappings[primary] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", alias, primary)
				}
			}
			return nil
		},
	}
}
