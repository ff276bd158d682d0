// File: main.go
// Title: Demo CLI
// Description: A small cobra application exercising the cobra-aliases
//              library end to end: aliased commands, alias management
//              subcommand, alias file persistence, and the alias-aware
//              help output.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	calog "github.com/msto63/cobra-aliases/core/log"
	"github.com/msto63/cobra-aliases/group"
	"github.com/msto63/cobra-aliases/registry"
)

var (
	aliasFile string
	styled    bool
	verbose   bool
)

// peekFlags reads the persistent flags ahead of cobra's parsing because the
// dispatch group is configured before Execute runs
func peekFlags(args []string) {
	for i, arg := range args {
		switch {
		case arg == "--styled":
			styled = true
		case arg == "--verbose" || arg == "-v":
			verbose = true
		case arg == "--aliases" && i+1 < len(args):
			aliasFile = args[i+1]
		case strings.HasPrefix(arg, "--aliases="):
			aliasFile = strings.TrimPrefix(arg, "--aliases=")
		}
	}
}

func main() {
	peekFlags(os.Args[1:])

	logger := calog.New().WithName("aliasdemo")
	if verbose {
		logger.SetLevel(calog.LevelDebug)
	}
	calog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "aliasdemo",
		Short: "Demonstrates command aliasing for cobra applications",
	}
	root.PersistentFlags().StringVar(&aliasFile, "aliases", "", "Alias file (TOML or YAML)")
	root.PersistentFlags().BoolVar(&styled, "styled", false, "Styled help output")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	g, err := group.New(root, group.Options{
		CasePolicy: registry.CaseUnset, // follow cobra's setting
		Styled:     styled,
		AliasFile:  aliasFile,
		Logger:     logger,
	})
	if err != nil {
		printError("initializing dispatch group", err)
		os.Exit(1)
	}

	if err := registerCommands(g); err != nil {
		printError("registering commands", err)
		os.Exit(1)
	}

	if aliasFile != "" {
		if err := g.LoadAliasFile(aliasFile); err != nil {
			printError("loading alias file", err)
			os.Exit(1)
		}
	}

	if err := g.Execute(); err != nil {
		os.Exit(1)
	}
}

func registerCommands(g *group.Group) error {
	if _, err := g.Command("checkout <branch>", "Switch to a branch",
		func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s\n", args[0])
			return nil
		},
		group.WithAliases("co"),
		group.WithArgs(cobra.ExactArgs(1)),
	); err != nil {
		return err
	}

	if _, err := g.Command("status", "Show the working tree status",
		func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to report.")
			return nil
		},
		group.WithAliases("st"),
		group.WithArgs(cobra.NoArgs),
	); err != nil {
		return err
	}

	if _, err := g.Command("list", "List known branches",
		func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "main")
			return nil
		},
		group.WithAliases("ls", "l"),
		group.WithArgs(cobra.NoArgs),
	); err != nil {
		return err
	}

	return g.AddCommand(group.NewAliasCommand(g))
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
