// File: command.go
// Title: Command Builder
// Description: Implements the one-call command builder: construct a cobra
//              command, add it to the group, and register its aliases in a
//              single step. Functional options cover the parametrized cases
//              so callers never hand-assemble the registration sequence.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation

package group

import (
	"github.com/spf13/cobra"
)

// commandConfig collects the optional parts of a command definition
type commandConfig struct {
	aliases []string
}

// CommandOption configures a command built through Group.Command
type CommandOption func(*cobra.Command, *commandConfig)

// WithAliases registers the given aliases for the command
func WithAliases(aliases ...string) CommandOption {
	return func(_ *cobra.Command, cfg *commandConfig) {
		cfg.aliases = append(cfg.aliases, aliases...)
	}
}

// WithLong sets the long help text
func WithLong(long string) CommandOption {
	return func(cmd *cobra.Command, _ *commandConfig) {
		cmd.Long = long
	}
}

// WithExample sets the example block shown in help output
func WithExample(example string) CommandOption {
	return func(cmd *cobra.Command, _ *commandConfig) {
		cmd.Example = example
	}
}

// WithArgs sets the positional argument validator
func WithArgs(args cobra.PositionalArgs) CommandOption {
	return func(cmd *cobra.Command, _ *commandConfig) {
		cmd.Args = args
	}
}

// WithHidden hides the command from help listings
func WithHidden() CommandOption {
	return func(cmd *cobra.Command, _ *commandConfig) {
		cmd.Hidden = true
	}
}

// Command constructs a cobra command, adds it to the group, and registers
// its aliases in one call. It returns the built command so flags can be
// attached afterwards. Registration failures roll the command back out of
// cobra's table.
func (g *Group) Command(use, short string, runE func(*cobra.Command, []string) error, opts ...CommandOption) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE:  runE,
	}

	cfg := &commandConfig{}
	for _, opt := range opts {
		opt(cmd, cfg)
	}

	if err := g.AddCommand(cmd, cfg.aliases...); err != nil {
		return nil, err
	}

	return cmd, nil
}
