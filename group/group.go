// File: group.go
// Title: Dispatch Group Implementation
// Description: Implements the Group type wrapping a cobra root command.
//              Lookups consult the alias registry first and then delegate to
//              cobra's native command table; registration keeps both stores
//              consistent by rolling back the cobra side when the registry
//              rejects an alias. Argument expansion before Execute makes
//              aliases valid first tokens without touching cobra internals.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation

package group

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msto63/cobra-aliases/core/config"
	caerror "github.com/msto63/cobra-aliases/core/error"
	calog "github.com/msto63/cobra-aliases/core/log"
	"github.com/msto63/cobra-aliases/format"
	"github.com/msto63/cobra-aliases/registry"
	"github.com/msto63/cobra-aliases/utils/stringx"
)

// Options configures a dispatch group
type Options struct {
	// CasePolicy selects alias matching. CaseUnset defers to cobra's
	// EnableCaseInsensitive setting at first use.
	CasePolicy registry.CasePolicy

	// Wrapper is the help display wrapper format, containing exactly one
	// %s verb (default "(%s)")
	Wrapper string

	// Separator joins aliases inside the wrapper (default ", ")
	Separator string

	// MaxInline is the number of aliases shown before truncation
	// (default 3)
	MaxInline int

	// HideAliases suppresses alias display in help output
	HideAliases bool

	// Styled enables lipgloss-styled help rendering
	Styled bool

	// AliasFile is an optional path for persisting user-defined aliases.
	// When set, the alias management subcommand saves changes there.
	AliasFile string

	// Logger receives debug output. Defaults to the package default.
	Logger *calog.Logger
}

// Group wraps a cobra root command with alias resolution
type Group struct {
	root     *cobra.Command
	registry *registry.Registry
	opts     Options
	logger   *calog.Logger
}

// New creates a dispatch group around an existing cobra root command and
// installs the alias-aware usage renderer on it
func New(root *cobra.Command, opts Options) (*Group, error) {
	if root == nil {
		return nil, caerror.New("root command cannot be nil").
			WithCode(caerror.CodeInvalidInput)
	}

	if opts.Wrapper == "" {
		opts.Wrapper = format.DefaultWrapper
	}
	if opts.Separator == "" {
		opts.Separator = format.DefaultSeparator
	}
	if opts.MaxInline == 0 {
		opts.MaxInline = format.DefaultMaxInline
	}

	if err := format.ValidateWrapper(opts.Wrapper); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = calog.GetDefault()
	}
	logger = logger.WithField("component", "dispatch-group")

	g := &Group{
		root: root,
		registry: registry.New(registry.Options{
			CasePolicy:          opts.CasePolicy,
			HostCaseInsensitive: func() bool { return cobra.EnableCaseInsensitive },
			Logger:              logger,
		}),
		opts:   opts,
		logger: logger,
	}

	g.installUsage()

	return g, nil
}

// NewWithSettings creates a dispatch group from loaded settings
func NewWithSettings(root *cobra.Command, settings *config.Settings) (*Group, error) {
	if settings == nil {
		return New(root, Options{})
	}

	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	g, err := New(root, Options{
		CasePolicy:  settings.Policy(),
		Wrapper:     settings.Wrapper,
		Separator:   settings.Separator,
		MaxInline:   settings.MaxInline,
		HideAliases: settings.HideAliases,
		Styled:      settings.Styled,
	})
	if err != nil {
		return nil, err
	}

	if err := g.ApplyAliases(settings.Aliases); err != nil {
		return nil, err
	}

	return g, nil
}

// Root returns the wrapped cobra root command
func (g *Group) Root() *cobra.Command {
	return g.root
}

// Registry returns the group's alias registry
func (g *Group) Registry() *registry.Registry {
	return g.registry
}

// AddCommand adds the command to cobra's native table and registers its
// aliases. The two stores never diverge: when alias registration fails the
// command is removed from cobra again and the error is returned.
func (g *Group) AddCommand(cmd *cobra.Command, aliases ...string) error {
	if cmd == nil {
		return caerror.New("command cannot be nil").
			WithCode(caerror.CodeInvalidInput).
			WithOperation("AddCommand")
	}

	g.root.AddCommand(cmd)

	if err := g.registry.Register(cmd.Name(), aliases...); err != nil {
		g.root.RemoveCommand(cmd)
		return caerror.Wrap(err, "registering command aliases").
			WithOperation("AddCommand").
			WithDetail("command", cmd.Name())
	}

	return nil
}

// AddAlias registers a further alias for an existing command. Commands that
// were added to cobra directly, bypassing the group, are adopted into the
// registry on first use.
func (g *Group) AddAlias(primary, alias string) error {
	if !g.registry.HasPrimary(primary) {
		if g.findNative(primary) == nil {
			return caerror.Newf("unknown command %q", primary).
				WithCode(caerror.CodeAliasNotFound).
				WithOperation("AddAlias").
				WithDetail("primary", primary)
		}
		if err := g.registry.Register(primary); err != nil {
			return err
		}
	}

	return g.registry.AddAlias(primary, alias)
}

// RemoveAlias removes an alias, reporting whether it existed
func (g *Group) RemoveAlias(alias string) bool {
	return g.registry.RemoveAlias(alias)
}

// GetAliases returns the aliases of a primary command in registration order
func (g *Group) GetAliases(primary string) []string {
	return g.registry.AliasesOf(primary)
}

// ListCommandsWithAliases returns all primaries that have at least one
// alias, mapped to their alias lists
func (g *Group) ListCommandsWithAliases() map[string][]string {
	return g.registry.AllMappings()
}

// Lookup resolves a token to its command handler. Alias tokens are
// translated to their primary name first; unknown tokens fall through to
// cobra's native lookup verbatim so the framework's own unknown-command
// handling stays in charge.
func (g *Group) Lookup(token string) *cobra.Command {
	if primary, ok := g.registry.Resolve(token); ok {
		if cmd := g.findNative(primary); cmd != nil {
			return cmd
		}
	}

	return g.findNative(token)
}

// findNative performs cobra's by-name lookup against the root's command
// table, honoring cobra's case-insensitivity setting
func (g *Group) findNative(name string) *cobra.Command {
	for _, cmd := range g.root.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return cmd
		}
		if cobra.EnableCaseInsensitive && stringx.EqualFold(cmd.Name(), name) {
			return cmd
		}
	}
	return nil
}

// ExpandArgs rewrites the first command token of an argument list through
// the registry. Flags before the command are left untouched; when a flag
// of the root command takes a value, the following argument is consumed as
// that value and never mistaken for the command token. Everything after
// the command token stays as is. A "help" token keeps its place and the
// token after it is expanded instead.
func (g *Group) ExpandArgs(args []string) []string {
	expanded := make([]string, len(args))
	copy(expanded, args)

	target := -1
	for i := 0; i < len(expanded); i++ {
		arg := expanded[i]
		if strings.HasPrefix(arg, "-") {
			if g.flagValueFollows(arg) {
				i++
			}
			continue
		}
		if arg == "help" && target < 0 {
			// expand the topic after "help" instead
			continue
		}
		target = i
		break
	}

	if target < 0 {
		return expanded
	}

	if primary, ok := g.registry.Resolve(expanded[target]); ok && primary != expanded[target] {
		g.logger.Debug("alias expanded", calog.Fields{
			"token":   expanded[target],
			"primary": primary,
		})
		expanded[target] = primary
	}

	return expanded
}

// flagValueFollows reports whether the flag token consumes the next
// argument as its value. Only flags declared on the root command can be
// recognized; unknown flags are assumed to stand alone, and combined
// shorthands or inline "=" values never consume a follower.
func (g *Group) flagValueFollows(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var flag *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		name := strings.TrimPrefix(arg, "--")
		if name == "" {
			return false
		}
		if flag = g.root.Flags().Lookup(name); flag == nil {
			flag = g.root.PersistentFlags().Lookup(name)
		}
	case len(arg) == 2:
		shorthand := arg[1:]
		if flag = g.root.Flags().ShorthandLookup(shorthand); flag == nil {
			flag = g.root.PersistentFlags().ShorthandLookup(shorthand)
		}
	}

	return flag != nil && flag.NoOptDefVal == ""
}

// Execute expands aliases in os.Args and runs the root command
func (g *Group) Execute() error {
	g.root.SetArgs(g.ExpandArgs(os.Args[1:]))
	return g.root.Execute()
}

// ExecuteContext expands aliases in os.Args and runs the root command with
// the given context
func (g *Group) ExecuteContext(ctx context.Context) error {
	g.root.SetArgs(g.ExpandArgs(os.Args[1:]))
	return g.root.ExecuteContext(ctx)
}

// ApplyAliases registers a mapping of alias to primary command, applied in
// sorted alias order for deterministic conflict reporting
func (g *Group) ApplyAliases(aliases map[string]string) error {
	keys := make([]string, 0, len(aliases))
	for alias := range aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)

	for _, alias := range keys {
		if err := g.AddAlias(aliases[alias], alias); err != nil {
			return caerror.Wrap(err, "applying alias file entry").
				WithDetail("alias", alias).
				WithDetail("command", aliases[alias])
		}
	}

	return nil
}

// LoadAliasFile reads an alias file and applies its mappings
func (g *Group) LoadAliasFile(path string) error {
	aliases, err := config.LoadAliasFile(path)
	if err != nil {
		return err
	}

	return g.ApplyAliases(aliases)
}

// SaveAliasFile persists the current alias mappings to the given path
func (g *Group) SaveAliasFile(path string) error {
	flat := make(map[string]string)
	for primary, aliases := range g.registry.AllMappings() {
		for _, alias := range aliases {
			flat[alias] = primary
		}
	}

	return config.SaveAliasFile(path, flat)
}
