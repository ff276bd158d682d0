// File: settings.go
// Title: Group Settings
// Description: Defines the Settings structure holding the construction-time
//              configuration of a dispatch group together with user-defined
//              alias mappings, and its validation rules.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation

package config

import (
	caerror "github.com/msto63/cobra-aliases/core/error"
	"github.com/msto63/cobra-aliases/format"
	"github.com/msto63/cobra-aliases/registry"
	"github.com/msto63/cobra-aliases/utils/stringx"
)

// Settings holds the construction-time configuration of a dispatch group.
// The zero value is usable; DefaultSettings fills in the display defaults.
type Settings struct {
	// CasePolicy selects alias matching: "unset" (defer to the host
	// framework), "sensitive", or "insensitive"
	CasePolicy string `toml:"case_policy" yaml:"case_policy"`

	// Wrapper is the help display wrapper format; it must contain exactly
	// one %s verb
	Wrapper string `toml:"wrapper" yaml:"wrapper"`

	// Separator joins aliases inside the wrapper
	Separator string `toml:"separator" yaml:"separator"`

	// MaxInline is the number of aliases shown inline before truncation
	MaxInline int `toml:"max_inline" yaml:"max_inline"`

	// HideAliases suppresses alias display in help output
	HideAliases bool `toml:"hide_aliases" yaml:"hide_aliases"`

	// Styled enables lipgloss-styled help rendering
	Styled bool `toml:"styled" yaml:"styled"`

	// Aliases maps user-defined alias tokens to primary command names
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`
}

// DefaultSettings returns the standard configuration
func DefaultSettings() Settings {
	return Settings{
		CasePolicy: registry.CaseUnset.String(),
		Wrapper:    format.DefaultWrapper,
		Separator:  format.DefaultSeparator,
		MaxInline:  format.DefaultMaxInline,
		Aliases:    make(map[string]string),
	}
}

// Normalize fills blank display fields with their defaults
func (s *Settings) Normalize() {
	if stringx.IsBlank(s.Wrapper) {
		s.Wrapper = format.DefaultWrapper
	}
	if s.Separator == "" {
		s.Separator = format.DefaultSeparator
	}
	if s.MaxInline == 0 {
		s.MaxInline = format.DefaultMaxInline
	}
	if s.Aliases == nil {
		s.Aliases = make(map[string]string)
	}
}

// Validate checks the settings for consistency
func (s *Settings) Validate() error {
	if err := format.ValidateWrapper(s.Wrapper); err != nil {
		return caerror.Wrap(err, "invalid wrapper format").
			WithCode(caerror.CodeInvalidConfig)
	}

	if _, err := registry.ParseCasePolicy(s.CasePolicy); err != nil {
		return caerror.Wrap(err, "invalid case policy").
			WithCode(caerror.CodeInvalidConfig).
			WithDetail("casePolicy", s.CasePolicy)
	}

	for alias, command := range s.Aliases {
		if stringx.IsBlank(alias) || stringx.IsBlank(command) {
			return caerror.New("alias file entries must map a non-blank alias to a non-blank command").
				WithCode(caerror.CodeInvalidConfig).
				WithDetail("alias", alias).
				WithDetail("command", command)
		}
	}

	return nil
}

// Policy returns the parsed case policy
func (s *Settings) Policy() registry.CasePolicy {
	policy, err := registry.ParseCasePolicy(s.CasePolicy)
	if err != nil {
		return registry.CaseUnset
	}
	return policy
}
