// File: registry.go
// Title: Alias Registry Implementation
// Description: Implements the Registry type that tracks primary-to-alias
//              mappings together with the reverse alias-to-primary index used
//              for O(1) conflict checking and token resolution. Mutations are
//              validated fully up front so a failing call never leaves a
//              partial update behind.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation with conflict-checked registry

package registry

import (
	"sort"
	"sync"

	caerror "github.com/msto63/cobra-aliases/core/error"
	calog "github.com/msto63/cobra-aliases/core/log"
	"github.com/msto63/cobra-aliases/utils/stringx"
)

// Options configures registry behavior
type Options struct {
	// CasePolicy selects how tokens are matched. CaseUnset defers to
	// HostCaseInsensitive at first use.
	CasePolicy CasePolicy

	// HostCaseInsensitive reports the host framework's case-sensitivity
	// setting. Consulted once, when an unset policy is first exercised.
	// When nil, an unset policy falls back to case-sensitive matching.
	HostCaseInsensitive func() bool

	// Logger receives debug output for mutations. Defaults to the
	// package default logger.
	Logger *calog.Logger
}

// Registry tracks primary-to-alias mappings and their reverse index
type Registry struct {
	mutex sync.RWMutex

	// primaries maps the normalized primary name to its canonical form
	primaries map[string]string

	// primaryToAliases maps the canonical primary name to its aliases in
	// registration order, each kept in its registered casing
	primaryToAliases map[string][]string

	// aliasToPrimary maps the normalized alias to its canonical primary
	aliasToPrimary map[string]string

	// Case policy handling. Once policyOnce has fired, caseInsensitive
	// holds the effective policy for the registry's lifetime.
	policy          CasePolicy
	hostPolicy      func() bool
	policyOnce      sync.Once
	caseInsensitive bool

	logger *calog.Logger
}

// New creates an empty registry
func New(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = calog.GetDefault()
	}

	return &Registry{
		primaries:        make(map[string]string),
		primaryToAliases: make(map[string][]string),
		aliasToPrimary:   make(map[string]string),
		policy:           opts.CasePolicy,
		hostPolicy:       opts.HostCaseInsensitive,
		logger:           logger.WithField("component", "alias-registry"),
	}
}

// resolvePolicy fixes the effective case policy on first use
func (r *Registry) resolvePolicy() {
	r.policyOnce.Do(func() {
		switch r.policy {
		case CaseSensitive:
			r.caseInsensitive = false
		case CaseInsensitive:
			r.caseInsensitive = true
		default:
			if r.hostPolicy != nil {
				r.caseInsensitive = r.hostPolicy()
			}
		}

		r.logger.Debug("case policy fixed", calog.Fields{
			"caseInsensitive": r.caseInsensitive,
		})
	})
}

// CaseInsensitive returns the effective case policy, fixing it if still unset
func (r *Registry) CaseInsensitive() bool {
	r.resolvePolicy()
	return r.caseInsensitive
}

func (r *Registry) normalize(token string) string {
	if r.caseInsensitive {
		return stringx.Fold(token)
	}
	return token
}

// Register records a primary command together with its aliases. Calling it
// again for a known primary appends further aliases. The call is
// all-or-nothing: on any conflict the registry is left unchanged.
func (r *Registry) Register(primary string, aliases ...string) error {
	if stringx.IsBlank(primary) {
		return caerror.New("primary command name cannot be blank").
			WithCode(caerror.CodeInvalidInput).
			WithOperation("Register")
	}

	r.resolvePolicy()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	primaryKey := r.normalize(primary)

	// A primary may not already be an alias of a different command
	if owner, exists := r.aliasToPrimary[primaryKey]; exists {
		return caerror.Newf("command name %q is already an alias of %q", primary, owner).
			WithCode(caerror.CodeAliasConflict).
			WithOperation("Register").
			WithDetail("name", primary).
			WithDetail("owner", owner)
	}

	canonical := primary
	if existing, exists := r.primaries[primaryKey]; exists {
		canonical = existing
	}

	// Validate every alias before touching any map
	seen := make(map[string]string, len(aliases))
	for _, alias := range aliases {
		if stringx.IsBlank(alias) {
			return caerror.New("alias cannot be blank").
				WithCode(caerror.CodeInvalidInput).
				WithOperation("Register").
				WithDetail("primary", primary)
		}

		key := r.normalize(alias)

		if key == primaryKey {
			return caerror.Newf("alias %q may not equal its own command name %q", alias, primary).
				WithCode(caerror.CodeSelfAlias).
				WithOperation("Register").
				WithDetail("alias", alias).
				WithDetail("primary", primary)
		}

		if dup, found := seen[key]; found {
			return caerror.Newf("duplicate alias %q in registration of %q", dup, primary).
				WithCode(caerror.CodeAliasConflict).
				WithOperation("Register").
				WithDetail("alias", dup).
				WithDetail("primary", primary)
		}
		seen[key] = alias

		if owner, exists := r.primaries[key]; exists {
			return caerror.Newf("alias %q collides with existing command %q", alias, owner).
				WithCode(caerror.CodeAliasConflict).
				WithOperation("Register").
				WithDetail("alias", alias).
				WithDetail("owner", owner)
		}

		if owner, exists := r.aliasToPrimary[key]; exists {
			return caerror.Newf("alias %q is already registered for command %q", alias, owner).
				WithCode(caerror.CodeAliasConflict).
				WithOperation("Register").
				WithDetail("alias", alias).
				WithDetail("owner", owner)
		}
	}

	// Commit
	r.primaries[primaryKey] = canonical
	if _, exists := r.primaryToAliases[canonical]; !exists {
		r.primaryToAliases[canonical] = nil
	}

	for _, alias := range aliases {
		r.primaryToAliases[canonical] = append(r.primaryToAliases[canonical], alias)
		r.aliasToPrimary[r.normalize(alias)] = canonical
	}

	if len(aliases) > 0 {
		r.logger.Debug("aliases registered", calog.Fields{
			"primary": canonical,
			"aliases": len(aliases),
		})
	}

	return nil
}

// AddAlias registers a single additional alias for a known primary command
func (r *Registry) AddAlias(primary, alias string) error {
	if stringx.IsBlank(primary) || stringx.IsBlank(alias) {
		return caerror.New("primary and alias must not be blank").
			WithCode(caerror.CodeInvalidInput).
			WithOperation("AddAlias")
	}

	r.resolvePolicy()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	primaryKey := r.normalize(primary)
	canonical, exists := r.primaries[primaryKey]
	if !exists {
		return caerror.Newf("unknown command %q", primary).
			WithCode(caerror.CodeAliasNotFound).
			WithOperation("AddAlias").
			WithDetail("primary", primary)
	}

	key := r.normalize(alias)

	if key == primaryKey {
		return caerror.Newf("alias %q may not equal its own command name %q", alias, primary).
			WithCode(caerror.CodeSelfAlias).
			WithOperation("AddAlias").
			WithDetail("alias", alias).
			WithDetail("primary", primary)
	}

	if owner, found := r.primaries[key]; found {
		return caerror.Newf("alias %q collides with existing command %q", alias, owner).
			WithCode(caerror.CodeAliasConflict).
			WithOperation("AddAlias").
			WithDetail("alias", alias).
			WithDetail("owner", owner)
	}

	if owner, found := r.aliasToPrimary[key]; found {
		return caerror.Newf("alias %q is already registered for command %q", alias, owner).
			WithCode(caerror.CodeAliasConflict).
			WithOperation("AddAlias").
			WithDetail("alias", alias).
			WithDetail("owner", owner)
	}

	r.primaryToAliases[canonical] = append(r.primaryToAliases[canonical], alias)
	r.aliasToPrimary[key] = canonical

	r.logger.Debug("alias added", calog.Fields{
		"alias":   alias,
		"primary": canonical,
	})

	return nil
}

// RemoveAlias removes an alias. It returns true if the alias was known and
// removed, false otherwise. Removal is idempotent and never fails.
func (r *Registry) RemoveAlias(alias string) bool {
	r.resolvePolicy()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := r.normalize(alias)
	canonical, exists := r.aliasToPrimary[key]
	if !exists {
		return false
	}

	delete(r.aliasToPrimary, key)

	list := r.primaryToAliases[canonical]
	for i, a := range list {
		if r.normalize(a) == key {
			r.primaryToAliases[canonical] = append(list[:i], list[i+1:]...)
			break
		}
	}

	r.logger.Debug("alias removed", calog.Fields{
		"alias":   alias,
		"primary": canonical,
	})

	return true
}

// Resolve translates a token into its canonical primary command name. The
// second return value is false when the token is neither a known primary nor
// a known alias; that outcome is a normal result, not an error.
func (r *Registry) Resolve(token string) (string, bool) {
	r.resolvePolicy()

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	key := r.normalize(token)

	if canonical, exists := r.primaries[key]; exists {
		return canonical, true
	}

	if canonical, exists := r.aliasToPrimary[key]; exists {
		return canonical, true
	}

	return "", false
}

// AliasesOf returns the aliases of a primary in registration order. The
// result is a defensive copy; it is empty for unknown primaries.
func (r *Registry) AliasesOf(primary string) []string {
	r.resolvePolicy()

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	canonical, exists := r.primaries[r.normalize(primary)]
	if !exists {
		return []string{}
	}

	list := r.primaryToAliases[canonical]
	result := make([]string, len(list))
	copy(result, list)
	return result
}

// HasPrimary reports whether the name is a known primary command
func (r *Registry) HasPrimary(name string) bool {
	r.resolvePolicy()

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.primaries[r.normalize(name)]
	return exists
}

// AllMappings returns a deep copy of all primaries that have at least one
// alias, mapped to their alias lists in registration order.
func (r *Registry) AllMappings() map[string][]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[string][]string)
	for primary, aliases := range r.primaryToAliases {
		if len(aliases) == 0 {
			continue
		}
		list := make([]string, len(aliases))
		copy(list, aliases)
		result[primary] = list
	}

	return result
}

// Primaries returns the sorted canonical names of all registered primaries
func (r *Registry) Primaries() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.primaries))
	for _, canonical := range r.primaries {
		names = append(names, canonical)
	}

	sort.Strings(names)
	return names
}

// Len returns the total number of registered aliases
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.aliasToPrimary)
}
