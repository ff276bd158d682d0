// Package registry implements the alias registry for the cobra-aliases library.
//
// Package: registry
// Title: Alias Registry
// Description: This package owns the mapping from primary command names to
//              their aliases and the reverse index from alias to primary. It
//              enforces non-conflicting registration (a name can never be both
//              a primary and an alias of a different primary, aliases map to
//              exactly one primary, no self-aliasing) and resolves incoming
//              tokens under a tri-state case-sensitivity policy that can defer
//              to the host framework's setting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation with conflict-checked registry
//
// All mutating operations are all-or-nothing: validation happens entirely
// before the first map write, so a failed call leaves the registry exactly
// as it was. Forward and reverse maps are guarded by a single RWMutex and
// are never observable in a half-updated state. Query results are defensive
// copies.
//
// Usage:
//   import "github.com/msto63/cobra-aliases/registry"
//
//   reg := registry.New(registry.Options{})
//   if err := reg.Register("checkout", "co"); err != nil {
//     // conflict or invalid input, registry unchanged
//   }
//   primary, ok := reg.Resolve("co") // "checkout", true
package registry
