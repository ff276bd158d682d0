// Package group integrates the alias registry with spf13/cobra.
//
// Package: group
// Title: Command Resolver / Dispatch Group
// Description: This package wraps a cobra root command and makes alias
//              tokens resolve transparently to the correct command handler.
//              It never duplicates cobra's own command table: lookups resolve
//              the incoming token through the alias registry and then
//              delegate to cobra's native by-name lookup, so commands without
//              aliases behave exactly as before. Registration is atomic
//              across both stores; a registry conflict rolls the command back
//              out of cobra's table.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation with transparent resolution
//
// Usage:
//   import "github.com/msto63/cobra-aliases/group"
//
//   g, err := group.New(rootCmd, group.Options{})
//   if err != nil { ... }
//
//   _, err = g.Command("checkout", "Switch branches", runCheckout,
//     group.WithAliases("co"))
//   if err != nil { ... }
//
//   if err := g.Execute(); err != nil { os.Exit(1) }
package group
