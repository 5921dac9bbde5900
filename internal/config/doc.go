// Package config loads picklist's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/picklist/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	placeholder_title = "New record"
//
//	[log]
//	level = "debug"
//	file = "~/.local/state/picklist/picklist.log"
//	format = "json"
//
//	[[records]]
//	code = 1
//	title = "Groceries"
//	selection_count = 2
//
// Every field is optional. Without a records array the built-in seed list
// of seven records is used; an explicit empty array (records = []) starts
// with an empty list.
//
// # Validation
//
// Seed records must have distinct, non-negative codes and non-negative
// selection counts. Violations are reported as "invalid records" errors,
// TOML syntax problems as "parse config". A missing file is not an error.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	store, err := state.New(cfg.InitialState(),
//		state.WithPlaceholderTitle(cfg.PlaceholderTitle))
package config
