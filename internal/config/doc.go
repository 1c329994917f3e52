// Package config provides configuration types and loading for forage-checkbox.
//
// # Configuration Files
//
// The package handles two kinds of TOML files under the config directory
// ($FORAGE_CHECKBOX_CONFIG_DIR, or forage-checkbox in the user config
// directory):
//
//   - Settings: user defaults loaded from config.toml
//   - PromptDef: named questions loaded from prompts/<name>.toml
//
// # Settings
//
//	qmark = "?"
//	no_pointer = false
//	max_height = 10
//
//	[style]
//	answer = "fg:#FF9D00 bold"
//
//	[keys]
//	down = ["down", "j", "ctrl+n"]
//
// # Prompt Definitions
//
// Choices mix plain strings, tables and separators:
//
//	message = "Select toppings"
//	min_selected = 1
//	choices = [
//	    "Cheese",
//	    { name = "Ham", checked = true },
//	    { separator = "-- veggie --" },
//	    { name = "Olives", disabled = "out of stock" },
//	]
//
// Prompt names are validated and resolved inside the prompts directory with
// filepath-securejoin.
//
// # Validation
//
// All configuration types implement Validate() to check for required fields
// and valid values. Loading functions validate after parsing and log unknown
// keys as warnings.
package config
