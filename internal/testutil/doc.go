// Package testutil provides test fixtures and utilities.
//
// This package contains embedded TOML fixtures and helper functions for
// loading valid and invalid configurations in unit tests, plus a TestEnv
// that points app.Default at a temporary config directory.
//
// # Fixtures
//
// TOML fixtures are embedded using go:embed:
//
//	fixtures/valid_settings.toml
//	fixtures/invalid_settings.toml
//	fixtures/valid_prompt.toml
//	fixtures/invalid_prompt.toml
//
// Helper functions decode fixtures without validating them:
//
//	s, err := testutil.ValidSettings()
//	def, err := testutil.InvalidPrompt()
//
// # Test Environment
//
//	env := testutil.NewTestEnv(t)
//	defer env.Cleanup()
//
//	env.AddFixturePrompt("toppings", "valid_prompt.toml")
//	env.SetInput(" \r")
//	// run a command; the prompt reads " \r" and renders into env.Out
package testutil
