package testutil

import (
	"embed"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/config"
)

//go:embed fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a TOML fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadSettingsFixture loads a settings fixture without validating it.
func LoadSettingsFixture(name string) (*config.Settings, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var s config.Settings
	if _, err := toml.Decode(string(data), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadPromptFixture loads a prompt definition fixture without validating it.
func LoadPromptFixture(name string) (*config.PromptDef, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var def config.PromptDef
	if _, err := toml.Decode(string(data), &def); err != nil {
		return nil, err
	}
	return &def, nil
}

// ValidSettings returns the valid settings fixture.
func ValidSettings() (*config.Settings, error) {
	return LoadSettingsFixture("valid_settings.toml")
}

// InvalidSettings returns the invalid settings fixture.
func InvalidSettings() (*config.Settings, error) {
	return LoadSettingsFixture("invalid_settings.toml")
}

// ValidPrompt returns the valid prompt fixture.
func ValidPrompt() (*config.PromptDef, error) {
	return LoadPromptFixture("valid_prompt.toml")
}

// InvalidPrompt returns the invalid prompt fixture.
func InvalidPrompt() (*config.PromptDef, error) {
	return LoadPromptFixture("invalid_prompt.toml")
}
