package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/logging"
)

const (
	AppName      = "forage-checkbox"
	EnvConfigDir = "FORAGE_CHECKBOX_CONFIG_DIR"
	SettingsFile = "config.toml"
	PromptsDir   = "prompts"
	PromptExt    = ".toml"
)

// promptNameRegex validates prompt names.
// Names must start with a lowercase letter or digit, followed by lowercase letters, digits, underscores, or hyphens.
var promptNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidatePromptName checks if a prompt name is valid.
// Valid names:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
func ValidatePromptName(name string) error {
	if name == "" {
		return errors.ConfigErrorf("prompt name cannot be empty")
	}

	if !promptNameRegex.MatchString(name) {
		return errors.ConfigErrorf("invalid prompt name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

// Paths holds the configured paths
type Paths struct {
	ConfigDir  string
	PromptsDir string
}

// NewPaths returns the paths rooted at configDir.
func NewPaths(configDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		PromptsDir: filepath.Join(configDir, PromptsDir),
	}
}

// DefaultPaths returns the default path configuration. The config directory
// is $FORAGE_CHECKBOX_CONFIG_DIR, or forage-checkbox under the user config
// directory.
func DefaultPaths() *Paths {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return NewPaths(dir)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		logging.Debug("no user config directory", "error", err)
		base = "."
	}
	return NewPaths(filepath.Join(base, AppName))
}

// SettingsPath returns the path of the settings file.
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.ConfigDir, SettingsFile)
}

// decodeFile decodes a TOML file into v and warns about keys v does not
// know.
func decodeFile(path string, v any) error {
	md, err := toml.DecodeFile(path, v)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		logging.Warn("ignoring unknown keys", "file", path, "keys", strings.Join(keys, ", "))
	}
	return nil
}

// LoadSettings loads config.toml from configDir. A missing file yields
// empty settings.
func LoadSettings(configDir string) (*Settings, error) {
	path := filepath.Join(configDir, SettingsFile)

	var settings Settings
	if err := decodeFile(path, &settings); err != nil {
		if os.IsNotExist(err) {
			return &settings, nil
		}
		return nil, errors.ConfigError("failed to parse settings", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, errors.ConfigError("invalid settings", err)
	}

	return &settings, nil
}

// LoadPromptFile loads a prompt definition from path. The prompt is named
// after the file.
func LoadPromptFile(path string) (*PromptDef, error) {
	var def PromptDef
	if err := decodeFile(path, &def); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ExitPromptNotFound, fmt.Sprintf("prompt file not found: %s", path), err)
		}
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse prompt %s", path), err)
	}

	def.Name = strings.TrimSuffix(filepath.Base(path), PromptExt)

	if err := def.Validate(); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid prompt %s", def.Name), err)
	}

	return &def, nil
}

// LoadPrompt loads the named prompt from promptsDir.
func LoadPrompt(promptsDir, name string) (*PromptDef, error) {
	if err := ValidatePromptName(name); err != nil {
		return nil, err
	}

	path, err := securejoin.SecureJoin(promptsDir, name+PromptExt)
	if err != nil {
		return nil, errors.ConfigError("invalid prompt path", err)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.PromptNotFound(name)
	}

	def, err := LoadPromptFile(path)
	if err != nil {
		return nil, err
	}
	def.Name = name
	return def, nil
}

// ListPrompts returns all valid prompts in promptsDir, sorted by name.
// Invalid prompt files are skipped.
func ListPrompts(promptsDir string) ([]*PromptDef, error) {
	entries, err := os.ReadDir(promptsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ExitGeneralError, "failed to read prompts directory", err)
	}

	var prompts []*PromptDef
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != PromptExt {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), PromptExt)
		def, err := LoadPrompt(promptsDir, name)
		if err != nil {
			logging.Debug("skipping prompt", "name", name, "error", err)
			continue
		}
		prompts = append(prompts, def)
	}

	sort.Slice(prompts, func(i, j int) bool {
		return prompts[i].Name < prompts[j].Name
	})
	return prompts, nil
}
