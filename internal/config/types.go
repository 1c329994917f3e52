package config

import (
	"fmt"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/choice"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/keymap"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/render"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/validate"
)

// Settings represents the user settings from config.toml
type Settings struct {
	QMark     string              `toml:"qmark"`
	NoPointer bool                `toml:"no_pointer"`
	MaxHeight int                 `toml:"max_height"`
	Style     map[string]string   `toml:"style"`
	Keys      map[string][]string `toml:"keys"`
}

// Validate checks that the Settings are valid.
func (s *Settings) Validate() error {
	if s.MaxHeight < 0 {
		return fmt.Errorf("max_height must not be negative (got %d)", s.MaxHeight)
	}
	if _, err := s.Theme(); err != nil {
		return err
	}
	if _, err := s.KeyMap(); err != nil {
		return err
	}
	return nil
}

// Theme returns the [style] table as a theme.
func (s *Settings) Theme() (render.Theme, error) {
	return render.ParseTheme(s.Style)
}

// KeyMap returns the default key map with the [keys] table applied.
func (s *Settings) KeyMap() (keymap.KeyMap, error) {
	km := keymap.DefaultKeyMap()
	if err := km.Override(s.Keys); err != nil {
		return km, err
	}
	return km, nil
}

// PromptDef represents a prompt definition from prompts/<name>.toml
type PromptDef struct {
	Name          string            `toml:"-"`
	Message       string            `toml:"message"`
	Choices       []any             `toml:"choices"`
	Default       string            `toml:"default"`
	InitialChoice string            `toml:"initial_choice"`
	QMark         string            `toml:"qmark"`
	NoPointer     bool              `toml:"no_pointer"`
	MinSelected   int               `toml:"min_selected"`
	MaxSelected   int               `toml:"max_selected"` // 0 = no limit
	Style         map[string]string `toml:"style"`
}

// Validate checks that the PromptDef is valid.
func (p *PromptDef) Validate() error {
	if p.Message == "" {
		return fmt.Errorf("message is required")
	}

	if len(p.Choices) == 0 {
		return fmt.Errorf("at least one choice is required")
	}

	if p.MinSelected < 0 {
		return fmt.Errorf("min_selected must not be negative (got %d)", p.MinSelected)
	}
	if p.MaxSelected < 0 {
		return fmt.Errorf("max_selected must not be negative (got %d)", p.MaxSelected)
	}
	if p.MaxSelected > 0 && p.MaxSelected < p.MinSelected {
		return fmt.Errorf("max_selected (%d) is less than min_selected (%d)", p.MaxSelected, p.MinSelected)
	}

	if _, err := p.BuildChoices(); err != nil {
		return err
	}

	if _, err := render.ParseTheme(p.Style); err != nil {
		return err
	}

	return nil
}

// BuildChoices converts the raw choices into choice items.
func (p *PromptDef) BuildChoices() ([]choice.Item, error) {
	return choice.BuildAll[string](p.Choices)
}

// Validator returns the selection check implied by min_selected and
// max_selected, or nil when neither is set.
func (p *PromptDef) Validator() validate.Func[string] {
	var fns []validate.Func[string]
	if p.MinSelected > 0 {
		fns = append(fns, validate.MinSelected[string](p.MinSelected))
	}
	if p.MaxSelected > 0 {
		fns = append(fns, validate.MaxSelected[string](p.MaxSelected))
	}
	if len(fns) == 0 {
		return nil
	}
	return validate.All(fns...)
}

// DefaultValue returns a pointer to Default, or nil when unset.
func (p *PromptDef) DefaultValue() *string {
	if p.Default == "" {
		return nil
	}
	v := p.Default
	return &v
}

// InitialValue returns a pointer to InitialChoice, or nil when unset.
func (p *PromptDef) InitialValue() *string {
	if p.InitialChoice == "" {
		return nil
	}
	v := p.InitialChoice
	return &v
}
