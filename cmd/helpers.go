package cmd

import (
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/choice"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/render"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/tui"
)

// paths returns the default paths configuration.
// This is a helper to reduce repetition in commands.
func paths() *config.Paths {
	return app.Default.Paths
}

// settings returns the user settings.
func settings() (*config.Settings, error) {
	return app.Default.LoadSettings()
}

// isPromptFile reports whether ref names a file rather than a named prompt.
func isPromptFile(ref string) bool {
	return strings.ContainsRune(ref, filepath.Separator) || strings.HasSuffix(ref, config.PromptExt)
}

// loadPromptRef loads a named prompt or a prompt file.
func loadPromptRef(ref string) (*config.PromptDef, error) {
	if isPromptFile(ref) {
		return config.LoadPromptFile(ref)
	}
	return config.LoadPrompt(paths().PromptsDir, ref)
}

// promptOptions combines a prompt definition with the user settings.
// Values in def win over settings.
func promptOptions(def *config.PromptDef, s *config.Settings) (tui.Options[string], error) {
	items, err := def.BuildChoices()
	if err != nil {
		return tui.Options[string]{}, err
	}

	settingsTheme, err := s.Theme()
	if err != nil {
		return tui.Options[string]{}, err
	}
	promptTheme, err := render.ParseTheme(def.Style)
	if err != nil {
		return tui.Options[string]{}, err
	}

	km, err := s.KeyMap()
	if err != nil {
		return tui.Options[string]{}, err
	}

	qmark := def.QMark
	if qmark == "" {
		qmark = s.QMark
	}

	return tui.Options[string]{
		Message:       def.Message,
		Choices:       items,
		Default:       def.DefaultValue(),
		Validate:      def.Validator(),
		QMark:         qmark,
		Style:         settingsTheme.Merge(promptTheme),
		NoPointer:     def.NoPointer || s.NoPointer,
		InitialChoice: def.InitialValue(),
		KeyMap:        &km,
		MaxHeight:     s.MaxHeight,
	}, nil
}

// warnDefault reports a default value that selects nothing: one matching
// no choice, or only a disabled one.
func warnDefault(opts tui.Options[string]) {
	if opts.Default == nil {
		return
	}
	for _, item := range opts.Choices {
		c, ok := choice.As[string](item)
		if !ok || c.Value != *opts.Default {
			continue
		}
		if c.IsDisabled() {
			logWarning("default %q refers to a disabled choice", c.Value)
		}
		return
	}
	logWarning("default %q does not match any choice", *opts.Default)
}
