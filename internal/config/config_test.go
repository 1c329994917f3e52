package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/choice"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/keymap"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/render"
)

const toppingsPrompt = `
message = "Select toppings"
min_selected = 1
max_selected = 2
initial_choice = "olives"
choices = [
    "Cheese",
    { name = "Ham", value = "ham", checked = true },
    { separator = "-- veggie --" },
    { name = "Olives", value = "olives" },
    { name = "Anchovies", disabled = "out of stock" },
]

[style]
answer = "fg:#00ff00"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestValidatePromptName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"toppings", false},
		{"deploy-targets_2", false},
		{"0day", false},
		{"", true},
		{"Toppings", true},
		{"-leading", true},
		{"../etc/passwd", true},
		{"a/b", true},
		{strings.Repeat("a", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePromptName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePromptName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/custom/dir")

		paths := DefaultPaths()
		if paths.ConfigDir != "/custom/dir" {
			t.Errorf("ConfigDir = %q, want %q", paths.ConfigDir, "/custom/dir")
		}
		if paths.PromptsDir != filepath.Join("/custom/dir", "prompts") {
			t.Errorf("PromptsDir = %q", paths.PromptsDir)
		}
		if paths.SettingsPath() != filepath.Join("/custom/dir", "config.toml") {
			t.Errorf("SettingsPath() = %q", paths.SettingsPath())
		}
	})

	t.Run("from user config dir", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		t.Setenv("HOME", "/home/test")

		paths := DefaultPaths()
		if filepath.Base(paths.ConfigDir) != AppName {
			t.Errorf("ConfigDir = %q, want it to end in %q", paths.ConfigDir, AppName)
		}
	})
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, SettingsFile), `
qmark = ">"
no_pointer = true
max_height = 7

[style]
qmark = "fg:ansired bold"

[keys]
down = ["down", "n"]
toggle = ["space", "x"]
`)

	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.QMark != ">" || !s.NoPointer || s.MaxHeight != 7 {
		t.Errorf("LoadSettings() = %+v", s)
	}

	theme, err := s.Theme()
	if err != nil {
		t.Fatalf("Theme() error = %v", err)
	}
	if !theme.Style(render.ClassQMark).GetBold() {
		t.Error("qmark style should be bold")
	}

	km, err := s.KeyMap()
	if err != nil {
		t.Fatalf("KeyMap() error = %v", err)
	}
	d := keymap.NewDispatcher(km)
	if got := d.Resolve(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}); got != keymap.ActionDown {
		t.Errorf("Resolve(n) = %v, want down", got)
	}
	if got := d.Resolve(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); got != keymap.ActionToggle {
		t.Errorf("Resolve(x) = %v, want toggle", got)
	}
}

func TestLoadSettings_Missing(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if !reflect.DeepEqual(*s, Settings{}) {
		t.Errorf("LoadSettings() = %+v, want zero settings", s)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "qmark = "},
		{"negative height", "max_height = -1"},
		{"bad style", "[style]\nqmark = \"fg:notacolor\""},
		{"unknown key action", "[keys]\njump = [\"g\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, SettingsFile), tt.content)

			_, err := LoadSettings(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.GetExitCode(err); code != errors.ExitConfigError {
				t.Errorf("exit code = %d, want %d", code, errors.ExitConfigError)
			}
		})
	}
}

func TestLoadSettings_WarnsUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(false, false, &buf)
	t.Cleanup(func() { logging.Setup(false, false, os.Stderr) })

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, SettingsFile), "qmark = \"?\"\ncolour = \"red\"\n")

	if _, err := LoadSettings(dir); err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if !strings.Contains(buf.String(), "colour") {
		t.Errorf("expected warning about unknown key, got %q", buf.String())
	}
}

func TestLoadPrompt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "toppings.toml"), toppingsPrompt)

	def, err := LoadPrompt(dir, "toppings")
	if err != nil {
		t.Fatalf("LoadPrompt() error = %v", err)
	}

	if def.Name != "toppings" {
		t.Errorf("Name = %q, want %q", def.Name, "toppings")
	}
	if def.Message != "Select toppings" {
		t.Errorf("Message = %q", def.Message)
	}
	if *def.InitialValue() != "olives" {
		t.Errorf("InitialValue() = %q, want olives", *def.InitialValue())
	}
	if def.DefaultValue() != nil {
		t.Errorf("DefaultValue() = %v, want nil", def.DefaultValue())
	}

	items, err := def.BuildChoices()
	if err != nil {
		t.Fatalf("BuildChoices() error = %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("len(items) = %d, want 5", len(items))
	}
	if !choice.IsSeparator(items[2]) || items[2].Label() != "-- veggie --" {
		t.Errorf("items[2] = %#v, want separator", items[2])
	}
	ham, ok := choice.As[string](items[1])
	if !ok || !ham.Checked || ham.Value != "ham" {
		t.Errorf("items[1] = %#v", items[1])
	}
	anchovies, _ := choice.As[string](items[4])
	if anchovies.Disabled != "out of stock" {
		t.Errorf("Disabled = %q", anchovies.Disabled)
	}

	check := def.Validator()
	if check == nil {
		t.Fatal("Validator() = nil, want min/max check")
	}
	if check(nil).OK() {
		t.Error("empty selection should fail min_selected")
	}
	if check([]string{"a", "b", "c"}).OK() {
		t.Error("three values should fail max_selected")
	}
	if !check([]string{"a"}).OK() {
		t.Error("one value should pass")
	}
}

func TestLoadPrompt_NotFound(t *testing.T) {
	_, err := LoadPrompt(t.TempDir(), "missing")
	if code := errors.GetExitCode(err); code != errors.ExitPromptNotFound {
		t.Errorf("exit code = %d, want %d (err = %v)", code, errors.ExitPromptNotFound, err)
	}
}

func TestLoadPrompt_RejectsTraversal(t *testing.T) {
	root := t.TempDir()
	promptsDir := filepath.Join(root, "prompts")
	writeFile(t, filepath.Join(root, "secret.toml"), toppingsPrompt)
	if err := os.MkdirAll(promptsDir, 0755); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"../secret", "/etc/passwd", "sub/secret"} {
		if _, err := LoadPrompt(promptsDir, name); err == nil {
			t.Errorf("LoadPrompt(%q) should fail", name)
		}
	}
}

func TestLoadPrompt_SymlinkStaysInside(t *testing.T) {
	root := t.TempDir()
	promptsDir := filepath.Join(root, "prompts")
	writeFile(t, filepath.Join(root, "outside.toml"), toppingsPrompt)
	if err := os.MkdirAll(promptsDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink("../../outside.toml", filepath.Join(promptsDir, "escape.toml")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	// securejoin resolves the link relative to promptsDir, so it never
	// reaches outside.toml.
	if _, err := LoadPrompt(promptsDir, "escape"); err == nil {
		t.Error("LoadPrompt() should not follow a link out of the prompts directory")
	}
}

func TestPromptDef_Validate(t *testing.T) {
	valid := func() PromptDef {
		return PromptDef{Message: "Pick", Choices: []any{"a", "b"}}
	}

	tests := []struct {
		name    string
		modify  func(*PromptDef)
		wantErr bool
	}{
		{"valid", func(*PromptDef) {}, false},
		{"missing message", func(p *PromptDef) { p.Message = "" }, true},
		{"no choices", func(p *PromptDef) { p.Choices = nil }, true},
		{"negative min", func(p *PromptDef) { p.MinSelected = -1 }, true},
		{"negative max", func(p *PromptDef) { p.MaxSelected = -1 }, true},
		{"max below min", func(p *PromptDef) { p.MinSelected = 2; p.MaxSelected = 1 }, true},
		{"unbounded max", func(p *PromptDef) { p.MinSelected = 2 }, false},
		{"bad choice", func(p *PromptDef) { p.Choices = []any{int64(3)} }, true},
		{"bad style", func(p *PromptDef) { p.Style = map[string]string{"qmark": "wobbly"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := valid()
			tt.modify(&def)
			err := def.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPromptDef_ValidatorUnset(t *testing.T) {
	def := PromptDef{Message: "Pick", Choices: []any{"a"}}
	if def.Validator() != nil {
		t.Error("Validator() should be nil without limits")
	}
}

func TestLoadPromptFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	writeFile(t, path, "message = \"Pick\"\nchoices = []\n")

	_, err := LoadPromptFile(path)
	if code := errors.GetExitCode(err); code != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d (err = %v)", code, errors.ExitConfigError, err)
	}

	_, err = LoadPromptFile(filepath.Join(dir, "nope.toml"))
	if code := errors.GetExitCode(err); code != errors.ExitPromptNotFound {
		t.Errorf("exit code = %d, want %d (err = %v)", code, errors.ExitPromptNotFound, err)
	}
}

func TestListPrompts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "toppings.toml"), toppingsPrompt)
	writeFile(t, filepath.Join(dir, "alpha.toml"), "message = \"First\"\nchoices = [\"x\"]\n")
	writeFile(t, filepath.Join(dir, "broken.toml"), "message = ")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	prompts, err := ListPrompts(dir)
	if err != nil {
		t.Fatalf("ListPrompts() error = %v", err)
	}

	var names []string
	for _, p := range prompts {
		names = append(names, p.Name)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "toppings"}) {
		t.Errorf("ListPrompts() names = %v, want [alpha toppings]", names)
	}
}

func TestListPrompts_MissingDir(t *testing.T) {
	prompts, err := ListPrompts(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ListPrompts() error = %v", err)
	}
	if len(prompts) != 0 {
		t.Errorf("ListPrompts() = %v, want none", prompts)
	}
}
