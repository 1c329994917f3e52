// Package testutil provides test utilities for command tests
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/config"
)

// TestEnv holds the test environment
type TestEnv struct {
	T      *testing.T
	TmpDir string
	Paths  *config.Paths
	App    *app.App

	// Out collects the prompt rendering
	Out *bytes.Buffer

	input   *strings.Reader
	cleanup func()
}

// NewTestEnv creates a new test environment rooted in a temp config
// directory. Prompt input is empty and reported as a terminal until SetInput
// or SetTerminal change it.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	paths := config.NewPaths(filepath.Join(tmpDir, "config"))

	for _, dir := range []string{paths.ConfigDir, paths.PromptsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	env := &TestEnv{
		T:      t,
		TmpDir: tmpDir,
		Paths:  paths,
		Out:    &bytes.Buffer{},
		input:  strings.NewReader(""),
	}

	testApp := app.New(
		app.WithPaths(paths),
		app.WithIO(env.input, env.Out),
		app.WithTerminalCheck(func() bool { return true }),
	)
	env.App = testApp

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)
	env.cleanup = func() {
		app.SetDefault(originalDefault)
	}

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// SetInput replaces the keystrokes fed to prompts.
func (e *TestEnv) SetInput(keys string) {
	e.input.Reset(keys)
}

// SetTerminal changes whether prompt input counts as a terminal.
func (e *TestEnv) SetTerminal(isTerminal bool) {
	e.App.IsTerminal = func() bool { return isTerminal }
}

// WriteSettings writes config.toml.
func (e *TestEnv) WriteSettings(content string) {
	e.T.Helper()

	if err := os.WriteFile(e.Paths.SettingsPath(), []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write settings: %v", err)
	}
	e.App.Settings = nil
}

// AddPrompt writes a prompt definition and returns its path.
func (e *TestEnv) AddPrompt(name, content string) string {
	e.T.Helper()

	path := filepath.Join(e.Paths.PromptsDir, name+config.PromptExt)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write prompt: %v", err)
	}
	return path
}

// AddFixturePrompt copies an embedded prompt fixture into the prompts
// directory under name.
func (e *TestEnv) AddFixturePrompt(name, fixture string) string {
	e.T.Helper()

	data, err := LoadFixture(fixture)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", fixture, err)
	}
	return e.AddPrompt(name, string(data))
}
