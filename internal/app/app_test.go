package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/config"
)

func TestNew(t *testing.T) {
	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}

	// Should have default paths and I/O
	if app.Paths == nil {
		t.Error("Paths should not be nil")
	}
	if app.In == nil || app.Out == nil {
		t.Error("In and Out should default to the process streams")
	}
	if app.IsTerminal == nil {
		t.Error("IsTerminal should not be nil")
	}
}

func TestNew_WithPaths(t *testing.T) {
	customPaths := config.NewPaths("/custom/config")

	app := New(WithPaths(customPaths))

	if app.Paths != customPaths {
		t.Error("WithPaths did not set custom paths")
	}
}

func TestNew_MultipleOptions(t *testing.T) {
	customPaths := config.NewPaths("/custom")
	settings := &config.Settings{QMark: ">"}
	in := strings.NewReader("")
	var out bytes.Buffer

	app := New(
		WithPaths(customPaths),
		WithSettings(settings),
		WithIO(in, &out),
		WithTerminalCheck(func() bool { return true }),
	)

	if app.Paths != customPaths {
		t.Error("Paths not set correctly")
	}
	if app.Settings != settings {
		t.Error("Settings not set correctly")
	}
	if app.In != in || app.Out != &out {
		t.Error("IO not set correctly")
	}
	if !app.IsTerminal() {
		t.Error("IsTerminal not set correctly")
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("qmark = \">\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	app := New(WithPaths(config.NewPaths(dir)))
	s, err := app.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.QMark != ">" {
		t.Errorf("QMark = %q, want %q", s.QMark, ">")
	}

	// Cached after the first load
	if err := os.Remove(filepath.Join(dir, config.SettingsFile)); err != nil {
		t.Fatal(err)
	}
	again, err := app.LoadSettings()
	if err != nil || again != s {
		t.Errorf("LoadSettings() should return the cached settings")
	}
}

func TestLoadSettings_Preloaded(t *testing.T) {
	settings := &config.Settings{NoPointer: true}
	app := New(WithPaths(config.NewPaths("/nonexistent")), WithSettings(settings))

	got, err := app.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got != settings {
		t.Error("LoadSettings() should return preloaded settings")
	}
}

func TestSetDefault(t *testing.T) {
	// Save original default
	original := Default
	defer func() { Default = original }()

	customApp := New(WithSettings(&config.Settings{QMark: "!"}))
	SetDefault(customApp)

	if Default != customApp {
		t.Error("SetDefault did not update Default")
	}
}

func TestResetDefault(t *testing.T) {
	// Save original default
	original := Default
	defer func() { Default = original }()

	// Set a custom default
	customApp := New(WithSettings(&config.Settings{QMark: "!"}))
	SetDefault(customApp)

	// Reset to default
	ResetDefault()

	// Should have a new default app with default paths
	if Default == customApp {
		t.Error("ResetDefault did not create new Default")
	}
	if Default.Paths == nil {
		t.Error("ResetDefault should create app with default paths")
	}
}
