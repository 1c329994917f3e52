// Package app provides the application context for forage-checkbox.
// It allows dependency injection for testing.
package app

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/logging"
)

// App holds the application dependencies
type App struct {
	// Paths holds the configured paths
	Paths *config.Paths

	// Settings is the loaded user configuration (nil = load on first use)
	Settings *config.Settings

	// In is the terminal input of interactive prompts
	In io.Reader

	// Out receives prompt rendering
	Out io.Writer

	// IsTerminal reports whether In is an interactive terminal
	IsTerminal func() bool
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithSettings sets preloaded settings
func WithSettings(s *config.Settings) Option {
	return func(a *App) {
		a.Settings = s
	}
}

// WithIO sets the prompt input and output
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.In = in
		a.Out = out
	}
}

// WithTerminalCheck replaces the terminal detection
func WithTerminalCheck(fn func() bool) Option {
	return func(a *App) {
		a.IsTerminal = fn
	}
}

// New creates a new App with the given options.
// Unset dependencies fall back to the process environment.
func New(opts ...Option) *App {
	app := &App{
		Paths: config.DefaultPaths(),
		In:    os.Stdin,
		Out:   os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.IsTerminal == nil {
		app.IsTerminal = stdinIsTerminal
	}

	return app
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// LoadSettings returns the app settings, loading them from the config
// directory on first use.
func (a *App) LoadSettings() (*config.Settings, error) {
	if a.Settings != nil {
		return a.Settings, nil
	}
	s, err := config.LoadSettings(a.Paths.ConfigDir)
	if err != nil {
		return nil, err
	}
	logging.Debug("loaded settings", "dir", a.Paths.ConfigDir)
	a.Settings = s
	return s, nil
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
