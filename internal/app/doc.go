// Package app bundles what a command needs to ask a question: the
// configuration paths with their settings, and the streams the prompt
// reads from and draws on.
//
// Commands use the process-wide Default. Tests swap it for an App built
// with options so nothing touches the real terminal or config directory:
//
//	a := app.New(
//	    app.WithPaths(config.NewPaths(tmpDir)),
//	    app.WithIO(strings.NewReader(" \r"), &out),
//	    app.WithTerminalCheck(func() bool { return true }),
//	)
//	app.SetDefault(a)
//	defer app.ResetDefault()
//
// Settings are read from disk on first use and cached; WithSettings
// skips the read entirely.
package app
