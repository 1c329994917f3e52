// Package logging holds the process-wide slog logger and the status-line
// helpers the CLI prints with.
//
// Library code logs through Debug/Info/Warn/Error or a Component logger;
// until Setup runs only warnings reach stderr:
//
//	log := logging.Component("selection")
//	log.Debug("submit rejected", "selected", 0)
//
// The CLI calls Setup from the root command with -v and --json. While a
// prompt owns the terminal, tui.Run wraps it in Hold so records are written
// after the program exits instead of into its frame.
//
// User-facing lines carry a status prefix (ℹ ✓ ⚠ ✗). UserInfo and
// UserSuccess write to stdout, UserWarning and UserError to stderr;
// SetUserOutput redirects both for tests.
package logging
