// Package errors carries the exit-code aware error type used by every
// forage-checkbox command.
//
// A PromptError pairs a user-facing message and an optional cause with the
// process exit code main should return. Constructors exist for each failure
// class: ConfigError and ConfigErrorf for prompts that cannot be built,
// PromptNotFound for a missing named prompt, NotATerminal for interactive
// use without a TTY.
//
// Aborting a prompt is reported as ErrInterrupted (exit 130):
//
//	values, err := tui.Run(ctx, opts)
//	if errors.Is(err, errors.ErrInterrupted) {
//	    return nil
//	}
//
// GetExitCode maps any error to a code, defaulting to ExitGeneralError for
// errors outside this package.
package errors
