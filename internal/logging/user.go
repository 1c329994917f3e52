package logging

import (
	"fmt"
	"io"
	"os"
)

// Status lines for the person at the terminal. They bypass slog and its
// level, so they show even without -v.
var (
	userOut io.Writer = os.Stdout
	userErr io.Writer = os.Stderr
)

// SetUserOutput redirects user-facing output. A nil writer restores
// the corresponding default stream.
func SetUserOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	userOut, userErr = out, errOut
}

func userf(w io.Writer, prefix, format string, args []any) {
	fmt.Fprintf(w, prefix+" "+format+"\n", args...)
}

// UserInfo prints "ℹ msg" to the user output.
func UserInfo(format string, args ...any) { userf(userOut, "ℹ", format, args) }

// UserSuccess prints "✓ msg" to the user output.
func UserSuccess(format string, args ...any) { userf(userOut, "✓", format, args) }

// UserWarning prints "⚠ msg" to the user error stream.
func UserWarning(format string, args ...any) { userf(userErr, "⚠", format, args) }

// UserError prints "✗ msg" to the user error stream.
func UserError(format string, args ...any) { userf(userErr, "✗", format, args) }
