// Package keymap maps key presses to checkbox operations.
//
// The dispatcher holds a priority-ordered table of bubbles key bindings.
// It is consulted before anything else sees a key, and a key that matches
// no rule resolves to ActionNone and is swallowed, so typing never inserts
// text into the prompt.
//
// Default bindings:
//
//	ctrl+c, ctrl+q  abort
//	space           toggle the highlighted choice
//	i               invert the selection
//	a               select all, or none when all are selected
//	down, j         move down
//	up, k           move up
//	enter           submit
//
// Bindings can be replaced per action with KeyMap.Override, which is how
// the [keys] table of the settings file is applied.
package keymap
