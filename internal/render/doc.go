// Package render turns selection state into display tokens and paints them.
//
// Rendering happens in two steps. PromptTokens and ChoiceLines produce
// plain Token values tagged with a theme class; they carry no escape
// sequences and are what tests assert on. A Theme then paints tokens with
// lipgloss styles.
//
// Themes can be built from prompt_toolkit-style strings:
//
//	theme, err := render.ParseTheme(map[string]string{
//	    "qmark":  "fg:#5f819d",
//	    "answer": "fg:#FF9D00 bold",
//	})
//	theme = render.DefaultTheme().Merge(theme)
package render
