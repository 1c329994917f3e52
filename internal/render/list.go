package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/choice"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/selection"
)

// Markers drawn in front of choices.
const (
	Pointer         = "»"
	MarkerSelected  = "● "
	MarkerAvailable = "○ "
)

// ListOptions controls how the choice list is laid out.
type ListOptions struct {
	// NoPointer hides the pointer next to the highlighted entry
	NoPointer bool

	// Width truncates lines to this many cells (0 = no limit)
	Width int

	// MaxHeight limits the number of visible entries (0 = no limit)
	MaxHeight int
}

// ChoiceLines returns one token line per visible entry.
func ChoiceLines[V comparable](state *selection.State[V], opts ListOptions) [][]Token {
	items := state.Items()
	start, end := window(state.Cursor(), len(items), opts.MaxHeight)

	lines := make([][]Token, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, choiceLine(state, items[i], i == state.Cursor(), opts.NoPointer))
	}
	return lines
}

func choiceLine[V comparable](state *selection.State[V], item choice.Item, pointed, noPointer bool) []Token {
	var line []Token
	switch {
	case pointed && !noPointer:
		line = append(line, Token{Class: ClassPointer, Text: " " + Pointer + " "})
	default:
		line = append(line, Token{Class: ClassText, Text: "   "})
	}

	c, ok := choice.As[V](item)
	if !ok {
		return append(line, Token{Class: ClassSeparator, Text: item.Label()})
	}

	if c.IsDisabled() {
		return append(line, Token{Class: ClassDisabled, Text: "- " + c.Label() + " (" + c.Disabled + ")"})
	}

	selected := state.IsSelected(c.Value)
	marker := MarkerAvailable
	if selected {
		marker = MarkerSelected
	}
	line = append(line, Token{Class: ClassText, Text: marker})

	if c.Styled() {
		for _, s := range c.Spans {
			line = append(line, Token{Class: s.Class, Text: s.Text})
		}
		return line
	}

	class := ClassText
	switch {
	case selected:
		class = ClassSelected
	case pointed:
		class = ClassHighlighted
	}
	return append(line, Token{Class: class, Text: c.Title})
}

// window returns the [start, end) range of n entries to show so that the
// cursor stays visible within height rows.
func window(cursor, n, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start > n-height {
		start = n - height
	}
	return start, start + height
}

// ChoiceList paints the choice list, one entry per line.
func ChoiceList[V comparable](state *selection.State[V], theme Theme, opts ListOptions) string {
	lines := ChoiceLines(state, opts)
	out := make([]string, len(lines))
	for i, line := range lines {
		painted := theme.Paint(line)
		if opts.Width > 0 {
			painted = ansi.Truncate(painted, opts.Width, "…")
		}
		out[i] = painted
	}
	return strings.Join(out, "\n")
}

// Prompt paints the question line.
func Prompt[V comparable](message, qmark string, state *selection.State[V], theme Theme) string {
	return theme.Paint(PromptTokens(message, qmark, state))
}

// ErrorToolbar paints the validation message once a submit was attempted,
// or returns "".
func ErrorToolbar[V comparable](state *selection.State[V], theme Theme) string {
	msg := state.VisibleError()
	if msg == "" {
		return ""
	}
	return theme.Paint([]Token{{Class: ClassValidation, Text: msg}})
}
