package render

import (
	"fmt"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/selection"
)

// Theme classes.
const (
	ClassQMark       = "qmark"
	ClassQuestion    = "question"
	ClassAnswer      = "answer"
	ClassInstruction = "instruction"
	ClassPointer     = "pointer"
	ClassHighlighted = "highlighted"
	ClassSelected    = "selected"
	ClassSeparator   = "separator"
	ClassDisabled    = "disabled"
	ClassText        = "text"
	ClassValidation  = "validation-toolbar"
)

// Instruction is shown next to the question while the prompt is active.
const Instruction = "(Use arrow keys to move, <space> to select, <a> to toggle, <i> to invert)"

// Token is a run of text tagged with a theme class.
type Token struct {
	Class string
	Text  string
}

// Text concatenates the text of tokens.
func Text(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	b := make([]byte, 0, n)
	for _, t := range tokens {
		b = append(b, t.Text...)
	}
	return string(b)
}

// PromptTokens returns the question line. While the prompt is active it
// ends with the instruction; once answered it ends with a summary of the
// selection.
func PromptTokens[V comparable](message, qmark string, state *selection.State[V]) []Token {
	tokens := []Token{
		{Class: ClassQMark, Text: qmark},
		{Class: ClassQuestion, Text: " " + message + " "},
	}

	if !state.Answered() {
		return append(tokens, Token{Class: ClassInstruction, Text: Instruction})
	}
	return append(tokens, Token{Class: ClassAnswer, Text: summary(state)})
}

func summary[V comparable](state *selection.State[V]) string {
	switch n := state.SelectedCount(); n {
	case 0:
		return "done"
	case 1:
		chosen := state.SelectedChoices()
		if len(chosen) == 0 {
			return "done"
		}
		if chosen[0].Styled() {
			return chosen[0].Label()
		}
		return "[" + chosen[0].Title + "]"
	default:
		return fmt.Sprintf("done (%d selections)", n)
	}
}
