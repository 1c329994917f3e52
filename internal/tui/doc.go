// Package tui hosts a checkbox prompt in a Bubble Tea program.
//
// Model adapts the selection engine to Bubble Tea: key messages are
// resolved by a keymap.Dispatcher and applied to a selection.Controller,
// and View paints the state with the render package.
//
// # Asking a question
//
//	values, err := tui.Run(ctx, tui.Options[string]{
//	    Message: "Select toppings",
//	    Choices: choice.Of("Cheese", "Tomato", "Olives"),
//	    Validate: validate.MinSelected[string](1),
//	})
//	if errors.Is(err, errors.ErrInterrupted) {
//	    // ctrl+c, or ctx was cancelled
//	}
//
// # Keys
//
//   - space toggles the highlighted choice
//   - a selects every choice, or none when all are selected
//   - i inverts the selection
//   - up/k and down/j move, skipping separators and disabled choices
//   - enter submits once the validator accepts the selection
//   - ctrl+c or ctrl+q aborts
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - key bindings and help
//   - github.com/charmbracelet/lipgloss - Styling
package tui
