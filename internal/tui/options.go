package tui

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/choice"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/keymap"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/render"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/validate"
)

// DefaultQMark is shown before the question when Options.QMark is empty.
const DefaultQMark = "?"

// Options describes one checkbox question.
type Options[V comparable] struct {
	// Message is the question text
	Message string

	// Choices are the entries to select from (Choice[V] or Separator)
	Choices []choice.Item

	// Default pre-selects the choice with this value (optional)
	Default *V

	// Validate checks the selection; nil accepts everything
	Validate validate.Func[V]

	// QMark is the question mark prefix (default "?")
	QMark string

	// Style overrides classes of the default theme (optional)
	Style render.Theme

	// NoPointer hides the pointer next to the highlighted choice
	NoPointer bool

	// InitialChoice places the cursor on the choice with this value (optional)
	InitialChoice *V

	// KeyMap replaces the default key bindings (optional)
	KeyMap *keymap.KeyMap

	// MaxHeight limits the number of visible choices (0 = all)
	MaxHeight int

	// ShowHelp adds a key help line below the choices
	ShowHelp bool
}
