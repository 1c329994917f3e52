package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/selection"
)

// Action is an operation a key can trigger.
type Action int

const (
	ActionNone Action = iota
	ActionAbort
	ActionToggle
	ActionInvert
	ActionToggleAll
	ActionDown
	ActionUp
	ActionSubmit
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionAbort:     "abort",
	ActionToggle:    "toggle",
	ActionInvert:    "invert",
	ActionToggleAll: "all",
	ActionDown:      "down",
	ActionUp:        "up",
	ActionSubmit:    "submit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// KeyMap holds one binding per action.
type KeyMap struct {
	Abort     key.Binding
	Toggle    key.Binding
	Invert    key.Binding
	ToggleAll key.Binding
	Down      key.Binding
	Up        key.Binding
	Submit    key.Binding
}

// DefaultKeyMap returns the standard checkbox bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+c", "abort"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Invert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "invert"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle all"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
	}
}

// binding returns the binding field for an action name.
func (km *KeyMap) binding(name string) (*key.Binding, bool) {
	switch name {
	case "abort":
		return &km.Abort, true
	case "toggle":
		return &km.Toggle, true
	case "invert":
		return &km.Invert, true
	case "all":
		return &km.ToggleAll, true
	case "down":
		return &km.Down, true
	case "up":
		return &km.Up, true
	case "submit":
		return &km.Submit, true
	}
	return nil, false
}

// Override replaces the keys of the named actions. "space" is accepted as
// an alias for " ". Unknown action names are configuration errors.
func (km *KeyMap) Override(keys map[string][]string) error {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b, ok := km.binding(strings.ToLower(name))
		if !ok {
			return errors.ConfigErrorf("unknown key action %q", name)
		}
		ks := make([]string, 0, len(keys[name]))
		for _, k := range keys[name] {
			if k == "space" {
				k = " "
			}
			ks = append(ks, k)
		}
		if len(ks) == 0 {
			return errors.ConfigErrorf("key action %q has no keys", name)
		}
		b.SetKeys(ks...)
		b.SetHelp(helpKey(ks[0]), b.Help().Desc)
	}
	return nil
}

// helpKey is how a key is shown in the help legend.
func helpKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Down, km.Toggle, km.ToggleAll, km.Invert, km.Submit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down},
		{km.Toggle, km.ToggleAll, km.Invert},
		{km.Submit, km.Abort},
	}
}

// Target receives dispatched operations. selection.Controller implements it.
type Target interface {
	MoveCursor(dir selection.Direction)
	ToggleCurrent()
	InvertAll()
	ToggleAllOrNone()
	AttemptSubmit() bool
	Abort()
}

// rule pairs a binding with the action it triggers.
type rule struct {
	binding key.Binding
	action  Action
}

// Dispatcher resolves key presses against a priority-ordered rule table.
type Dispatcher struct {
	rules []rule
}

// NewDispatcher builds the rule table for km. Abort has the highest
// priority so it wins even if a key is also bound elsewhere.
func NewDispatcher(km KeyMap) *Dispatcher {
	return &Dispatcher{
		rules: []rule{
			{km.Abort, ActionAbort},
			{km.Submit, ActionSubmit},
			{km.Toggle, ActionToggle},
			{km.Invert, ActionInvert},
			{km.ToggleAll, ActionToggleAll},
			{km.Down, ActionDown},
			{km.Up, ActionUp},
		},
	}
}

// Resolve returns the action for msg, or ActionNone.
func (d *Dispatcher) Resolve(msg tea.KeyMsg) Action {
	for _, r := range d.rules {
		if key.Matches(msg, r.binding) {
			return r.action
		}
	}
	return ActionNone
}

// Dispatch resolves msg and applies the action to t.
func (d *Dispatcher) Dispatch(msg tea.KeyMsg, t Target) Action {
	action := d.Resolve(msg)
	switch action {
	case ActionAbort:
		t.Abort()
	case ActionSubmit:
		t.AttemptSubmit()
	case ActionToggle:
		t.ToggleCurrent()
	case ActionInvert:
		t.InvertAll()
	case ActionToggleAll:
		t.ToggleAllOrNone()
	case ActionDown:
		t.MoveCursor(selection.Next)
	case ActionUp:
		t.MoveCursor(selection.Previous)
	}
	return action
}
