package selection

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/choice"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
)

// Options holds the optional construction parameters of a State.
type Options[V comparable] struct {
	// Default pre-selects the choice with this value (optional)
	Default *V

	// InitialChoice places the cursor on the choice with this value (optional)
	InitialChoice *V
}

// State is the mutable state of one prompt session.
type State[V comparable] struct {
	items     []choice.Item
	cursor    int
	selected  []V
	errMsg    string
	attempted bool
	answered  bool
}

// New builds the session state for items.
//
// Checked choices, and the choice matching opts.Default, start selected in
// list order. Disabled choices never start selected. The cursor starts on
// opts.InitialChoice, or on the first selectable choice.
func New[V comparable](items []choice.Item, opts Options[V]) (*State[V], error) {
	if len(items) == 0 {
		return nil, errors.ConfigErrorf("no choices to select from")
	}

	s := &State[V]{
		items:  append([]choice.Item(nil), items...),
		cursor: -1,
	}

	for i, item := range s.items {
		if item == nil {
			return nil, errors.ConfigErrorf("choice %d is nil", i+1)
		}
		if choice.IsSeparator(item) {
			continue
		}
		c, ok := choice.As[V](item)
		if !ok {
			return nil, errors.ConfigErrorf("choice %d (%q) has type %T, want choice.Choice[%T]", i+1, item.Label(), item, *new(V))
		}
		if c.IsDisabled() {
			continue
		}
		if s.cursor < 0 {
			s.cursor = i
		}
		if c.Checked || (opts.Default != nil && c.Value == *opts.Default) {
			s.selected = append(s.selected, c.Value)
		}
	}

	if s.cursor < 0 {
		return nil, errors.ConfigErrorf("all choices are separators or disabled")
	}

	if opts.InitialChoice != nil {
		idx := s.indexOf(*opts.InitialChoice)
		if idx < 0 {
			return nil, errors.ConfigErrorf("initial choice %v is not in the choices", *opts.InitialChoice)
		}
		if !s.items[idx].Selectable() {
			return nil, errors.ConfigErrorf("initial choice %v refers to a disabled choice", *opts.InitialChoice)
		}
		s.cursor = idx
	}

	return s, nil
}

func (s *State[V]) indexOf(v V) int {
	for i, item := range s.items {
		if c, ok := choice.As[V](item); ok && c.Value == v {
			return i
		}
	}
	return -1
}

// selectableAt reports whether the cursor may rest on index i.
func (s *State[V]) selectableAt(i int) bool {
	return s.items[i].Selectable()
}

// Items returns the choice list. The slice must not be modified.
func (s *State[V]) Items() []choice.Item {
	return s.items
}

// Len returns the number of entries, separators included.
func (s *State[V]) Len() int {
	return len(s.items)
}

// Cursor returns the index of the highlighted entry.
func (s *State[V]) Cursor() int {
	return s.cursor
}

// Pointed returns the highlighted choice.
func (s *State[V]) Pointed() choice.Choice[V] {
	c, _ := choice.As[V](s.items[s.cursor])
	return c
}

// Selected returns a copy of the selected values in toggle order.
func (s *State[V]) Selected() []V {
	return append([]V(nil), s.selected...)
}

// SelectedCount returns the number of selected values.
func (s *State[V]) SelectedCount() int {
	return len(s.selected)
}

// IsSelected reports whether v is selected.
func (s *State[V]) IsSelected(v V) bool {
	return s.position(v) >= 0
}

func (s *State[V]) position(v V) int {
	for i, sv := range s.selected {
		if sv == v {
			return i
		}
	}
	return -1
}

// SelectedChoices returns the choices behind the selected values, in
// toggle order.
func (s *State[V]) SelectedChoices() []choice.Choice[V] {
	out := make([]choice.Choice[V], 0, len(s.selected))
	for _, v := range s.selected {
		if idx := s.indexOf(v); idx >= 0 {
			c, _ := choice.As[V](s.items[idx])
			out = append(out, c)
		}
	}
	return out
}

// enabledValues returns the values of all enabled choices in list order.
func (s *State[V]) enabledValues() []V {
	var out []V
	for _, item := range s.items {
		if c, ok := choice.As[V](item); ok && !c.IsDisabled() {
			out = append(out, c.Value)
		}
	}
	return out
}

// ErrorMessage returns the latest validation failure, visible or not.
func (s *State[V]) ErrorMessage() string {
	return s.errMsg
}

// VisibleError returns the validation failure once a submit was attempted.
func (s *State[V]) VisibleError() string {
	if !s.attempted {
		return ""
	}
	return s.errMsg
}

// SubmissionAttempted reports whether the user has tried to submit.
func (s *State[V]) SubmissionAttempted() bool {
	return s.attempted
}

// Answered reports whether a submit succeeded.
func (s *State[V]) Answered() bool {
	return s.answered
}
