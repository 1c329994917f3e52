package selection

import (
	"log/slog"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/validate"
)

// Direction is a cursor movement direction.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// Status is the lifecycle state of a session.
type Status int

const (
	StatusActive Status = iota
	StatusAnswered
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusAnswered:
		return "answered"
	case StatusAborted:
		return "aborted"
	default:
		return "active"
	}
}

// Controller applies user operations to a State.
type Controller[V comparable] struct {
	state     *State[V]
	validator *validate.Validator[V]
	status    Status
	result    []V
	log       *slog.Logger
}

// NewController creates a controller for state. A nil validator accepts
// every selection.
func NewController[V comparable](state *State[V], validator *validate.Validator[V]) *Controller[V] {
	if validator == nil {
		validator, _ = validate.New(validate.Always[V]())
	}
	return &Controller[V]{
		state:     state,
		validator: validator,
		log:       logging.Component("selection"),
	}
}

// State returns the controlled state.
func (c *Controller[V]) State() *State[V] {
	return c.state
}

// Status returns the session status.
func (c *Controller[V]) Status() Status {
	return c.status
}

// Done reports whether the session reached a terminal status.
func (c *Controller[V]) Done() bool {
	return c.status != StatusActive
}

// MoveCursor moves the cursor one step in dir, wrapping at both ends, and
// keeps stepping while it rests on a separator or disabled choice.
func (c *Controller[V]) MoveCursor(dir Direction) {
	if c.Done() {
		return
	}
	s := c.state
	n := len(s.items)
	delta := 1
	if dir == Previous {
		delta = -1
	}

	idx := s.cursor
	// New guarantees a selectable entry exists, so n steps always find one.
	for range n {
		idx = (idx + delta + n) % n
		if s.selectableAt(idx) {
			s.cursor = idx
			return
		}
	}
}

// ToggleCurrent adds or removes the highlighted value.
func (c *Controller[V]) ToggleCurrent() {
	if c.Done() {
		return
	}
	s := c.state
	v := s.Pointed().Value
	if i := s.position(v); i >= 0 {
		s.selected = append(s.selected[:i], s.selected[i+1:]...)
	} else {
		s.selected = append(s.selected, v)
	}
	c.validate()
}

// InvertAll selects exactly the enabled choices that are not selected, in
// list order.
func (c *Controller[V]) InvertAll() {
	if c.Done() {
		return
	}
	s := c.state
	var inverted []V
	for _, v := range s.enabledValues() {
		if !s.IsSelected(v) {
			inverted = append(inverted, v)
		}
	}
	s.selected = inverted
	c.validate()
}

// ToggleAllOrNone clears the selection when every enabled choice is
// selected. Otherwise it appends the missing ones in list order.
func (c *Controller[V]) ToggleAllOrNone() {
	if c.Done() {
		return
	}
	s := c.state
	allSelected := true
	for _, v := range s.enabledValues() {
		if !s.IsSelected(v) {
			s.selected = append(s.selected, v)
			allSelected = false
		}
	}
	if allSelected {
		s.selected = nil
	}
	c.validate()
}

// AttemptSubmit validates the selection and, when it passes, ends the
// session with the selection as result. It reports whether the session is
// now answered.
func (c *Controller[V]) AttemptSubmit() bool {
	if c.Done() {
		return c.status == StatusAnswered
	}
	s := c.state
	s.attempted = true
	if !c.validate() {
		c.log.Debug("submit rejected", "selected", len(s.selected), "error", s.errMsg)
		return false
	}
	s.answered = true
	c.status = StatusAnswered
	c.result = s.Selected()
	c.log.Debug("prompt answered", "selected", len(c.result))
	return true
}

// Abort ends the session without a result.
func (c *Controller[V]) Abort() {
	if c.Done() {
		return
	}
	c.status = StatusAborted
	c.log.Debug("prompt aborted")
}

// Result returns the submitted values, or ErrInterrupted when the session
// was aborted. An active session has no result yet.
func (c *Controller[V]) Result() ([]V, error) {
	switch c.status {
	case StatusAnswered:
		return append([]V(nil), c.result...), nil
	case StatusAborted:
		return nil, errors.ErrInterrupted
	}
	return nil, errors.New(errors.ExitGeneralError, "prompt has not been answered")
}

func (c *Controller[V]) validate() bool {
	verdict := c.validator.Check(c.state.selected)
	if verdict.OK() {
		c.state.errMsg = ""
		return true
	}
	c.state.errMsg = verdict.Message()
	return false
}
