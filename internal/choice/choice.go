package choice

import "strings"

// DefaultSeparatorLine is drawn for separators created without a line.
const DefaultSeparatorLine = "---------------"

// Item is an entry in a prompt's choice list.
type Item interface {
	// Selectable reports whether the cursor may rest on the entry.
	Selectable() bool

	// Label returns the plain display text.
	Label() string
}

// Span is a piece of a styled title. Class names a theme class.
type Span struct {
	Class string
	Text  string
}

// Choice is one selectable entry.
type Choice[V comparable] struct {
	// Title is the display text
	Title string

	// Spans is a styled title; when set it is shown instead of Title
	Spans []Span

	// Value identifies the choice in the selection and the result
	Value V

	// Checked pre-selects the choice
	Checked bool

	// Disabled is the reason the choice cannot be selected (empty = enabled)
	Disabled string
}

// New creates an enabled, unchecked choice.
func New[V comparable](title string, value V) Choice[V] {
	return Choice[V]{Title: title, Value: value}
}

// Of creates one choice per title, using the title as the value.
func Of(titles ...string) []Item {
	items := make([]Item, len(titles))
	for i, t := range titles {
		items[i] = New(t, t)
	}
	return items
}

// WithChecked returns a copy of c with Checked set.
func (c Choice[V]) WithChecked(checked bool) Choice[V] {
	c.Checked = checked
	return c
}

// WithDisabled returns a copy of c disabled for the given reason.
func (c Choice[V]) WithDisabled(reason string) Choice[V] {
	c.Disabled = reason
	return c
}

// WithSpans returns a copy of c with a styled title.
func (c Choice[V]) WithSpans(spans ...Span) Choice[V] {
	c.Spans = spans
	return c
}

// IsDisabled reports whether the choice is disabled.
func (c Choice[V]) IsDisabled() bool {
	return c.Disabled != ""
}

// Styled reports whether the title is a span sequence.
func (c Choice[V]) Styled() bool {
	return len(c.Spans) > 0
}

func (c Choice[V]) Selectable() bool {
	return !c.IsDisabled()
}

// Label returns the title, joining spans when the title is styled.
func (c Choice[V]) Label() string {
	if !c.Styled() {
		return c.Title
	}
	var b strings.Builder
	for _, s := range c.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Separator is a non-selectable entry used for grouping.
type Separator struct {
	Line string
}

// NewSeparator creates a separator. An empty line uses DefaultSeparatorLine.
func NewSeparator(line string) Separator {
	if line == "" {
		line = DefaultSeparatorLine
	}
	return Separator{Line: line}
}

func (s Separator) Selectable() bool { return false }

func (s Separator) Label() string {
	if s.Line == "" {
		return DefaultSeparatorLine
	}
	return s.Line
}

// IsSeparator reports whether item is a separator.
func IsSeparator(item Item) bool {
	switch item.(type) {
	case Separator, *Separator:
		return true
	}
	return false
}

// As returns item as a Choice[V] when it is one.
func As[V comparable](item Item) (Choice[V], bool) {
	switch c := item.(type) {
	case Choice[V]:
		return c, true
	case *Choice[V]:
		if c != nil {
			return *c, true
		}
	}
	return Choice[V]{}, false
}
