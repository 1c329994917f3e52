package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
)

// Theme maps token classes to styles. Classes without an entry are
// painted unstyled.
type Theme map[string]lipgloss.Style

// defaultStyles is the built-in palette in style-string form.
var defaultStyles = map[string]string{
	ClassQMark:       "fg:#5f819d",
	ClassQuestion:    "bold",
	ClassAnswer:      "fg:#FF9D00 bold",
	ClassInstruction: "fg:#858585",
	ClassPointer:     "fg:#FF9D00 bold",
	ClassHighlighted: "fg:#FF9D00 bold",
	ClassSelected:    "fg:#5f819d",
	ClassSeparator:   "fg:#6C6C6C",
	ClassDisabled:    "fg:#858585 italic",
	ClassValidation:  "fg:ansired bold",
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	t, err := ParseTheme(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("render: invalid default theme: %v", err))
	}
	return t
}

// Merge returns a new theme with other layered over t. Attributes set in
// other win; attributes it leaves unset keep the value from t, so
// "bold" on a colored class stays colored.
func (t Theme) Merge(other Theme) Theme {
	out := make(Theme, len(t)+len(other))
	for class, style := range t {
		out[class] = style
	}
	for class, style := range other {
		if base, ok := out[class]; ok {
			style = style.Inherit(base)
		}
		out[class] = style
	}
	return out
}

// Style returns the style for class. A "class:" prefix is ignored.
func (t Theme) Style(class string) lipgloss.Style {
	if style, ok := t[strings.TrimPrefix(class, "class:")]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Paint renders tokens with the theme's styles.
func (t Theme) Paint(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Text == "" {
			continue
		}
		if tok.Class == "" {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(t.Style(tok.Class).Render(tok.Text))
	}
	return b.String()
}

// ParseTheme builds a theme from class to style-string entries.
func ParseTheme(styles map[string]string) (Theme, error) {
	classes := make([]string, 0, len(styles))
	for class := range styles {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	t := make(Theme, len(styles))
	for _, class := range classes {
		style, err := ParseStyle(styles[class])
		if err != nil {
			return nil, errors.ConfigErrorf("style %q: %v", class, err)
		}
		t[strings.TrimPrefix(class, "class:")] = style
	}
	return t, nil
}

// ansiColors maps prompt_toolkit ANSI color names to terminal color indexes.
var ansiColors = map[string]int{
	"ansiblack":         0,
	"ansired":           1,
	"ansigreen":         2,
	"ansiyellow":        3,
	"ansiblue":          4,
	"ansimagenta":       5,
	"ansicyan":          6,
	"ansigray":          7,
	"ansibrightblack":   8,
	"ansibrightred":     9,
	"ansibrightgreen":   10,
	"ansibrightyellow":  11,
	"ansibrightblue":    12,
	"ansibrightmagenta": 13,
	"ansibrightcyan":    14,
	"ansiwhite":         15,
}

// ParseStyle parses a prompt_toolkit-style string such as
// "fg:#5f819d bg:ansiblack bold noitalic". A bare color sets the
// foreground. Only the attributes named in s are set on the result, so
// "nobold" is an explicit override while omitting bold leaves it unset.
func ParseStyle(s string) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()
	for _, field := range strings.Fields(s) {
		switch {
		case strings.HasPrefix(field, "fg:"):
			c, err := parseColor(strings.TrimPrefix(field, "fg:"))
			if err != nil {
				return style, err
			}
			if c != nil {
				style = style.Foreground(c)
			}
		case strings.HasPrefix(field, "bg:"):
			c, err := parseColor(strings.TrimPrefix(field, "bg:"))
			if err != nil {
				return style, err
			}
			if c != nil {
				style = style.Background(c)
			}
		case strings.HasPrefix(field, "class:"):
			// class references only matter to prompt_toolkit's cascade
		default:
			var err error
			style, err = applyAttr(style, field)
			if err != nil {
				return style, err
			}
		}
	}
	return style, nil
}

func applyAttr(style lipgloss.Style, field string) (lipgloss.Style, error) {
	switch field {
	case "bold":
		return style.Bold(true), nil
	case "nobold":
		return style.Bold(false), nil
	case "italic":
		return style.Italic(true), nil
	case "noitalic":
		return style.Italic(false), nil
	case "underline":
		return style.Underline(true), nil
	case "nounderline":
		return style.Underline(false), nil
	case "reverse":
		return style.Reverse(true), nil
	case "noreverse":
		return style.Reverse(false), nil
	case "blink":
		return style.Blink(true), nil
	case "noblink":
		return style.Blink(false), nil
	case "strike":
		return style.Strikethrough(true), nil
	case "nostrike":
		return style.Strikethrough(false), nil
	case "dim":
		return style.Faint(true), nil
	case "nodim":
		return style.Faint(false), nil
	case "hidden", "nohidden", "noinherit":
		return style, nil
	}

	c, err := parseColor(field)
	if err != nil {
		return style, fmt.Errorf("unknown style attribute %q", field)
	}
	if c != nil {
		style = style.Foreground(c)
	}
	return style, nil
}

// parseColor returns nil for "default" and "".
func parseColor(s string) (lipgloss.TerminalColor, error) {
	s = strings.ToLower(s)
	switch {
	case s == "" || s == "default":
		return nil, nil
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return nil, fmt.Errorf("invalid color %q", s)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return nil, fmt.Errorf("invalid color %q", s)
		}
		return lipgloss.Color("#" + hex), nil
	}
	if idx, ok := ansiColors[s]; ok {
		return lipgloss.Color(strconv.Itoa(idx)), nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(s), nil
	}
	return nil, fmt.Errorf("invalid color %q", s)
}
