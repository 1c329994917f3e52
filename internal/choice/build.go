package choice

import (
	"fmt"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
)

// disabledReason is used for records that set disabled = true.
const disabledReason = "disabled"

// Build converts a loosely typed entry into an Item.
//
// Accepted forms:
//   - an Item (Choice[V] or Separator), returned unchanged
//   - a string, used as title and value (V must be string)
//   - a labeled record map with keys name/title, value, checked, disabled,
//     or separator for a separator entry
func Build[V comparable](raw any) (Item, error) {
	switch r := raw.(type) {
	case Separator:
		return r, nil
	case *Separator:
		return NewSeparator(r.Line), nil
	case Choice[V]:
		return r, nil
	case *Choice[V]:
		return *r, nil
	case string:
		v, err := valueFrom[V](r)
		if err != nil {
			return nil, err
		}
		return New(r, v), nil
	case map[string]any:
		return buildRecord[V](r)
	case Item:
		return nil, errors.ConfigErrorf("choice %q has value type %T, not %s", r.Label(), r, typeName[V]())
	}
	return nil, errors.ConfigErrorf("unsupported choice type %T", raw)
}

// BuildAll converts every entry with Build. The error names the offending
// position.
func BuildAll[V comparable](raws []any) ([]Item, error) {
	items := make([]Item, 0, len(raws))
	for i, raw := range raws {
		item, err := Build[V](raw)
		if err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("choice %d", i+1), err)
		}
		items = append(items, item)
	}
	return items, nil
}

func buildRecord[V comparable](r map[string]any) (Item, error) {
	if line, ok := r["separator"]; ok {
		s, ok := line.(string)
		if !ok {
			return nil, errors.ConfigErrorf("separator must be a string, got %T", line)
		}
		return NewSeparator(s), nil
	}

	title, err := stringField(r, "name")
	if err != nil {
		return nil, err
	}
	if title == "" {
		if title, err = stringField(r, "title"); err != nil {
			return nil, err
		}
	}

	var c Choice[V]
	c.Title = title

	if rawValue, ok := r["value"]; ok {
		v, ok := rawValue.(V)
		if !ok {
			return nil, errors.ConfigErrorf("choice %q: value has type %T, not %s", title, rawValue, typeName[V]())
		}
		c.Value = v
	} else {
		if title == "" {
			return nil, errors.ConfigErrorf("choice record needs a name or a value")
		}
		v, err := valueFrom[V](title)
		if err != nil {
			return nil, err
		}
		c.Value = v
	}
	if c.Title == "" {
		c.Title = fmt.Sprint(c.Value)
	}

	if checked, ok := r["checked"]; ok {
		b, ok := checked.(bool)
		if !ok {
			return nil, errors.ConfigErrorf("choice %q: checked must be a boolean", c.Title)
		}
		c.Checked = b
	}

	switch d := r["disabled"].(type) {
	case nil:
	case bool:
		if d {
			c.Disabled = disabledReason
		}
	case string:
		c.Disabled = d
	default:
		return nil, errors.ConfigErrorf("choice %q: disabled must be a string or boolean", c.Title)
	}

	return c, nil
}

func stringField(r map[string]any, key string) (string, error) {
	raw, ok := r[key]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", errors.ConfigErrorf("choice %s must be a string, got %T", key, raw)
	}
	return s, nil
}

// valueFrom uses a title as the value, which only works for string values.
func valueFrom[V comparable](title string) (V, error) {
	v, ok := any(title).(V)
	if !ok {
		var zero V
		return zero, errors.ConfigErrorf("choice %q has no value and %s values cannot default to the title", title, typeName[V]())
	}
	return v, nil
}

func typeName[V comparable]() string {
	var zero V
	return fmt.Sprintf("%T", zero)
}
