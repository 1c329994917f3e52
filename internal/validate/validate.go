package validate

import (
	"fmt"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
)

// InvalidInput is the message for a rejection without text.
const InvalidInput = "Invalid input"

// Verdict is the outcome of validating a selection.
type Verdict struct {
	ok      bool
	message string
}

// Pass accepts the selection.
func Pass() Verdict {
	return Verdict{ok: true}
}

// Fail rejects the selection with the generic InvalidInput message.
func Fail() Verdict {
	return Verdict{message: InvalidInput}
}

// FailWith rejects the selection with msg.
func FailWith(msg string) Verdict {
	return Verdict{message: msg}
}

// OK reports whether the selection was accepted.
func (v Verdict) OK() bool {
	return v.ok
}

// Message returns the rejection text, or "" for a passing verdict.
func (v Verdict) Message() string {
	if v.ok {
		return ""
	}
	return v.message
}

func (v Verdict) String() string {
	if v.ok {
		return "pass"
	}
	return fmt.Sprintf("fail: %s", v.message)
}

// Func checks the selected values, in selection order.
type Func[V comparable] func(values []V) Verdict

// Validator runs a Func for a prompt session.
type Validator[V comparable] struct {
	fn Func[V]
}

// New wraps fn. A nil fn is a configuration error.
func New[V comparable](fn Func[V]) (*Validator[V], error) {
	if fn == nil {
		return nil, errors.ConfigErrorf("validate must be callable")
	}
	return &Validator[V]{fn: fn}, nil
}

// Check runs the wrapped function on a copy of values.
func (v *Validator[V]) Check(values []V) Verdict {
	snapshot := append([]V(nil), values...)
	return v.fn(snapshot)
}

// Always accepts every selection.
func Always[V comparable]() Func[V] {
	return func([]V) Verdict { return Pass() }
}

// FromBool adapts a predicate. false rejects with InvalidInput.
func FromBool[V comparable](pred func([]V) bool) Func[V] {
	return func(values []V) Verdict {
		if pred(values) {
			return Pass()
		}
		return Fail()
	}
}

// FromError adapts an error-returning check. A non-nil error rejects with
// its text.
func FromError[V comparable](check func([]V) error) Func[V] {
	return func(values []V) Verdict {
		if err := check(values); err != nil {
			return FailWith(err.Error())
		}
		return Pass()
	}
}

// MinSelected rejects selections with fewer than n values.
func MinSelected[V comparable](n int) Func[V] {
	return func(values []V) Verdict {
		if len(values) < n {
			if n == 1 {
				return FailWith("Select at least 1 item")
			}
			return FailWith(fmt.Sprintf("Select at least %d items", n))
		}
		return Pass()
	}
}

// MaxSelected rejects selections with more than n values.
func MaxSelected[V comparable](n int) Func[V] {
	return func(values []V) Verdict {
		if len(values) > n {
			if n == 1 {
				return FailWith("Select at most 1 item")
			}
			return FailWith(fmt.Sprintf("Select at most %d items", n))
		}
		return Pass()
	}
}

// All runs fns in order and returns the first rejection. Nil entries are
// skipped.
func All[V comparable](fns ...Func[V]) Func[V] {
	return func(values []V) Verdict {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if v := fn(values); !v.OK() {
				return v
			}
		}
		return Pass()
	}
}
