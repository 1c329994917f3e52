package validate

import (
	"fmt"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
)

func TestVerdict(t *testing.T) {
	tests := []struct {
		name    string
		verdict Verdict
		wantOK  bool
		wantMsg string
	}{
		{"pass", Pass(), true, ""},
		{"fail", Fail(), false, InvalidInput},
		{"fail with message", FailWith("pick two"), false, "pick two"},
		{"fail with empty message", FailWith(""), false, ""},
		{"zero value", Verdict{}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.verdict.OK(); got != tt.wantOK {
				t.Errorf("OK() = %v, want %v", got, tt.wantOK)
			}
			if got := tt.verdict.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestNew_NilFunc(t *testing.T) {
	v, err := New[string](nil)
	if err == nil {
		t.Fatal("expected error for nil validator")
	}
	if v != nil {
		t.Error("validator should be nil on error")
	}
	if code := errors.GetExitCode(err); code != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestValidator_CheckUsesSnapshot(t *testing.T) {
	v, err := New(func(values []string) Verdict {
		values[0] = "mutated"
		return Pass()
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	values := []string{"a"}
	v.Check(values)
	if values[0] != "a" {
		t.Error("validator must not see the caller's slice")
	}
}

func TestFromBool(t *testing.T) {
	nonEmpty := FromBool(func(values []int) bool { return len(values) > 0 })

	if !nonEmpty([]int{1}).OK() {
		t.Error("non-empty selection should pass")
	}
	v := nonEmpty(nil)
	if v.OK() || v.Message() != InvalidInput {
		t.Errorf("empty selection verdict = %v, want generic failure", v)
	}
}

func TestFromError(t *testing.T) {
	check := FromError(func(values []string) error {
		if len(values) == 0 {
			return fmt.Errorf("choose something")
		}
		return nil
	})

	if v := check(nil); v.OK() || v.Message() != "choose something" {
		t.Errorf("verdict = %v, want failure with error text", v)
	}
	if !check([]string{"a"}).OK() {
		t.Error("non-empty selection should pass")
	}
}

func TestMinMaxSelected(t *testing.T) {
	tests := []struct {
		name    string
		fn      Func[string]
		values  []string
		wantOK  bool
		wantMsg string
	}{
		{"min met", MinSelected[string](1), []string{"a"}, true, ""},
		{"min singular", MinSelected[string](1), nil, false, "Select at least 1 item"},
		{"min plural", MinSelected[string](2), []string{"a"}, false, "Select at least 2 items"},
		{"max met", MaxSelected[string](2), []string{"a", "b"}, true, ""},
		{"max singular", MaxSelected[string](1), []string{"a", "b"}, false, "Select at most 1 item"},
		{"max plural", MaxSelected[string](2), []string{"a", "b", "c"}, false, "Select at most 2 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.fn(tt.values)
			if v.OK() != tt.wantOK {
				t.Errorf("OK() = %v, want %v", v.OK(), tt.wantOK)
			}
			if v.Message() != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", v.Message(), tt.wantMsg)
			}
		})
	}
}

func TestAll(t *testing.T) {
	fn := All[string](MinSelected[string](1), nil, MaxSelected[string](2), Always[string]())

	if v := fn(nil); v.Message() != "Select at least 1 item" {
		t.Errorf("empty: %v", v)
	}
	if v := fn([]string{"a", "b", "c"}); v.Message() != "Select at most 2 items" {
		t.Errorf("three: %v", v)
	}
	if !fn([]string{"a"}).OK() {
		t.Error("one value should pass")
	}
	if !All[string]()(nil).OK() {
		t.Error("All with no checks should pass")
	}
}
