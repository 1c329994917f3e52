package testutil

import (
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/choice"
)

func TestLoadValidSettings(t *testing.T) {
	s, err := ValidSettings()
	if err != nil {
		t.Fatalf("ValidSettings() error: %v", err)
	}

	if s.MaxHeight != 10 {
		t.Errorf("MaxHeight = %d, want 10", s.MaxHeight)
	}
	if _, ok := s.Style["answer"]; !ok {
		t.Error("Style should contain answer")
	}
	if len(s.Keys["down"]) != 3 {
		t.Errorf("Keys[down] = %v, want 3 keys", s.Keys["down"])
	}

	// Validate should pass
	if err := s.Validate(); err != nil {
		t.Errorf("Valid settings should pass validation: %v", err)
	}
}

func TestLoadInvalidSettings(t *testing.T) {
	s, err := InvalidSettings()
	if err != nil {
		t.Fatalf("InvalidSettings() error: %v", err)
	}

	// Validate should fail
	if err := s.Validate(); err == nil {
		t.Error("Invalid settings should fail validation")
	}
}

func TestLoadValidPrompt(t *testing.T) {
	def, err := ValidPrompt()
	if err != nil {
		t.Fatalf("ValidPrompt() error: %v", err)
	}

	if def.Message != "Select toppings" {
		t.Errorf("Message = %q, want %q", def.Message, "Select toppings")
	}
	if len(def.Choices) != 6 {
		t.Errorf("len(Choices) = %d, want 6", len(def.Choices))
	}

	items, err := def.BuildChoices()
	if err != nil {
		t.Fatalf("BuildChoices() error: %v", err)
	}
	if !choice.IsSeparator(items[2]) {
		t.Error("third choice should be a separator")
	}

	if err := def.Validate(); err != nil {
		t.Errorf("Valid prompt should pass validation: %v", err)
	}
}

func TestLoadInvalidPrompt(t *testing.T) {
	def, err := InvalidPrompt()
	if err != nil {
		t.Fatalf("InvalidPrompt() error: %v", err)
	}

	if err := def.Validate(); err == nil {
		t.Error("Invalid prompt should fail validation")
	}
}

func TestLoadFixture_NotFound(t *testing.T) {
	_, err := LoadFixture("nonexistent.toml")
	if err == nil {
		t.Error("LoadFixture should fail for nonexistent file")
	}
}
