package logging

import "testing"

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus", ""} {
		if l := New(level); l == nil || l.Logger == nil {
			t.Fatalf("New(%q) returned nil logger", level)
		}
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default returned nil")
	}
}

func TestNamed(t *testing.T) {
	l := Default().Named("booking")
	if l == nil || l.Logger == nil {
		t.Fatal("Named returned nil logger")
	}
}
