package gpio

import (
	"errors"
	"testing"
)

func TestFakeLampRecordsTransitions(t *testing.T) {
	lamp := NewFakeLamp()

	if err := lamp.Set(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := lamp.Set(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lamp.On {
		t.Error("lamp should be off after the last Set")
	}
	if len(lamp.Transitions) != 2 || !lamp.Transitions[0] || lamp.Transitions[1] {
		t.Errorf("transitions: got %v, want [true false]", lamp.Transitions)
	}
}

func TestFakeLampSetError(t *testing.T) {
	lamp := NewFakeLamp()
	lamp.SetError = errors.New("line gone")

	if err := lamp.Set(true); err == nil {
		t.Error("expected injected error")
	}
	if len(lamp.Transitions) != 0 {
		t.Error("failed Set must not record a transition")
	}
}

func TestFakeLampClose(t *testing.T) {
	lamp := NewFakeLamp()
	lamp.Set(true)

	if err := lamp.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lamp.On || !lamp.Closed {
		t.Error("Close should switch the lamp off and mark it closed")
	}
}
