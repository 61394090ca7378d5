package hud

import (
	"fmt"
	"testing"

	"grocerysim/internal/interact"
)

func TestHintHoldsThenFades(t *testing.T) {
	h := NewHint()
	h.Hold = 1
	h.Fade = 0.5

	h.Show("That spot is taken")
	if !h.Visible() || h.Alpha != 1 {
		t.Fatalf("Expected visible hint at full alpha, got alpha %v", h.Alpha)
	}

	h.Update(0.5)
	if h.Alpha != 1 {
		t.Errorf("Expected full alpha during hold, got %v", h.Alpha)
	}

	h.Update(0.75)
	if h.Alpha <= 0 || h.Alpha >= 1 {
		t.Errorf("Expected partial alpha while fading, got %v", h.Alpha)
	}

	h.Update(1)
	if h.Visible() {
		t.Error("Hint should be hidden after fading out")
	}
	if h.Text != "" {
		t.Errorf("Expected text cleared, got '%s'", h.Text)
	}
}

func TestHintShowRestarts(t *testing.T) {
	h := NewHint()
	h.Show("first")
	h.Update(h.Hold + h.Fade/2)

	h.Show("second")
	if h.Text != "second" || h.Alpha != 1 {
		t.Errorf("Show should restart at full alpha, got '%s' at %v", h.Text, h.Alpha)
	}
}

func TestHintIdleUpdate(t *testing.T) {
	h := NewHint()
	h.Update(1)
	if h.Visible() {
		t.Error("Idle hint should stay hidden")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("pickup: %w", interact.ErrMissingTarget), "Nothing to interact with"},
		{fmt.Errorf("place: %w", interact.ErrSpotOccupied), "That spot is taken"},
		{fmt.Errorf("pickup: %w", interact.ErrHandsFull), "Your hands are full"},
		{fmt.Errorf("pickup: %w", interact.ErrTooHeavy), "Too heavy to carry"},
		{fmt.Errorf("pickup: %w", interact.ErrInvalidInteractionState), "Can't do that here"},
		{fmt.Errorf("pickup: %w", interact.ErrNotRegistered), "Can't do that here"},
		{fmt.Errorf("boom"), "Something went wrong"},
	}

	for _, tt := range tests {
		if got := Describe(tt.err); got != tt.want {
			t.Errorf("Describe(%v): expected '%s', got '%s'", tt.err, tt.want, got)
		}
	}
}
