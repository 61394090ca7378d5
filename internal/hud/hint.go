// Package hud holds the on-screen text state: the interaction prompt and a
// transient hint that fades out after a rejected commit.
package hud

import (
	"errors"

	"grocerysim/internal/interact"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	DefaultHold = 1.0
	DefaultFade = 0.6
)

// Hint is a short message shown at full alpha for Hold seconds and then
// faded to zero over Fade seconds.
type Hint struct {
	Text  string
	Alpha float32
	Hold  float32
	Fade  float32

	held  float32
	tween *gween.Tween
}

func NewHint() *Hint {
	return &Hint{Hold: DefaultHold, Fade: DefaultFade}
}

// Show replaces the current message and restarts the timer.
func (h *Hint) Show(text string) {
	h.Text = text
	h.Alpha = 1
	h.held = 0
	h.tween = gween.New(1, 0, h.Fade, ease.OutQuad)
}

func (h *Hint) Update(dt float32) {
	if h.tween == nil {
		return
	}
	if h.held < h.Hold {
		h.held += dt
		if h.held < h.Hold {
			return
		}
		dt = h.held - h.Hold
	}
	alpha, done := h.tween.Update(dt)
	h.Alpha = alpha
	if done {
		h.Alpha = 0
		h.Text = ""
		h.tween = nil
	}
}

func (h *Hint) Visible() bool {
	return h.Text != "" && h.Alpha > 0
}

// Describe turns a rejected commit into player-facing text.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, interact.ErrMissingTarget):
		return "Nothing to interact with"
	case errors.Is(err, interact.ErrSpotOccupied):
		return "That spot is taken"
	case errors.Is(err, interact.ErrHandsFull):
		return "Your hands are full"
	case errors.Is(err, interact.ErrTooHeavy):
		return "Too heavy to carry"
	case errors.Is(err, interact.ErrInvalidInteractionState):
		return "Can't do that here"
	}
	return "Something went wrong"
}
