package interact

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRegistration is a setup error: an object was registered
	// twice. Scene construction aborts on it.
	ErrDuplicateRegistration = errors.New("interactable already registered")

	// ErrInvalidInteractionState reports a commit that would break an
	// ownership rule. The commit is dropped and no state changes.
	ErrInvalidInteractionState = errors.New("invalid interaction state")

	// ErrMissingTarget reports a commit with no resolved gaze target.
	ErrMissingTarget = errors.New("no gaze target")

	ErrInvalidRadius = errors.New("interaction radius must be positive")
)

// Specific reasons. Each matches ErrInvalidInteractionState under errors.Is.
var (
	ErrSpotOccupied = fmt.Errorf("spot occupied: %w", ErrInvalidInteractionState)
	ErrHandsFull    = fmt.Errorf("hands full: %w", ErrInvalidInteractionState)
	ErrTooHeavy     = fmt.Errorf("too heavy: %w", ErrInvalidInteractionState)
	ErrItemHeld     = fmt.Errorf("item held by player: %w", ErrInvalidInteractionState)

	// ErrNotRegistered also covers a commit against a target removed since
	// the last gaze pass.
	ErrNotRegistered = fmt.Errorf("interactable not registered: %w", ErrInvalidInteractionState)
)
