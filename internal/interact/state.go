package interact

import (
	"fmt"

	"grocerysim/internal/engine"
)

// Relation is the owner of an item. Exactly one holds at any time.
type Relation int

const (
	Free Relation = iota
	HeldByPlayer
	PlacedAtSpot
)

func (r Relation) String() string {
	switch r {
	case Free:
		return "free"
	case HeldByPlayer:
		return "held by player"
	case PlacedAtSpot:
		return "placed at spot"
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// State is an item's relation plus the owning spot when PlacedAtSpot.
type State struct {
	Relation Relation
	Spot     engine.UID
}

func (s State) String() string {
	if s.Relation == PlacedAtSpot {
		return fmt.Sprintf("%s %d", s.Relation, s.Spot)
	}
	return s.Relation.String()
}

type CommandKind int

const (
	CmdPickup CommandKind = iota + 1
	CmdPlace
	// CmdStage seats a free item on a spot during scene construction.
	CmdStage
)

type Command struct {
	Kind CommandKind
	Spot engine.UID
}

// Transition applies cmd to s. It is a pure function; the Coordinator
// commits the returned state to the scene.
//
//	Free ──pickup──▶ HeldByPlayer ──place──▶ PlacedAtSpot ──pickup──▶ HeldByPlayer
//	Free ──stage───▶ PlacedAtSpot
func Transition(s State, cmd Command) (State, error) {
	switch cmd.Kind {
	case CmdPickup:
		if s.Relation == Free || s.Relation == PlacedAtSpot {
			return State{Relation: HeldByPlayer}, nil
		}
	case CmdPlace:
		if s.Relation == HeldByPlayer && cmd.Spot != 0 {
			return State{Relation: PlacedAtSpot, Spot: cmd.Spot}, nil
		}
	case CmdStage:
		if s.Relation == Free && cmd.Spot != 0 {
			return State{Relation: PlacedAtSpot, Spot: cmd.Spot}, nil
		}
	default:
		return s, fmt.Errorf("unknown command %d: %w", cmd.Kind, ErrInvalidInteractionState)
	}
	return s, fmt.Errorf("%s: cannot apply command %d: %w", s, cmd.Kind, ErrInvalidInteractionState)
}
