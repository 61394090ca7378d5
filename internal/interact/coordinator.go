package interact

import (
	"fmt"

	"grocerysim/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Local transform applied to an item when it attaches to a new owner.
var (
	AttachOffset = rl.Vector3{X: 0, Y: 1, Z: 0}
	AttachScale  = float32(1)
)

type EventKind int

const (
	PickedUp EventKind = iota + 1
	Placed
	Staged
)

func (k EventKind) String() string {
	switch k {
	case PickedUp:
		return "picked up"
	case Placed:
		return "placed"
	case Staged:
		return "staged"
	}
	return "unknown"
}

// Event describes a committed transition.
type Event struct {
	Kind EventKind
	Item *engine.GameObject
	From State
	To   State
}

// Coordinator executes pickup and placement commits. Every check runs before
// the first write, so a rejected commit leaves the scene as it was.
type Coordinator struct {
	scene    *engine.Scene
	registry *Registry
	player   *Player
}

func NewCoordinator(scene *engine.Scene, registry *Registry, player *Player) *Coordinator {
	return &Coordinator{scene: scene, registry: registry, player: player}
}

func (c *Coordinator) Player() *Player { return c.player }

// StateOf derives item's relation from its parent field.
func (c *Coordinator) StateOf(item engine.UID) (State, error) {
	obj := c.scene.FindByUID(item)
	if obj == nil {
		return State{}, fmt.Errorf("state of %d: %w", item, engine.ErrUnknownObject)
	}
	switch {
	case obj.Parent == 0:
		return State{Relation: Free}, nil
	case c.player != nil && c.player.Object != nil && obj.Parent == c.player.Object.UID:
		return State{Relation: HeldByPlayer}, nil
	}
	if e, ok := c.registry.Lookup(obj.Parent); ok && e.kind == KindSpot {
		return State{Relation: PlacedAtSpot, Spot: obj.Parent}, nil
	}
	return State{Relation: Free}, nil
}

func (c *Coordinator) lookupKind(uid engine.UID, kind Kind) (*Entry, error) {
	e, ok := c.registry.Lookup(uid)
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", kind, uid, ErrNotRegistered)
	}
	if e.kind != kind {
		return nil, fmt.Errorf("%q is a %s, not a %s: %w", e.object.Name, e.kind, kind, ErrInvalidInteractionState)
	}
	return e, nil
}

// CommitPickup moves the gazed item into the player's hands.
func (c *Coordinator) CommitPickup(item engine.UID) (Event, error) {
	p := c.player
	if !p.GazedItem.IsValid() {
		return Event{}, fmt.Errorf("pickup: %w", ErrMissingTarget)
	}
	e, err := c.lookupKind(item, KindItem)
	if err != nil {
		return Event{}, fmt.Errorf("pickup: %w", err)
	}
	name := e.object.Name
	if !p.GazedItem.Is(item) {
		return Event{}, fmt.Errorf("pickup %q: not the gaze target: %w", name, ErrInvalidInteractionState)
	}
	if p.Held.IsValid() {
		return Event{}, fmt.Errorf("pickup %q: already holding %d: %w", name, p.Held.UID, ErrHandsFull)
	}
	if !p.CanCarry(GroceryItem{e}) {
		return Event{}, fmt.Errorf("pickup %q: weight %v over limit %v: %w", name, e.weight, p.CarryLimit, ErrTooHeavy)
	}

	from, err := c.StateOf(item)
	if err != nil {
		return Event{}, err
	}
	to, err := Transition(from, Command{Kind: CmdPickup})
	if err != nil {
		return Event{}, fmt.Errorf("pickup %q: %w", name, err)
	}

	if err := c.scene.Reparent(item, p.Object.UID); err != nil {
		return Event{}, fmt.Errorf("pickup %q: %w", name, err)
	}
	if from.Relation == PlacedAtSpot {
		if spot, ok := c.registry.Lookup(from.Spot); ok {
			spot.occupant.Clear()
		}
	}
	e.object.Transform.ResetTo(AttachOffset, AttachScale)
	e.enabled = false
	e.held = true
	p.Held.UID = item
	p.GazedItem.Clear()

	if e.onInteract != nil {
		e.onInteract(e.object)
	}
	return Event{Kind: PickedUp, Item: e.object, From: from, To: to}, nil
}

// CommitPlacement moves the held item onto the gazed spot.
func (c *Coordinator) CommitPlacement(item, spot engine.UID) (Event, error) {
	p := c.player
	if !p.GazedSpot.IsValid() {
		return Event{}, fmt.Errorf("place: %w", ErrMissingTarget)
	}
	e, err := c.lookupKind(item, KindItem)
	if err != nil {
		return Event{}, fmt.Errorf("place: %w", err)
	}
	s, err := c.lookupKind(spot, KindSpot)
	if err != nil {
		return Event{}, fmt.Errorf("place %q: %w", e.object.Name, err)
	}
	name := e.object.Name
	if !p.GazedSpot.Is(spot) {
		return Event{}, fmt.Errorf("place %q on %q: not the gaze target: %w", name, s.object.Name, ErrInvalidInteractionState)
	}
	if !p.Held.Is(item) {
		return Event{}, fmt.Errorf("place %q: not held by player: %w", name, ErrInvalidInteractionState)
	}
	if s.Occupied() {
		return Event{}, fmt.Errorf("place %q on %q: spot holds %d: %w", name, s.object.Name, s.occupant.UID, ErrSpotOccupied)
	}

	from, err := c.StateOf(item)
	if err != nil {
		return Event{}, err
	}
	to, err := Transition(from, Command{Kind: CmdPlace, Spot: spot})
	if err != nil {
		return Event{}, fmt.Errorf("place %q: %w", name, err)
	}

	if err := c.attach(e, s); err != nil {
		return Event{}, fmt.Errorf("place %q: %w", name, err)
	}
	p.Held.Clear()

	if s.onInteract != nil {
		s.onInteract(e.object)
	}
	return Event{Kind: Placed, Item: e.object, From: from, To: to}, nil
}

// Stage seats a free item on an empty spot without gaze checks. It is meant
// for scene construction.
func (c *Coordinator) Stage(item, spot engine.UID) (Event, error) {
	e, err := c.lookupKind(item, KindItem)
	if err != nil {
		return Event{}, fmt.Errorf("stage: %w", err)
	}
	s, err := c.lookupKind(spot, KindSpot)
	if err != nil {
		return Event{}, fmt.Errorf("stage %q: %w", e.object.Name, err)
	}
	if s.Occupied() {
		return Event{}, fmt.Errorf("stage %q on %q: spot holds %d: %w", e.object.Name, s.object.Name, s.occupant.UID, ErrSpotOccupied)
	}
	from, err := c.StateOf(item)
	if err != nil {
		return Event{}, err
	}
	to, err := Transition(from, Command{Kind: CmdStage, Spot: spot})
	if err != nil {
		return Event{}, fmt.Errorf("stage %q: %w", e.object.Name, err)
	}
	if err := c.attach(e, s); err != nil {
		return Event{}, fmt.Errorf("stage %q: %w", e.object.Name, err)
	}
	return Event{Kind: Staged, Item: e.object, From: from, To: to}, nil
}

func (c *Coordinator) attach(item, spot *Entry) error {
	if err := c.scene.Reparent(item.UID(), spot.UID()); err != nil {
		return err
	}
	item.object.Transform.ResetTo(AttachOffset, AttachScale)
	item.enabled = true
	item.held = false
	spot.occupant.UID = item.UID()
	return nil
}
