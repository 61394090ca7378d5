// Package interact implements gaze targeting and the pickup/placement state
// machine for grocery items and pickup spots.
//
// A frame runs in two phases. The gaze pass resolves at most one item and
// one spot for the player and stores them on Player. Commits then run
// against that stored target through the Coordinator, which is the only
// code that changes an item's parent or a spot's occupant.
package interact

import (
	"grocerysim/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Kind int

const (
	KindItem Kind = iota + 1
	KindSpot
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindSpot:
		return "spot"
	}
	return "unknown"
}

// Callback runs after a successful commit with the item that moved.
type Callback func(item *engine.GameObject)

type Positionable interface {
	WorldPosition() rl.Vector3
}

// Interactable is anything the gaze pass can target.
type Interactable interface {
	Positionable
	UID() engine.UID
	Kind() Kind
	Radius() float32
	Order() uint64
}

// Holdable is an interactable the player can carry.
type Holdable interface {
	Interactable
	Weight() float32
}

// Entry is the registry record for one interactable.
type Entry struct {
	object     *engine.GameObject
	kind       Kind
	radius     float32
	weight     float32
	onInteract Callback
	occupant   engine.GameObjectRef
	enabled    bool
	held       bool
	seq        uint64
}

func (e *Entry) UID() engine.UID            { return e.object.UID }
func (e *Entry) Object() *engine.GameObject { return e.object }
func (e *Entry) Kind() Kind                 { return e.kind }
func (e *Entry) Radius() float32            { return e.radius }
func (e *Entry) Weight() float32            { return e.weight }
func (e *Entry) Order() uint64              { return e.seq }

// Enabled reports whether the entry is offered to the gaze pass. Items are
// disabled while the player carries them.
func (e *Entry) Enabled() bool { return e.enabled }

// Held reports whether the item is in the player's hands.
func (e *Entry) Held() bool { return e.held }

// Occupant returns the item a spot holds, or 0.
func (e *Entry) Occupant() engine.UID { return e.occupant.UID }

func (e *Entry) Occupied() bool { return e.occupant.IsValid() }

func (e *Entry) WorldPosition() rl.Vector3 {
	return e.object.WorldPosition()
}

// GroceryItem is an entry of KindItem.
type GroceryItem struct {
	*Entry
}

// PickupSpot is an entry of KindSpot. It holds at most one item at a fixed
// local offset.
type PickupSpot struct {
	*Entry
}

var (
	_ Holdable     = GroceryItem{}
	_ Interactable = PickupSpot{}
)

// Player is the per-frame interaction state of the player. Gaze fields are
// overwritten every frame; Held persists until a placement.
type Player struct {
	Object     *engine.GameObject
	CarryLimit float32 // 0 means no limit
	Held       engine.GameObjectRef
	GazedItem  engine.GameObjectRef
	GazedSpot  engine.GameObjectRef
}

func NewPlayer(obj *engine.GameObject) *Player {
	return &Player{Object: obj}
}

// CanCarry reports whether h is within the carry limit.
func (p *Player) CanCarry(h Holdable) bool {
	return p.CarryLimit <= 0 || h.Weight() <= p.CarryLimit
}

// SetGaze stores this frame's targets. Zero clears a slot.
func (p *Player) SetGaze(item, spot engine.UID) {
	p.GazedItem.UID = item
	p.GazedSpot.UID = spot
}
