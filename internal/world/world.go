// Package world is the composition root of the grocery room. It declares the
// fixed object set, registers it for interaction and owns the frame order:
// player movement, item gaze, spot gaze, then any commit from input.
package world

import (
	"fmt"

	"grocerysim/internal/components"
	"grocerysim/internal/engine"
	"grocerysim/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// InteractKey commits a pickup or placement.
const InteractKey = rl.KeyE

// Stats counts commits seen by the registered callbacks.
type Stats struct {
	Pickups    int
	Placements int
	Rejected   int
}

type World struct {
	Layout      Layout
	Scene       *engine.Scene
	Registry    *interact.Registry
	Coordinator *interact.Coordinator
	Player      *interact.Player
	Controller  *components.PlayerController
	Resolver    interact.Resolver
	Room        *engine.GameObject
	Spots       []interact.PickupSpot
	Items       []interact.GroceryItem
	Stats       Stats

	OnInteraction engine.EventWithArg[interact.Event]
	OnRejected    engine.EventWithArg[error]

	input components.Input
	frame uint64
}

// New builds the scene described by layout. input may be nil when commits
// are driven only through Interact.
func New(layout Layout, input components.Input) (*World, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("world %q: %w", layout.Name, err)
	}

	w := &World{
		Layout:   layout,
		Scene:    engine.NewScene(layout.Name),
		Registry: interact.NewRegistry(),
		Resolver: interact.Resolver{ConeHalfAngle: layout.Gaze.ConeHalfAngle},
		input:    input,
	}

	w.Room = engine.NewGameObject("room")
	w.Scene.AddGameObject(w.Room)

	playerObj := engine.NewGameObject("player")
	playerObj.Transform.Position = layout.Player.Position.Vector3()
	w.Controller = components.NewPlayerController(input)
	w.Controller.Yaw = layout.Player.Yaw
	if layout.Player.EyeHeight > 0 {
		w.Controller.EyeHeight = layout.Player.EyeHeight
	}
	if layout.Player.MoveSpeed > 0 {
		w.Controller.MoveSpeed = layout.Player.MoveSpeed
	}
	w.Controller.RoomHalfExtent = layout.Room.HalfExtent
	playerObj.AddComponent(w.Controller)
	w.Scene.AddGameObject(playerObj)

	w.Player = interact.NewPlayer(playerObj)
	w.Player.CarryLimit = layout.Player.CarryLimit
	w.Coordinator = interact.NewCoordinator(w.Scene, w.Registry, w.Player)

	spotsByName := make(map[string]interact.PickupSpot, len(layout.Spots))
	for _, def := range layout.Spots {
		obj := engine.NewGameObject(def.Name)
		obj.Transform.Position = def.Position.Vector3()
		w.Scene.AddGameObject(obj)

		spot, err := w.Registry.RegisterSpot(obj, def.Radius, w.onPlaced)
		if err != nil {
			return nil, fmt.Errorf("world %q: %w", layout.Name, err)
		}
		w.Spots = append(w.Spots, spot)
		spotsByName[def.Name] = spot
	}

	for _, def := range layout.Items {
		obj := engine.NewGameObject(def.Name)
		obj.Transform.Position = def.Position.Vector3()
		w.Scene.AddGameObject(obj)

		item, err := w.Registry.RegisterItem(obj, def.Radius, def.Weight, w.onPickedUp)
		if err != nil {
			return nil, fmt.Errorf("world %q: %w", layout.Name, err)
		}
		w.Items = append(w.Items, item)

		if def.Spot != "" {
			if _, err := w.Coordinator.Stage(item.UID(), spotsByName[def.Spot].UID()); err != nil {
				return nil, fmt.Errorf("world %q: %w", layout.Name, err)
			}
		}
	}

	w.Scene.Start()
	return w, nil
}

func (w *World) onPickedUp(item *engine.GameObject) { w.Stats.Pickups++ }

func (w *World) onPlaced(item *engine.GameObject) { w.Stats.Placements++ }

// Update runs one frame. Gaze is fully resolved before the interact key is
// read, so a commit always sees this frame's targets.
func (w *World) Update(deltaTime float32) {
	w.frame++
	w.Scene.Update(deltaTime)
	w.ResolveGaze()

	if w.input != nil && w.input.KeyPressed(InteractKey) {
		w.Interact()
	}
}

// ResolveGaze recomputes the player's item and spot targets.
func (w *World) ResolveGaze() {
	eye := w.Controller.GetEyePosition()
	look := w.Controller.GetLookDirection()

	var itemUID, spotUID engine.UID
	if item, ok := interact.Resolve(w.Resolver, eye, look, w.Registry.QueryCandidates(interact.KindItem)); ok {
		itemUID = item.UID()
	}
	if spot, ok := interact.Resolve(w.Resolver, eye, look, w.Registry.QueryCandidates(interact.KindSpot)); ok {
		spotUID = spot.UID()
	}
	w.Player.SetGaze(itemUID, spotUID)
}

// Interact commits against the stored gaze: placement while holding an item
// and looking at a spot, otherwise pickup of the gazed item.
func (w *World) Interact() (interact.Event, error) {
	p := w.Player
	var (
		ev  interact.Event
		err error
	)
	switch {
	case p.Held.IsValid() && p.GazedSpot.IsValid():
		ev, err = w.Coordinator.CommitPlacement(p.Held.UID, p.GazedSpot.UID)
	case p.GazedItem.IsValid():
		ev, err = w.Coordinator.CommitPickup(p.GazedItem.UID)
	case p.Held.IsValid():
		ev, err = w.Coordinator.CommitPlacement(p.Held.UID, 0)
	default:
		ev, err = w.Coordinator.CommitPickup(0)
	}

	if err != nil {
		w.Stats.Rejected++
		w.OnRejected.Invoke(err)
		return interact.Event{}, err
	}
	w.OnInteraction.Invoke(ev)
	return ev, nil
}

// Prompt is the action the interact key would take this frame.
func (w *World) Prompt() string {
	p := w.Player
	if held := p.Held.Get(w.Scene); held != nil {
		if spot := p.GazedSpot.Get(w.Scene); spot != nil {
			return fmt.Sprintf("[E] place %s on %s", held.Name, spot.Name)
		}
		return fmt.Sprintf("holding %s", held.Name)
	}
	if item := p.GazedItem.Get(w.Scene); item != nil {
		return fmt.Sprintf("[E] pick up %s", item.Name)
	}
	return ""
}

func (w *World) Frame() uint64 { return w.frame }

func (w *World) Spot(name string) (interact.PickupSpot, bool) {
	for _, s := range w.Spots {
		if s.Object().Name == name {
			return s, true
		}
	}
	return interact.PickupSpot{}, false
}

func (w *World) Item(name string) (interact.GroceryItem, bool) {
	for _, it := range w.Items {
		if it.Object().Name == name {
			return it, true
		}
	}
	return interact.GroceryItem{}, false
}
