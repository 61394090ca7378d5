package interact

import (
	"errors"
	"testing"

	"grocerysim/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fixture struct {
	scene  *engine.Scene
	reg    *Registry
	player *Player
	coord  *Coordinator
}

func newFixture() *fixture {
	scene := engine.NewScene("Test")
	playerObj := engine.NewGameObject("Player")
	scene.AddGameObject(playerObj)
	reg := NewRegistry()
	player := NewPlayer(playerObj)
	return &fixture{
		scene:  scene,
		reg:    reg,
		player: player,
		coord:  NewCoordinator(scene, reg, player),
	}
}

func (f *fixture) addSpot(t *testing.T, name string, pos rl.Vector3, radius float32) PickupSpot {
	t.Helper()
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	f.scene.AddGameObject(obj)
	spot, err := f.reg.RegisterSpot(obj, radius, nil)
	if err != nil {
		t.Fatalf("RegisterSpot(%s) failed: %v", name, err)
	}
	return spot
}

func (f *fixture) addItem(t *testing.T, name string, pos rl.Vector3, radius, weight float32) GroceryItem {
	t.Helper()
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	f.scene.AddGameObject(obj)
	item, err := f.reg.RegisterItem(obj, radius, weight, nil)
	if err != nil {
		t.Fatalf("RegisterItem(%s) failed: %v", name, err)
	}
	return item
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	obj := engine.NewGameObject("Red")

	if _, err := reg.Register(obj, KindSpot, 5, nil); err != nil {
		t.Fatalf("First Register failed: %v", err)
	}

	_, err := reg.Register(obj, KindSpot, 5, nil)
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Errorf("Expected ErrDuplicateRegistration, got %v", err)
	}

	_, err = reg.RegisterItem(obj, 5, 1, nil)
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Errorf("Expected ErrDuplicateRegistration across kinds, got %v", err)
	}

	if reg.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", reg.Len())
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	reg := NewRegistry()

	for _, radius := range []float32{0, -1} {
		_, err := reg.Register(engine.NewGameObject("Spot"), KindSpot, radius, nil)
		if !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %v: expected ErrInvalidRadius, got %v", radius, err)
		}
	}

	if _, err := reg.Register(engine.NewGameObject("Thing"), Kind(42), 1, nil); err == nil {
		t.Error("Expected error for unknown kind")
	}
	if _, err := reg.Register(nil, KindItem, 1, nil); err == nil {
		t.Error("Expected error for nil object")
	}
	if _, err := reg.RegisterItem(engine.NewGameObject("Lead"), 1, -3, nil); err == nil {
		t.Error("Expected error for negative weight")
	}
	if reg.Len() != 0 {
		t.Errorf("Failed registrations should not add entries, got %d", reg.Len())
	}
}

func TestQueryCandidatesOrderAndKind(t *testing.T) {
	f := newFixture()
	red := f.addSpot(t, "Red", rl.Vector3{X: -20, Y: 2}, 5)
	milk := f.addItem(t, "Milk", rl.Vector3{}, 5, 1)
	green := f.addSpot(t, "Green", rl.Vector3{X: 20, Y: 2}, 5)

	spots := f.reg.QueryCandidates(KindSpot)
	if len(spots) != 2 || spots[0] != red.Entry || spots[1] != green.Entry {
		t.Errorf("Expected spots [Red Green], got %v", spots)
	}

	items := f.reg.QueryCandidates(KindItem)
	if len(items) != 1 || items[0] != milk.Entry {
		t.Errorf("Expected items [Milk], got %v", items)
	}

	if red.Order() >= milk.Order() || milk.Order() >= green.Order() {
		t.Error("Order should follow registration sequence")
	}
}

func TestUnregister(t *testing.T) {
	f := newFixture()
	spot := f.addSpot(t, "Green", rl.Vector3{X: 20, Y: 2}, 5)
	item := f.addItem(t, "PeanutButter", rl.Vector3{}, 5, 1)

	if _, err := f.coord.Stage(item.UID(), spot.UID()); err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	if err := f.reg.Unregister(spot.UID()); !errors.Is(err, ErrInvalidInteractionState) {
		t.Errorf("Expected ErrInvalidInteractionState for occupied spot, got %v", err)
	}

	if err := f.reg.Unregister(item.UID()); err != nil {
		t.Fatalf("Unregister item failed: %v", err)
	}
	if spot.Occupied() {
		t.Error("Removing the item should free its spot")
	}

	if err := f.reg.Unregister(spot.UID()); err != nil {
		t.Errorf("Unregister empty spot failed: %v", err)
	}
	if err := f.reg.Unregister(spot.UID()); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Expected ErrNotRegistered, got %v", err)
	}
	if f.reg.Len() != 0 {
		t.Errorf("Expected empty registry, got %d", f.reg.Len())
	}
}

func TestUnregisterHeldItem(t *testing.T) {
	f := newFixture()
	milk := f.addItem(t, "Milk", rl.Vector3{X: 1}, 5, 1)
	eggs := f.addItem(t, "Eggs", rl.Vector3{X: 2}, 5, 1)

	f.player.SetGaze(milk.UID(), 0)
	if _, err := f.coord.CommitPickup(milk.UID()); err != nil {
		t.Fatalf("CommitPickup failed: %v", err)
	}
	if !milk.Held() {
		t.Fatal("Picked up item should report Held")
	}

	err := f.reg.Unregister(milk.UID())
	if !errors.Is(err, ErrItemHeld) || !errors.Is(err, ErrInvalidInteractionState) {
		t.Errorf("Expected ErrItemHeld, got %v", err)
	}
	if _, ok := f.reg.Lookup(milk.UID()); !ok {
		t.Error("Held item should stay registered")
	}

	spot := f.addSpot(t, "Red", rl.Vector3{X: 4}, 5)
	f.player.SetGaze(0, spot.UID())
	if _, err := f.coord.CommitPlacement(milk.UID(), spot.UID()); err != nil {
		t.Fatalf("CommitPlacement failed: %v", err)
	}
	if milk.Held() {
		t.Error("Placed item should not report Held")
	}

	f.player.SetGaze(eggs.UID(), 0)
	if _, err := f.coord.CommitPickup(eggs.UID()); err != nil {
		t.Errorf("Player should be able to pick up again, got %v", err)
	}
	checkOwnership(t, f)
}

func TestSpotHolding(t *testing.T) {
	f := newFixture()
	spot := f.addSpot(t, "Blue", rl.Vector3{X: 20, Y: 2, Z: 2}, 5)
	item := f.addItem(t, "RedWine", rl.Vector3{}, 5, 1)

	if _, ok := f.reg.SpotHolding(item.UID()); ok {
		t.Error("Free item should not be held by any spot")
	}

	if _, err := f.coord.Stage(item.UID(), spot.UID()); err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	got, ok := f.reg.SpotHolding(item.UID())
	if !ok || got.Entry != spot.Entry {
		t.Error("SpotHolding should return the staging spot")
	}
}
