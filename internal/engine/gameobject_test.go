package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.Parent != 0 {
		t.Errorf("New object should sit at the root, got parent %d", obj.Parent)
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}

	if comp.GetGameObject() != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	obj.Start()
}

func TestWorldPositionFollowsParent(t *testing.T) {
	scene := NewScene("Test")
	spot := NewGameObject("Spot")
	item := NewGameObject("Item")
	scene.AddGameObject(spot)
	scene.AddGameObject(item)

	spot.Transform.Position = rl.Vector3{X: 20, Y: 2, Z: 0}
	item.Transform.Position = rl.Vector3{X: 0, Y: 1, Z: 0}

	if err := scene.Reparent(item.UID, spot.UID); err != nil {
		t.Fatalf("Reparent failed: %v", err)
	}

	got := item.WorldPosition()
	want := rl.Vector3{X: 20, Y: 3, Z: 0}
	if got != want {
		t.Errorf("Expected world position %v, got %v", want, got)
	}
}

func TestWorldScaleMultiplies(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	scene.AddGameObject(parent)
	scene.AddGameObject(child)

	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	child.Transform.ResetTo(rl.Vector3{X: 0, Y: 1, Z: 0}, 1)
	scene.Reparent(child.UID, parent.UID)

	if got := child.WorldScale(); got != (rl.Vector3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("Expected world scale 2, got %v", got)
	}
	if got := child.WorldPosition(); got != (rl.Vector3{X: 0, Y: 2, Z: 0}) {
		t.Errorf("Expected scaled offset (0,2,0), got %v", got)
	}
}
