package components

import rl "github.com/gen2brain/raylib-go/raylib"

// Input is the slice of the user-interface context the player reads each
// frame.
type Input interface {
	MouseDelta() rl.Vector2
	KeyDown(key int32) bool
	KeyPressed(key int32) bool
}

// RaylibInput reads the raylib window's keyboard and mouse.
type RaylibInput struct{}

func (RaylibInput) MouseDelta() rl.Vector2 { return rl.GetMouseDelta() }

func (RaylibInput) KeyDown(key int32) bool { return rl.IsKeyDown(key) }

func (RaylibInput) KeyPressed(key int32) bool { return rl.IsKeyPressed(key) }
