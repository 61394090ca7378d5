package camera

import (
	"grocerysim/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mode selects which view the front end renders.
type Mode int

const (
	FirstPerson Mode = iota
	Overview
)

// Rig builds the raylib camera for the current frame.
type Rig struct {
	Mode Mode
	Look engine.LookProvider
	Fovy float32

	// Overview placement, looking down at the room.
	OverviewPosition rl.Vector3
	OverviewTarget   rl.Vector3
	OverviewFovy     float32
}

func New(look engine.LookProvider) *Rig {
	return &Rig{
		Mode:             FirstPerson,
		Look:             look,
		Fovy:             60,
		OverviewPosition: rl.Vector3{X: 0, Y: 40, Z: 0},
		OverviewFovy:     90,
	}
}

func (r *Rig) Toggle() {
	if r.Mode == FirstPerson {
		r.Mode = Overview
	} else {
		r.Mode = FirstPerson
	}
}

func (r *Rig) GetRaylibCamera() rl.Camera3D {
	if r.Mode == Overview || r.Look == nil {
		// Straight down needs a horizontal up vector.
		return rl.Camera3D{
			Position:   r.OverviewPosition,
			Target:     r.OverviewTarget,
			Up:         rl.Vector3{X: 0, Y: 0, Z: -1},
			Fovy:       r.OverviewFovy,
			Projection: rl.CameraPerspective,
		}
	}

	eye := r.Look.GetEyePosition()
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, r.Look.GetLookDirection()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       r.Fovy,
		Projection: rl.CameraPerspective,
	}
}
