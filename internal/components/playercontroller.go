package components

import (
	"math"

	"grocerysim/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerController turns mouse and WASD input into a yaw/pitch look and
// horizontal movement inside the room.
type PlayerController struct {
	engine.BaseComponent
	Input     Input
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	EyeHeight float32
	// RoomHalfExtent clamps X and Z to [-h, h]. Zero disables the clamp.
	RoomHalfExtent float32
}

func NewPlayerController(input Input) *PlayerController {
	return &PlayerController{
		Input:     input,
		Yaw:       0,
		Pitch:     0,
		MoveSpeed: 8.0,
		LookSpeed: 0.1,
		EyeHeight: 2.0,
	}
}

func (p *PlayerController) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || p.Input == nil {
		return
	}

	mouseDelta := p.Input.MouseDelta()
	p.Yaw += mouseDelta.X * p.LookSpeed
	p.Pitch -= mouseDelta.Y * p.LookSpeed

	if p.Pitch > 89 {
		p.Pitch = 89
	}
	if p.Pitch < -89 {
		p.Pitch = -89
	}

	forward, right := p.getDirections()

	var moveDir rl.Vector3
	if p.Input.KeyDown(rl.KeyW) {
		moveDir.X += forward.X
		moveDir.Z += forward.Z
	}
	if p.Input.KeyDown(rl.KeyS) {
		moveDir.X -= forward.X
		moveDir.Z -= forward.Z
	}
	if p.Input.KeyDown(rl.KeyA) {
		moveDir.X += right.X
		moveDir.Z += right.Z
	}
	if p.Input.KeyDown(rl.KeyD) {
		moveDir.X -= right.X
		moveDir.Z -= right.Z
	}

	// Normalize diagonal movement
	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen > 0 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	g.Transform.Position.X += moveDir.X * p.MoveSpeed * deltaTime
	g.Transform.Position.Z += moveDir.Z * p.MoveSpeed * deltaTime

	if h := p.RoomHalfExtent; h > 0 {
		g.Transform.Position.X = clamp(g.Transform.Position.X, -h, h)
		g.Transform.Position.Z = clamp(g.Transform.Position.Z, -h, h)
	}
}

func (p *PlayerController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(p.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

// GetLookDirection implements engine.LookProvider.
func (p *PlayerController) GetLookDirection() rl.Vector3 {
	yawRad := float64(p.Yaw) * math.Pi / 180
	pitchRad := float64(p.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// GetEyePosition implements engine.LookProvider.
func (p *PlayerController) GetEyePosition() rl.Vector3 {
	g := p.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	pos := g.WorldPosition()
	pos.Y += p.EyeHeight
	return pos
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ engine.LookProvider = (*PlayerController)(nil)
