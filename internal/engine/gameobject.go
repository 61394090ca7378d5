package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UID identifies a GameObject for its whole lifetime. Zero means none.
type UID uint64

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// ResetTo places the transform at pos with no rotation and uniform scale.
func (t *Transform) ResetTo(pos rl.Vector3, scale float32) {
	t.Position = pos
	t.Rotation = rl.Vector3{}
	t.Scale = rl.Vector3{X: scale, Y: scale, Z: scale}
}

// GameObject is an entity in a Scene arena. Parent holds the owning
// object's UID; zero means the object sits at the scene root.
type GameObject struct {
	UID        UID
	Name       string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     UID
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    UID(nextUID.Add(1)),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) parent() *GameObject {
	if g.Parent == 0 || g.Scene == nil {
		return nil
	}
	return g.Scene.FindByUID(g.Parent)
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	p := g.parent()
	if p == nil {
		return g.Transform.Position
	}
	parentPos := p.WorldPosition()
	parentRot := p.WorldRotation()
	parentScale := p.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	// X then Y then Z
	rx := float64(parentRot.X) * math.Pi / 180
	ry := float64(parentRot.Y) * math.Pi / 180
	rz := float64(parentRot.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	rotated := rl.Vector3Transform(scaled, rotMatrix)
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	p := g.parent()
	if p == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(p.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	p := g.parent()
	if p == nil {
		return g.Transform.Scale
	}
	ps := p.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
