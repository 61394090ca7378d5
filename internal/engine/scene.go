package engine

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownObject = errors.New("unknown game object")
	ErrParentCycle   = errors.New("reparent would create a cycle")
)

// Scene is an arena of GameObjects keyed by UID. Parent/child links are
// stored only as GameObject.Parent, so there is a single source of truth for
// ownership.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[UID]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[UID]*GameObject),
	}
}

// AddGameObject inserts g at the scene root. Adding an object twice is a no-op.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[UID]*GameObject)
	}
	if _, ok := s.uidMap[g.UID]; ok {
		return
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and all of its descendants.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range s.Children(g.UID) {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	delete(s.uidMap, g.UID)
	g.Scene = nil
	g.Parent = 0
}

func (s *Scene) FindByUID(uid UID) *GameObject {
	if uid == 0 {
		return nil
	}
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Children returns the direct children of uid in insertion order.
// uid 0 lists the root objects.
func (s *Scene) Children(uid UID) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.Parent == uid {
			result = append(result, g)
		}
	}
	return result
}

// Reparent moves child under parent (0 for the scene root). Validation runs
// before the Parent field is written, so a failed call changes nothing.
func (s *Scene) Reparent(child, parent UID) error {
	c := s.FindByUID(child)
	if c == nil {
		return fmt.Errorf("reparent %d: %w", child, ErrUnknownObject)
	}
	if parent != 0 {
		if s.FindByUID(parent) == nil {
			return fmt.Errorf("reparent %d under %d: %w", child, parent, ErrUnknownObject)
		}
		for p := parent; p != 0; {
			if p == child {
				return fmt.Errorf("reparent %d under %d: %w", child, parent, ErrParentCycle)
			}
			obj := s.uidMap[p]
			if obj == nil {
				break
			}
			p = obj.Parent
		}
	}
	c.Parent = parent
	return nil
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
